package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EditBoxSelector selects the MediaWiki edit textarea.
const EditBoxSelector = "textarea#wpTextbox1"

// ExtractWikitext returns the text inside the edit textarea of a MediaWiki
// "action=edit" page, with HTML entities decoded.
// found is false when the page has no such textarea.
func ExtractWikitext(page string) (source string, found bool, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", false, fmt.Errorf("failed to parse page: %w", err)
	}

	box := doc.Find(EditBoxSelector)
	if box.Length() == 0 {
		return "", false, nil
	}
	return box.First().Text(), true, nil
}
