package extract

import (
	"regexp"

	"github.com/nao1215/devicemodels/internal/model"
)

// tokenClass is the set of characters a captured token may continue with.
// It is Unicode aware: letters, numbers, underscore, space and ()*+,-.
const tokenClass = `[\p{L}\p{N}_ ()*+,\-.]`

// FamilyPattern binds a device family to the expression that finds its tokens.
// The first capture group of Pattern is the token.
type FamilyPattern struct {
	Family  model.Family
	Pattern *regexp.Regexp
}

var (
	ipadPattern   = regexp.MustCompile(`rowspan.*(iPad` + tokenClass + `*)`)
	iphonePattern = regexp.MustCompile(`rowspan.*(iPhone` + tokenClass + `*)`)
	ipodPattern   = regexp.MustCompile(`rowspan.*(iPod` + tokenClass + `*)`)
	watchPattern  = regexp.MustCompile(`rowspan.*?((?:Apple )*Watch` + tokenClass + `*)`)
	tvPattern     = regexp.MustCompile(`.*(Apple[ ]*TV` + tokenClass + `*)`)

	// identifierPattern recognises a model identifier: anything with a
	// digit, comma, digit in it, matched from the start of the token.
	identifierPattern = regexp.MustCompile(`^.*\p{Nd},\p{Nd}`)
)

// DefaultPatterns returns the page passes in extraction order.
func DefaultPatterns() []FamilyPattern {
	return []FamilyPattern{
		{Family: model.FamilyIPad, Pattern: ipadPattern},
		{Family: model.FamilyIPhone, Pattern: iphonePattern},
		{Family: model.FamilyIPod, Pattern: ipodPattern},
		{Family: model.FamilyWatch, Pattern: watchPattern},
		{Family: model.FamilyTV, Pattern: tvPattern},
	}
}

// IsIdentifier reports whether token has the shape of a model identifier.
// This is a loose check: "iPhone8,1" and "Watch1,2" match, and so does any
// heading that happens to contain a digit, comma, digit.
func IsIdentifier(token string) bool {
	return identifierPattern.MatchString(token)
}
