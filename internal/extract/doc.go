// Package extract turns the source text of the wiki "Models" page into
// model entries.
//
// Each device family is scanned by its own regular expression. The captured
// tokens are either section headings ("iPhone 6s") or model identifiers
// ("iPhone8,1"); identifiers are paired with the most recent heading seen in
// the same family pass.
//
// # Usage
//
//	entries := extract.Extract(pageText)
//	for _, e := range entries {
//	    fmt.Println(e.Identifier, e.Category)
//	}
package extract
