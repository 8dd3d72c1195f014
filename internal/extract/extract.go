package extract

import (
	"regexp"

	"github.com/nao1215/devicemodels/internal/model"
)

// foldState is the accumulator of a family pass.
type foldState struct {
	heading string
	entries []model.Entry
}

// step classifies one token: identifiers are emitted under the current
// heading, everything else becomes the new heading.
func (s foldState) step(token string, family model.Family) foldState {
	if IsIdentifier(token) {
		s.entries = append(s.entries, model.NewEntry(token, s.heading, family))
		return s
	}
	s.heading = token
	return s
}

// ParseFamily runs one family pass over text.
// Tokens are taken from the first capture group of every non-overlapping
// match, in order. The heading starts empty, so identifiers found before
// any heading get an empty category.
func ParseFamily(pattern *regexp.Regexp, family model.Family, text string) []model.Entry {
	state := foldState{entries: make([]model.Entry, 0)}
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if len(m) < 2 {
			continue
		}
		state = state.step(m[1], family)
	}
	return state.entries
}

// Extract produces every entry for text: the simulator rows followed by the
// iPad, iPhone, iPod, Watch and TV passes. Each pass keeps its own heading.
func Extract(text string) []model.Entry {
	return ExtractWith(DefaultPatterns(), text)
}

// ExtractWith is Extract with an explicit list of family passes.
func ExtractWith(patterns []FamilyPattern, text string) []model.Entry {
	entries := model.SimulatorEntries()
	for _, fp := range patterns {
		entries = append(entries, ParseFamily(fp.Pattern, fp.Family, text)...)
	}
	return entries
}
