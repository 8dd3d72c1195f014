package extract

import (
	"testing"

	"github.com/nao1215/devicemodels/internal/model"
)

// samplePage mimics the wikitext table layout of the Models page.
const samplePage = `== iPad ==
{| class="wikitable"
|-
| rowspan="4" | iPad 2
| rowspan="1" | iPad2,1
|-
| rowspan="1" | iPad2,2
|}
== iPhone ==
| rowspan="2" | iPhone 6s
| rowspan="1" | iPhone8,1
| rowspan="2" | iPhone 6s Plus
| rowspan="1" | iPhone8,2
== iPod touch ==
| rowspan="1" | iPod touch (5th generation)
| rowspan="1" | iPod5,1
== Apple Watch ==
| rowspan="2" | Apple Watch (1st generation)
| rowspan="1" | Watch1,1
== Apple TV ==
| Apple TV (4th generation)
| AppleTV5,3
`

// TestParseFamily tests a single family pass.
func TestParseFamily(t *testing.T) {
	t.Parallel()

	t.Run("identifier is paired with preceding heading", func(t *testing.T) {
		t.Parallel()

		text := "rowspan=\"2\"| iPhone 6s\nrowspan=\"1\"| iPhone8,1\n"
		got := ParseFamily(iphonePattern, model.FamilyIPhone, text)

		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
		}
		if got[0].Identifier != "iPhone8,1" {
			t.Errorf("expected identifier 'iPhone8,1', got %q", got[0].Identifier)
		}
		if got[0].Category != "iPhone 6s" {
			t.Errorf("expected category 'iPhone 6s', got %q", got[0].Category)
		}
		if got[0].Family != model.FamilyIPhone {
			t.Errorf("expected family iPhone, got %q", got[0].Family)
		}
	})

	t.Run("identifier before any heading has empty category", func(t *testing.T) {
		t.Parallel()

		text := "rowspan| iPad2,1\nrowspan| iPad 2\nrowspan| iPad2,2\n"
		got := ParseFamily(ipadPattern, model.FamilyIPad, text)

		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d: %+v", len(got), got)
		}
		if got[0].Identifier != "iPad2,1" || got[0].Category != "" {
			t.Errorf("unexpected first entry: %+v", got[0])
		}
		if got[1].Identifier != "iPad2,2" || got[1].Category != "iPad 2" {
			t.Errorf("unexpected second entry: %+v", got[1])
		}
	})

	t.Run("headings without identifiers emit nothing", func(t *testing.T) {
		t.Parallel()

		text := "rowspan | iPod touch\nrowspan | iPod touch (2nd generation)\n"
		got := ParseFamily(ipodPattern, model.FamilyIPod, text)

		if len(got) != 0 {
			t.Errorf("expected no entries, got %+v", got)
		}
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		t.Parallel()

		got := ParseFamily(tvPattern, model.FamilyTV, "nothing to see here")
		if got == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(got) != 0 {
			t.Errorf("expected no entries, got %+v", got)
		}
	})

	t.Run("watch heading keeps Apple prefix", func(t *testing.T) {
		t.Parallel()

		text := "| rowspan=\"2\" | Apple Watch (1st generation)\n| rowspan=\"1\" | Watch1,1\n"
		got := ParseFamily(watchPattern, model.FamilyWatch, text)

		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
		}
		if got[0].Category != "Apple Watch (1st generation)" {
			t.Errorf("expected category 'Apple Watch (1st generation)', got %q", got[0].Category)
		}
	})

	t.Run("tv pass does not need rowspan", func(t *testing.T) {
		t.Parallel()

		text := "| Apple TV (2nd generation)\n| AppleTV2,1\n"
		got := ParseFamily(tvPattern, model.FamilyTV, text)

		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
		}
		if got[0].Identifier != "AppleTV2,1" || got[0].Category != "Apple TV (2nd generation)" {
			t.Errorf("unexpected entry: %+v", got[0])
		}
	})

	t.Run("last token on a line wins", func(t *testing.T) {
		t.Parallel()

		text := "rowspan | iPhone 5 | iPhone 5c\nrowspan | iPhone5,3\n"
		got := ParseFamily(iphonePattern, model.FamilyIPhone, text)

		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
		}
		if got[0].Category != "iPhone 5c" {
			t.Errorf("expected category 'iPhone 5c', got %q", got[0].Category)
		}
	})
}

// TestExtract tests the full extraction over all families.
func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("text without matches yields only simulators", func(t *testing.T) {
		t.Parallel()

		got := Extract("<html><body>Nothing relevant</body></html>")
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d: %+v", len(got), got)
		}
		if got[0] != model.NewEntry("i386", "Simulator", model.FamilySimulator) {
			t.Errorf("unexpected first entry: %+v", got[0])
		}
		if got[1] != model.NewEntry("x86_64", "Simulator", model.FamilySimulator) {
			t.Errorf("unexpected second entry: %+v", got[1])
		}
	})

	t.Run("families are concatenated in fixed order", func(t *testing.T) {
		t.Parallel()

		got := Extract(samplePage)
		want := []model.Entry{
			model.NewEntry("i386", "Simulator", model.FamilySimulator),
			model.NewEntry("x86_64", "Simulator", model.FamilySimulator),
			model.NewEntry("iPad2,1", "iPad 2", model.FamilyIPad),
			model.NewEntry("iPad2,2", "iPad 2", model.FamilyIPad),
			model.NewEntry("iPhone8,1", "iPhone 6s", model.FamilyIPhone),
			model.NewEntry("iPhone8,2", "iPhone 6s Plus", model.FamilyIPhone),
			model.NewEntry("iPod5,1", "iPod touch (5th generation)", model.FamilyIPod),
			model.NewEntry("Watch1,1", "Apple Watch (1st generation)", model.FamilyWatch),
			model.NewEntry("AppleTV5,3", "Apple TV (4th generation)", model.FamilyTV),
		}

		if len(got) != len(want) {
			t.Fatalf("expected %d entries, got %d: %+v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("entry %d: expected %+v, got %+v", i, want[i], got[i])
			}
		}
	})

	t.Run("heading state does not carry across families", func(t *testing.T) {
		t.Parallel()

		text := "rowspan | iPad 2\nrowspan | iPhone8,1\n"
		got := Extract(text)

		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %d: %+v", len(got), got)
		}
		if got[2].Identifier != "iPhone8,1" || got[2].Category != "" {
			t.Errorf("expected iPhone8,1 with empty category, got %+v", got[2])
		}
	})

	t.Run("ExtractWith runs only the given passes", func(t *testing.T) {
		t.Parallel()

		got := ExtractWith([]FamilyPattern{{Family: model.FamilyIPod, Pattern: ipodPattern}}, samplePage)

		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %d: %+v", len(got), got)
		}
		if got[2].Identifier != "iPod5,1" {
			t.Errorf("expected iPod5,1, got %+v", got[2])
		}
	})
}

// TestIsIdentifier tests the identifier shape heuristic.
func TestIsIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  bool
	}{
		{"iPhone8,1", true},
		{"Watch1,2", true},
		{"AppleTV5,3", true},
		{"iPad6,12", true},
		{"iPhone 6s", false},
		{"i386", false},
		{"iPad Pro (12.9-inch)", false},
		{"iPad, 2", false},
		{"iPad 1,2 edition", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			if got := IsIdentifier(tt.token); got != tt.want {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

// TestDefaultPatterns tests that the page passes follow the family order.
func TestDefaultPatterns(t *testing.T) {
	t.Parallel()

	patterns := DefaultPatterns()
	families := model.Families()[1:]
	if len(patterns) != len(families) {
		t.Fatalf("expected %d passes, got %d", len(families), len(patterns))
	}
	for i, fp := range patterns {
		if fp.Family != families[i] {
			t.Errorf("pass %d: expected %s, got %s", i, families[i], fp.Family)
		}
		if fp.Pattern == nil {
			t.Errorf("pass %d: missing pattern", i)
		}
	}
}
