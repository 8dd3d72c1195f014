package model

import "testing"

// TestNewMapping tests collapsing entries into an ordered mapping.
func TestNewMapping(t *testing.T) {
	t.Parallel()

	t.Run("last duplicate wins", func(t *testing.T) {
		t.Parallel()

		m := NewMapping([]Entry{
			NewEntry("X", "A", FamilyIPhone),
			NewEntry("X", "B", FamilyIPhone),
		})

		if m.Len() != 1 {
			t.Fatalf("expected 1 pair, got %d", m.Len())
		}
		if got := m.Pairs()[0]; got != (Pair{Identifier: "X", Category: "B"}) {
			t.Errorf("expected X:B, got %+v", got)
		}
	})

	t.Run("first occurrence keeps its position", func(t *testing.T) {
		t.Parallel()

		m := NewMapping([]Entry{
			NewEntry("a", "1", FamilyIPad),
			NewEntry("b", "2", FamilyIPad),
			NewEntry("a", "3", FamilyIPad),
		})

		pairs := m.Pairs()
		if len(pairs) != 2 {
			t.Fatalf("expected 2 pairs, got %d", len(pairs))
		}
		if pairs[0] != (Pair{Identifier: "a", Category: "3"}) {
			t.Errorf("unexpected first pair: %+v", pairs[0])
		}
		if pairs[1] != (Pair{Identifier: "b", Category: "2"}) {
			t.Errorf("unexpected second pair: %+v", pairs[1])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		m := NewMapping(nil)
		if m.Len() != 0 {
			t.Errorf("expected empty mapping, got %d pairs", m.Len())
		}
		if len(m.Pairs()) != 0 {
			t.Errorf("expected no pairs, got %+v", m.Pairs())
		}
	})
}

// TestCatalogCountByFamily tests per-family counting.
func TestCatalogCountByFamily(t *testing.T) {
	t.Parallel()

	c := NewCatalog("http://example.com")
	c.Entries = append(c.Entries, SimulatorEntries()...)
	c.Entries = append(c.Entries,
		NewEntry("iPhone8,1", "iPhone 6s", FamilyIPhone),
		NewEntry("iPhone8,2", "iPhone 6s Plus", FamilyIPhone),
		NewEntry("AppleTV5,3", "Apple TV (4th generation)", FamilyTV),
	)

	counts := c.CountByFamily()
	want := map[Family]int{
		FamilySimulator: 2,
		FamilyIPad:      0,
		FamilyIPhone:    2,
		FamilyIPod:      0,
		FamilyWatch:     0,
		FamilyTV:        1,
	}
	for f, n := range want {
		if counts[f] != n {
			t.Errorf("family %s: expected %d, got %d", f, n, counts[f])
		}
	}

	phones := c.EntriesByFamily(FamilyIPhone)
	if len(phones) != 2 || phones[0].Identifier != "iPhone8,1" {
		t.Errorf("unexpected iPhone entries: %+v", phones)
	}
}

// TestSimulatorEntries tests the hardcoded simulator rows.
func TestSimulatorEntries(t *testing.T) {
	t.Parallel()

	entries := SimulatorEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Identifier != "i386" || entries[1].Identifier != "x86_64" {
		t.Errorf("unexpected identifiers: %+v", entries)
	}
	for _, e := range entries {
		if e.Category != "Simulator" {
			t.Errorf("expected category 'Simulator', got %q", e.Category)
		}
		if e.Family != FamilySimulator {
			t.Errorf("expected family Simulator, got %q", e.Family)
		}
	}
}

// TestFamilies tests the family order.
func TestFamilies(t *testing.T) {
	t.Parallel()

	got := Families()
	want := []string{"Simulator", "iPad", "iPhone", "iPod", "Watch", "TV"}
	if len(got) != len(want) {
		t.Fatalf("expected %d families, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
