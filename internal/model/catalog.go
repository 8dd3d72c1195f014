package model

// Catalog carries the state of one run from fetch to render.
// A new Catalog is created for every invocation and nothing in it is persisted.
type Catalog struct {
	// URL is the page that was (or will be) fetched.
	URL string

	// Page is the text the extractor runs over.
	Page string

	// Entries is the ordered extraction result.
	Entries []Entry

	// Halted is set when the fetch failed with a non-200 status.
	// Later steps are skipped and no entries are rendered.
	Halted bool
}

// NewCatalog creates an empty Catalog for the given source URL.
func NewCatalog(url string) *Catalog {
	return &Catalog{
		URL:     url,
		Entries: make([]Entry, 0),
	}
}

// Pair is one key/value of a Mapping.
type Pair struct {
	Identifier string
	Category   string
}

// Mapping is an identifier to category mapping that remembers insertion order.
// The first occurrence of an identifier fixes its position; the last one
// fixes its category.
type Mapping struct {
	pairs []Pair
	index map[string]int
}

// NewMapping collapses entries into a Mapping.
func NewMapping(entries []Entry) *Mapping {
	m := &Mapping{
		pairs: make([]Pair, 0, len(entries)),
		index: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Identifier, e.Category)
	}
	return m
}

// Set assigns category to identifier, keeping the original position when
// the identifier is already present.
func (m *Mapping) Set(identifier, category string) {
	if i, ok := m.index[identifier]; ok {
		m.pairs[i].Category = category
		return
	}
	m.index[identifier] = len(m.pairs)
	m.pairs = append(m.pairs, Pair{Identifier: identifier, Category: category})
}

// Len returns the number of unique identifiers.
func (m *Mapping) Len() int {
	return len(m.pairs)
}

// Pairs returns the pairs in insertion order.
func (m *Mapping) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Mapping collapses the catalog entries. See NewMapping.
func (c *Catalog) Mapping() *Mapping {
	return NewMapping(c.Entries)
}

// CountByFamily returns the number of entries produced by each family.
// Families with no entries are present with a zero count.
func (c *Catalog) CountByFamily() map[Family]int {
	counts := make(map[Family]int, len(Families()))
	for _, f := range Families() {
		counts[f] = 0
	}
	for _, e := range c.Entries {
		counts[e.Family]++
	}
	return counts
}

// EntriesByFamily returns the entries produced by the given family, in order.
func (c *Catalog) EntriesByFamily(family Family) []Entry {
	out := make([]Entry, 0)
	for _, e := range c.Entries {
		if e.Family == family {
			out = append(out, e)
		}
	}
	return out
}
