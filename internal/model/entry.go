package model

// SimulatorCategory is the category assigned to the hardcoded simulator entries.
const SimulatorCategory = "Simulator"

// Entry is a single model identifier and the category it was listed under.
//
// Identifier is a device model string such as "iPhone8,1". Category is the
// section heading seen before it on the source page, such as "iPhone 6s".
// Category is empty when an identifier appears before any heading.
type Entry struct {
	// Identifier is the internal device code.
	Identifier string `json:"identifier"`

	// Category is the human-readable heading the identifier belongs to.
	Category string `json:"category"`

	// Family is the pass that produced this entry.
	// It is not part of any stdout rendering.
	Family Family `json:"family"`
}

// NewEntry creates an Entry.
func NewEntry(identifier, category string, family Family) Entry {
	return Entry{
		Identifier: identifier,
		Category:   category,
		Family:     family,
	}
}

// SimulatorEntries returns the two simulator architectures that are always
// emitted ahead of anything found on the page.
func SimulatorEntries() []Entry {
	return []Entry{
		NewEntry("i386", SimulatorCategory, FamilySimulator),
		NewEntry("x86_64", SimulatorCategory, FamilySimulator),
	}
}
