package model

// Family identifies the device family pass that produced an Entry.
type Family string

const (
	// FamilySimulator marks the hardcoded simulator architectures.
	FamilySimulator Family = "Simulator"
	// FamilyIPad marks entries found by the iPad pass.
	FamilyIPad Family = "iPad"
	// FamilyIPhone marks entries found by the iPhone pass.
	FamilyIPhone Family = "iPhone"
	// FamilyIPod marks entries found by the iPod pass.
	FamilyIPod Family = "iPod"
	// FamilyWatch marks entries found by the Apple Watch pass.
	FamilyWatch Family = "Watch"
	// FamilyTV marks entries found by the Apple TV pass.
	FamilyTV Family = "TV"
)

// Families returns every family in extraction order.
// Simulators always come first, followed by the five page passes.
func Families() []Family {
	return []Family{
		FamilySimulator,
		FamilyIPad,
		FamilyIPhone,
		FamilyIPod,
		FamilyWatch,
		FamilyTV,
	}
}

// String returns the family name.
func (f Family) String() string {
	return string(f)
}
