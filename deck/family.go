package deck

import "fmt"

// Family is one of the three card families
type Family int

var familyNames = []string{"major_improvement", "minor_improvement", "occupation"}

const (
	MajorImprovement Family = iota
	MinorImprovement
	Occupation
)

func (f Family) String() string {
	if f < MajorImprovement || f > Occupation {
		return fmt.Sprintf("family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily maps a family name back to its Family
func ParseFamily(name string) (Family, bool) {
	for i, n := range familyNames {
		if n == name {
			return Family(i), true
		}
	}
	return 0, false
}
