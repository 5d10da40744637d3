package guard

// Bound selects how range guards treat values sitting exactly on a bound.
// The zero value is Inclusive.
type Bound int

const (
	// Inclusive counts boundary values as inside the range.
	Inclusive Bound = iota
	// Exclusive counts boundary values as outside the range.
	Exclusive
)

func (b Bound) String() string {
	if b == Exclusive {
		return "exclusive"
	}
	return "inclusive"
}
