package gotrend

// Interval represents a closed confidence interval [Lower, Upper].
type Interval struct {
	Lower float64
	Upper float64
}

// Width returns the length of the interval.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

// ExcludesZero reports whether the interval lies entirely on one side of
// zero. The second return value is the sign of the interval (+1 or -1) when
// zero is excluded, and 0 otherwise.
func (iv Interval) ExcludesZero() (bool, int) {
	switch {
	case iv.Lower > 0:
		return true, 1
	case iv.Upper < 0:
		return true, -1
	default:
		return false, 0
	}
}

// Overlaps reports whether two intervals share any point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Lower <= other.Upper && other.Lower <= iv.Upper
}
