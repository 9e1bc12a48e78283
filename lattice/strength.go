package lattice

import "strconv"

// Strength is the coupling attached to a bond: either a real number or a
// symbolic label (e.g. "J", "tx"). The zero value is Numeric(0).
type Strength struct {
	label   string
	value   float64
	isLabel bool
}

// Numeric returns a numeric bond strength.
func Numeric(v float64) Strength { return Strength{value: v} }

// Label returns a symbolic bond strength. Its numeric value is 0.
func Label(s string) Strength { return Strength{label: s, isLabel: true} }

// IsLabel reports whether s carries a symbolic label.
func (s Strength) IsLabel() bool { return s.isLabel }

// Label returns the symbolic label, or "" for numeric strengths.
func (s Strength) Label() string { return s.label }

// Value returns the numeric value, or 0 for labels.
func (s Strength) Value() float64 { return s.value }

// String formats the strength for logs and errors.
func (s Strength) String() string {
	if s.isLabel {
		return strconv.Quote(s.label)
	}

	return strconv.FormatFloat(s.value, 'g', -1, 64)
}
