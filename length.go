package svgpaint

// LengthPercentage is a parsed length that is either absolute (in user
// units) or a percentage of some reference length.
type LengthPercentage struct {
	Value     float64
	IsPercent bool
}

// Px returns an absolute length in user units.
func Px(v float64) LengthPercentage { return LengthPercentage{Value: v} }

// Percent returns a percentage length; Percent(50) is half the reference.
func Percent(v float64) LengthPercentage { return LengthPercentage{Value: v, IsPercent: true} }

// Resolve returns the length in user units. Percentages resolve against
// ref; absolute lengths ignore it.
func (l LengthPercentage) Resolve(ref float64) float64 {
	if l.IsPercent {
		return l.Value * ref / 100
	}
	return l.Value
}

// NumberPercentage is a parsed number-or-percentage attribute value, as
// used for pattern geometry in object bounding box units.
type NumberPercentage struct {
	Value     float64
	IsPercent bool
}

// Number returns a plain number.
func Number(v float64) NumberPercentage { return NumberPercentage{Value: v} }

// Percentage returns a percentage; Percentage(50) has fraction 0.5.
func Percentage(v float64) NumberPercentage { return NumberPercentage{Value: v, IsPercent: true} }

// Fraction returns the value as a fraction: percentages are divided by
// 100, plain numbers are returned as is.
func (n NumberPercentage) Fraction() float64 {
	if n.IsPercent {
		return n.Value / 100
	}
	return n.Value
}

// Units is the coordinate system keyword of patternUnits,
// patternContentUnits and gradientUnits.
type Units uint8

const (
	// UnitsUserSpaceOnUse means values are in the user space of the
	// element referencing the paint server.
	UnitsUserSpaceOnUse Units = iota
	// UnitsObjectBoundingBox means values are fractions of the bounding
	// box of the element referencing the paint server.
	UnitsObjectBoundingBox
)

// String returns the SVG keyword.
func (u Units) String() string {
	switch u {
	case UnitsUserSpaceOnUse:
		return "userSpaceOnUse"
	case UnitsObjectBoundingBox:
		return "objectBoundingBox"
	default:
		return "unknown"
	}
}

// ParseUnits maps an SVG keyword to Units. Unknown keywords report false.
func ParseUnits(s string) (Units, bool) {
	switch s {
	case "userSpaceOnUse":
		return UnitsUserSpaceOnUse, true
	case "objectBoundingBox":
		return UnitsObjectBoundingBox, true
	default:
		return 0, false
	}
}

// DashValue is one raw entry of stroke-dasharray: either a length
// (possibly a percentage of the viewport reference length) or a plain
// number in user units.
type DashValue struct {
	Length   LengthPercentage
	IsNumber bool
	Number   float64
}

// DashLength returns a length dash entry.
func DashLength(l LengthPercentage) DashValue { return DashValue{Length: l} }

// DashNumber returns a plain number dash entry.
func DashNumber(v float64) DashValue { return DashValue{IsNumber: true, Number: v} }

// Resolve returns the entry in user units given the reference length for
// percentages.
func (d DashValue) Resolve(ref float64) float64 {
	if d.IsNumber {
		return d.Number
	}
	return d.Length.Resolve(ref)
}

// Ptr returns a pointer to v. It is a convenience for filling optional
// attribute fields.
func Ptr[T any](v T) *T { return &v }
