package svgpaint

import "math"

// NormalizeDashArray resolves raw stroke-dasharray entries against the
// reference length ref (see [ViewportReference]) and canonicalises them.
//
// An odd-length array is repeated once to make it even, so [5] becomes
// [5, 5]. An array containing a negative value is invalid and an array of
// zeros draws a solid stroke; both yield nil, meaning "no dashing".
func NormalizeDashArray(values []DashValue, ref float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	resolved := make([]float64, 0, 2*len(values))
	for _, v := range values {
		resolved = append(resolved, v.Resolve(ref))
	}
	if len(resolved)%2 != 0 {
		resolved = append(resolved, resolved...)
	}

	allZero := true
	for _, l := range resolved {
		if l < 0 {
			return nil
		}
		if l != 0 {
			allZero = false
		}
	}
	if allZero {
		return nil
	}
	return resolved
}

// Dash is a resolved dash pattern for stroking.
// Array holds alternating dash and gap lengths and always has even length.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	Array []float64

	// Offset is the starting offset into the pattern.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from raw values resolved against ref.
// Returns nil when the values do not describe a dashed stroke.
func NewDash(values []DashValue, offset, ref float64) *Dash {
	array := NormalizeDashArray(values, ref)
	if array == nil {
		return nil
	}
	return &Dash{Array: array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}

	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)

	return &Dash{
		Array:  arrayCopy,
		Offset: d.Offset,
	}
}

// NormalizedOffset returns the offset normalized to be within one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Scale returns a new Dash with all lengths multiplied by the given factor.
// Dash lengths are in user space, so a renderer scales them along with
// the coordinate transform.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaledArray := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaledArray[i] = l * factor
	}

	return &Dash{
		Array:  scaledArray,
		Offset: d.Offset * factor,
	}
}
