// Package core: generic per-element property store shared by Node and Edge.
package core

// props is the label → value store embedded in Node and Edge. The zero value
// is ready to use; the map is allocated lazily on first SetProperty.
type props struct {
	m map[string]any
}

// SetProperty stores value under label, replacing any previous value.
// Complexity: O(1).
func (p *props) SetProperty(label string, value any) {
	if p.m == nil {
		p.m = make(map[string]any, 4)
	}
	p.m[label] = value
}

// Property returns the value stored under label and whether it was present.
// Complexity: O(1).
func (p *props) Property(label string) (any, bool) {
	v, ok := p.m[label]

	return v, ok
}

// RemoveProperty deletes label from the store. Removing an absent label is a no-op.
// Complexity: O(1).
func (p *props) RemoveProperty(label string) {
	delete(p.m, label)
}

// HasProperty reports whether label is present.
// Complexity: O(1).
func (p *props) HasProperty(label string) bool {
	_, ok := p.m[label]

	return ok
}

// NumberOr coerces the value stored under label to float64.
//
// Any Go numeric type converts (int*, uint*, float*). A missing label or a
// non-numeric value yields def - absent and malformed data are deliberately
// indistinguishable to the caller, so algorithms fall back to their default
// weight instead of failing on dirty data. Sign is NOT policed here; callers
// that forbid negative values (e.g. path lengths) must check the result.
// Complexity: O(1).
func (p *props) NumberOr(label string, def float64) float64 {
	v, ok := p.m[label]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		// Non-numeric value: treated as absent.
		return def
	}
}
