package pltrs

// ScaleKind identifies a Scale variant.
type ScaleKind uint8

const (
	// ScaleLinear is the linear domain-to-range mapping.
	ScaleLinear ScaleKind = iota
)

// String returns the variant name.
func (k ScaleKind) String() string {
	switch k {
	case ScaleLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Scale maps data values from a domain into a normalized range.
//
// The set of variants is closed: only types in this package implement Scale.
// Adding a new mapping (log, time) means adding a type here, the call
// contract stays Map(v) float64.
//
// Implementations are pure and stateless, so a Scale may be used from any
// number of goroutines without synchronization.
type Scale interface {
	// Map converts a domain value to the range. It never panics;
	// non-finite inputs propagate arithmetically.
	Map(v float64) float64

	// Invert converts a range value back to the domain.
	Invert(v float64) float64

	// Kind reports the variant.
	Kind() ScaleKind

	scale()
}

// LinearScale linearly interpolates Domain onto Range.
// Neither pair needs to be ordered.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

// Linear creates a linear scale mapping domain onto rng.
//
// Example:
//
//	x := pltrs.Linear([2]float64{0, 10}, [2]float64{0, 1})
//	x.Map(5) // 0.5
func Linear(domain, rng [2]float64) LinearScale {
	return LinearScale{Domain: domain, Range: rng}
}

// Map returns Range[0] + t*(Range[1]-Range[0]) where
// t = (v-Domain[0])/(Domain[1]-Domain[0]).
// A zero-width domain saturates to Range[0].
func (s LinearScale) Map(v float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	r0, r1 := s.Range[0], s.Range[1]
	if d1 == d0 {
		return r0
	}
	t := (v - d0) / (d1 - d0)
	return r0 + t*(r1-r0)
}

// Invert is the inverse of Map. A zero-width range saturates to Domain[0].
func (s LinearScale) Invert(v float64) float64 {
	return LinearScale{Domain: s.Range, Range: s.Domain}.Map(v)
}

// Kind returns ScaleLinear.
func (LinearScale) Kind() ScaleKind { return ScaleLinear }

func (LinearScale) scale() {}

// Ensure LinearScale implements Scale.
var _ Scale = LinearScale{}
