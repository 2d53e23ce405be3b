package model

import "math"

// DefaultEpsilon is the absolute tolerance used by ApproxEqualDefault.
const DefaultEpsilon = 1e-12

// Record is a four-index integer tuple with a single float64 weight.
// Indices are fixed at 64 bits regardless of platform word size.
// Record is comparable, so it can be used directly as a map key.
type Record struct {
	I      uint64  `json:"i"`
	J      uint64  `json:"j"`
	K      uint64  `json:"k"`
	L      uint64  `json:"l"`
	Weight float64 `json:"weight"`
}

// NewRecord builds a Record from its five fields.
func NewRecord(i, j, k, l uint64, weight float64) Record {
	return Record{I: i, J: j, K: k, L: l, Weight: weight}
}

// Indices returns the four integer fields in order.
func (r Record) Indices() [4]uint64 {
	return [4]uint64{r.I, r.J, r.K, r.L}
}

// Equal reports whether all five fields are identical.
// The weight is compared with ==, so a NaN weight never equals anything.
func (r Record) Equal(other Record) bool {
	return r == other
}

// ApproxEqual reports whether the indices match exactly and the weights
// differ by at most epsilon. NaN weights never compare approximately equal.
func (r Record) ApproxEqual(other Record, epsilon float64) bool {
	return r.I == other.I &&
		r.J == other.J &&
		r.K == other.K &&
		r.L == other.L &&
		math.Abs(r.Weight-other.Weight) <= epsilon
}

// ApproxEqualDefault is ApproxEqual with DefaultEpsilon.
func (r Record) ApproxEqualDefault(other Record) bool {
	return r.ApproxEqual(other, DefaultEpsilon)
}
