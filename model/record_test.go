package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord(1, 2, 3, 4, 0.5)

	assert.Equal(t, Record{I: 1, J: 2, K: 3, L: 4, Weight: 0.5}, r)
	assert.Equal(t, [4]uint64{1, 2, 3, 4}, r.Indices())
}

func TestRecord_Equal(t *testing.T) {
	base := NewRecord(1, 2, 3, 4, 1.0)

	assert.True(t, base.Equal(NewRecord(1, 2, 3, 4, 1.0)))
	assert.False(t, base.Equal(NewRecord(1, 2, 3, 4, 1.0+5e-13)), "exact equality must not apply a tolerance")
	assert.False(t, base.Equal(NewRecord(0, 2, 3, 4, 1.0)))

	nan := NewRecord(1, 2, 3, 4, math.NaN())
	assert.False(t, nan.Equal(nan))
}

func TestRecord_UsableAsMapKey(t *testing.T) {
	seen := map[Record]int{}
	seen[NewRecord(1, 2, 3, 4, 0.5)]++
	seen[NewRecord(1, 2, 3, 4, 0.5)]++
	seen[NewRecord(4, 3, 2, 1, 0.5)]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[NewRecord(1, 2, 3, 4, 0.5)])
}

func TestRecord_ApproxEqual(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Record
		epsilon float64
		want    bool
	}{
		{"identical", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 2, 3, 4, 1.0), DefaultEpsilon, true},
		{"within default epsilon", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 2, 3, 4, 1.0+5e-13), DefaultEpsilon, true},
		{"outside default epsilon", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 2, 3, 4, 1.0+5e-12), DefaultEpsilon, false},
		{"difference exactly epsilon", NewRecord(0, 0, 0, 0, 0.5), NewRecord(0, 0, 0, 0, 0.75), 0.25, true},
		{"zero epsilon equal weights", NewRecord(0, 0, 0, 0, 2.0), NewRecord(0, 0, 0, 0, 2.0), 0, true},
		{"wide epsilon", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 2, 3, 4, 1.9), 1.0, true},
		{"first index differs", NewRecord(1, 2, 3, 4, 1.0), NewRecord(9, 2, 3, 4, 1.0), 1.0, false},
		{"second index differs", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 9, 3, 4, 1.0), 1.0, false},
		{"third index differs", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 2, 9, 4, 1.0), 1.0, false},
		{"fourth index differs", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 2, 3, 5, 1.0), 1.0, false},
		{"index mismatch ignores huge epsilon", NewRecord(1, 2, 3, 4, 1.0), NewRecord(1, 2, 3, 5, 1.0), math.MaxFloat64, false},
		{"nan vs nan", NewRecord(1, 2, 3, 4, math.NaN()), NewRecord(1, 2, 3, 4, math.NaN()), math.Inf(1), false},
		{"nan vs number", NewRecord(1, 2, 3, 4, math.NaN()), NewRecord(1, 2, 3, 4, 1.0), math.Inf(1), false},
		{"inf vs inf", NewRecord(1, 2, 3, 4, math.Inf(1)), NewRecord(1, 2, 3, 4, math.Inf(1)), math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.ApproxEqual(tt.b, tt.epsilon))
			assert.Equal(t, tt.want, tt.b.ApproxEqual(tt.a, tt.epsilon), "approximate equality must be symmetric")
		})
	}
}

func TestRecord_ApproxEqualDefault(t *testing.T) {
	a := NewRecord(1, 2, 3, 4, 1.0)

	assert.True(t, a.ApproxEqualDefault(a), "reflexive for finite weights")
	assert.True(t, a.ApproxEqualDefault(NewRecord(1, 2, 3, 4, 1.0+5e-13)))
	assert.False(t, a.ApproxEqualDefault(NewRecord(1, 2, 3, 4, 1.0+5e-12)))
}
