package valueobject

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMixRatio(t *testing.T) {
	tests := []struct {
		input    string
		expected MixRatio
		wantErr  bool
	}{
		{"", OneToOne, false},
		{"1:1", OneToOne, false},
		{"2:1", MixRatio{PartA: 2, PartB: 1}, false},
		{" 3 : 2 ", MixRatio{PartA: 3, PartB: 2}, false},
		{"100:45", MixRatio{PartA: 100, PartB: 45}, false},
		{"1", MixRatio{}, true},
		{"a:b", MixRatio{}, true},
		{"1:x", MixRatio{}, true},
		{"0:1", MixRatio{}, true},
		{"1:-1", MixRatio{}, true},
		{"1.5:1", MixRatio{}, true},
		{"1000:1", MixRatio{PartA: 1000, PartB: 1}, false},
		{"1001:1", MixRatio{}, true},
		{"1:1001", MixRatio{}, true},
		{"9223372036854775807:1", MixRatio{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMixRatio(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMixRatio)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMixRatio_String(t *testing.T) {
	assert.Equal(t, "1:1", OneToOne.String())
	assert.Equal(t, "2:1", MixRatio{PartA: 2, PartB: 1}.String())
	assert.True(t, MixRatio{}.IsZero())
	assert.False(t, OneToOne.IsZero())
}

func TestMixRatio_Split(t *testing.T) {
	a, b := OneToOne.Split(167.5637712)
	assert.Equal(t, a, b)
	assert.InDelta(t, 83.7818856, a, 1e-9)

	a, b = MixRatio{PartA: 2, PartB: 1}.Split(9)
	assert.InDelta(t, 6.0, a, 1e-12)
	assert.InDelta(t, 3.0, b, 1e-12)

	a, b = MixRatio{}.Split(10)
	assert.Equal(t, 5.0, a)
	assert.Equal(t, 5.0, b)
}

func TestMixRatio_SplitSumsToTotal(t *testing.T) {
	ratios := []MixRatio{OneToOne, {PartA: 2, PartB: 1}, {PartA: 3, PartB: 7}, {PartA: 100, PartB: 45}}
	totals := []float64{0, 0.1, 3.6556, 167.5637712, 12345.678}

	for _, r := range ratios {
		for _, total := range totals {
			a, b := r.Split(total)
			assert.InDelta(t, total, a+b, 1e-9, "%s of %v", r, total)
		}
	}
}

func TestMixRatio_SplitExtremeParts(t *testing.T) {
	ratios := []MixRatio{
		{PartA: math.MaxInt, PartB: 1},
		{PartA: 1, PartB: math.MaxInt},
		{PartA: math.MaxInt, PartB: math.MaxInt},
	}

	for _, r := range ratios {
		a, b := r.Split(100)
		assert.GreaterOrEqual(t, a, 0.0, r.String())
		assert.GreaterOrEqual(t, b, 0.0, r.String())
		assert.InDelta(t, 100.0, a+b, 1e-9, r.String())
	}
}

func TestSplitMix(t *testing.T) {
	mix := SplitMix(3.6556, OneToOne)
	assert.Equal(t, "1:1", mix.Ratio)
	assert.InDelta(t, 1.8278, mix.PartAOunces, 1e-9)
	assert.Equal(t, mix.PartAOunces, mix.PartBOunces)

	fallback := SplitMix(10, MixRatio{})
	assert.Equal(t, "1:1", fallback.Ratio)
	assert.Equal(t, 5.0, fallback.PartAOunces)
}
