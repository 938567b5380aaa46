package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		base  float64
		count int
		want  float64
	}{
		{350, 3, 1050},
		{350, 0, 350},
		{350, -4, 350},
		{350, 1, 350},
		{350, 10, 3500},
		{350, 25, 3500},
		{99.99, 3, 299.97},
		{0, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Calculate(tt.base, tt.count), "Calculate(%v, %d)", tt.base, tt.count)
	}
}

func TestPolicies(t *testing.T) {
	assert.Equal(t, PolicyPerHead, PolicyFor("").Name())
	assert.Equal(t, PolicyPerHead, PolicyFor("bogus").Name())
	assert.Equal(t, PolicyTiered, PolicyFor(PolicyTiered).Name())

	perHead := PerHeadPolicy{}
	assert.Equal(t, 1050.0, perHead.Total(350, 3, TypeFamily))

	tiered := TieredPolicy{}
	assert.Equal(t, 1400.0, tiered.Total(350, 6, TypeFamily))
	assert.Equal(t, 1050.0, tiered.Total(350, 3, TypeIndividual))
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, MinCount, ClampCount(0))
	assert.Equal(t, 5, ClampCount(5))
	assert.Equal(t, MaxCount, ClampCount(11))
}
