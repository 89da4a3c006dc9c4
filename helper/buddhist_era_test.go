package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBuddhistEra(t *testing.T) {
	assert.Equal(t, 2567, ToBuddhistEra(2024))
	assert.Equal(t, 2568, ToBuddhistEra(2025))
	assert.Equal(t, 543, ToBuddhistEra(0))
	assert.Equal(t, 2024, FromBuddhistEra(2567))
}

func TestBuddhistEra_RoundTrip(t *testing.T) {
	for _, x := range []int{-5000, -543, -1, 0, 1, 543, 1900, 2024, 2100, 2567, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, x, ToBuddhistEra(FromBuddhistEra(x)), "to(from(%d))", x)
		assert.Equal(t, x, FromBuddhistEra(ToBuddhistEra(x)), "from(to(%d))", x)
	}
}
