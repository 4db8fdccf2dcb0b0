package payments

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits_RoundsToNearestCent(t *testing.T) {
	cases := map[float64]int64{
		10:     1000,
		0.01:   1,
		49.99:  4999,
		19.999: 2000, // truncation would lose a cent here
		50:     5000,
	}

	for amount, expected := range cases {
		assert.Equal(t, expected, ToMinorUnits(amount), "amount %v", amount)
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	// converting down and back is the same as rounding to two decimals
	cases := []float64{10, 0.01, 19.995, 19.999, 33.335, 12.345, 99.999, 50.005, 5000}

	for _, amount := range cases {
		minor := ToMinorUnits(amount)
		back := FromMinorUnits(minor)
		assert.Equal(t, math.Round(amount*100)/100, back, "amount %v", amount)
	}
}
