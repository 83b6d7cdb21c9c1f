package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		duration  int
		want      float64
	}{
		{"single unit", 20, 15, 20},
		{"two units", 20, 30, 40},
		{"four units", 20, 60, 80},
		{"three units odd price", 19.99, 45, 59.97},
		{"non-multiple duration scales proportionally", 20, 20, 26.67},
		{"half rounds up", 0.375, 15, 0.38},
		{"fractional cents rounded once", 10.10, 50, 33.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quote(tt.unitPrice, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteRejectsBadDurations(t *testing.T) {
	for _, d := range []int{0, -15} {
		_, err := Quote(20, d)
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", d)
	}
}
