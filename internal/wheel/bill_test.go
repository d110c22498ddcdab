package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBill(t *testing.T) {
	valid := map[string]float64{
		"50":       50,
		" 12.5 ":   12.5,
		"0.01":     0.01,
		"1e2":      100,
		"33.33":    33.33,
		"100.0000": 100,
	}
	for raw, want := range valid {
		t.Run("valid "+raw, func(t *testing.T) {
			got, err := ParseBill(raw)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9)
		})
	}

	for _, raw := range []string{"", "  ", "0", "0.00", "-5", "abc", "12abc", "$20", "NaN", "Inf", "-Inf", "1e400"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := ParseBill(raw)
			assert.ErrorIs(t, err, ErrInvalidBill)
		})
	}
}
