package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDividers(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		floor   int64
		trunc   int64
		exact   int64
		exactOK bool
	}{
		{"even", 81, 9, 9, 9, 9, true},
		{"even negative", -81, 9, -9, -9, -9, true},
		{"positive inexact", 7, 2, 3, 3, 0, false},
		{"negative dividend", -7, 2, -4, -3, 0, false},
		{"negative divisor", 7, -2, -4, -3, 0, false},
		{"both negative", -7, -2, 3, 3, 0, false},
		{"small over large", 9, 18, 0, 0, 0, false},
		{"negative small over large", -9, 18, -1, 0, 0, false},
		{"zero dividend", 0, -9, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := FloorDivision(tt.a, tt.b)
			assert.True(t, ok)
			assert.Equal(t, tt.floor, q, "floor")

			q, ok = TruncatingDivision(tt.a, tt.b)
			assert.True(t, ok)
			assert.Equal(t, tt.trunc, q, "trunc")

			q, ok = ExactDivision(tt.a, tt.b)
			assert.Equal(t, tt.exactOK, ok, "exact ok")
			if ok {
				assert.Equal(t, tt.exact, q, "exact")
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"floor", "trunc", "exact", " Exact ", "FLOOR"} {
		t.Run(name, func(t *testing.T) {
			div, err := ParsePolicy(name)
			require.NoError(t, err)
			require.NotNil(t, div)
		})
	}

	div, err := ParsePolicy("exact")
	require.NoError(t, err)
	_, ok := div(7, 2)
	assert.False(t, ok)

	_, err = ParsePolicy("round")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Contains(t, err.Error(), `"round"`)
}
