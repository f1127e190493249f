package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		from     string
		to       string
		want     float64
	}{
		{"grams to kilograms", 500, UnitGram, UnitKilogram, 0.5},
		{"kilograms to grams", 0.5, UnitKilogram, UnitGram, 500},
		{"liters to milliliters", 1, UnitLiter, UnitMilliliter, 1000},
		{"milliliters to liters", 250, UnitMilliliter, UnitLiter, 0.25},
		{"same unit identity", 3, "pcs", "pcs", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.quantity, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_Incompatible(t *testing.T) {
	_, err := Convert(1, "pcs", UnitKilogram)
	assert.ErrorIs(t, err, ErrIncompatibleUnits)

	_, err = Convert(2, "cloves", "pcs")
	assert.ErrorIs(t, err, ErrIncompatibleUnits)

	// Mass and volume never cross.
	_, err = Convert(1, UnitGram, UnitMilliliter)
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestConvertible(t *testing.T) {
	assert.True(t, Convertible(UnitGram, UnitKilogram))
	assert.True(t, Convertible("pcs", "pcs"))
	assert.False(t, Convertible("cloves", "pcs"))
}
