package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Unit
	}{
		{"tsp", Teaspoon},
		{"t", Teaspoon},
		{"Teaspoons", Teaspoon},
		{"tbsp.", Tablespoon},
		{"TBL", Tablespoon},
		{"cups", Cup},
		{"c.", Cup},
		{"lbs", Pound},
		{"grams", Gram},
		{"Litres", Liter},
		{"cloves", Clove},
		{"pkg", Package},
		{"handful", Handful},
		{"large", None},
		{"flour", None},
		{"", None},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_IdempotentOnCanonical(t *testing.T) {
	for raw := range aliases {
		canonical := Normalize(raw)
		require.NotEqual(t, None, canonical, raw)
		assert.Equal(t, canonical, Normalize(string(canonical)), raw)
	}
}

func TestFamilyOf(t *testing.T) {
	f, ok := FamilyOf(Cup)
	require.True(t, ok)
	assert.Equal(t, Volume, f)

	f, ok = FamilyOf(Ounce)
	require.True(t, ok)
	assert.Equal(t, Weight, f)

	_, ok = FamilyOf(Clove)
	assert.False(t, ok, "count units have no family")
	_, ok = FamilyOf(None)
	assert.False(t, ok)
}

func TestBaseFactor(t *testing.T) {
	f, ok := BaseFactor(Tablespoon)
	require.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = BaseFactor(Pinch)
	assert.False(t, ok)
}

func TestFromBase(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		family     Family
		wantAmount float64
		wantUnit   Unit
	}{
		{"cups", 96, Volume, 2, Cup},
		{"tablespoons", 6, Volume, 2, Tablespoon},
		{"teaspoons", 2, Volume, 2, Teaspoon},
		{"kilograms", 1500, Weight, 1.5, Kilogram},
		{"pounds", 680.4, Weight, 1.5, Pound},
		{"ounces", 56.7, Weight, 2, Ounce},
		{"grams", 20, Weight, 20, Gram},
		{"no family", 3, NoFamily, 3, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, unit := FromBase(tt.base, tt.family)
			assert.InDelta(t, tt.wantAmount, amount, 1e-9)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible(Cup, Tablespoon))
	assert.True(t, Compatible(Pound, Gram))
	assert.True(t, Compatible(Clove, Clove))
	assert.True(t, Compatible(None, None))
	assert.False(t, Compatible(Cup, Gram))
	assert.False(t, Compatible(Clove, Slice))
	assert.False(t, Compatible(Cup, None))
}
