package ingredient

import (
	"fmt"
	"testing"

	"github.com/gaurav-prasanna/recipegrab/core/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadingQuantity(t *testing.T) {
	tests := []struct {
		in            string
		wantAmount    float64
		wantRemainder string
		wantFound     bool
	}{
		{"2 cups flour", 2, "cups flour", true},
		{"1/2 tsp salt", 0.5, "tsp salt", true},
		{"1 1/2 cups milk", 1.5, "cups milk", true},
		{"0.5 cup sugar", 0.5, "cup sugar", true},
		{"½ cup sugar", 0.5, "cup sugar", true},
		{"1½ cups water", 1.5, "cups water", true},
		{"1 ¾ lb beef", 1.75, "lb beef", true},
		{"3 eggs", 3, "eggs", true},
		{"salt to taste", 0, "salt to taste", false},
		{"", 0, "", false},
		{"1/0 cup oil", 0, "cup oil", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q := ParseLeadingQuantity(tt.in)
			assert.InDelta(t, tt.wantAmount, q.Amount, 1e-9)
			assert.Equal(t, tt.wantRemainder, q.Remainder)
			assert.Equal(t, tt.wantFound, q.Found)
		})
	}
}

func TestParseLeadingQuantity_GlyphsMatchSpelledFractions(t *testing.T) {
	spelled := map[string]string{
		"½": "1/2", "¼": "1/4", "¾": "3/4",
		"⅓": "1/3", "⅔": "2/3", "⅛": "1/8",
		"⅜": "3/8", "⅝": "5/8", "⅞": "7/8",
	}
	for glyph, frac := range spelled {
		t.Run(glyph, func(t *testing.T) {
			g := ParseLeadingQuantity(glyph + " cup flour")
			s := ParseLeadingQuantity(frac + " cup flour")
			assert.InDelta(t, s.Amount, g.Amount, 1e-12)
			assert.Equal(t, s.Remainder, g.Remainder)

			mixed := ParseLeadingQuantity("2" + glyph + " cup flour")
			assert.InDelta(t, 2+s.Amount, mixed.Amount, 1e-12)
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		in          string
		wantAmount  float64
		wantUnit    units.Unit
		wantName    string
		wantSources []string
	}{
		{"2 cups flour", 2, units.Cup, "flour", nil},
		{"1/2 tsp. Salt", 0.5, units.Teaspoon, "salt", nil},
		{"3 large eggs", 3, units.None, "large eggs", nil},
		{"2 cup flour *(Bread, Soup)*", 2, units.Cup, "flour", []string{"Bread", "Soup"}},
		{"pinch nutmeg", 0, units.Pinch, "nutmeg", nil},
		{"Salt and Pepper *(Soup)*", 0, units.None, "salt and pepper", []string{"Soup"}},
		{"1 lb sugar *( Cake , , Pie )*", 1, units.Pound, "sugar", []string{"Cake", "Pie"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			line, ok := ParseLine(tt.in)
			require.True(t, ok)
			assert.InDelta(t, tt.wantAmount, line.Amount, 1e-9)
			assert.Equal(t, tt.wantUnit, line.Unit)
			assert.Equal(t, tt.wantName, line.Name)
			assert.Equal(t, tt.wantSources, line.Sources)
		})
	}
}

func TestParseLine_Blank(t *testing.T) {
	_, ok := ParseLine("   ")
	assert.False(t, ok)
}

func TestParseLine_OpaqueKeepsWholeText(t *testing.T) {
	line, ok := ParseLine("Fresh Basil, to garnish")
	require.True(t, ok)
	assert.True(t, line.Opaque())
	assert.Equal(t, "fresh basil, to garnish", line.Name)
	assert.Equal(t, "Fresh Basil, to garnish", line.Text)
}

func TestNormalizeName_ComposesUnicode(t *testing.T) {
	decomposed := "jalapen\u0303o"
	assert.Equal(t, "jalapeño", NormalizeName("  JALAPEÑO "))
	assert.Equal(t, NormalizeName("jalapeño"), NormalizeName(decomposed))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		unit   units.Unit
		want   string
	}{
		{0, units.None, ""},
		{0, units.Pinch, "pinch"},
		{2, units.Cup, "2 cup"},
		{0.5, units.Teaspoon, "½ tsp"},
		{1.5, units.Pound, "1½ lb"},
		{1.0 / 3, units.Cup, "⅓ cup"},
		{2.7, units.Tablespoon, "2⅔ tbsp"},
		{3, units.None, "3"},
		{1.02, units.Kilogram, "1.02 kg"},
		{0.98, units.None, "0.98"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%s", tt.amount, tt.unit), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.unit))
		})
	}
}

func TestFormatAmount_ReparsesWithinTolerance(t *testing.T) {
	for i := 0; i < 2000; i++ {
		amount := float64(i) / 100
		text := FormatAmount(amount, units.Cup) + " flour"
		line, ok := ParseLine(text)
		require.True(t, ok, text)
		assert.InDelta(t, amount, line.Amount, fractionTolerance, text)
		if amount > 0 {
			assert.Equal(t, units.Cup, line.Unit, text)
		}
	}
}
