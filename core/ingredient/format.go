package ingredient

import (
	"math"
	"strconv"

	"github.com/gaurav-prasanna/recipegrab/core/units"
)

// fractionTolerance is how far a fractional part may sit from a known
// fraction and still be shown as its glyph.
const fractionTolerance = 0.09

var displayFractions = []struct {
	value float64
	glyph string
}{
	{1.0 / 8, "⅛"},
	{1.0 / 4, "¼"},
	{1.0 / 3, "⅓"},
	{3.0 / 8, "⅜"},
	{1.0 / 2, "½"},
	{5.0 / 8, "⅝"},
	{2.0 / 3, "⅔"},
	{3.0 / 4, "¾"},
	{7.0 / 8, "⅞"},
}

// FormatAmount renders amount and unit for display, e.g. 1.5 cup → "1½ cup".
// A zero amount renders as the unit alone ("quantity unknown"). Amounts
// whose fractional part is not near a common fraction fall back to a
// decimal rounded to hundredths.
func FormatAmount(amount float64, unit units.Unit) string {
	if amount == 0 {
		return string(unit)
	}

	num := formatNumber(amount)
	if unit == units.None {
		return num
	}
	return num + " " + string(unit)
}

func formatNumber(amount float64) string {
	whole := math.Floor(amount)
	frac := amount - whole

	glyph := ""
	closest := math.Inf(1)
	for _, f := range displayFractions {
		if d := math.Abs(frac - f.value); d < closest {
			closest = d
			glyph = f.glyph
		}
	}
	if closest > fractionTolerance {
		glyph = ""
	}

	switch {
	case glyph != "" && whole > 0:
		return strconv.FormatFloat(whole, 'f', -1, 64) + glyph
	case glyph != "":
		return glyph
	default:
		return strconv.FormatFloat(math.Round(amount*100)/100, 'f', -1, 64)
	}
}
