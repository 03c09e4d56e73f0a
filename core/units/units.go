// Package units holds the static ingredient unit table: surface spellings
// mapped to canonical units, and canonical units mapped to a convertible
// family with a factor to that family's base unit.
package units

import "strings"

// Unit is a canonical unit identifier. The empty Unit means "no unit".
type Unit string

// Canonical units.
const (
	None       Unit = ""
	Teaspoon   Unit = "tsp"
	Tablespoon Unit = "tbsp"
	Cup        Unit = "cup"
	Milliliter Unit = "ml"
	Liter      Unit = "l"
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Ounce      Unit = "oz"
	Pound      Unit = "lb"
	Clove      Unit = "clove"
	Slice      Unit = "slice"
	Piece      Unit = "piece"
	Can        Unit = "can"
	Package    Unit = "package"
	Bunch      Unit = "bunch"
	Pinch      Unit = "pinch"
	Sprig      Unit = "sprig"
	Head       Unit = "head"
	Handful    Unit = "handful"
	Stalk      Unit = "stalk"
)

// Family groups units that convert linearly into one another.
type Family int

const (
	// NoFamily marks count-style units; they only combine with themselves.
	NoFamily Family = iota
	// Volume has the teaspoon as base unit.
	Volume
	// Weight has the gram as base unit.
	Weight
)

func (f Family) String() string {
	switch f {
	case Volume:
		return "volume"
	case Weight:
		return "weight"
	default:
		return "none"
	}
}

// Entry is the conversion metadata attached to a canonical unit.
type Entry struct {
	Family Family
	// Factor converts one of this unit into the family base unit.
	Factor float64
}

var entries = map[Unit]Entry{
	Teaspoon:   {Volume, 1},
	Tablespoon: {Volume, 3},
	Cup:        {Volume, 48},
	Milliliter: {Volume, 0.2029},
	Liter:      {Volume, 202.9},
	Gram:       {Weight, 1},
	Kilogram:   {Weight, 1000},
	Ounce:      {Weight, 28.35},
	Pound:      {Weight, 453.6},
}

var aliases = map[string]Unit{
	"tsp": Teaspoon, "t": Teaspoon, "teaspoon": Teaspoon, "teaspoons": Teaspoon,
	"tbsp": Tablespoon, "tbl": Tablespoon, "tablespoon": Tablespoon, "tablespoons": Tablespoon,
	"cup": Cup, "cups": Cup, "c": Cup,
	"oz": Ounce, "ounce": Ounce, "ounces": Ounce,
	"lb": Pound, "lbs": Pound, "pound": Pound, "pounds": Pound,
	"g": Gram, "gram": Gram, "grams": Gram,
	"kg": Kilogram, "kilogram": Kilogram, "kilograms": Kilogram,
	"ml": Milliliter, "milliliter": Milliliter, "milliliters": Milliliter,
	"millilitre": Milliliter, "millilitres": Milliliter,
	"l": Liter, "liter": Liter, "liters": Liter, "litre": Liter, "litres": Liter,
	"clove": Clove, "cloves": Clove,
	"slice": Slice, "slices": Slice,
	"piece": Piece, "pieces": Piece,
	"can": Can, "cans": Can,
	"package": Package, "pkg": Package, "packages": Package,
	"bunch": Bunch, "bunches": Bunch,
	"pinch": Pinch, "pinches": Pinch,
	"sprig": Sprig, "sprigs": Sprig,
	"head": Head, "heads": Head,
	"handful": Handful,
	"stalk": Stalk, "stalks": Stalk,
}

// Normalize maps a raw unit token to its canonical unit. Trailing periods
// are dropped and matching is case-insensitive. Unknown tokens return None,
// meaning the token is part of the ingredient name.
func Normalize(raw string) Unit {
	u := strings.ToLower(strings.TrimRight(raw, "."))
	return aliases[u]
}

// FamilyOf returns the convertible family of u; ok is false for count-style
// and unknown units.
func FamilyOf(u Unit) (Family, bool) {
	e, ok := entries[u]
	return e.Family, ok
}

// BaseFactor returns the factor converting one u into its family base unit.
func BaseFactor(u Unit) (float64, bool) {
	e, ok := entries[u]
	return e.Factor, ok
}

// ToBase converts amount of u into its family base unit.
func ToBase(amount float64, u Unit) (float64, Family, bool) {
	e, ok := entries[u]
	if !ok {
		return 0, NoFamily, false
	}
	return amount * e.Factor, e.Family, true
}

// FromBase converts a base amount back into the most readable unit of the
// family: the largest unit whose factor the amount reaches.
func FromBase(base float64, family Family) (float64, Unit) {
	switch family {
	case Volume:
		switch {
		case base >= entries[Cup].Factor:
			return base / entries[Cup].Factor, Cup
		case base >= entries[Tablespoon].Factor:
			return base / entries[Tablespoon].Factor, Tablespoon
		default:
			return base, Teaspoon
		}
	case Weight:
		switch {
		case base >= entries[Kilogram].Factor:
			return base / entries[Kilogram].Factor, Kilogram
		case base >= entries[Pound].Factor:
			return base / entries[Pound].Factor, Pound
		case base >= entries[Ounce].Factor:
			return base / entries[Ounce].Factor, Ounce
		default:
			return base, Gram
		}
	}
	return base, None
}

// Compatible reports whether amounts in a and b can be summed, either
// directly (same unit) or through a shared family.
func Compatible(a, b Unit) bool {
	if a == b {
		return true
	}
	fa, okA := FamilyOf(a)
	fb, okB := FamilyOf(b)
	return okA && okB && fa == fb
}
