package units

import (
	"errors"
	"strings"
)

// ErrUnknownUnit indicates a unit name Parse does not recognize.
var ErrUnknownUnit = errors.New("units: unknown unit")

// Unit identifies a supported display length unit.
type Unit int

const (
	// Millimeter is the engine's base unit; conversion is the identity.
	Millimeter Unit = iota
	// Centimeter displays lengths in centimeters.
	Centimeter
	// Meter displays lengths in meters.
	Meter
	// Inch displays lengths in imperial inches (25.4 mm exactly).
	Inch
)

// factor is the number of base-unit millimeters per one display unit.
var factor = map[Unit]float64{
	Millimeter: 1,
	Centimeter: 10,
	Meter:      1000,
	Inch:       25.4,
}

// String returns the conventional abbreviation of u.
func (u Unit) String() string {
	switch u {
	case Millimeter:
		return "mm"
	case Centimeter:
		return "cm"
	case Meter:
		return "m"
	case Inch:
		return "in"
	default:
		return "unknown"
	}
}

// Parse resolves a unit abbreviation (case-insensitive) to a Unit.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters":
		return Millimeter, nil
	case "cm", "centimeter", "centimeters":
		return Centimeter, nil
	case "m", "meter", "meters":
		return Meter, nil
	case "in", "inch", "inches", `"`:
		return Inch, nil
	default:
		return Millimeter, ErrUnknownUnit
	}
}

// ToBase converts a display-unit value to base units (millimeters).
func (u Unit) ToBase(v float64) float64 { return v * factor[u] }

// FromBase converts a base-unit value to display units.
func (u Unit) FromBase(v float64) float64 { return v / factor[u] }

// Converter is the function pair the engine carries across the boundary —
// callers with custom units supply their own pair instead of a Unit.
type Converter struct {
	// ToBase maps a display-unit value to the base unit.
	ToBase func(float64) float64
	// ToDisplay maps a base-unit value to the display unit.
	ToDisplay func(float64) float64
}

// Converter returns the conversion pair for u.
func (u Unit) Converter() Converter {
	return Converter{ToBase: u.ToBase, ToDisplay: u.FromBase}
}

// Identity returns a converter whose display unit is the base unit.
func Identity() Converter {
	id := func(v float64) float64 { return v }
	return Converter{ToBase: id, ToDisplay: id}
}
