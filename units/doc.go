// Package units is the conversion boundary between the engine's base length
// unit and the user-selected display unit.
//
// All geometric math inside the engine runs in the base unit (millimeters);
// formulas and displayed edge values operate in the display unit the user
// picked. Conversion happens only at the two boundaries: when an evaluated
// formula result becomes a geometric length, and when a measured length
// becomes a displayed value.
//
// Round-trip guarantee: FromBase(ToBase(x)) == x within floating tolerance
// for every supported unit.
package units
