package domain

// Measurement units the converter understands. Stock items and recipe
// ingredients are free to use any unit string (pcs, slices, cloves, ...);
// only the mass and volume pairs below are convertible.
const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitMilliliter = "ml"
	UnitLiter      = "L"
)

// conversionFactors maps a (from, to) unit pair to its multiplier.
// Deliberately limited to g/kg and ml/L: other cross-unit pairs (cloves vs
// pcs and the like) are treated as hard mismatches even when a human could
// guess a conversion.
var conversionFactors = map[[2]string]float64{
	{UnitGram, UnitKilogram}:    0.001,
	{UnitKilogram, UnitGram}:    1000,
	{UnitMilliliter, UnitLiter}: 0.001,
	{UnitLiter, UnitMilliliter}: 1000,
}

// Convert normalizes a quantity from one unit into another. Same-unit
// conversion is the identity. Unsupported pairs return ErrIncompatibleUnits,
// which callers must branch on rather than treat as fatal.
func Convert(quantity float64, fromUnit, toUnit string) (float64, error) {
	if fromUnit == toUnit {
		return quantity, nil
	}
	factor, ok := conversionFactors[[2]string{fromUnit, toUnit}]
	if !ok {
		return 0, ErrIncompatibleUnits
	}
	return quantity * factor, nil
}

// Convertible reports whether two units can be compared at all.
func Convertible(fromUnit, toUnit string) bool {
	if fromUnit == toUnit {
		return true
	}
	_, ok := conversionFactors[[2]string{fromUnit, toUnit}]
	return ok
}
