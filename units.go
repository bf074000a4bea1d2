package main

// Unit conversion factors. The calculator core is metric-only; imperial
// requests are converted here before a bodyProfile is built. Factors match
// the canonical definitions exactly (1 lb = 0.453592 kg, 1 in = 2.54 cm)
// so imperial and metric paths agree to within rounding.
const (
	kgPerLb = 0.453592
	cmPerFt = 30.48
	cmPerIn = 2.54
)

// lbsToKG converts pounds to kilograms.
func lbsToKG(lbs float64) float64 {
	return lbs * kgPerLb
}

// kgToLbs converts kilograms to pounds.
func kgToLbs(kg float64) float64 {
	return kg / kgPerLb
}

// feetInchesToCM converts a feet + inches height to centimeters.
func feetInchesToCM(feet, inches float64) float64 {
	return feet*cmPerFt + inches*cmPerIn
}
