package tier2

import (
	cattlelca "github.com/pasturelab/cattle-lca"
)

// Energy equivalents used to split farm emissions between the milk and
// the meat leaving the gate.
const (
	liveWeightEnergyMJe = 12.36 // MJe per kg live weight
	milkEnergyMJe       = 2.5   // MJe per kg milk
)

// LiveWeightOutput is the live weight sold off farm in a year, kg.
// Sales are recorded per cohort as head count at the cohort weight.
// Summation runs in canonical cohort order so repeated assessments stay
// bit identical.
func LiveWeightOutput(herd cattlelca.Herd) float64 {
	total := 0.0
	for _, kind := range cattlelca.Kinds() {
		animal := herd[kind]
		total += animal.Weight * animal.Sold
	}
	return total
}

// LiveWeightBought is the live weight brought onto the farm in a year, kg.
func LiveWeightBought(herd cattlelca.Herd) float64 {
	total := 0.0
	for _, kind := range cattlelca.Kinds() {
		animal := herd[kind]
		total += animal.Weight * animal.Bought
	}
	return total
}

// MilkOutput is the annual milk production of the dairy herd in kg.
// Daily yields are recorded in litres and milk weighs 1.033 kg/l.
func MilkOutput(herd cattlelca.Herd) float64 {
	dairy := herd[cattlelca.DairyCows]
	return dairy.DailyMilk * dairy.Population * daysPerYear * milkDensity
}

// AllocateOutputs derives the milk and meat allocation factors from the
// energy content of what the farm sells. A herd selling neither milk
// nor live weight has nothing to allocate emissions to and returns
// ErrNoOutput.
func AllocateOutputs(herd cattlelca.Herd) (cattlelca.Allocation, error) {
	allocation := cattlelca.Allocation{
		MilkKg:             MilkOutput(herd),
		LiveWeightKg:       LiveWeightOutput(herd),
		LiveWeightBoughtKg: LiveWeightBought(herd),
	}

	milkMJe := allocation.MilkKg * milkEnergyMJe
	liveWeightMJe := allocation.LiveWeightKg * liveWeightEnergyMJe
	if milkMJe+liveWeightMJe == 0 {
		return cattlelca.Allocation{}, cattlelca.ErrNoOutput
	}

	allocation.MilkFactor = milkMJe / (milkMJe + liveWeightMJe)
	allocation.MeatFactor = 1 - allocation.MilkFactor

	return allocation, nil
}
