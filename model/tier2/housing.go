package tier2

import (
	cattlelca "github.com/pasturelab/cattle-lca"
)

// HousingOutputs collects the per-animal annual flows excreted indoors.
// VolatileSolids is kg/day, everything else kg/year. What is not lost as
// ammonia here feeds the storage stage.
type HousingOutputs struct {
	VolatileSolids float64
	NetExcretion   float64 // nitrogen
	TAN            float64
	Ammonia        float64
	IndirectN2O    float64
}

// AssessHousing resolves the housing stage. Excretion scales with the
// share of the day spent indoors or stabled, and ammonia volatilizes at
// the housing rate of the manure system the farm runs.
func AssessHousing(animal cattlelca.AnimalCohort, intake EnergyIntake, coefs CohortCoefficients, diet Diet, storage StorageCoefficients) HousingOutputs {
	indoors := (animal.HoursIndoors + animal.HoursStabled) / 24

	out := HousingOutputs{}

	concentrateVS := (intake.ConcentrateGE*(1-diet.Concentrate.DigestibleEnergy/100) + urinaryEnergyFraction*intake.ConcentrateGE) *
		((1 - manureAshFraction) / dietaryGEPerKgDM)
	grassVS := (intake.GrassGE*(1-diet.Forage.DryMatterDigestibility/100) + urinaryEnergyFraction*intake.GrassGE) *
		((1 - manureAshFraction) / dietaryGEPerKgDM)
	out.VolatileSolids = (concentrateVS + grassVS) * indoors

	concentrateN := (intake.ConcentrateGE * daysPerYear / dietaryGEPerKgDM) *
		(diet.Concentrate.CrudeProtein / 100 / proteinToNitrogen) * (1 - coefs.NRetention)
	grassN := (intake.GrassGE * daysPerYear / dietaryGEPerKgDM) *
		(diet.Forage.CrudeProtein / 100 / proteinToNitrogen) * (1 - pastureNRetention)
	out.NetExcretion = (concentrateN + grassN) * indoors

	out.TAN = out.NetExcretion * tanFraction
	out.Ammonia = out.TAN * storage.HousingTAN
	out.IndirectN2O = out.Ammonia * coefs.AtmosphericDeposition

	return out
}
