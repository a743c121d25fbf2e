package tier2

import (
	cattlelca "github.com/pasturelab/cattle-lca"
)

// Constants shared by the four excretion stages.
const (
	// tanFraction is the share of excreted nitrogen present as total
	// ammoniacal nitrogen.
	tanFraction = 0.6

	// proteinToNitrogen converts crude protein to nitrogen. Crude
	// protein averages 16% nitrogen, hence the factor 100/16.
	proteinToNitrogen = 6.25

	// dietaryGEPerKgDM is the dietary gross energy per kg of dry
	// matter, MJ/kg.
	dietaryGEPerKgDM = 18.45

	urinaryEnergyFraction = 0.04
	manureAshFraction     = 0.08

	// pastureNRetention replaces the cohort retention fraction for
	// nitrogen ingested as grazed grass.
	pastureNRetention = 0.02

	// methaneProductionPotential (Bo, m3 CH4 per kg volatile solids)
	// and methaneDensity (kg/m3) convert volatile solids to methane
	// mass. pastureMCF is the methane conversion factor of excreta
	// deposited on pasture.
	methaneProductionPotential = 0.1
	methaneDensity             = 0.67
	pastureMCF                 = 0.02

	// leachedNexFraction is the share of excreted or landspread
	// nitrogen lost to leaching and runoff.
	leachedNexFraction = 0.1

	// nexPhosphorusRatio converts excreted nitrogen to excreted
	// phosphorus, and phosphorusLeachFraction the share of that
	// phosphorus reaching water.
	nexPhosphorusRatio      = 1.8 / 5
	phosphorusLeachFraction = 0.03
)

// GrazingOutputs collects the per-animal annual flows deposited on
// pasture. VolatileSolids is kg/day, everything else kg/year.
type GrazingOutputs struct {
	VolatileSolids  float64
	NetExcretion    float64 // nitrogen
	Methane         float64
	Ammonia         float64
	NitrogenLeach   float64
	PhosphorusLeach float64
	DirectN2O       float64
	IndirectN2O     float64
}

// AssessGrazing resolves the pasture deposition stage. Both the grass
// and the concentrate fraction of excreta scale with the share of the
// day spent outdoors.
func AssessGrazing(animal cattlelca.AnimalCohort, intake EnergyIntake, coefs CohortCoefficients, diet Diet) GrazingOutputs {
	outdoors := animal.HoursOutdoors / 24

	out := GrazingOutputs{}

	grassVS := (intake.GrassGE*(1-diet.Forage.DryMatterDigestibility/100) + urinaryEnergyFraction*intake.GrassGE) *
		((1 - manureAshFraction) / dietaryGEPerKgDM)
	concentrateVS := (intake.ConcentrateGE*(1-diet.Concentrate.DigestibleEnergy/100) + urinaryEnergyFraction*intake.ConcentrateGE) *
		((1 - manureAshFraction) / dietaryGEPerKgDM)
	out.VolatileSolids = (grassVS + concentrateVS) * outdoors

	concentrateN := (intake.ConcentrateGE * daysPerYear / dietaryGEPerKgDM) *
		(diet.Concentrate.CrudeProtein / 100 / proteinToNitrogen) * (1 - coefs.NRetention)
	grassN := (intake.GrassGE * daysPerYear / dietaryGEPerKgDM) *
		(diet.Forage.CrudeProtein / 100 / proteinToNitrogen) * (1 - pastureNRetention)
	out.NetExcretion = (concentrateN + grassN) * outdoors

	out.Methane = out.VolatileSolids * daysPerYear * methaneProductionPotential * methaneDensity * pastureMCF
	out.Ammonia = out.NetExcretion * tanFraction * coefs.FracGASM
	out.NitrogenLeach = out.NetExcretion * leachedNexFraction
	out.PhosphorusLeach = out.NetExcretion * nexPhosphorusRatio * phosphorusLeachFraction
	out.DirectN2O = out.NetExcretion * coefs.DirectN2OPasture
	out.IndirectN2O = out.Ammonia*coefs.AtmosphericDeposition + out.NitrogenLeach*coefs.LeachRunoff

	return out
}
