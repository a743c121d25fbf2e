package tier2

import (
	"fmt"
	"math"

	cattlelca "github.com/pasturelab/cattle-lca"
)

const (
	milkDensity = 1.033 // kg per litre
	milkFatPct  = 3.5   // percent
)

// ratioNetEnergyMaintenance is the fraction of digestible energy
// available for maintenance at a given feed digestibility.
// IPCC 2019 Refinement, Vol. 4, Ch. 10, equation 10.14.
func ratioNetEnergyMaintenance(digestibility float64) float64 {
	return 1.123 - 4.092e-3*digestibility + 1.126e-5*digestibility*digestibility - 25.4/digestibility
}

// ratioNetEnergyGrowth is the fraction of digestible energy available
// for growth. IPCC 2019 Refinement, Vol. 4, Ch. 10, equation 10.15.
func ratioNetEnergyGrowth(digestibility float64) float64 {
	return 1.164 - 5.160e-3*digestibility + 1.308e-5*digestibility*digestibility - 37.4/digestibility
}

// Diet pairs the forage and concentrate nutrition profiles an animal is
// fed. The concentrate profile stays zero valued when the ration carries
// no concentrate.
type Diet struct {
	Forage      cattlelca.ForageProfile
	Concentrate cattlelca.ConcentrateProfile
}

func resolveDiet(provider cattlelca.CoefficientProvider, animal cattlelca.AnimalCohort) (Diet, error) {
	forage, err := provider.Forage(animal.Forage)
	if err != nil {
		return Diet{}, err
	}
	if forage.DryMatterDigestibility <= 0 || forage.DryMatterDigestibility > 100 {
		return Diet{}, &cattlelca.InvalidCoefficientError{
			Name: fmt.Sprintf("%s dry matter digestibility", animal.Forage), Value: forage.DryMatterDigestibility,
			Reason: "digestibility is a percentage and the energy budget divides by it",
		}
	}
	if forage.GrossEnergy <= 0 {
		return Diet{}, &cattlelca.InvalidCoefficientError{
			Name: fmt.Sprintf("%s gross energy", animal.Forage), Value: forage.GrossEnergy,
			Reason: "dry matter intake divides by it",
		}
	}

	diet := Diet{Forage: forage}
	if animal.ConcentrateAmount <= 0 {
		return diet, nil
	}

	concentrate, err := provider.Concentrate(animal.Concentrate)
	if err != nil {
		return Diet{}, err
	}
	if concentrate.DryMatterDigestibility <= 0 {
		return Diet{}, &cattlelca.InvalidCoefficientError{
			Name: fmt.Sprintf("%s dry matter digestibility", animal.Concentrate), Value: concentrate.DryMatterDigestibility,
			Reason: "a fed concentrate must digest",
		}
	}
	if concentrate.GrossEnergy <= 0 {
		return Diet{}, &cattlelca.InvalidCoefficientError{
			Name: fmt.Sprintf("%s gross energy", animal.Concentrate), Value: concentrate.GrossEnergy,
			Reason: "dry matter intake divides by it",
		}
	}
	diet.Concentrate = concentrate

	return diet, nil
}

// EnergyIntake is the daily energy budget of one animal, in MJ/day.
// Net energy demands are converted to gross energy through the REM and
// REG ratios, then split between concentrate and grazed grass. GrassGE
// is defined as TotalGE minus ConcentrateGE so the three gross energy
// terms always balance.
type EnergyIntake struct {
	REM float64
	REG float64

	Maintenance float64 // NEm
	Activity    float64 // NEa
	WeightGain  float64 // NEg
	Lactation   float64 // NEl
	Pregnancy   float64 // NEp

	DigestibleEnergy float64 // total demand in digestible terms
	ConcentrateGE    float64
	GrassGE          float64
	TotalGE          float64
}

// ComputeEnergyIntake resolves the IPCC Tier 2 energy cascade for one
// animal. IPCC 2019 Refinement, Vol. 4, Ch. 10, equations 10.3 to 10.16.
func ComputeEnergyIntake(animal cattlelca.AnimalCohort, coefs CohortCoefficients, diet Diet, feedingSituation float64) EnergyIntake {
	intake := EnergyIntake{
		REM: ratioNetEnergyMaintenance(diet.Forage.DryMatterDigestibility),
		REG: ratioNetEnergyGrowth(diet.Forage.DryMatterDigestibility),
	}

	intake.Maintenance = coefs.MaintenanceCfi * math.Pow(animal.Weight, 0.75)
	intake.Activity = feedingSituation * intake.Maintenance
	intake.WeightGain = 22.02 *
		math.Pow(animal.Weight/(coefs.GrowthScale*coefs.MatureWeight), 0.75) *
		math.Pow(coefs.WeightGain, 1.097)
	intake.Lactation = animal.DailyMilk * milkDensity * (1.47 + 0.40*milkFatPct)
	intake.Pregnancy = coefs.Pregnancy * intake.Maintenance

	intake.ConcentrateGE = (animal.ConcentrateAmount * diet.Concentrate.DryMatterDigestibility / 100) * diet.Concentrate.GrossEnergy

	intake.DigestibleEnergy = (intake.Maintenance+intake.Activity+intake.Lactation+intake.Pregnancy)/intake.REM +
		intake.WeightGain/intake.REG
	intake.TotalGE = intake.DigestibleEnergy / (diet.Forage.DryMatterDigestibility / 100)
	intake.GrassGE = intake.TotalGE - intake.ConcentrateGE

	return intake
}
