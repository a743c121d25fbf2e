package tier2

// methaneEnergyMJPerKg is the energy density of methane.
const methaneEnergyMJPerKg = 55.65

const daysPerYear = 365

// DryMatterFromGrass backs grass dry matter intake (kg/day) out of the
// energy budget. Average ration digestibility is the concentrate/grass
// blend weighted by the concentrate share of digestible demand.
func DryMatterFromGrass(intake EnergyIntake, diet Diet) float64 {
	shareConcentrate := 0.0
	if intake.DigestibleEnergy > 0 {
		shareConcentrate = intake.ConcentrateGE / intake.DigestibleEnergy
	}

	digestibility := shareConcentrate*diet.Concentrate.DryMatterDigestibility +
		(1-shareConcentrate)*diet.Forage.DryMatterDigestibility

	return (intake.DigestibleEnergy/(digestibility/100) - intake.ConcentrateGE) / diet.Forage.GrossEnergy
}

// DryMatterFromConcentrateShare estimates concentrate dry matter intake
// (kg/day) when the ration is specified as a percentage of the diet
// rather than a fed amount.
func DryMatterFromConcentrateShare(intake EnergyIntake, diet Diet, sharePct float64) float64 {
	digestibility := sharePct/100*diet.Concentrate.DryMatterDigestibility +
		(100-sharePct)/100*diet.Forage.DryMatterDigestibility
	grossEnergy := sharePct/100*diet.Concentrate.GrossEnergy +
		(100-sharePct)/100*diet.Forage.GrossEnergy

	return intake.DigestibleEnergy / (digestibility / 100) / grossEnergy * (sharePct / 100)
}

// EntericMethane converts one year of gross energy intake into enteric
// fermentation methane (kg CH4/animal/year) through the cohort methane
// conversion factor Ym. IPCC 2019 Refinement, Vol. 4, Ch. 10,
// equation 10.21.
func EntericMethane(intake EnergyIntake, methaneConversion float64) float64 {
	annualGE := (intake.ConcentrateGE + intake.GrassGE) * daysPerYear
	return annualGE * (methaneConversion / methaneEnergyMJPerKg)
}
