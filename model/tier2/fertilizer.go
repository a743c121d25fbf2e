package tier2

import (
	cattlelca "github.com/pasturelab/cattle-lca"
)

const (
	efUreaN2O     = "ef_urea"
	efUreaNBPTN2O = "ef_urea_and_nbpt"
	efUreaNH3     = "ef_fracGASF_urea_fertilisers_to_nh3_and_nox"
	efUreaNBPTNH3 = "ef_fracGASF_urea_and_nbpt_to_nh3_and_nox"
	efFracLeach   = "ef_frac_leach_runoff"
	efANN2O       = "ef_ammonium_nitrate"
	efANNH3       = "ef_fracGASF_ammonium_fertilisers_to_nh3_and_nox"
	efFracPLeach  = "ef_frac_p_leach"
	efUreaCO2     = "ef_urea_co2"
	efLimeCO2     = "ef_lime_co2"
)

// carbonToCO2 converts a mass of carbon to CO2, molecular weight 44
// over atomic weight 12.
const carbonToCO2 = 44.0 / 12.0

// FertiliserCoefficients holds the factors applied to synthetic
// fertiliser and lime once per farm.
type FertiliserCoefficients struct {
	UreaN2O         float64 // direct N2O per kg urea N
	UreaNBPTN2O     float64 // direct N2O per kg NBPT treated urea N
	UreaNH3Frac     float64
	UreaNBPTNH3Frac float64
	ANN2O           float64 // direct N2O per kg ammonium nitrate N
	ANNH3Frac       float64
	LeachFrac       float64
	PLeachFrac      float64
	UreaCO2         float64 // kg C per kg urea
	LimeCO2         float64 // kg C per kg lime

	AtmosphericDeposition float64
	LeachRunoff           float64
}

func ResolveFertiliser(provider cattlelca.CoefficientProvider) (FertiliserCoefficients, error) {
	coefs := FertiliserCoefficients{}

	var err error
	for _, factor := range []struct {
		target *float64
		name   string
	}{
		{&coefs.UreaN2O, efUreaN2O},
		{&coefs.UreaNBPTN2O, efUreaNBPTN2O},
		{&coefs.UreaNH3Frac, efUreaNH3},
		{&coefs.UreaNBPTNH3Frac, efUreaNBPTNH3},
		{&coefs.ANN2O, efANN2O},
		{&coefs.ANNH3Frac, efANNH3},
		{&coefs.LeachFrac, efFracLeach},
		{&coefs.PLeachFrac, efFracPLeach},
		{&coefs.UreaCO2, efUreaCO2},
		{&coefs.LimeCO2, efLimeCO2},
		{&coefs.AtmosphericDeposition, efIndirectN2OAtmos},
		{&coefs.LeachRunoff, efIndirectN2OLeach},
	} {
		*factor.target, err = provider.EmissionFactor(factor.name)
		if err != nil {
			return FertiliserCoefficients{}, err
		}
	}

	return coefs, nil
}

// FertiliserOutputs collects the farm-level annual flows from synthetic
// fertiliser and lime application, all kg/year.
type FertiliserOutputs struct {
	UreaDirectN2O   float64
	UreaNH3         float64
	UreaNLeach      float64
	UreaIndirectN2O float64
	UreaCO2         float64
	UreaPLeach      float64

	ANDirectN2O   float64
	ANNH3         float64
	ANNLeach      float64
	ANIndirectN2O float64
	ANPLeach      float64

	PFertPLeach float64
	LimeCO2     float64
}

// AssessFertiliser resolves the field emissions of the synthetic
// inputs. Urea splits into an untreated and an NBPT treated share with
// their own direct and volatilization factors. Urea and lime also
// release their carbon as CO2, reported with the national inventory
// 44/12 conversion.
func AssessFertiliser(inputs cattlelca.FarmInputs, coefs FertiliserCoefficients) FertiliserOutputs {
	out := FertiliserOutputs{}

	out.UreaDirectN2O = inputs.Urea*coefs.UreaN2O + inputs.UreaAbated*coefs.UreaNBPTN2O
	out.UreaNH3 = inputs.Urea*coefs.UreaNH3Frac + inputs.UreaAbated*coefs.UreaNBPTNH3Frac
	out.UreaNLeach = (inputs.Urea + inputs.UreaAbated) * coefs.LeachFrac
	out.UreaIndirectN2O = out.UreaNH3*coefs.AtmosphericDeposition + out.UreaNLeach*coefs.LeachRunoff
	out.UreaCO2 = inputs.Urea * coefs.UreaCO2 * carbonToCO2
	out.UreaPLeach = (inputs.Urea + inputs.UreaAbated) * coefs.PLeachFrac

	out.ANDirectN2O = inputs.NFertiliser * coefs.ANN2O
	out.ANNH3 = inputs.NFertiliser * coefs.ANNH3Frac
	out.ANNLeach = inputs.NFertiliser * coefs.LeachFrac
	out.ANIndirectN2O = out.ANNH3*coefs.AtmosphericDeposition + out.ANNLeach*coefs.LeachRunoff
	out.ANPLeach = inputs.NFertiliser * coefs.PLeachFrac

	out.PFertPLeach = inputs.PFertiliser * coefs.PLeachFrac
	out.LimeCO2 = inputs.Lime * coefs.LimeCO2 * carbonToCO2

	return out
}

// TotalN2ON is the combined direct and indirect fertiliser N2O, still
// expressed as nitrogen.
func (out FertiliserOutputs) TotalN2ON() float64 {
	return out.UreaDirectN2O + out.UreaIndirectN2O + out.ANDirectN2O + out.ANIndirectN2O
}
