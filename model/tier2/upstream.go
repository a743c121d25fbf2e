package tier2

import (
	cattlelca "github.com/pasturelab/cattle-lca"
)

const (
	upstreamDieselDirect   = "diesel_direct"
	upstreamDieselIndirect = "diesel_indirect"
	upstreamElectricity    = "electricity_consumed"
	upstreamAN             = "ammonium_nitrate_fertiliser"
	upstreamUrea           = "urea_fert"
	upstreamTSP            = "triple_superphosphate"
	upstreamKCl            = "potassium_chloride"
	upstreamLime           = "lime"
)

// UpstreamFactors holds the embodied emissions of everything the farm
// buys in, per kg of input (per kWh for electricity).
type UpstreamFactors struct {
	DieselDirect         cattlelca.UpstreamProfile
	DieselIndirect       cattlelca.UpstreamProfile
	Electricity          cattlelca.UpstreamProfile
	AmmoniumNitrate      cattlelca.UpstreamProfile
	Urea                 cattlelca.UpstreamProfile
	TripleSuperphosphate cattlelca.UpstreamProfile
	PotassiumChloride    cattlelca.UpstreamProfile
	Lime                 cattlelca.UpstreamProfile
}

func ResolveUpstream(provider cattlelca.CoefficientProvider) (UpstreamFactors, error) {
	factors := UpstreamFactors{}

	var err error
	for _, factor := range []struct {
		target *cattlelca.UpstreamProfile
		name   string
	}{
		{&factors.DieselDirect, upstreamDieselDirect},
		{&factors.DieselIndirect, upstreamDieselIndirect},
		{&factors.Electricity, upstreamElectricity},
		{&factors.AmmoniumNitrate, upstreamAN},
		{&factors.Urea, upstreamUrea},
		{&factors.TripleSuperphosphate, upstreamTSP},
		{&factors.PotassiumChloride, upstreamKCl},
		{&factors.Lime, upstreamLime},
	} {
		*factor.target, err = provider.Upstream(factor.name)
		if err != nil {
			return UpstreamFactors{}, err
		}
	}

	return factors, nil
}

// DieselCO2 covers combustion and the upstream fuel chain together.
func (factors UpstreamFactors) DieselCO2(dieselKg float64) float64 {
	return dieselKg * (factors.DieselDirect.CO2e + factors.DieselIndirect.CO2e)
}

func (factors UpstreamFactors) DieselPO4(dieselKg float64) float64 {
	return dieselKg * (factors.DieselDirect.PO4e + factors.DieselIndirect.PO4e)
}

func (factors UpstreamFactors) ElectricityCO2(kwh float64) float64 {
	return kwh * factors.Electricity.CO2e
}

func (factors UpstreamFactors) ElectricityPO4(kwh float64) float64 {
	return kwh * factors.Electricity.PO4e
}

// FertiliserCO2 is the embodied CO2e of fertiliser and lime
// manufacture. Abated urea is manufactured like plain urea.
func (factors UpstreamFactors) FertiliserCO2(inputs cattlelca.FarmInputs) float64 {
	return inputs.NFertiliser*factors.AmmoniumNitrate.CO2e +
		inputs.Urea*factors.Urea.CO2e +
		inputs.UreaAbated*factors.Urea.CO2e +
		inputs.PFertiliser*factors.TripleSuperphosphate.CO2e +
		inputs.KFertiliser*factors.PotassiumChloride.CO2e +
		inputs.Lime*factors.Lime.CO2e
}

func (factors UpstreamFactors) FertiliserPO4(inputs cattlelca.FarmInputs) float64 {
	return inputs.NFertiliser*factors.AmmoniumNitrate.PO4e +
		inputs.Urea*factors.Urea.PO4e +
		inputs.UreaAbated*factors.Urea.PO4e +
		inputs.PFertiliser*factors.TripleSuperphosphate.PO4e +
		inputs.KFertiliser*factors.PotassiumChloride.PO4e +
		inputs.Lime*factors.Lime.PO4e
}
