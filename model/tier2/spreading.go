package tier2

// SpreadingOutputs collects the per-animal annual flows from landspread
// manure, all kg/year. NetExcretion is the stored nitrogen left after
// the storage stage losses.
type SpreadingOutputs struct {
	NetExcretion    float64 // nitrogen
	TAN             float64
	DirectN2O       float64
	Ammonia         float64
	NitrogenLeach   float64
	PhosphorusLeach float64
	IndirectN2O     float64
}

// AssessSpreading resolves the landspreading stage from the storage
// outputs and the ammonia factor of the spreading method in use.
func AssessSpreading(stored StorageOutputs, coefs CohortCoefficients, spreadingNH3 float64) SpreadingOutputs {
	out := SpreadingOutputs{}

	out.NetExcretion = stored.NetExcretion - stored.DirectN2O - stored.Ammonia - stored.IndirectN2O
	out.TAN = out.NetExcretion * tanFraction
	out.DirectN2O = out.NetExcretion * coefs.DirectN2OSoils
	out.Ammonia = out.TAN * spreadingNH3
	out.NitrogenLeach = out.NetExcretion * leachedNexFraction
	out.PhosphorusLeach = out.NetExcretion * nexPhosphorusRatio * phosphorusLeachFraction
	out.IndirectN2O = out.Ammonia*coefs.AtmosphericDeposition + out.NitrogenLeach*coefs.LeachRunoff

	return out
}
