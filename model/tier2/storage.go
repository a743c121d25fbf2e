package tier2

// StorageOutputs collects the per-animal annual flows from stored
// manure, all kg/year. NetExcretion is what housing excreted minus what
// already volatilized there.
type StorageOutputs struct {
	NetExcretion float64 // nitrogen
	TAN          float64
	Methane      float64
	DirectN2O    float64
	Ammonia      float64
	IndirectN2O  float64
}

// AssessStorage resolves the manure storage stage from the housing
// outputs and the factors of the storage system in use.
func AssessStorage(housed HousingOutputs, coefs CohortCoefficients, storage StorageCoefficients) StorageOutputs {
	out := StorageOutputs{}

	out.NetExcretion = housed.NetExcretion - housed.Ammonia
	out.TAN = out.NetExcretion * tanFraction
	out.Methane = housed.VolatileSolids * daysPerYear *
		methaneProductionPotential * methaneDensity * storage.MCF
	out.DirectN2O = out.NetExcretion * storage.DirectN2O
	out.Ammonia = out.TAN * storage.StorageTAN
	out.IndirectN2O = out.Ammonia * coefs.AtmosphericDeposition

	return out
}
