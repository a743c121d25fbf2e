package cattlelca

// ForageProfile is the nutritional profile of a grass or forage type.
type ForageProfile struct {
	// DryMatterDigestibility in percent (0-100].
	DryMatterDigestibility float64
	// CrudeProtein content in percent of dry matter.
	CrudeProtein float64
	// GrossEnergy in MJ per kg of dry matter.
	GrossEnergy float64
}

// ConcentrateProfile is the nutritional and embodied-emission profile of a
// concentrate feed type.
type ConcentrateProfile struct {
	DryMatterDigestibility float64 // percent
	DigestibleEnergy       float64 // percent of gross energy
	CrudeProtein           float64 // percent of dry matter
	GrossEnergy            float64 // MJ per kg of dry matter
	CO2e                   float64 // production emissions, kg CO2e per kg
	PO4e                   float64 // production emissions, kg PO4e per kg
}

// UpstreamProfile holds the embodied emissions of one functional unit of a
// purchased input (a kg of diesel or fertiliser, a kWh of electricity).
type UpstreamProfile struct {
	CO2e float64
	PO4e float64
}

// CoefficientProvider supplies every country-scoped factor the engine
// consumes. Implementations are scoped to a single country at construction
// and must return a *LookupError for any key they do not carry: the engine
// treats a missing factor as fatal for the whole assessment.
type CoefficientProvider interface {
	Country() string

	// EmissionFactor resolves a scalar factor from the ef_* namespace
	// (net-energy coefficients, methane conversion, excretion and
	// fertiliser emission factors).
	EmissionFactor(name string) (float64, error)

	// AnimalFeature resolves a herd nutrition feature (mature weights,
	// per-cohort daily weight gain and nitrogen retention).
	AnimalFeature(name string) (float64, error)

	Forage(name string) (ForageProfile, error)
	Concentrate(name string) (ConcentrateProfile, error)
	Upstream(name string) (UpstreamProfile, error)
}
