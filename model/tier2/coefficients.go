package tier2

import (
	"fmt"

	cattlelca "github.com/pasturelab/cattle-lca"
)

// Emission factor names resolved through the coefficient provider.
const (
	efMaintenanceNonLactating = "ef_net_energy_for_maintenance_non_lactating_cow"
	efMaintenanceLactating    = "ef_net_energy_for_maintenance_lactating_cow"
	efMaintenanceBulls        = "ef_net_energy_for_maintenance_bulls"

	efFeedingPasture   = "ef_feeding_situation_pasture"
	efFeedingLargeArea = "ef_feeding_situation_large_area"
	efFeedingStall     = "ef_feeding_situation_stall"

	efGrowthFemales   = "ef_net_energy_for_growth_females"
	efGrowthCastrates = "ef_net_energy_for_growth_castrates"
	efGrowthBulls     = "ef_net_energy_for_growth_bulls"

	efPregnancy = "ef_net_energy_for_pregnancy"

	efMethaneDairyCow = "ef_methane_conversion_factor_dairy_cow"
	efMethaneSteer    = "ef_methane_conversion_factor_steer"
	efMethaneCalves   = "ef_methane_conversion_factor_calves"
	efMethaneBulls    = "ef_methane_conversion_factor_bulls"

	efFracGASMPasture  = "ef_fracGASM_total_ammonia_nitrogen_pasture_range_paddock_deposition"
	efDirectN2OPasture = "ef_cpp_pasture_range_paddock_for_dairy_and_non_dairy_direct_n2o"
	efDirectN2OSoils   = "ef_direct_n2o_emissions_soils"
	efIndirectN2OAtmos = "ef_indirect_n2o_atmospheric_deposition_to_soils_and_water"
	efIndirectN2OLeach = "ef_indirect_n2o_from_leaching_and_runoff"

	efTANHouseLiquid  = "ef_TAN_house_liquid"
	efTANHouseSolid   = "ef_TAN_house_solid"
	efTANStorageTank  = "ef_TAN_storage_tank"
	efTANStorageSolid = "ef_TAN_storage_solid"

	efMCFLiquidTank  = "ef_mcf_liquid_tank"
	efMCFSolid       = "ef_mcf_solid_storage"
	efMCFBiodigester = "ef_mcf_anaerobic_digestion"

	efN2OStorageTankLiquid  = "ef_n2o_direct_storage_tank_liquid"
	efN2OStorageTankSolid   = "ef_n2o_direct_storage_tank_solid"
	efN2OStorageSolid       = "ef_n2o_direct_storage_solid"
	efN2OStorageBiodigester = "ef_n2o_direct_storage_tank_anaerobic_digestion"

	efSpreadingNone         = "ef_nh3_daily_spreading_none"
	efSpreadingManure       = "ef_nh3_daily_spreading_manure"
	efSpreadingBroadcast    = "ef_nh3_daily_spreading_broadcast"
	efSpreadingInjection    = "ef_nh3_daily_spreading_injection"
	efSpreadingTrailingHose = "ef_nh3_daily_spreading_trailing_hose"

	featureMatureWeightDairy   = "mature_weight_dairy_cows"
	featureMatureWeightSuckler = "mature_weight_suckler_cows"
	featureMatureWeightBulls   = "mature_weight_bulls"
)

type maintenanceClass int

const (
	maintenanceNonLactating maintenanceClass = iota
	maintenanceLactating
	maintenanceBulls
)

type growthClass int

const (
	growthFemale growthClass = iota
	growthCastrate
	growthBull
)

type methaneClass int

const (
	methaneDairyCow methaneClass = iota
	methaneSteer
	methaneCalf
	methaneBull
)

type matureWeightRef int

const (
	// matureRefBulls applies to every male cohort.
	matureRefBulls matureWeightRef = iota
	matureRefDairy
	matureRefSuckler
	// matureRefBlend is the mean of the dairy and suckler references,
	// used for dairy x beef females.
	matureRefBlend
)

// cohortTraits fixes how shared coefficients dispatch onto each cohort.
// Suckler cows use the lactating maintenance coefficient and the dairy
// methane conversion factor, heifers keep the dairy methane factor, male
// calves grow on the castrate curve, and only the two cow herds carry a
// pregnancy term.
type cohortTraits struct {
	maintenance maintenanceClass
	growth      growthClass
	methane     methaneClass
	matureRef   matureWeightRef
	pregnant    bool
}

var traitsByKind = map[cattlelca.CohortKind]cohortTraits{
	cattlelca.DairyCows:   {maintenance: maintenanceLactating, growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefDairy, pregnant: true},
	cattlelca.SucklerCows: {maintenance: maintenanceLactating, growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefSuckler, pregnant: true},
	cattlelca.Bulls:       {maintenance: maintenanceBulls, growth: growthBull, methane: methaneBull, matureRef: matureRefBulls},

	cattlelca.DxDCalvesM: {growth: growthCastrate, methane: methaneCalf, matureRef: matureRefBulls},
	cattlelca.DxDCalvesF: {growth: growthFemale, methane: methaneCalf, matureRef: matureRefDairy},
	cattlelca.DxBCalvesM: {growth: growthCastrate, methane: methaneCalf, matureRef: matureRefBulls},
	cattlelca.DxBCalvesF: {growth: growthFemale, methane: methaneCalf, matureRef: matureRefBlend},
	cattlelca.BxBCalvesM: {growth: growthCastrate, methane: methaneCalf, matureRef: matureRefBulls},
	cattlelca.BxBCalvesF: {growth: growthFemale, methane: methaneCalf, matureRef: matureRefSuckler},

	cattlelca.DxDHeifersLess2Yr: {growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefDairy},
	cattlelca.DxBHeifersLess2Yr: {growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefBlend},
	cattlelca.BxBHeifersLess2Yr: {growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefSuckler},
	cattlelca.DxDSteersLess2Yr:  {growth: growthCastrate, methane: methaneSteer, matureRef: matureRefBulls},
	cattlelca.DxBSteersLess2Yr:  {growth: growthCastrate, methane: methaneSteer, matureRef: matureRefBulls},
	cattlelca.BxBSteersLess2Yr:  {growth: growthCastrate, methane: methaneSteer, matureRef: matureRefBulls},

	cattlelca.DxDHeifersMore2Yr: {growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefDairy},
	cattlelca.DxBHeifersMore2Yr: {growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefBlend},
	cattlelca.BxBHeifersMore2Yr: {growth: growthFemale, methane: methaneDairyCow, matureRef: matureRefSuckler},
	cattlelca.DxDSteersMore2Yr:  {growth: growthCastrate, methane: methaneSteer, matureRef: matureRefBulls},
	cattlelca.DxBSteersMore2Yr:  {growth: growthCastrate, methane: methaneSteer, matureRef: matureRefBulls},
	cattlelca.BxBSteersMore2Yr:  {growth: growthCastrate, methane: methaneSteer, matureRef: matureRefBulls},
}

// CohortCoefficients bundles every per-cohort factor used by the energy
// budget and the excretion pipeline.
type CohortCoefficients struct {
	MethaneConversion float64 // Ym, fraction of gross energy lost as enteric methane
	MaintenanceCfi    float64 // MJ/day per kg^0.75
	GrowthScale       float64
	MatureWeight      float64 // kg
	WeightGain        float64 // kg/day
	NRetention        float64 // fraction of ingested N retained
	Pregnancy         float64 // zero for cohorts that do not calve

	FracGASM              float64 // TAN volatilized from pasture deposition
	DirectN2OPasture      float64 // EF3 for pasture, range and paddock
	DirectN2OSoils        float64 // EF1 for landspread nitrogen
	AtmosphericDeposition float64 // EF4, indirect N2O from redeposited NH3
	LeachRunoff           float64 // EF5, indirect N2O from leached N
}

// StorageCoefficients bundles the per-storage-type factors. Housing and
// storage volatilize TAN at different rates, so the two tables stay
// separate.
type StorageCoefficients struct {
	HousingTAN float64
	StorageTAN float64
	MCF        float64
	DirectN2O  float64
}

// CoefficientTable resolves every coefficient an assessment needs, once,
// up front. A missing factor surfaces here rather than mid-computation.
// Entries exist only for the requested cohort kinds: empty cohorts must
// not trigger lookups.
type CoefficientTable struct {
	country   string
	cohorts   map[cattlelca.CohortKind]CohortCoefficients
	grazing   map[cattlelca.GrazingSituation]float64
	storage   map[cattlelca.StorageType]StorageCoefficients
	spreading map[cattlelca.SpreadingMethod]float64
}

func NewCoefficientTable(provider cattlelca.CoefficientProvider, kinds []cattlelca.CohortKind) (*CoefficientTable, error) {
	table := &CoefficientTable{
		country:   provider.Country(),
		cohorts:   make(map[cattlelca.CohortKind]CohortCoefficients, len(kinds)),
		grazing:   make(map[cattlelca.GrazingSituation]float64, 3),
		storage:   make(map[cattlelca.StorageType]StorageCoefficients, 4),
		spreading: make(map[cattlelca.SpreadingMethod]float64, 5),
	}

	for _, kind := range kinds {
		coefs, err := resolveCohort(provider, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s coefficients: %w", kind, err)
		}
		table.cohorts[kind] = coefs
	}

	for situation, name := range map[cattlelca.GrazingSituation]string{
		cattlelca.GrazingPasture:   efFeedingPasture,
		cattlelca.GrazingLargeArea: efFeedingLargeArea,
		cattlelca.GrazingStall:     efFeedingStall,
	} {
		value, err := provider.EmissionFactor(name)
		if err != nil {
			return nil, err
		}
		table.grazing[situation] = value
	}

	if err := table.resolveStorage(provider); err != nil {
		return nil, err
	}

	for method, name := range map[cattlelca.SpreadingMethod]string{
		cattlelca.SpreadNone:         efSpreadingNone,
		cattlelca.SpreadManure:       efSpreadingManure,
		cattlelca.SpreadBroadcast:    efSpreadingBroadcast,
		cattlelca.SpreadInjection:    efSpreadingInjection,
		cattlelca.SpreadTrailingHose: efSpreadingTrailingHose,
	} {
		value, err := provider.EmissionFactor(name)
		if err != nil {
			return nil, err
		}
		table.spreading[method] = value
	}

	return table, nil
}

func (table *CoefficientTable) resolveStorage(provider cattlelca.CoefficientProvider) error {
	factors := make(map[string]float64)
	for _, name := range []string{
		efTANHouseLiquid, efTANHouseSolid, efTANStorageTank, efTANStorageSolid,
		efMCFLiquidTank, efMCFSolid, efMCFBiodigester,
		efN2OStorageTankLiquid, efN2OStorageTankSolid, efN2OStorageSolid, efN2OStorageBiodigester,
	} {
		value, err := provider.EmissionFactor(name)
		if err != nil {
			return err
		}
		factors[name] = value
	}

	// Slurry tanks volatilize like liquid systems in housing whether the
	// stored fraction is drawn off solid or liquid. Biodigester feedstock
	// is piped out, so its housing losses match the storage tank.
	table.storage[cattlelca.StorageTankSolid] = StorageCoefficients{
		HousingTAN: factors[efTANHouseLiquid],
		StorageTAN: factors[efTANStorageTank],
		MCF:        factors[efMCFLiquidTank],
		DirectN2O:  factors[efN2OStorageTankSolid],
	}
	table.storage[cattlelca.StorageTankLiquid] = StorageCoefficients{
		HousingTAN: factors[efTANHouseLiquid],
		StorageTAN: factors[efTANStorageTank],
		MCF:        factors[efMCFLiquidTank],
		DirectN2O:  factors[efN2OStorageTankLiquid],
	}
	table.storage[cattlelca.StorageSolid] = StorageCoefficients{
		HousingTAN: factors[efTANHouseSolid],
		StorageTAN: factors[efTANStorageSolid],
		MCF:        factors[efMCFSolid],
		DirectN2O:  factors[efN2OStorageSolid],
	}
	table.storage[cattlelca.StorageBiodigester] = StorageCoefficients{
		HousingTAN: factors[efTANStorageTank],
		StorageTAN: factors[efTANStorageTank],
		MCF:        factors[efMCFBiodigester],
		DirectN2O:  factors[efN2OStorageBiodigester],
	}

	return nil
}

func resolveCohort(provider cattlelca.CoefficientProvider, kind cattlelca.CohortKind) (CohortCoefficients, error) {
	traits, found := traitsByKind[kind]
	if !found {
		return CohortCoefficients{}, &cattlelca.UnknownCategoryError{Category: "cohort", Value: string(kind)}
	}

	coefs := CohortCoefficients{}

	maintenanceName := efMaintenanceNonLactating
	switch traits.maintenance {
	case maintenanceLactating:
		maintenanceName = efMaintenanceLactating
	case maintenanceBulls:
		maintenanceName = efMaintenanceBulls
	}

	growthName := efGrowthFemales
	switch traits.growth {
	case growthCastrate:
		growthName = efGrowthCastrates
	case growthBull:
		growthName = efGrowthBulls
	}

	methaneName := efMethaneDairyCow
	switch traits.methane {
	case methaneSteer:
		methaneName = efMethaneSteer
	case methaneCalf:
		methaneName = efMethaneCalves
	case methaneBull:
		methaneName = efMethaneBulls
	}

	var err error
	for _, factor := range []struct {
		target *float64
		name   string
	}{
		{&coefs.MaintenanceCfi, maintenanceName},
		{&coefs.GrowthScale, growthName},
		{&coefs.MethaneConversion, methaneName},
		{&coefs.FracGASM, efFracGASMPasture},
		{&coefs.DirectN2OPasture, efDirectN2OPasture},
		{&coefs.DirectN2OSoils, efDirectN2OSoils},
		{&coefs.AtmosphericDeposition, efIndirectN2OAtmos},
		{&coefs.LeachRunoff, efIndirectN2OLeach},
	} {
		*factor.target, err = provider.EmissionFactor(factor.name)
		if err != nil {
			return CohortCoefficients{}, err
		}
	}

	if traits.pregnant {
		coefs.Pregnancy, err = provider.EmissionFactor(efPregnancy)
		if err != nil {
			return CohortCoefficients{}, err
		}
	}

	coefs.MatureWeight, err = resolveMatureWeight(provider, traits.matureRef)
	if err != nil {
		return CohortCoefficients{}, err
	}

	coefs.WeightGain, err = provider.AnimalFeature(fmt.Sprintf("%s_weight_gain", kind))
	if err != nil {
		return CohortCoefficients{}, err
	}

	coefs.NRetention, err = provider.AnimalFeature(fmt.Sprintf("%s_n_retention", kind))
	if err != nil {
		return CohortCoefficients{}, err
	}

	if coefs.MatureWeight <= 0 {
		return CohortCoefficients{}, &cattlelca.InvalidCoefficientError{
			Name: "mature_weight", Value: coefs.MatureWeight,
			Reason: "the growth curve divides by it",
		}
	}
	if coefs.GrowthScale <= 0 {
		return CohortCoefficients{}, &cattlelca.InvalidCoefficientError{
			Name: growthName, Value: coefs.GrowthScale,
			Reason: "the growth curve divides by it",
		}
	}
	if coefs.WeightGain < 0 {
		return CohortCoefficients{}, &cattlelca.InvalidCoefficientError{
			Name: fmt.Sprintf("%s_weight_gain", kind), Value: coefs.WeightGain,
			Reason: "negative daily gain has no exponentiation",
		}
	}

	return coefs, nil
}

func resolveMatureWeight(provider cattlelca.CoefficientProvider, ref matureWeightRef) (float64, error) {
	switch ref {
	case matureRefDairy:
		return provider.AnimalFeature(featureMatureWeightDairy)
	case matureRefSuckler:
		return provider.AnimalFeature(featureMatureWeightSuckler)
	case matureRefBlend:
		dairy, err := provider.AnimalFeature(featureMatureWeightDairy)
		if err != nil {
			return 0, err
		}
		suckler, err := provider.AnimalFeature(featureMatureWeightSuckler)
		if err != nil {
			return 0, err
		}
		return (dairy + suckler) / 2, nil
	default:
		return provider.AnimalFeature(featureMatureWeightBulls)
	}
}

func (table *CoefficientTable) Cohort(kind cattlelca.CohortKind) (CohortCoefficients, error) {
	coefs, found := table.cohorts[kind]
	if !found {
		return CohortCoefficients{}, fmt.Errorf("cohort %s was not resolved in the %s coefficient table", kind, table.country)
	}
	return coefs, nil
}

func (table *CoefficientTable) FeedingSituation(situation cattlelca.GrazingSituation) (float64, error) {
	value, found := table.grazing[situation]
	if !found {
		return 0, &cattlelca.UnknownCategoryError{Category: "grazing situation", Value: string(situation)}
	}
	return value, nil
}

func (table *CoefficientTable) Storage(storageType cattlelca.StorageType) (StorageCoefficients, error) {
	coefs, found := table.storage[storageType]
	if !found {
		return StorageCoefficients{}, &cattlelca.UnknownCategoryError{Category: "manure storage", Value: string(storageType)}
	}
	return coefs, nil
}

func (table *CoefficientTable) SpreadingNH3(method cattlelca.SpreadingMethod) (float64, error) {
	value, found := table.spreading[method]
	if !found {
		return 0, &cattlelca.UnknownCategoryError{Category: "spreading method", Value: string(method)}
	}
	return value, nil
}
