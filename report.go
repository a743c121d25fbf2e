package cattlelca

// Category names one output bucket of a reporting view, using the national
// inventory reporting vocabulary.
type Category string

const (
	CategoryEntericCH4           Category = "enteric_ch4"
	CategoryManureManagementN2O  Category = "manure_management_N2O"
	CategoryManureManagementCH4  Category = "manure_management_CH4"
	CategoryManureAppliedN       Category = "manure_applied_N"
	CategoryNDirectPRP           Category = "N_direct_PRP"
	CategoryNIndirectPRP         Category = "N_indirect_PRP"
	CategoryNDirectFertiliser    Category = "N_direct_fertiliser"
	CategoryNIndirectFertiliser  Category = "N_indirect_fertiliser"
	CategorySoilsCO2             Category = "soils_CO2"
	CategorySoilOrganicNDirect   Category = "soil_organic_N_direct"
	CategorySoilOrganicNIndirect Category = "soil_organic_N_indirect"
	CategorySoilInorganicNDirect Category = "soil_inorganic_N_direct"
	CategorySoilInorganicNIndir  Category = "soil_inorganic_N_indirect"
	CategorySoilHistosolNDirect  Category = "soil_histosol_N_direct"
	CategoryCropResidueDirect    Category = "crop_residue_direct"
	CategorySoilNDirect          Category = "soil_N_direct"
	CategorySoilNIndirect        Category = "soil_N_indirect"
	CategorySoilsN2O             Category = "soils_N2O"
	CategoryManureManagement     Category = "manure_management"
	CategorySoils                Category = "soils"
	CategoryUpstreamFuelFert     Category = "upstream_fuel_fert"
	CategoryUpstreamFeed         Category = "upstream_feed"
	CategoryUpstream             Category = "upstream"
)

// ReportItem is one (view, category, value) cell of a report, used for
// flat rendering.
type ReportItem struct {
	View     string
	Category Category
	Value    Emissions
}

// ClimateChange holds the climate-change view: kilograms per year of each
// greenhouse gas, by source category. Nitrous oxide categories are N2O
// mass (the 44/28 molecular conversion from N2O-N is already applied).
// Histosol and crop-residue categories are part of the inventory shape but
// stay zero: they are not modelled for cattle systems.
type ClimateChange struct {
	EntericCH4           Emissions `json:"enteric_ch4"`
	ManureManagementN2O  Emissions `json:"manure_management_N2O"`
	ManureManagementCH4  Emissions `json:"manure_management_CH4"`
	ManureAppliedN       Emissions `json:"manure_applied_N"`
	NDirectPRP           Emissions `json:"N_direct_PRP"`
	NIndirectPRP         Emissions `json:"N_indirect_PRP"`
	NDirectFertiliser    Emissions `json:"N_direct_fertiliser"`
	NIndirectFertiliser  Emissions `json:"N_indirect_fertiliser"`
	SoilsCO2             Emissions `json:"soils_CO2"`
	SoilOrganicNDirect   Emissions `json:"soil_organic_N_direct"`
	SoilOrganicNIndirect Emissions `json:"soil_organic_N_indirect"`
	SoilInorganicNDirect Emissions `json:"soil_inorganic_N_direct"`
	SoilInorganicNIndir  Emissions `json:"soil_inorganic_N_indirect"`
	SoilHistosolNDirect  Emissions `json:"soil_histosol_N_direct"`
	CropResidueDirect    Emissions `json:"crop_residue_direct"`
	SoilNDirect          Emissions `json:"soil_N_direct"`
	SoilNIndirect        Emissions `json:"soil_N_indirect"`
	SoilsN2O             Emissions `json:"soils_N2O"`
	UpstreamFuelFert     Emissions `json:"upstream_fuel_fert"`
	UpstreamFeed         Emissions `json:"upstream_feed"`
	Upstream             Emissions `json:"upstream"`
}

func (c ClimateChange) Items() []ReportItem {
	return []ReportItem{
		{"climate_change", CategoryEntericCH4, c.EntericCH4},
		{"climate_change", CategoryManureManagementN2O, c.ManureManagementN2O},
		{"climate_change", CategoryManureManagementCH4, c.ManureManagementCH4},
		{"climate_change", CategoryManureAppliedN, c.ManureAppliedN},
		{"climate_change", CategoryNDirectPRP, c.NDirectPRP},
		{"climate_change", CategoryNIndirectPRP, c.NIndirectPRP},
		{"climate_change", CategoryNDirectFertiliser, c.NDirectFertiliser},
		{"climate_change", CategoryNIndirectFertiliser, c.NIndirectFertiliser},
		{"climate_change", CategorySoilsCO2, c.SoilsCO2},
		{"climate_change", CategorySoilOrganicNDirect, c.SoilOrganicNDirect},
		{"climate_change", CategorySoilOrganicNIndirect, c.SoilOrganicNIndirect},
		{"climate_change", CategorySoilInorganicNDirect, c.SoilInorganicNDirect},
		{"climate_change", CategorySoilInorganicNIndir, c.SoilInorganicNIndir},
		{"climate_change", CategorySoilHistosolNDirect, c.SoilHistosolNDirect},
		{"climate_change", CategoryCropResidueDirect, c.CropResidueDirect},
		{"climate_change", CategorySoilNDirect, c.SoilNDirect},
		{"climate_change", CategorySoilNIndirect, c.SoilNIndirect},
		{"climate_change", CategorySoilsN2O, c.SoilsN2O},
		{"climate_change", CategoryUpstreamFuelFert, c.UpstreamFuelFert},
		{"climate_change", CategoryUpstreamFeed, c.UpstreamFeed},
		{"climate_change", CategoryUpstream, c.Upstream},
	}
}

// Eutrophication holds the eutrophication view in kilograms of PO4
// equivalent per year.
type Eutrophication struct {
	ManureManagement Emissions `json:"manure_management"`
	Soils            Emissions `json:"soils"`
	UpstreamFuelFert Emissions `json:"upstream_fuel_fert"`
	UpstreamFeed     Emissions `json:"upstream_feed"`
	Upstream         Emissions `json:"upstream"`
}

func (e Eutrophication) Items() []ReportItem {
	return []ReportItem{
		{"eutrophication", CategoryManureManagement, e.ManureManagement},
		{"eutrophication", CategorySoils, e.Soils},
		{"eutrophication", CategoryUpstreamFuelFert, e.UpstreamFuelFert},
		{"eutrophication", CategoryUpstreamFeed, e.UpstreamFeed},
		{"eutrophication", CategoryUpstream, e.Upstream},
	}
}

// AirQuality holds the air-quality view in kilograms of ammonia per year.
type AirQuality struct {
	ManureManagement Emissions `json:"manure_management"`
	Soils            Emissions `json:"soils"`
}

func (a AirQuality) Items() []ReportItem {
	return []ReportItem{
		{"air_quality", CategoryManureManagement, a.ManureManagement},
		{"air_quality", CategorySoils, a.Soils},
	}
}

// Allocation carries the co-product split between milk and meat plus the
// physical outputs it derives from.
type Allocation struct {
	MilkFactor         float64 `json:"milk_factor"`
	MeatFactor         float64 `json:"meat_factor"`
	MilkKg             float64 `json:"milk_kg"`
	LiveWeightKg       float64 `json:"live_weight_kg"`
	LiveWeightBoughtKg float64 `json:"live_weight_bought_kg"`
}

// EmissionsReport is the complete result of assessing one farm-year.
type EmissionsReport struct {
	FarmID         string         `json:"farm_id"`
	Year           int            `json:"year"`
	Country        string         `json:"country"`
	ClimateChange  ClimateChange  `json:"climate_change"`
	Eutrophication Eutrophication `json:"eutrophication"`
	AirQuality     AirQuality     `json:"air_quality"`
	Allocation     Allocation     `json:"allocation"`
}

// Items flattens the three views in a fixed order.
func (r *EmissionsReport) Items() []ReportItem {
	items := r.ClimateChange.Items()
	items = append(items, r.Eutrophication.Items()...)
	items = append(items, r.AirQuality.Items()...)
	return items
}
