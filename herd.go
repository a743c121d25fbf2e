package cattlelca

import "fmt"

// CohortKind identifies one of the 21 cattle cohorts tracked by the
// national inventory: the two cow herds, breeding bulls, and the
// calf/heifer/steer progeny of the dairy x dairy (DxD), dairy x beef (DxB)
// and beef x beef (BxB) crossings, split at two years of age.
type CohortKind string

const (
	DairyCows   CohortKind = "dairy_cows"
	SucklerCows CohortKind = "suckler_cows"
	Bulls       CohortKind = "bulls"

	DxDCalvesM CohortKind = "DxD_calves_m"
	DxDCalvesF CohortKind = "DxD_calves_f"
	DxBCalvesM CohortKind = "DxB_calves_m"
	DxBCalvesF CohortKind = "DxB_calves_f"
	BxBCalvesM CohortKind = "BxB_calves_m"
	BxBCalvesF CohortKind = "BxB_calves_f"

	DxDHeifersLess2Yr CohortKind = "DxD_heifers_less_2_yr"
	DxBHeifersLess2Yr CohortKind = "DxB_heifers_less_2_yr"
	BxBHeifersLess2Yr CohortKind = "BxB_heifers_less_2_yr"
	DxDSteersLess2Yr  CohortKind = "DxD_steers_less_2_yr"
	DxBSteersLess2Yr  CohortKind = "DxB_steers_less_2_yr"
	BxBSteersLess2Yr  CohortKind = "BxB_steers_less_2_yr"

	DxDHeifersMore2Yr CohortKind = "DxD_heifers_more_2_yr"
	DxBHeifersMore2Yr CohortKind = "DxB_heifers_more_2_yr"
	BxBHeifersMore2Yr CohortKind = "BxB_heifers_more_2_yr"
	DxDSteersMore2Yr  CohortKind = "DxD_steers_more_2_yr"
	DxBSteersMore2Yr  CohortKind = "DxB_steers_more_2_yr"
	BxBSteersMore2Yr  CohortKind = "BxB_steers_more_2_yr"
)

// kinds holds every cohort in canonical order. All herd iteration goes
// through this list so that results do not depend on map ordering.
var kinds = []CohortKind{
	DairyCows,
	SucklerCows,
	Bulls,
	DxDCalvesM,
	DxDCalvesF,
	DxBCalvesM,
	DxBCalvesF,
	BxBCalvesM,
	BxBCalvesF,
	DxDHeifersLess2Yr,
	DxBHeifersLess2Yr,
	BxBHeifersLess2Yr,
	DxDSteersLess2Yr,
	DxBSteersLess2Yr,
	BxBSteersLess2Yr,
	DxDHeifersMore2Yr,
	DxBHeifersMore2Yr,
	BxBHeifersMore2Yr,
	DxDSteersMore2Yr,
	DxBSteersMore2Yr,
	BxBSteersMore2Yr,
}

// Kinds returns every cohort kind in canonical order.
func Kinds() []CohortKind {
	out := make([]CohortKind, len(kinds))
	copy(out, kinds)
	return out
}

func ParseCohortKind(s string) (CohortKind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &UnknownCategoryError{Category: "cohort", Value: s}
}

// GrazingSituation is the feeding situation used for the activity term of
// the maintenance energy budget.
type GrazingSituation string

const (
	GrazingPasture   GrazingSituation = "pasture"
	GrazingLargeArea GrazingSituation = "large area"
	GrazingStall     GrazingSituation = "stall"
)

func ParseGrazingSituation(s string) (GrazingSituation, error) {
	switch GrazingSituation(s) {
	case GrazingPasture, GrazingLargeArea, GrazingStall:
		return GrazingSituation(s), nil
	}
	return "", &UnknownCategoryError{Category: "grazing situation", Value: s}
}

// StorageType is the manure management system the housed fraction of
// excretion passes through.
type StorageType string

const (
	StorageTankSolid   StorageType = "tank solid"
	StorageTankLiquid  StorageType = "tank liquid"
	StorageSolid       StorageType = "solid"
	StorageBiodigester StorageType = "biodigester"
)

func ParseStorageType(s string) (StorageType, error) {
	switch StorageType(s) {
	case StorageTankSolid, StorageTankLiquid, StorageSolid, StorageBiodigester:
		return StorageType(s), nil
	}
	return "", &UnknownCategoryError{Category: "manure storage", Value: s}
}

// SpreadingMethod is the landspreading technique applied to stored manure.
type SpreadingMethod string

const (
	SpreadNone         SpreadingMethod = "none"
	SpreadManure       SpreadingMethod = "manure"
	SpreadBroadcast    SpreadingMethod = "broadcast"
	SpreadInjection    SpreadingMethod = "injection"
	SpreadTrailingHose SpreadingMethod = "trailing hose"
)

func ParseSpreadingMethod(s string) (SpreadingMethod, error) {
	switch SpreadingMethod(s) {
	case SpreadNone, SpreadManure, SpreadBroadcast, SpreadInjection, SpreadTrailingHose:
		return SpreadingMethod(s), nil
	}
	return "", &UnknownCategoryError{Category: "spreading method", Value: s}
}

// AnimalCohort describes one cohort of the herd for one inventory year.
// Populations are head-years and may be fractional in year-averaged data.
type AnimalCohort struct {
	Kind              CohortKind
	Population        float64
	Weight            float64 // liveweight, kg
	DailyMilk         float64 // litres per day, dairy cows only
	Forage            string
	Grazing           GrazingSituation
	Concentrate       string
	ConcentrateAmount float64 // kg per day
	HoursOutdoors     float64
	HoursIndoors      float64
	HoursStabled      float64
	Storage           StorageType
	Spreading         SpreadingMethod
	Sold              float64
	Bought            float64
}

func (a AnimalCohort) Validate() error {
	if a.Population < 0 {
		return fmt.Errorf("cohort %s: population %f is negative", a.Kind, a.Population)
	}
	if a.Weight < 0 {
		return fmt.Errorf("cohort %s: weight %f is negative", a.Kind, a.Weight)
	}
	if a.HoursOutdoors < 0 || a.HoursIndoors < 0 || a.HoursStabled < 0 {
		return fmt.Errorf("cohort %s: negative day-fraction hours", a.Kind)
	}
	// Year-averaged survey data splits the day with rounding noise in
	// the last digits, so the 24 hour cap carries a small tolerance.
	if sum := a.HoursOutdoors + a.HoursIndoors + a.HoursStabled; sum > 24+1e-6 {
		return fmt.Errorf("cohort %s: outdoor, indoor and stabled hours sum to %f, more than a day", a.Kind, sum)
	}
	return nil
}

// Herd maps each cohort kind present on the farm to its yearly data. Kinds
// that are absent or have population zero take no part in the assessment.
type Herd map[CohortKind]AnimalCohort

// Active returns the cohorts with nonzero population in canonical order.
func (h Herd) Active() []AnimalCohort {
	active := make([]AnimalCohort, 0, len(h))
	for _, kind := range kinds {
		cohort, ok := h[kind]
		if !ok || cohort.Population == 0 {
			continue
		}
		cohort.Kind = kind
		active = append(active, cohort)
	}
	return active
}

func (h Herd) Validate() error {
	for kind := range h {
		if _, err := ParseCohortKind(string(kind)); err != nil {
			return err
		}
	}
	for _, cohort := range h.Active() {
		if err := cohort.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FarmInputs holds the farm-level inputs for one inventory year. All
// fertiliser quantities are kilograms of product applied.
type FarmInputs struct {
	Urea           float64
	UreaAbated     float64 // urea treated with the NBPT inhibitor
	NFertiliser    float64 // ammonium nitrate
	PFertiliser    float64
	KFertiliser    float64
	Lime           float64
	DieselKg       float64
	ElectricityKWh float64
}

func (f FarmInputs) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"urea", f.Urea},
		{"abated urea", f.UreaAbated},
		{"nitrogen fertiliser", f.NFertiliser},
		{"phosphorus fertiliser", f.PFertiliser},
		{"potassium fertiliser", f.KFertiliser},
		{"lime", f.Lime},
		{"diesel", f.DieselKg},
		{"electricity", f.ElectricityKWh},
	} {
		if v.value < 0 {
			return fmt.Errorf("farm inputs: %s quantity %f is negative", v.name, v.value)
		}
	}
	return nil
}

// Scenario is one farm-year to assess.
type Scenario struct {
	FarmID  string
	Year    int
	Country string
	Herd    Herd
	Inputs  FarmInputs
}

func (s Scenario) Validate() error {
	if s.Country == "" {
		return fmt.Errorf("scenario %s: country is empty", s.FarmID)
	}
	if err := s.Herd.Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.FarmID, err)
	}
	if err := s.Inputs.Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.FarmID, err)
	}
	return nil
}
