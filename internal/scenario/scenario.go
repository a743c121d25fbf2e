package scenario

import (
	"fmt"
	"os"

	cattlelca "github.com/pasturelab/cattle-lca"

	"github.com/hjson/hjson-go/v4"
	"github.com/mitchellh/mapstructure"
)

// documentSchema is the on-disk shape of a scenario file. Files are HJSON
// so survey data can be annotated with comments and written without the
// quoting ceremony of strict JSON.
type documentSchema struct {
	Farms []farmSchema `mapstructure:"farms"`
}

type farmSchema struct {
	FarmID  string         `mapstructure:"farm_id"`
	Year    float64        `mapstructure:"year"`
	Country string         `mapstructure:"country"`
	Herd    []cohortSchema `mapstructure:"herd"`
	Inputs  inputsSchema   `mapstructure:"inputs"`
}

type cohortSchema struct {
	Cohort            string  `mapstructure:"cohort"`
	Population        float64 `mapstructure:"population"`
	Weight            float64 `mapstructure:"weight"`
	DailyMilk         float64 `mapstructure:"daily_milk"`
	Forage            string  `mapstructure:"forage"`
	Grazing           string  `mapstructure:"grazing"`
	Concentrate       string  `mapstructure:"concentrate"`
	ConcentrateAmount float64 `mapstructure:"concentrate_amount"`
	HoursOutdoors     float64 `mapstructure:"hours_outdoors"`
	HoursIndoors      float64 `mapstructure:"hours_indoors"`
	HoursStabled      float64 `mapstructure:"hours_stabled"`
	Storage           string  `mapstructure:"storage"`
	Spreading         string  `mapstructure:"spreading"`
	Sold              float64 `mapstructure:"sold"`
	Bought            float64 `mapstructure:"bought"`
}

type inputsSchema struct {
	Urea           float64 `mapstructure:"urea"`
	UreaAbated     float64 `mapstructure:"urea_abated"`
	NFertiliser    float64 `mapstructure:"n_fertiliser"`
	PFertiliser    float64 `mapstructure:"p_fertiliser"`
	KFertiliser    float64 `mapstructure:"k_fertiliser"`
	Lime           float64 `mapstructure:"lime"`
	DieselKg       float64 `mapstructure:"diesel_kg"`
	ElectricityKWh float64 `mapstructure:"electricity_kwh"`
}

// Load reads the HJSON scenario file at path and returns one scenario per
// farm entry, validated and ready to assess.
func Load(path string) ([]cattlelca.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return scenarios, nil
}

// Parse decodes an HJSON scenario document.
func Parse(data []byte) ([]cattlelca.Scenario, error) {
	document := make(map[string]any)
	if err := hjson.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse scenario document: %w", err)
	}

	schema := new(documentSchema)
	if err := mapstructure.Decode(document, schema); err != nil {
		return nil, fmt.Errorf("scenario document does not match the expected shape: %w", err)
	}

	if len(schema.Farms) == 0 {
		return nil, fmt.Errorf("scenario document lists no farms")
	}

	scenarios := make([]cattlelca.Scenario, 0, len(schema.Farms))
	for _, farm := range schema.Farms {
		s, err := farm.scenario()
		if err != nil {
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

func (f farmSchema) scenario() (cattlelca.Scenario, error) {
	s := cattlelca.Scenario{
		FarmID:  f.FarmID,
		Year:    int(f.Year),
		Country: f.Country,
		Herd:    make(cattlelca.Herd, len(f.Herd)),
		Inputs: cattlelca.FarmInputs{
			Urea:           f.Inputs.Urea,
			UreaAbated:     f.Inputs.UreaAbated,
			NFertiliser:    f.Inputs.NFertiliser,
			PFertiliser:    f.Inputs.PFertiliser,
			KFertiliser:    f.Inputs.KFertiliser,
			Lime:           f.Inputs.Lime,
			DieselKg:       f.Inputs.DieselKg,
			ElectricityKWh: f.Inputs.ElectricityKWh,
		},
	}

	for _, row := range f.Herd {
		cohort, err := row.cohort()
		if err != nil {
			return cattlelca.Scenario{}, fmt.Errorf("farm %s: %w", f.FarmID, err)
		}
		if _, dup := s.Herd[cohort.Kind]; dup {
			return cattlelca.Scenario{}, fmt.Errorf("farm %s: cohort %s appears twice", f.FarmID, cohort.Kind)
		}
		s.Herd[cohort.Kind] = cohort
	}

	return s, nil
}

func (c cohortSchema) cohort() (cattlelca.AnimalCohort, error) {
	kind, err := cattlelca.ParseCohortKind(c.Cohort)
	if err != nil {
		return cattlelca.AnimalCohort{}, err
	}

	grazing, err := cattlelca.ParseGrazingSituation(c.Grazing)
	if err != nil {
		return cattlelca.AnimalCohort{}, fmt.Errorf("cohort %s: %w", kind, err)
	}

	storage, err := cattlelca.ParseStorageType(c.Storage)
	if err != nil {
		return cattlelca.AnimalCohort{}, fmt.Errorf("cohort %s: %w", kind, err)
	}

	spreading, err := cattlelca.ParseSpreadingMethod(c.Spreading)
	if err != nil {
		return cattlelca.AnimalCohort{}, fmt.Errorf("cohort %s: %w", kind, err)
	}

	return cattlelca.AnimalCohort{
		Kind:              kind,
		Population:        c.Population,
		Weight:            c.Weight,
		DailyMilk:         c.DailyMilk,
		Forage:            c.Forage,
		Grazing:           grazing,
		Concentrate:       c.Concentrate,
		ConcentrateAmount: c.ConcentrateAmount,
		HoursOutdoors:     c.HoursOutdoors,
		HoursIndoors:      c.HoursIndoors,
		HoursStabled:      c.HoursStabled,
		Storage:           storage,
		Spreading:         spreading,
		Sold:              c.Sold,
		Bought:            c.Bought,
	}, nil
}
