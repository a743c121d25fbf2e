package cattlelca_test

import (
	"errors"
	"testing"

	cattlelca "github.com/pasturelab/cattle-lca"
	"github.com/stretchr/testify/assert"
)

func TestParseCohortKind(t *testing.T) {
	kind, err := cattlelca.ParseCohortKind("dairy_cows")
	assert.NoError(t, err)
	assert.Equal(t, cattlelca.DairyCows, kind)

	kind, err = cattlelca.ParseCohortKind("BxB_steers_more_2_yr")
	assert.NoError(t, err)
	assert.Equal(t, cattlelca.BxBSteersMore2Yr, kind)

	_, err = cattlelca.ParseCohortKind("goats")
	unknownErr := new(cattlelca.UnknownCategoryError)
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "goats", unknownErr.Value)
}

func TestKindsAreComplete(t *testing.T) {
	assert.Len(t, cattlelca.Kinds(), 21)

	seen := make(map[cattlelca.CohortKind]bool)
	for _, kind := range cattlelca.Kinds() {
		assert.False(t, seen[kind], "kind %s listed twice", kind)
		seen[kind] = true
	}
}

func TestHerdActiveSkipsEmptyCohortsAndKeepsOrder(t *testing.T) {
	herd := cattlelca.Herd{
		cattlelca.Bulls:      {Population: 12, Weight: 773},
		cattlelca.DairyCows:  {Population: 80, Weight: 538},
		cattlelca.DxDCalvesF: {Population: 0, Weight: 149},
	}

	active := herd.Active()
	assert.Len(t, active, 2)
	assert.Equal(t, cattlelca.DairyCows, active[0].Kind)
	assert.Equal(t, cattlelca.Bulls, active[1].Kind)
}

func TestAnimalCohortValidate(t *testing.T) {
	cohort := cattlelca.AnimalCohort{
		Kind:          cattlelca.DairyCows,
		Population:    100,
		Weight:        538,
		HoursOutdoors: 13,
		HoursIndoors:  11,
	}
	assert.NoError(t, cohort.Validate())

	cohort.HoursIndoors = 12
	assert.Error(t, cohort.Validate(), "25 hour day")

	cohort.HoursIndoors = 11
	cohort.Population = -1
	assert.Error(t, cohort.Validate())
}

func TestScenarioValidate(t *testing.T) {
	scenario := cattlelca.Scenario{
		FarmID:  "test",
		Year:    2018,
		Country: "ireland",
		Herd: cattlelca.Herd{
			cattlelca.DairyCows: {Population: 10, Weight: 538},
		},
	}
	assert.NoError(t, scenario.Validate())

	scenario.Country = ""
	assert.Error(t, scenario.Validate())

	scenario.Country = "ireland"
	scenario.Inputs.Urea = -5
	assert.Error(t, scenario.Validate())
}

func TestParseEnums(t *testing.T) {
	storage, err := cattlelca.ParseStorageType("tank liquid")
	assert.NoError(t, err)
	assert.Equal(t, cattlelca.StorageTankLiquid, storage)

	_, err = cattlelca.ParseStorageType("lagoon")
	assert.Error(t, err)

	spreading, err := cattlelca.ParseSpreadingMethod("trailing hose")
	assert.NoError(t, err)
	assert.Equal(t, cattlelca.SpreadTrailingHose, spreading)

	_, err = cattlelca.ParseSpreadingMethod("catapult")
	assert.Error(t, err)

	grazing, err := cattlelca.ParseGrazingSituation("pasture")
	assert.NoError(t, err)
	assert.Equal(t, cattlelca.GrazingPasture, grazing)

	_, err = cattlelca.ParseGrazingSituation("feedlot")
	assert.Error(t, err)
}

func TestLookupErrorMessage(t *testing.T) {
	err := &cattlelca.LookupError{Table: "forage", Key: "irish grass", Country: "ireland", Suggestion: "irish_grass"}
	assert.Contains(t, err.Error(), `"irish grass"`)
	assert.Contains(t, err.Error(), `"irish_grass"`)

	var lookupErr *cattlelca.LookupError
	assert.True(t, errors.As(err, &lookupErr))
}
