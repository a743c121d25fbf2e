package scenario

import (
	"testing"

	cattlelca "github.com/pasturelab/cattle-lca"

	"github.com/stretchr/testify/assert"
)

func TestLoadScenarioFile(t *testing.T) {
	scenarios, err := Load("testdata/farms.hjson")
	assert.NoError(t, err)
	assert.Len(t, scenarios, 2)

	glenview := scenarios[0]
	assert.Equal(t, "glenview", glenview.FarmID)
	assert.Equal(t, 2018, glenview.Year)
	assert.Equal(t, "ireland", glenview.Country)
	assert.Len(t, glenview.Herd, 2)

	cows := glenview.Herd[cattlelca.DairyCows]
	assert.Equal(t, cattlelca.DairyCows, cows.Kind)
	assert.Equal(t, 64.0, cows.Population)
	assert.Equal(t, 15.2, cows.DailyMilk)
	assert.Equal(t, cattlelca.GrazingPasture, cows.Grazing)
	assert.Equal(t, cattlelca.StorageTankLiquid, cows.Storage)
	assert.Equal(t, cattlelca.SpreadBroadcast, cows.Spreading)
	assert.Equal(t, 12.0, cows.Sold)

	assert.Equal(t, 5200.0, glenview.Inputs.Urea)
	assert.Equal(t, 31000.0, glenview.Inputs.ElectricityKWh)

	drovers := scenarios[1]
	assert.Equal(t, "droverspass", drovers.FarmID)
	assert.Equal(t, cattlelca.StorageSolid, drovers.Herd[cattlelca.SucklerCows].Storage)
	assert.Equal(t, cattlelca.SpreadManure, drovers.Herd[cattlelca.SucklerCows].Spreading)
	assert.Zero(t, drovers.Inputs.Urea)
	assert.Equal(t, 12500.0, drovers.Inputs.NFertiliser)
}

func TestParseRejectsUnknownCohort(t *testing.T) {
	_, err := Parse([]byte(`{"farms": [{"farm_id": "x", "country": "ireland",
		"herd": [{"cohort": "goats"}]}]}`))
	assert.ErrorContains(t, err, "goats")
}

func TestParseRejectsUnknownStorage(t *testing.T) {
	_, err := Parse([]byte(`{"farms": [{"farm_id": "x", "country": "ireland",
		"herd": [{"cohort": "dairy_cows", "grazing": "pasture", "storage": "lagoon"}]}]}`))
	assert.ErrorContains(t, err, "lagoon")
}

func TestParseRejectsDuplicateCohort(t *testing.T) {
	row := `{"cohort": "dairy_cows", "grazing": "pasture", "storage": "solid", "spreading": "none"}`
	_, err := Parse([]byte(`{"farms": [{"farm_id": "x", "country": "ireland",
		"herd": [` + row + `, ` + row + `]}]}`))
	assert.ErrorContains(t, err, "appears twice")
}

func TestParseRejectsImpossibleHours(t *testing.T) {
	_, err := Parse([]byte(`{"farms": [{"farm_id": "x", "country": "ireland",
		"herd": [{"cohort": "dairy_cows", "population": 5, "weight": 500,
		"grazing": "pasture", "storage": "solid", "spreading": "none",
		"hours_outdoors": 20, "hours_indoors": 20}]}]}`))
	assert.ErrorContains(t, err, "more than a day")
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := Parse([]byte(`{}`))
	assert.ErrorContains(t, err, "no farms")
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`{farms: [`))
	assert.Error(t, err)
}
