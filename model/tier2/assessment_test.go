package tier2

import (
	"context"
	"fmt"
	"testing"

	cattlelca "github.com/pasturelab/cattle-lca"

	"github.com/stretchr/testify/assert"
)

func testHerd() cattlelca.Herd {
	return cattlelca.Herd{
		cattlelca.DairyCows: {
			Population:        100,
			Weight:            538,
			DailyMilk:         14.95,
			Forage:            "irish_grass",
			Grazing:           cattlelca.GrazingPasture,
			Concentrate:       "concentrate",
			ConcentrateAmount: 3,
			HoursOutdoors:     13,
			HoursIndoors:      11,
			Storage:           cattlelca.StorageTankLiquid,
			Spreading:         cattlelca.SpreadBroadcast,
			Sold:              20,
		},
		cattlelca.DxDSteersLess2Yr: {
			Population:        40,
			Weight:            346.6,
			Forage:            "irish_grass",
			Grazing:           cattlelca.GrazingPasture,
			Concentrate:       "concentrate",
			ConcentrateAmount: 1,
			HoursOutdoors:     12,
			HoursIndoors:      12,
			Storage:           cattlelca.StorageTankLiquid,
			Spreading:         cattlelca.SpreadBroadcast,
			Sold:              15,
		},
	}
}

func testInputs() cattlelca.FarmInputs {
	return cattlelca.FarmInputs{
		Urea:           1000,
		UreaAbated:     500,
		NFertiliser:    2000,
		PFertiliser:    300,
		KFertiliser:    400,
		Lime:           5000,
		DieselKg:       100,
		ElectricityKWh: 1000,
	}
}

func TestAssessFarm(t *testing.T) {
	assessment := NewAssessment(newStubProvider())

	report, err := assessment.AssessFarm(testHerd(), testInputs())
	assert.NoError(t, err)
	assert.Equal(t, "ireland", report.Country)

	climate := report.ClimateChange
	assert.Greater(t, climate.EntericCH4.Kg(), 0.0)
	assert.Greater(t, climate.ManureManagementCH4.Kg(), 0.0)
	assert.Greater(t, climate.ManureManagementN2O.Kg(), 0.0)
	assert.Greater(t, climate.NDirectPRP.Kg(), 0.0)

	// Farm level categories depend on the inputs alone.
	assert.InDelta(t, 2933.3333333, climate.SoilsCO2.Kg(), 1e-6)
	assert.InDelta(t, 51.0714286, climate.NDirectFertiliser.Kg(), 1e-6)

	assert.InDelta(t, climate.SoilsN2O.Kg(), climate.SoilNDirect.Kg()+climate.SoilNIndirect.Kg(), 1e-9)
	assert.InDelta(t, climate.Upstream.Kg(), climate.UpstreamFuelFert.Kg()+climate.UpstreamFeed.Kg(), 1e-9)

	assert.Greater(t, report.Eutrophication.Soils.Kg(), 0.0)
	assert.Greater(t, report.AirQuality.ManureManagement.Kg(), 0.0)

	assert.InDelta(t, 1.0, report.Allocation.MilkFactor+report.Allocation.MeatFactor, 1e-9)
	assert.Greater(t, report.Allocation.MilkFactor, report.Allocation.MeatFactor)
}

func TestAssessFarmIsDeterministic(t *testing.T) {
	assessment := NewAssessment(newStubProvider())

	first, err := assessment.AssessFarm(testHerd(), testInputs())
	assert.NoError(t, err)
	second, err := assessment.AssessFarm(testHerd(), testInputs())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

// Cohorts without animals must not cost anything, not even a factor
// lookup: the provider here has no data for bulls at all.
func TestAssessFarmSkipsEmptyCohorts(t *testing.T) {
	provider := newStubProvider()
	delete(provider.features, "bulls_weight_gain")
	delete(provider.features, "bulls_n_retention")

	herd := testHerd()
	herd[cattlelca.Bulls] = cattlelca.AnimalCohort{
		Population: 0,
		Weight:     773,
		Forage:     "irish_grass",
		Grazing:    cattlelca.GrazingPasture,
		Storage:    cattlelca.StorageTankLiquid,
		Spreading:  cattlelca.SpreadBroadcast,
	}

	_, err := NewAssessment(provider).AssessFarm(herd, testInputs())
	assert.NoError(t, err)
}

func TestAssessFarmRejectsWeightlessCohort(t *testing.T) {
	herd := testHerd()
	cohort := herd[cattlelca.DairyCows]
	cohort.Weight = 0
	herd[cattlelca.DairyCows] = cohort

	_, err := NewAssessment(newStubProvider()).AssessFarm(herd, testInputs())
	invalidErr := new(cattlelca.InvalidCoefficientError)
	assert.ErrorAs(t, err, &invalidErr)
}

func TestAssessFarmReportsMissingForage(t *testing.T) {
	herd := testHerd()
	cohort := herd[cattlelca.DairyCows]
	cohort.Forage = "alfalfa"
	herd[cattlelca.DairyCows] = cohort

	_, err := NewAssessment(newStubProvider()).AssessFarm(herd, testInputs())
	lookupErr := new(cattlelca.LookupError)
	assert.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "alfalfa", lookupErr.Key)
}

func TestAssessScenario(t *testing.T) {
	scenario := cattlelca.Scenario{
		FarmID:  "glenview",
		Year:    2018,
		Country: "ireland",
		Herd:    testHerd(),
		Inputs:  testInputs(),
	}

	report, err := NewAssessment(newStubProvider()).AssessScenario(scenario)
	assert.NoError(t, err)
	assert.Equal(t, "glenview", report.FarmID)
	assert.Equal(t, 2018, report.Year)
	assert.Equal(t, "ireland", report.Country)
}

func TestAssessScenarioRejectsCountryMismatch(t *testing.T) {
	scenario := cattlelca.Scenario{
		FarmID:  "glenview",
		Year:    2018,
		Country: "france",
		Herd:    testHerd(),
		Inputs:  testInputs(),
	}

	_, err := NewAssessment(newStubProvider()).AssessScenario(scenario)
	assert.ErrorContains(t, err, "france")
	assert.ErrorContains(t, err, "ireland")
}

func TestAssessBatchKeepsScenarioOrder(t *testing.T) {
	scenarios := make([]cattlelca.Scenario, 0, 6)
	for i := 0; i < 6; i++ {
		scenarios = append(scenarios, cattlelca.Scenario{
			FarmID:  fmt.Sprintf("farm%d", i),
			Year:    2018,
			Country: "ireland",
			Herd:    testHerd(),
			Inputs:  testInputs(),
		})
	}

	providerFor := func(country string) (cattlelca.CoefficientProvider, error) {
		return newStubProvider(), nil
	}

	reports, err := AssessBatch(context.Background(), providerFor, scenarios, 2)
	assert.NoError(t, err)
	assert.Len(t, reports, 6)
	for i, report := range reports {
		assert.Equal(t, fmt.Sprintf("farm%d", i), report.FarmID)
	}
}

func TestAssessBatchPropagatesProviderError(t *testing.T) {
	scenarios := []cattlelca.Scenario{{
		FarmID:  "farm1",
		Year:    2018,
		Country: "atlantis",
		Herd:    testHerd(),
		Inputs:  testInputs(),
	}}

	providerFor := func(country string) (cattlelca.CoefficientProvider, error) {
		return nil, fmt.Errorf("no factor set for %s", country)
	}

	_, err := AssessBatch(context.Background(), providerFor, scenarios, 0)
	assert.ErrorContains(t, err, "atlantis")
}

func TestAssessBatchHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scenarios := []cattlelca.Scenario{{
		FarmID:  "farm1",
		Year:    2018,
		Country: "ireland",
		Herd:    testHerd(),
		Inputs:  testInputs(),
	}}

	providerFor := func(country string) (cattlelca.CoefficientProvider, error) {
		return newStubProvider(), nil
	}

	_, err := AssessBatch(ctx, providerFor, scenarios, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
