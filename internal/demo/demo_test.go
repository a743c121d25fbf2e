package demo

import (
	"testing"

	"github.com/pasturelab/cattle-lca/internal/factordata"
	"github.com/pasturelab/cattle-lca/model/tier2"
	"github.com/stretchr/testify/assert"
)

func TestDairyDailyMilk(t *testing.T) {
	assert.InDelta(t, 14.953, DairyDailyMilk(), 1e-9)
}

func TestMilkYieldCurvePassesThroughKnots(t *testing.T) {
	curve := MilkYieldCurve()
	for i, day := range milkYieldKnots {
		assert.InDelta(t, milkYieldDaily[i], curve.Predict(day), 1e-9)
	}
}

func TestMilkYieldCurveStaysWithinSeason(t *testing.T) {
	curve := MilkYieldCurve()

	// Fritsch Butland keeps each segment monotone, so the spring rise
	// stays between its neighbouring months and the May peak is never
	// overshot.
	rise := curve.Predict(90)
	assert.Greater(t, rise, 16.7)
	assert.Less(t, rise, 21.2)

	peak := curve.Predict(150)
	assert.GreaterOrEqual(t, peak, 22.7)
	assert.LessOrEqual(t, peak, 23.4)
}

func TestScenarioIsValid(t *testing.T) {
	scenario := Scenario()

	assert.NoError(t, scenario.Validate())
	assert.Equal(t, "irish_national_herd", scenario.FarmID)
	assert.Equal(t, 2018, scenario.Year)
	assert.Equal(t, "ireland", scenario.Country)
	assert.Len(t, scenario.Herd, 21)
	assert.Len(t, scenario.Herd.Active(), 19)
}

func TestNationalHerdAssessment(t *testing.T) {
	provider, err := factordata.NewProvider("ireland")
	assert.NoError(t, err)

	report, err := tier2.NewAssessment(provider).AssessScenario(Scenario())
	assert.NoError(t, err)

	assert.Equal(t, "irish_national_herd", report.FarmID)
	assert.Equal(t, 2018, report.Year)
	assert.Equal(t, "ireland", report.Country)

	climate := report.ClimateChange
	assert.Greater(t, climate.EntericCH4.Kg(), 0.0)
	assert.Greater(t, climate.ManureManagementCH4.Kg(), 0.0)
	assert.Greater(t, climate.ManureManagementN2O.Kg(), 0.0)
	assert.Greater(t, climate.SoilsN2O.Kg(), 0.0)
	assert.Greater(t, climate.UpstreamFuelFert.Kg(), 0.0)
	assert.Greater(t, climate.UpstreamFeed.Kg(), 0.0)

	// Farm level categories depend on the reported inputs alone, so they
	// can be pinned down: 2018 spread 2072 t of urea and no lime.
	assert.InDelta(t, 1519823.8931, climate.SoilsCO2.Kg(), 1e-3)
	assert.InDelta(t, 388976.3277, climate.NDirectFertiliser.Kg(), 1e-3)

	// The year-averaged national herd sells no liveweight, so the whole
	// footprint lands on milk.
	assert.Equal(t, 1.0, report.Allocation.MilkFactor)
	assert.Zero(t, report.Allocation.MeatFactor)

	assert.Greater(t, report.Eutrophication.ManureManagement.Kg(), 0.0)
	assert.Greater(t, report.Eutrophication.Soils.Kg(), 0.0)
	assert.Greater(t, report.AirQuality.ManureManagement.Kg(), 0.0)
	assert.Greater(t, report.AirQuality.Soils.Kg(), 0.0)
}
