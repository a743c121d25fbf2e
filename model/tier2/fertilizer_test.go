package tier2

import (
	"testing"

	cattlelca "github.com/pasturelab/cattle-lca"

	"github.com/stretchr/testify/assert"
)

func testFertiliserCoefficients() FertiliserCoefficients {
	return FertiliserCoefficients{
		UreaN2O:         0.0025,
		UreaNBPTN2O:     0.004,
		UreaNH3Frac:     0.154,
		UreaNBPTNH3Frac: 0.092,
		ANN2O:           0.014,
		ANNH3Frac:       0.008,
		LeachFrac:       0.1,
		PLeachFrac:      0.03,
		UreaCO2:         0.2,
		LimeCO2:         0.12,

		AtmosphericDeposition: 0.01,
		LeachRunoff:           0.0075,
	}
}

func TestAssessFertiliser(t *testing.T) {
	inputs := cattlelca.FarmInputs{
		Urea:        1000,
		UreaAbated:  500,
		NFertiliser: 2000,
		PFertiliser: 300,
		Lime:        5000,
	}

	out := AssessFertiliser(inputs, testFertiliserCoefficients())

	assert.InDelta(t, 4.5, out.UreaDirectN2O, 1e-9)
	assert.InDelta(t, 200.0, out.UreaNH3, 1e-9)
	assert.InDelta(t, 150.0, out.UreaNLeach, 1e-9)
	assert.InDelta(t, 3.125, out.UreaIndirectN2O, 1e-9)
	assert.InDelta(t, 733.3333333, out.UreaCO2, 1e-6)
	assert.InDelta(t, 45.0, out.UreaPLeach, 1e-9)

	assert.InDelta(t, 28.0, out.ANDirectN2O, 1e-9)
	assert.InDelta(t, 16.0, out.ANNH3, 1e-9)
	assert.InDelta(t, 200.0, out.ANNLeach, 1e-9)
	assert.InDelta(t, 1.66, out.ANIndirectN2O, 1e-9)
	assert.InDelta(t, 60.0, out.ANPLeach, 1e-9)

	assert.InDelta(t, 9.0, out.PFertPLeach, 1e-9)
	assert.InDelta(t, 2200.0, out.LimeCO2, 1e-9)

	assert.InDelta(t, 37.285, out.TotalN2ON(), 1e-9)
}

// Only untreated urea releases fossil CO2 in the inventory shape, the
// NBPT treated share is counted with its own N factors alone.
func TestAssessFertiliserAbatedUreaCO2(t *testing.T) {
	coefs := testFertiliserCoefficients()

	plain := AssessFertiliser(cattlelca.FarmInputs{Urea: 1000}, coefs)
	abated := AssessFertiliser(cattlelca.FarmInputs{UreaAbated: 1000}, coefs)

	assert.Greater(t, plain.UreaCO2, 0.0)
	assert.Zero(t, abated.UreaCO2)
	assert.Greater(t, abated.UreaDirectN2O, plain.UreaDirectN2O)
	assert.Less(t, abated.UreaNH3, plain.UreaNH3)
}

func TestAssessFertiliserZeroInputs(t *testing.T) {
	out := AssessFertiliser(cattlelca.FarmInputs{}, testFertiliserCoefficients())

	assert.Zero(t, out.UreaDirectN2O)
	assert.Zero(t, out.ANDirectN2O)
	assert.Zero(t, out.LimeCO2)
	assert.Zero(t, out.TotalN2ON())
}

func TestResolveFertiliser(t *testing.T) {
	coefs, err := ResolveFertiliser(newStubProvider())
	assert.NoError(t, err)
	assert.Equal(t, 0.0025, coefs.UreaN2O)
	assert.Equal(t, 0.092, coefs.UreaNBPTNH3Frac)
	assert.Equal(t, 0.014, coefs.ANN2O)
	assert.Equal(t, 0.12, coefs.LimeCO2)
	assert.Equal(t, 0.01, coefs.AtmosphericDeposition)

	provider := newStubProvider()
	delete(provider.factors, efANN2O)
	_, err = ResolveFertiliser(provider)
	lookupErr := new(cattlelca.LookupError)
	assert.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, efANN2O, lookupErr.Key)
}
