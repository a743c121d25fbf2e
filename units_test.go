package cattlelca_test

import (
	"testing"

	cattlelca "github.com/pasturelab/cattle-lca"
	"github.com/stretchr/testify/assert"
)

func TestEnergyConversions(t *testing.T) {
	energy := cattlelca.Energy(1500)

	assert.Equal(t, 1500.0, energy.MJ())
	assert.Equal(t, 1.5, energy.GJ())
}

func TestEmissionsConversions(t *testing.T) {
	emissions := cattlelca.Emissions(2_500_000)

	assert.Equal(t, 2500000.0, emissions.Kg())
	assert.Equal(t, 2500.0, emissions.Tonnes())
	assert.Equal(t, 2.5, emissions.Kilotonnes())
}
