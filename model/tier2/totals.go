package tier2

import (
	cattlelca "github.com/pasturelab/cattle-lca"
)

const (
	// n2oMoleWeight converts N2O-N to N2O mass, molecular weight 44
	// over twice the atomic weight of nitrogen. Applied exactly once
	// per report category, here in the aggregator.
	n2oMoleWeight = 44.0 / 28.0

	// Eutrophication potential equivalents, kg PO4e per kg of N or P
	// reaching water.
	nitrogenToPO4e   = 0.42
	phosphorusToPO4e = 3.06
)

// cohortOutputs carries the per-animal annual flows of one cohort
// through aggregation. Population scaling happens here, not in the
// stage functions.
type cohortOutputs struct {
	kind       cattlelca.CohortKind
	population float64

	entericCH4 float64
	grazing    GrazingOutputs
	housing    HousingOutputs
	storage    StorageOutputs
	spreading  SpreadingOutputs

	// concentrate upstream, per animal per year
	concentrateCO2e float64
	concentratePO4e float64
}

// buildReport folds the per-cohort flows and the farm-level fertiliser
// and upstream results into the three reporting views.
func buildReport(cohorts []cohortOutputs, fertiliser FertiliserOutputs, atmosphericEF float64, upstream UpstreamFactors, inputs cattlelca.FarmInputs, allocation cattlelca.Allocation) *cattlelca.EmissionsReport {
	report := &cattlelca.EmissionsReport{Allocation: allocation}

	var (
		entericCH4      float64
		manureCH4       float64
		manureN2ON      float64
		appliedN2ON     float64
		prpDirectN2ON   float64
		prpIndirectN2ON float64
		manureNH3       float64
		soilNH3         float64
		soilNLeach      float64
		soilPLeach      float64
		concentrateCO2e float64
		concentratePO4e float64
	)

	for _, cohort := range cohorts {
		pop := cohort.population

		entericCH4 += cohort.entericCH4 * pop
		manureCH4 += (cohort.grazing.Methane + cohort.storage.Methane) * pop
		manureN2ON += (cohort.storage.DirectN2O + cohort.storage.IndirectN2O + cohort.housing.IndirectN2O) * pop
		appliedN2ON += (cohort.spreading.DirectN2O + cohort.spreading.IndirectN2O) * pop
		prpDirectN2ON += cohort.grazing.DirectN2O * pop
		prpIndirectN2ON += cohort.grazing.IndirectN2O * pop

		manureNH3 += (cohort.storage.Ammonia + cohort.housing.Ammonia) * pop
		soilNH3 += (cohort.grazing.Ammonia + cohort.spreading.Ammonia) * pop
		soilNLeach += (cohort.grazing.NitrogenLeach + cohort.spreading.NitrogenLeach) * pop
		soilPLeach += (cohort.grazing.PhosphorusLeach + cohort.spreading.PhosphorusLeach) * pop

		concentrateCO2e += cohort.concentrateCO2e * pop
		concentratePO4e += cohort.concentratePO4e * pop
	}

	climate := &report.ClimateChange
	climate.EntericCH4 = cattlelca.Emissions(entericCH4)
	climate.ManureManagementCH4 = cattlelca.Emissions(manureCH4)
	climate.ManureManagementN2O = cattlelca.Emissions(manureN2ON * n2oMoleWeight)
	climate.ManureAppliedN = cattlelca.Emissions(appliedN2ON * n2oMoleWeight)
	climate.NDirectPRP = cattlelca.Emissions(prpDirectN2ON * n2oMoleWeight)
	climate.NIndirectPRP = cattlelca.Emissions(prpIndirectN2ON * n2oMoleWeight)
	climate.NDirectFertiliser = cattlelca.Emissions((fertiliser.UreaDirectN2O + fertiliser.ANDirectN2O) * n2oMoleWeight)
	climate.NIndirectFertiliser = cattlelca.Emissions((fertiliser.UreaIndirectN2O + fertiliser.ANIndirectN2O) * n2oMoleWeight)
	climate.SoilsCO2 = cattlelca.Emissions(fertiliser.UreaCO2 + fertiliser.LimeCO2)

	// Inventory rollup. Histosol and crop residue stay zero for cattle
	// systems, the shape keeps them reportable.
	climate.SoilOrganicNDirect = climate.ManureAppliedN + climate.NDirectPRP
	climate.SoilOrganicNIndirect = climate.NIndirectPRP
	climate.SoilInorganicNDirect = climate.NDirectFertiliser
	climate.SoilInorganicNIndir = climate.NIndirectFertiliser
	climate.SoilNDirect = climate.SoilOrganicNDirect + climate.SoilInorganicNDirect + climate.SoilHistosolNDirect + climate.CropResidueDirect
	climate.SoilNIndirect = climate.SoilOrganicNIndirect + climate.SoilInorganicNIndir
	climate.SoilsN2O = climate.SoilNDirect + climate.SoilNIndirect

	fuelFertCO2 := upstream.DieselCO2(inputs.DieselKg) +
		upstream.ElectricityCO2(inputs.ElectricityKWh) +
		upstream.FertiliserCO2(inputs)
	climate.UpstreamFuelFert = cattlelca.Emissions(fuelFertCO2)
	climate.UpstreamFeed = cattlelca.Emissions(concentrateCO2e)
	climate.Upstream = climate.UpstreamFuelFert + climate.UpstreamFeed

	eutro := &report.Eutrophication
	eutro.ManureManagement = cattlelca.Emissions(manureNH3 * atmosphericEF * nitrogenToPO4e)

	fertiliserNH3 := fertiliser.UreaNH3 + fertiliser.ANNH3
	fertiliserNLeach := fertiliser.UreaNLeach + fertiliser.ANNLeach
	fertiliserPLeach := fertiliser.UreaPLeach + fertiliser.ANPLeach + fertiliser.PFertPLeach
	eutro.Soils = cattlelca.Emissions(
		(fertiliserNH3*atmosphericEF+fertiliserNLeach)*nitrogenToPO4e +
			fertiliserPLeach*phosphorusToPO4e +
			(soilNH3*atmosphericEF+soilNLeach)*nitrogenToPO4e +
			soilPLeach*phosphorusToPO4e)

	fuelFertPO4 := upstream.DieselPO4(inputs.DieselKg) +
		upstream.ElectricityPO4(inputs.ElectricityKWh) +
		upstream.FertiliserPO4(inputs)
	eutro.UpstreamFuelFert = cattlelca.Emissions(fuelFertPO4)
	eutro.UpstreamFeed = cattlelca.Emissions(concentratePO4e)
	eutro.Upstream = eutro.UpstreamFuelFert + eutro.UpstreamFeed

	air := &report.AirQuality
	air.ManureManagement = cattlelca.Emissions(manureNH3)
	air.Soils = cattlelca.Emissions(fertiliserNH3 + soilNH3)

	return report
}
