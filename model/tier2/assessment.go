package tier2

import (
	"context"
	"fmt"
	"log/slog"

	cattlelca "github.com/pasturelab/cattle-lca"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 5

// Assessment runs the IPCC Tier 2 cattle model against one country's
// coefficient set. It is stateless apart from the provider and safe for
// concurrent use.
type Assessment struct {
	provider cattlelca.CoefficientProvider
}

func NewAssessment(provider cattlelca.CoefficientProvider) *Assessment {
	return &Assessment{provider: provider}
}

// AssessFarm computes the full emissions report of one farm-year.
// Coefficients are resolved once, for active cohorts only, so a missing
// factor for an empty cohort can never fail an assessment.
func (assessment *Assessment) AssessFarm(herd cattlelca.Herd, inputs cattlelca.FarmInputs) (*cattlelca.EmissionsReport, error) {
	if err := herd.Validate(); err != nil {
		return nil, err
	}
	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	active := herd.Active()
	kinds := make([]cattlelca.CohortKind, 0, len(active))
	for _, animal := range active {
		if animal.Weight <= 0 {
			return nil, &cattlelca.InvalidCoefficientError{
				Name: fmt.Sprintf("%s weight", animal.Kind), Value: animal.Weight,
				Reason: "a populated cohort needs a live weight",
			}
		}
		kinds = append(kinds, animal.Kind)
	}

	table, err := NewCoefficientTable(assessment.provider, kinds)
	if err != nil {
		return nil, err
	}

	cohorts := make([]cohortOutputs, 0, len(active))
	for _, animal := range active {
		outputs, err := assessment.assessCohort(animal, table)
		if err != nil {
			return nil, err
		}
		cohorts = append(cohorts, outputs)
	}

	fertiliserCoefs, err := ResolveFertiliser(assessment.provider)
	if err != nil {
		return nil, err
	}
	fertiliser := AssessFertiliser(inputs, fertiliserCoefs)

	upstream, err := ResolveUpstream(assessment.provider)
	if err != nil {
		return nil, err
	}

	allocation, err := AllocateOutputs(herd)
	if err != nil {
		return nil, err
	}

	report := buildReport(cohorts, fertiliser, fertiliserCoefs.AtmosphericDeposition, upstream, inputs, allocation)
	report.Country = assessment.provider.Country()

	return report, nil
}

func (assessment *Assessment) assessCohort(animal cattlelca.AnimalCohort, table *CoefficientTable) (cohortOutputs, error) {
	coefs, err := table.Cohort(animal.Kind)
	if err != nil {
		return cohortOutputs{}, err
	}
	feedingSituation, err := table.FeedingSituation(animal.Grazing)
	if err != nil {
		return cohortOutputs{}, err
	}
	storage, err := table.Storage(animal.Storage)
	if err != nil {
		return cohortOutputs{}, err
	}
	spreadingNH3, err := table.SpreadingNH3(animal.Spreading)
	if err != nil {
		return cohortOutputs{}, err
	}
	diet, err := resolveDiet(assessment.provider, animal)
	if err != nil {
		return cohortOutputs{}, err
	}

	intake := ComputeEnergyIntake(animal, coefs, diet, feedingSituation)

	outputs := cohortOutputs{
		kind:       animal.Kind,
		population: animal.Population,
		entericCH4: EntericMethane(intake, coefs.MethaneConversion),
	}
	outputs.grazing = AssessGrazing(animal, intake, coefs, diet)
	outputs.housing = AssessHousing(animal, intake, coefs, diet, storage)
	outputs.storage = AssessStorage(outputs.housing, coefs, storage)
	outputs.spreading = AssessSpreading(outputs.storage, coefs, spreadingNH3)

	outputs.concentrateCO2e = animal.ConcentrateAmount * daysPerYear * diet.Concentrate.CO2e
	outputs.concentratePO4e = animal.ConcentrateAmount * daysPerYear * diet.Concentrate.PO4e

	slog.Debug("assessed cohort",
		"cohort", animal.Kind,
		"population", animal.Population,
		"enteric_ch4_kg", outputs.entericCH4,
		"total_ge_mj_day", intake.TotalGE)

	return outputs, nil
}

// AssessScenario assesses one scenario after checking it against the
// provider's country and stamps the report with the scenario identity.
func (assessment *Assessment) AssessScenario(scenario cattlelca.Scenario) (*cattlelca.EmissionsReport, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	if scenario.Country != assessment.provider.Country() {
		return nil, fmt.Errorf("scenario %s is located in %s but the provider carries %s factors",
			scenario.FarmID, scenario.Country, assessment.provider.Country())
	}

	report, err := assessment.AssessFarm(scenario.Herd, scenario.Inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to assess farm %s: %w", scenario.FarmID, err)
	}

	report.FarmID = scenario.FarmID
	report.Year = scenario.Year

	return report, nil
}

// ProviderFunc returns the coefficient provider for a country. AssessBatch
// calls it once per scenario, so implementations should cache.
type ProviderFunc func(country string) (cattlelca.CoefficientProvider, error)

// AssessBatch assesses scenarios concurrently and returns their reports
// in scenario order. A non-positive limit falls back to the default of 5.
// The first error cancels the remaining work.
func AssessBatch(ctx context.Context, providerFor ProviderFunc, scenarios []cattlelca.Scenario, limit int) ([]*cattlelca.EmissionsReport, error) {
	if limit <= 0 {
		limit = defaultBatchConcurrency
	}

	reports := make([]*cattlelca.EmissionsReport, len(scenarios))

	errg, errgctx := errgroup.WithContext(ctx)
	errg.SetLimit(limit)

	for i, scenario := range scenarios {
		i, scenario := i, scenario
		errg.Go(func() error {
			if err := errgctx.Err(); err != nil {
				return err
			}

			provider, err := providerFor(scenario.Country)
			if err != nil {
				return err
			}

			report, err := NewAssessment(provider).AssessScenario(scenario)
			if err != nil {
				return err
			}

			reports[i] = report
			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
