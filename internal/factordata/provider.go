package factordata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	cattlelca "github.com/pasturelab/cattle-lca"
	"github.com/pasturelab/cattle-lca/internal/must"
	"gonum.org/v1/gonum/stat"
)

// Base on the Irish national inventory and IPCC 2019 Refinement
// default factors.
// https://www.ipcc-nggip.iges.or.jp/public/2019rf/vol4.html

//go:embed data/emission_factors.csv
var emissionFactorsCSV []byte

//go:embed data/animal_features.csv
var animalFeaturesCSV []byte

//go:embed data/grass.csv
var grassCSV []byte

//go:embed data/concentrate.csv
var concentrateCSV []byte

//go:embed data/upstream.csv
var upstreamCSV []byte

// AverageName selects the column-wise mean of every feed profile the
// country carries instead of one named profile.
const AverageName = "average"

var (
	emissionFactors = make(map[string]map[string]float64)
	animalFeatures  = make(map[string]map[string]float64)
	forages         = make(map[string]map[string]cattlelca.ForageProfile)
	concentrates    = make(map[string]map[string]cattlelca.ConcentrateProfile)
	upstreams       = make(map[string]map[string]cattlelca.UpstreamProfile)
)

func init() {
	forEachRecord(emissionFactorsCSV, func(record []string) {
		tableFor(emissionFactors, record[0])[record[1]] = must.CastFloat64(record[2])
	})
	forEachRecord(animalFeaturesCSV, func(record []string) {
		tableFor(animalFeatures, record[0])[record[1]] = must.CastFloat64(record[2])
	})
	forEachRecord(grassCSV, func(record []string) {
		tableFor(forages, record[0])[record[1]] = cattlelca.ForageProfile{
			DryMatterDigestibility: must.CastFloat64(record[2]),
			CrudeProtein:           must.CastFloat64(record[3]),
			GrossEnergy:            must.CastFloat64(record[4]),
		}
	})
	forEachRecord(concentrateCSV, func(record []string) {
		tableFor(concentrates, record[0])[record[1]] = cattlelca.ConcentrateProfile{
			DryMatterDigestibility: must.CastFloat64(record[2]),
			DigestibleEnergy:       must.CastFloat64(record[3]),
			CrudeProtein:           must.CastFloat64(record[4]),
			GrossEnergy:            must.CastFloat64(record[5]),
			CO2e:                   must.CastFloat64(record[6]),
			PO4e:                   must.CastFloat64(record[7]),
		}
	})
	forEachRecord(upstreamCSV, func(record []string) {
		tableFor(upstreams, record[0])[record[1]] = cattlelca.UpstreamProfile{
			CO2e: must.CastFloat64(record[2]),
			PO4e: must.CastFloat64(record[3]),
		}
	})
}

func forEachRecord(data []byte, fn func(record []string)) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Read() // skip header line
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		must.NoError(err)
		fn(record)
	}
}

func tableFor[T any](tables map[string]map[string]T, country string) map[string]T {
	if tables[country] == nil {
		tables[country] = make(map[string]T)
	}
	return tables[country]
}

// Countries lists every country the embedded dataset carries factors for.
func Countries() []string {
	countries := make([]string, 0, len(emissionFactors))
	for name := range emissionFactors {
		countries = append(countries, name)
	}
	slices.Sort(countries)
	return countries
}

// Provider serves one country's coefficients from the embedded dataset.
// It implements cattlelca.CoefficientProvider.
type Provider struct {
	country string
}

func NewProvider(country string) (*Provider, error) {
	if _, found := emissionFactors[country]; !found {
		return nil, &cattlelca.LookupError{
			Table:      "emission_factors",
			Key:        country,
			Country:    country,
			Suggestion: closest(country, Countries()),
		}
	}
	return &Provider{country: country}, nil
}

func (provider *Provider) Country() string {
	return provider.country
}

func (provider *Provider) EmissionFactor(name string) (float64, error) {
	value, found := emissionFactors[provider.country][name]
	if !found {
		return 0, provider.lookupError("emission_factors", name, keysOf(emissionFactors[provider.country]))
	}
	return value, nil
}

func (provider *Provider) AnimalFeature(name string) (float64, error) {
	value, found := animalFeatures[provider.country][name]
	if !found {
		return 0, provider.lookupError("animal_features", name, keysOf(animalFeatures[provider.country]))
	}
	return value, nil
}

func (provider *Provider) Forage(name string) (cattlelca.ForageProfile, error) {
	table := forages[provider.country]
	if name == AverageName && len(table) > 0 {
		return averageForage(table), nil
	}
	profile, found := table[name]
	if !found {
		return cattlelca.ForageProfile{}, provider.lookupError("grass", name, keysOf(table))
	}
	return profile, nil
}

func (provider *Provider) Concentrate(name string) (cattlelca.ConcentrateProfile, error) {
	table := concentrates[provider.country]
	if name == AverageName && len(table) > 0 {
		return averageConcentrate(table), nil
	}
	profile, found := table[name]
	if !found {
		return cattlelca.ConcentrateProfile{}, provider.lookupError("concentrate", name, keysOf(table))
	}
	return profile, nil
}

func (provider *Provider) Upstream(name string) (cattlelca.UpstreamProfile, error) {
	profile, found := upstreams[provider.country][name]
	if !found {
		return cattlelca.UpstreamProfile{}, provider.lookupError("upstream", name, keysOf(upstreams[provider.country]))
	}
	return profile, nil
}

func averageForage(table map[string]cattlelca.ForageProfile) cattlelca.ForageProfile {
	digestibility := make([]float64, 0, len(table))
	protein := make([]float64, 0, len(table))
	energy := make([]float64, 0, len(table))
	for _, profile := range table {
		digestibility = append(digestibility, profile.DryMatterDigestibility)
		protein = append(protein, profile.CrudeProtein)
		energy = append(energy, profile.GrossEnergy)
	}
	return cattlelca.ForageProfile{
		DryMatterDigestibility: stat.Mean(digestibility, nil),
		CrudeProtein:           stat.Mean(protein, nil),
		GrossEnergy:            stat.Mean(energy, nil),
	}
}

func averageConcentrate(table map[string]cattlelca.ConcentrateProfile) cattlelca.ConcentrateProfile {
	digestibility := make([]float64, 0, len(table))
	digestible := make([]float64, 0, len(table))
	protein := make([]float64, 0, len(table))
	energy := make([]float64, 0, len(table))
	co2e := make([]float64, 0, len(table))
	po4e := make([]float64, 0, len(table))
	for _, profile := range table {
		digestibility = append(digestibility, profile.DryMatterDigestibility)
		digestible = append(digestible, profile.DigestibleEnergy)
		protein = append(protein, profile.CrudeProtein)
		energy = append(energy, profile.GrossEnergy)
		co2e = append(co2e, profile.CO2e)
		po4e = append(po4e, profile.PO4e)
	}
	return cattlelca.ConcentrateProfile{
		DryMatterDigestibility: stat.Mean(digestibility, nil),
		DigestibleEnergy:       stat.Mean(digestible, nil),
		CrudeProtein:           stat.Mean(protein, nil),
		GrossEnergy:            stat.Mean(energy, nil),
		CO2e:                   stat.Mean(co2e, nil),
		PO4e:                   stat.Mean(po4e, nil),
	}
}

func (provider *Provider) lookupError(table, key string, known []string) *cattlelca.LookupError {
	return &cattlelca.LookupError{
		Table:      table,
		Key:        key,
		Country:    provider.country,
		Suggestion: closest(key, known),
	}
}

// closest fuzzy finds the best suitable key in the known set.
func closest(key string, known []string) string {
	ranks := fuzzy.RankFindNormalizedFold(key, known)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func keysOf[T any](table map[string]T) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
