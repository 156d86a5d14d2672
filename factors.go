package carbonscope

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed factors.yaml
var factorsYAML []byte

// defaultFactors maps country -> category -> suggested factor (kgCO2e/unit).
var defaultFactors map[string]map[string]float64

func init() {
	if err := yaml.Unmarshal(factorsYAML, &defaultFactors); err != nil {
		panic(fmt.Sprintf("invalid embedded factor table: %v", err))
	}
}

// SuggestFactor returns a suggested default emission factor for a country
// and category pair. The suggestion is a hint only; it is never enforced and
// has no effect on stored entries.
func SuggestFactor(country, category string) (float64, bool) {
	categories, ok := defaultFactors[country]
	if !ok {
		return 0, false
	}
	f, ok := categories[category]
	return f, ok
}

// FactorCountries returns the countries present in the suggestion table.
func FactorCountries() []string {
	countries := make([]string, 0, len(defaultFactors))
	for c := range defaultFactors {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}
