package indicators

import (
	"sort"

	"github.com/ofwlens/ofwlens/internal/dataset"
	"github.com/ofwlens/ofwlens/internal/flows"
	"github.com/ofwlens/ofwlens/internal/names"
)

// Indicator columns of the supplementary dataset. The table is long
// form, keyed by (Country Name, Year), with one column per indicator.
const (
	LifeExpectancy  = "Life expectancy at birth, total (years)"
	HealthSpend     = "Domestic general government health expenditure (% of GDP)"
	Unemployment    = "Unemployment, total (% of total labor force)"
	Diabetes        = "Diabetes prevalence (% of population ages 20 to 79)"
	Hypertension    = "Prevalence of hypertension (% of adults ages 30-79)"
	MortalityFemale = "Mortality rate, adult, female (per 1,000 female adults)"
)

// Columns lists every indicator in display order.
var Columns = []string{
	LifeExpectancy, HealthSpend, Unemployment,
	Diabetes, Hypertension, MortalityFemale,
}

// Value is one indicator reading. OK distinguishes a recorded value
// from a gap in the data; a missing reading is reported as "no data",
// never rendered as zero.
type Value struct {
	Column string
	Value  float64
	OK     bool
}

// CountryYear returns the indicator readings for a country and year.
// ok is false when the table has no row for that pair.
func CountryYear(t *dataset.Table, country string, year int) ([]Value, bool) {
	row, ok := findRow(t, country, year)
	if !ok {
		return nil, false
	}
	out := make([]Value, 0, len(Columns))
	for _, col := range Columns {
		v, present := t.Float(row, col)
		out = append(out, Value{Column: col, Value: v, OK: present})
	}
	return out, true
}

// Trend is the first-to-last change of an indicator over a country's
// recorded values.
type Trend struct {
	Column string
	First  float64
	Last   float64
	Delta  float64
	Points int
}

// Trends computes per-indicator changes across all of a country's rows
// in year order, skipping gaps. Indicators with fewer than two recorded
// values yield no trend.
func Trends(t *dataset.Table, country string) []Trend {
	rows := countryRows(t, country)
	var out []Trend
	for _, col := range Columns {
		var vals []float64
		for _, r := range rows {
			if v, ok := t.Float(r, col); ok {
				vals = append(vals, v)
			}
		}
		if len(vals) < 2 {
			continue
		}
		first, last := vals[0], vals[len(vals)-1]
		out = append(out, Trend{
			Column: col,
			First:  first,
			Last:   last,
			Delta:  last - first,
			Points: len(vals),
		})
	}
	return out
}

// Countries returns the sorted distinct country names in the table.
func Countries(t *dataset.Table) []string {
	seen := map[string]bool{}
	for i := 0; i < t.NumRows(); i++ {
		if c := t.Cell(i, "Country Name"); c != "" {
			seen[c] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// YearsForCountry returns the sorted years recorded for a country.
func YearsForCountry(t *dataset.Table, country string) []int {
	var out []int
	for _, r := range countryRows(t, country) {
		out = append(out, t.Year(r))
	}
	return out
}

// MigrantTotals aggregates migration flows per (country, year) for
// merging against the indicator table. Country matching goes through
// name normalization so "United States Of America" in one dataset finds
// "united_states_of_america" rows in the other.
func MigrantTotals(all []flows.Flow) map[CountryYearKey]float64 {
	out := map[CountryYearKey]float64{}
	for _, f := range all {
		k := CountryYearKey{Country: names.Normalize(f.Destination), Year: f.Year}
		out[k] += f.Migrants
	}
	return out
}

// CountryYearKey joins datasets on normalized (country, year) pairs.
type CountryYearKey struct {
	Country string
	Year    int
}

// MigrantsFor looks up the migrant total for a country and year from a
// MigrantTotals map. This is the left-merge of the supplementary page:
// indicator rows without a matching flow report no migrants rather than
// zero.
func MigrantsFor(totals map[CountryYearKey]float64, country string, year int) (float64, bool) {
	v, ok := totals[CountryYearKey{Country: names.Normalize(country), Year: year}]
	return v, ok
}

func findRow(t *dataset.Table, country string, year int) (int, bool) {
	for _, r := range countryRows(t, country) {
		if t.Year(r) == year {
			return r, true
		}
	}
	return 0, false
}

func countryRows(t *dataset.Table, country string) []int {
	var rows []int
	for i := 0; i < t.NumRows(); i++ {
		if t.Cell(i, "Country Name") == country {
			rows = append(rows, i)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return t.Year(rows[i]) < t.Year(rows[j]) })
	return rows
}
