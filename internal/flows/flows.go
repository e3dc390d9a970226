package flows

import (
	"fmt"
	"sort"

	"github.com/ofwlens/ofwlens/internal/dataset"
	"github.com/ofwlens/ofwlens/internal/names"
)

// Flow is one migration record: migrants moving from an origin region
// to a destination country in a year.
type Flow struct {
	Year        int
	Origin      string
	Destination string // display name
	Migrants    float64
}

// Selection is a request-scoped filter over the flow table. Zero values
// mean "all": Year 0 selects every year, empty Origin every region,
// empty Destination every country.
type Selection struct {
	Year        int
	Origin      string
	Destination string
}

// DestinationTotal is the aggregated migrant count for one destination.
type DestinationTotal struct {
	Destination string
	Migrants    float64
}

// FromTable converts a loaded origin/destination table into flow
// records. Destination names are normalized and mapped to display
// names; unmapped countries keep their raw spelling.
func FromTable(t *dataset.Table) ([]Flow, error) {
	for _, col := range []string{"year", "origin_region", "destination_country", "migrants"} {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("dataset %s: missing required column %q", t.Name, col)
		}
	}
	out := make([]Flow, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		dest := t.Cell(i, "destination_country")
		switch dest {
		case "PHILIPPINES", "REPUBLIC OF THE PHILIPPINES":
			dest = "Philippines"
		}
		key := names.Normalize(dest)
		display := names.Display(key)
		out = append(out, Flow{
			Year:        t.Year(i),
			Origin:      t.Cell(i, "origin_region"),
			Destination: display,
			Migrants:    t.FloatOrZero(i, "migrants"),
		})
	}
	return out, nil
}

// Filter returns the flows matching the selection, in input order.
func Filter(all []Flow, sel Selection) []Flow {
	var out []Flow
	for _, f := range all {
		if sel.Year != 0 && f.Year != sel.Year {
			continue
		}
		if sel.Origin != "" && f.Origin != sel.Origin {
			continue
		}
		if sel.Destination != "" && f.Destination != sel.Destination {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Total sums the migrants of a flow set.
func Total(flows []Flow) float64 {
	var sum float64
	for _, f := range flows {
		sum += f.Migrants
	}
	return sum
}

// DestinationTotals aggregates migrants per destination, dropping
// destinations with zero totals, ordered by migrants descending with
// ties broken by destination name ascending.
func DestinationTotals(flows []Flow) []DestinationTotal {
	byDest := map[string]float64{}
	for _, f := range flows {
		byDest[f.Destination] += f.Migrants
	}
	out := make([]DestinationTotal, 0, len(byDest))
	for d, m := range byDest {
		if m > 0 {
			out = append(out, DestinationTotal{Destination: d, Migrants: m})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Migrants == out[j].Migrants {
			return out[i].Destination < out[j].Destination
		}
		return out[i].Migrants > out[j].Migrants
	})
	return out
}

// Top returns the first n destination totals; all of them if fewer.
func Top(totals []DestinationTotal, n int) []DestinationTotal {
	if n > len(totals) {
		n = len(totals)
	}
	return totals[:n]
}

// CumulativeTotal sums migrants across all flows up to and including
// the given year, ignoring the origin/destination filters. It backs the
// "total migrant population as of year X" figure.
func CumulativeTotal(all []Flow, year int) float64 {
	var sum float64
	for _, f := range all {
		if f.Year != 0 && f.Year <= year {
			sum += f.Migrants
		}
	}
	return sum
}

// YearOverYear compares the selection's total against the previous year
// under the same origin/destination filters. ok is false when the
// previous year is absent from the data or had a zero total, in which
// case no percent change is defined.
func YearOverYear(all []Flow, sel Selection) (pct float64, prevYear int, ok bool) {
	if sel.Year == 0 {
		return 0, 0, false
	}
	prevYear = sel.Year - 1
	prevSel := sel
	prevSel.Year = prevYear
	prev := Total(Filter(all, prevSel))
	if prev <= 0 {
		return 0, prevYear, false
	}
	cur := Total(Filter(all, sel))
	return (cur - prev) / prev * 100.0, prevYear, true
}

// Years returns the sorted distinct years of the flow set, excluding
// the zero sentinel.
func Years(all []Flow) []int {
	seen := map[int]bool{}
	for _, f := range all {
		if f.Year != 0 {
			seen[f.Year] = true
		}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// Origins returns the sorted distinct origin regions.
func Origins(all []Flow) []string {
	return distinct(all, func(f Flow) string { return f.Origin })
}

// Destinations returns the sorted distinct destination display names.
func Destinations(all []Flow) []string {
	return distinct(all, func(f Flow) string { return f.Destination })
}

func distinct(all []Flow, key func(Flow) string) []string {
	seen := map[string]bool{}
	for _, f := range all {
		if k := key(f); k != "" {
			seen[k] = true
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
