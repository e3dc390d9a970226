package reshape

import (
	"github.com/ofwlens/ofwlens/internal/dataset"
)

// CategoryCount is one long-form row produced by melting a wide table:
// the count recorded for a category in a year.
type CategoryCount struct {
	Category string
	Year     int
	Count    float64
}

// Melt converts the recognized wide columns of a table into long-form
// category counts for a single year. Recognized columns absent from the
// table are skipped silently; if none are present, or the year has no
// row, the result is empty. An empty result means "no data", never a
// fabricated set of zero rows.
func Melt(t *dataset.Table, year int, recognized []string) []CategoryCount {
	rows := t.RowsForYear(year)
	if len(rows) == 0 {
		return nil
	}
	var out []CategoryCount
	for _, col := range recognized {
		if !t.HasColumn(col) {
			continue
		}
		var sum float64
		for _, r := range rows {
			sum += t.FloatOrZero(r, col)
		}
		out = append(out, CategoryCount{Category: col, Year: year, Count: sum})
	}
	return out
}

// Total sums the counts of a melted set.
func Total(set []CategoryCount) float64 {
	var sum float64
	for _, c := range set {
		sum += c.Count
	}
	return sum
}

// Filter returns the subset of set whose categories appear in keep,
// preserving the input order of set.
func Filter(set []CategoryCount, keep []string) []CategoryCount {
	allowed := make(map[string]bool, len(keep))
	for _, k := range keep {
		allowed[k] = true
	}
	var out []CategoryCount
	for _, c := range set {
		if allowed[c.Category] {
			out = append(out, c)
		}
	}
	return out
}
