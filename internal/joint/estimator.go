package joint

import (
	"github.com/ofwlens/ofwlens/internal/reshape"
)

// EstimationNote must accompany any surfaced joint distribution: the
// percentages are a modeling approximation, not measured co-occurrence.
const EstimationNote = "Percentages are proportional estimates assuming independence " +
	"between the two distributions; they do not reflect measured co-occurrence."

// Cell is one entry of the cross-product proportional distribution
// between two marginal category sets for a single year.
type Cell struct {
	CategoryA string
	CountA    float64
	CategoryB string
	CountB    float64
	Year      int
	Percent   float64
}

// Estimate computes the independence-assumption joint distribution of
// two marginals restricted to one year:
//
//	percent = countA/totalA * countB/totalB * 100
//
// The result covers every (a, b) pair, a-major in input order, so its
// size is len(a) * len(b) and the ordering is deterministic.
//
// ok is false when either set is empty or has a non-positive total. The
// joint is undefined then, which is not the same as a joint of zeros:
// no cells are produced at all.
func Estimate(a, b []reshape.CategoryCount, year int) (cells []Cell, ok bool) {
	if len(a) == 0 || len(b) == 0 {
		return nil, false
	}
	totalA := reshape.Total(a)
	totalB := reshape.Total(b)
	if totalA <= 0 || totalB <= 0 {
		return nil, false
	}
	cells = make([]Cell, 0, len(a)*len(b))
	for _, ca := range a {
		propA := ca.Count / totalA
		for _, cb := range b {
			cells = append(cells, Cell{
				CategoryA: ca.Category,
				CountA:    ca.Count,
				CategoryB: cb.Category,
				CountB:    cb.Count,
				Year:      year,
				Percent:   propA * (cb.Count / totalB) * 100.0,
			})
		}
	}
	return cells, true
}
