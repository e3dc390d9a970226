package joint

import (
	"sort"

	"github.com/ofwlens/ofwlens/internal/reshape"
)

// Rank returns a copy of set ordered by count descending. Ties break by
// category name ascending so the ordering is deterministic regardless
// of input order.
func Rank(set []reshape.CategoryCount) []reshape.CategoryCount {
	out := append([]reshape.CategoryCount(nil), set...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Category < out[j].Category
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// TopK returns the names of the k highest-count categories. If fewer
// than k exist, all are returned.
func TopK(set []reshape.CategoryCount, k int) []string {
	ranked := Rank(set)
	if k > len(ranked) {
		k = len(ranked)
	}
	names := make([]string, 0, k)
	for _, c := range ranked[:k] {
		names = append(names, c.Category)
	}
	return names
}

// BottomK returns the names of the k lowest-count categories, lowest
// first. Ties break by category name ascending, mirroring TopK.
func BottomK(set []reshape.CategoryCount, k int) []string {
	out := append([]reshape.CategoryCount(nil), set...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Category < out[j].Category
		}
		return out[i].Count < out[j].Count
	})
	if k > len(out) {
		k = len(out)
	}
	names := make([]string, 0, k)
	for _, c := range out[:k] {
		names = append(names, c.Category)
	}
	return names
}

// Strongest returns the cell with the maximum percent, for narrative
// text. Ties break by (CategoryA, CategoryB) ascending. ok is false for
// an empty cell set.
func Strongest(cells []Cell) (Cell, bool) {
	if len(cells) == 0 {
		return Cell{}, false
	}
	best := cells[0]
	for _, c := range cells[1:] {
		if c.Percent > best.Percent {
			best = c
			continue
		}
		if c.Percent == best.Percent {
			if c.CategoryA < best.CategoryA ||
				(c.CategoryA == best.CategoryA && c.CategoryB < best.CategoryB) {
				best = c
			}
		}
	}
	return best, true
}
