package joint

import (
	"fmt"
	"sort"
)

// Matrix is the renderable view of a joint cell set: explicit row and
// column orders plus the percent grid and formatted cell labels. It is
// the hand-off shape for charts and workbook exports.
type Matrix struct {
	Rows    []string // category A order, top to bottom
	Cols    []string // category B order, left to right
	Percent [][]float64
	Labels  [][]string
}

// BuildMatrix arranges cells into a grid. A nil colOrder sorts the B
// categories alphabetically; a nil rowOrder sorts the A categories
// reverse-alphabetically so the first category reads from the top of a
// rendered heatmap. Orders listing categories not present in the cells
// are filtered down to the present ones.
func BuildMatrix(cells []Cell, rowOrder, colOrder []string) *Matrix {
	if len(cells) == 0 {
		return nil
	}
	rowSet := map[string]bool{}
	colSet := map[string]bool{}
	byPair := map[[2]string]float64{}
	for _, c := range cells {
		rowSet[c.CategoryA] = true
		colSet[c.CategoryB] = true
		byPair[[2]string{c.CategoryA, c.CategoryB}] = c.Percent
	}

	rows := orderedSubset(rowOrder, rowSet)
	if rows == nil {
		rows = sortedKeys(rowSet)
		sort.Sort(sort.Reverse(sort.StringSlice(rows)))
	}
	cols := orderedSubset(colOrder, colSet)
	if cols == nil {
		cols = sortedKeys(colSet)
	}

	m := &Matrix{Rows: rows, Cols: cols}
	m.Percent = make([][]float64, len(rows))
	m.Labels = make([][]string, len(rows))
	for i, r := range rows {
		m.Percent[i] = make([]float64, len(cols))
		m.Labels[i] = make([]string, len(cols))
		for j, c := range cols {
			v := byPair[[2]string{r, c}]
			m.Percent[i][j] = v
			m.Labels[i][j] = FormatPercent(v)
		}
	}
	return m
}

// FormatPercent renders a percentage with adaptive precision: one
// decimal at or above 1%, two decimals below.
func FormatPercent(v float64) string {
	if v >= 1 {
		return fmt.Sprintf("%.1f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// MinMax returns the smallest and largest percent in the grid.
func (m *Matrix) MinMax() (lo, hi float64) {
	lo, hi = m.Percent[0][0], m.Percent[0][0]
	for _, row := range m.Percent {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func orderedSubset(order []string, present map[string]bool) []string {
	if order == nil {
		return nil
	}
	out := make([]string, 0, len(order))
	for _, v := range order {
		if present[v] {
			out = append(out, v)
		}
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
