package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// Report is a markdown-friendly profile of a loaded dataset, used by
// the inspect command to sanity-check source files before analysis.
type Report struct {
	Name    string
	Rows    int
	Cols    []ColumnProfile
	Samples [][]string
}

// ColumnProfile captures inferred type and summary statistics for one
// column.
type ColumnProfile struct {
	Name    string
	Kind    string // numeric|categorical|text|unknown
	NonNull int
	Missing int
	Unique  int
	// Numeric summaries
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
	// Categorical top values
	TopValues []ValueCount
}

// ValueCount is a categorical value and its frequency.
type ValueCount struct {
	Value string
	Count int
}

// Profile computes a Report over the table, keeping up to sampleRows
// example rows.
func Profile(t *Table, sampleRows int) *Report {
	if sampleRows <= 0 {
		sampleRows = 5
	}
	rep := &Report{Name: t.Name, Rows: t.NumRows()}
	for i := 0; i < t.NumRows() && i < sampleRows; i++ {
		row := make([]string, len(t.Header))
		for j, h := range t.Header {
			row[j] = t.Cell(i, h)
		}
		rep.Samples = append(rep.Samples, row)
	}

	for _, h := range t.Header {
		p := ColumnProfile{Name: h}
		var nums []float64
		cats := map[string]int{}
		textCnt := 0
		for i := 0; i < t.NumRows(); i++ {
			v := t.Cell(i, h)
			if v == "" {
				p.Missing++
				continue
			}
			p.NonNull++
			if x, ok := parseNumber(v); ok {
				nums = append(nums, x)
				continue
			}
			textCnt++
			if len(v) <= 64 {
				cats[v]++
			}
		}
		switch {
		case len(nums) > 0 && len(nums) >= textCnt:
			p.Kind = "numeric"
			p.Min, _ = stats.Min(nums)
			p.Max, _ = stats.Max(nums)
			p.Mean, _ = stats.Mean(nums)
			p.Median, _ = stats.Median(nums)
			if len(nums) > 1 {
				p.Std, _ = stats.StandardDeviationSample(nums)
			}
		case len(cats) > 0:
			p.Kind = "categorical"
			p.Unique = len(cats)
			p.TopValues = topValues(cats, 8)
		case textCnt > 0:
			p.Kind = "text"
		default:
			p.Kind = "unknown"
		}
		rep.Cols = append(rep.Cols, p)
	}
	return rep
}

func topValues(cats map[string]int, n int) []ValueCount {
	out := make([]ValueCount, 0, len(cats))
	for v, c := range cats {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Markdown renders a compact profile suitable for the terminal or a
// saved report file.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)", c.Name, c.Kind, c.NonNull, missPct))
		switch c.Kind {
		case "numeric":
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, median %.4g, std %.4g",
				c.Min, c.Max, c.Mean, c.Median, c.Std))
		case "categorical":
			if len(c.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
				if c.Unique > len(c.TopValues) {
					b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
				}
			}
		}
		b.WriteString("\n")
	}

	if len(r.Samples) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| ")
		for i, c := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(c.Name)
		}
		b.WriteString(" |\n| ")
		for i := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString("---")
		}
		b.WriteString(" |\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i := range r.Cols {
				if i > 0 {
					b.WriteString(" | ")
				}
				val := ""
				if i < len(row) {
					val = row[i]
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	return b.String()
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
