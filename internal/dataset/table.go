package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Table is an immutable tabular dataset loaded from CSV. Rows are kept
// as raw string cells; numeric access parses on demand with missing
// values treated as zero, matching how the source datasets encode
// aggregated counts.
type Table struct {
	Name   string
	Header []string

	records [][]string
	colIdx  map[string]int
	yearIdx int
}

// LoadCSV reads a CSV or TSV file into a Table. The delimiter is
// sniffed from the file extension. A missing or malformed file is fatal
// for the load; an empty file yields an empty table.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = sniffDelimiter(path)

	t := &Table{Name: filepath.Base(path), colIdx: map[string]int{}, yearIdx: -1}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = h
		t.colIdx[strings.ToLower(h)] = i
	}
	t.Header = header
	if idx, ok := t.colIdx["year"]; ok {
		t.yearIdx = idx
	}

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.records)+1, err)
		}
		if len(rec) < len(header) {
			tmp := make([]string, len(header))
			copy(tmp, rec)
			rec = tmp
		}
		t.records = append(t.records, rec)
	}
	return t, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

// NumRows reports the number of data rows (header excluded).
func (t *Table) NumRows() int { return len(t.records) }

// Col returns the index of a column by case-insensitive name.
func (t *Table) Col(name string) (int, bool) {
	idx, ok := t.colIdx[strings.ToLower(strings.TrimSpace(name))]
	return idx, ok
}

// HasColumn reports whether a column is present.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Col(name)
	return ok
}

// Cell returns the raw trimmed cell value, or "" when the column is
// absent or the row index is out of range.
func (t *Table) Cell(row int, name string) string {
	idx, ok := t.Col(name)
	if !ok || row < 0 || row >= len(t.records) {
		return ""
	}
	if idx >= len(t.records[row]) {
		return ""
	}
	return strings.TrimSpace(t.records[row][idx])
}

// Float parses a cell as a number. The second return is false for a
// missing column, an empty cell, or an unparseable value, so callers
// can tell "no data" apart from a measured zero.
func (t *Table) Float(row int, name string) (float64, bool) {
	v := t.Cell(row, name)
	if v == "" {
		return 0, false
	}
	return parseNumber(v)
}

// FloatOrZero parses a cell as a number, treating missing values as
// zero. Use only for aggregated count columns where the sources encode
// absence as zero.
func (t *Table) FloatOrZero(row int, name string) float64 {
	f, _ := t.Float(row, name)
	return f
}

// Year returns the year of a row, or 0 when the year column is absent
// or the cell does not parse as an integer.
func (t *Table) Year(row int) int {
	if t.yearIdx < 0 || row < 0 || row >= len(t.records) {
		return 0
	}
	rec := t.records[row]
	if t.yearIdx >= len(rec) {
		return 0
	}
	f, ok := parseNumber(strings.TrimSpace(rec[t.yearIdx]))
	if !ok {
		return 0
	}
	return int(f)
}

// Years returns the sorted distinct years present in the table. Rows
// whose year cell did not parse carry the zero sentinel and are
// excluded.
func (t *Table) Years() []int {
	seen := map[int]bool{}
	for i := range t.records {
		if y := t.Year(i); y != 0 {
			seen[y] = true
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// RowsForYear returns the indices of all rows for the given year, in
// file order. An empty result means the year is absent.
func (t *Table) RowsForYear(year int) []int {
	var rows []int
	for i := range t.records {
		if t.Year(i) == year {
			rows = append(rows, i)
		}
	}
	return rows
}

// parseNumber parses a numeric cell with auto-detected decimal and
// thousands separators, tolerating percent signs and non-breaking
// spaces.
func parseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, "\u00A0", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	dec := '.'
	cpos := strings.LastIndex(raw, ",")
	dpos := strings.LastIndex(raw, ".")
	if cpos >= 0 && dpos >= 0 && cpos > dpos {
		dec = ','
	} else if cpos >= 0 && dpos < 0 {
		// A lone comma is a decimal separator only if it has at most
		// two trailing digits; "1,000" is a thousands group.
		if len(raw)-cpos-1 <= 2 {
			dec = ','
		}
	}
	for _, sep := range []rune{',', '.', ' '} {
		if sep != dec {
			raw = strings.ReplaceAll(raw, string(sep), "")
		}
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
