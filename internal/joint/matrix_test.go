package joint

import (
	"reflect"
	"testing"

	"github.com/ofwlens/ofwlens/internal/reshape"
)

func sampleCells(t *testing.T) []Cell {
	t.Helper()
	a := []reshape.CategoryCount{
		{Category: "college", Count: 600},
		{Category: "elementary", Count: 400},
	}
	b := []reshape.CategoryCount{
		{Category: "nurse", Count: 300},
		{Category: "farmer", Count: 700},
	}
	cells, ok := Estimate(a, b, 1990)
	if !ok {
		t.Fatal("Estimate failed for sample cells")
	}
	return cells
}

func TestBuildMatrixDefaultOrders(t *testing.T) {
	m := BuildMatrix(sampleCells(t), nil, nil)
	if m == nil {
		t.Fatal("BuildMatrix returned nil for non-empty cells")
	}
	if !reflect.DeepEqual(m.Rows, []string{"elementary", "college"}) {
		t.Errorf("default row order = %v, want reverse-alphabetical", m.Rows)
	}
	if !reflect.DeepEqual(m.Cols, []string{"farmer", "nurse"}) {
		t.Errorf("default col order = %v, want alphabetical", m.Cols)
	}
	// elementary x farmer sits at [0][0]
	if m.Percent[0][0] != 28 {
		t.Errorf("Percent[0][0] = %v, want 28", m.Percent[0][0])
	}
	if m.Labels[0][0] != "28.0%" {
		t.Errorf("Labels[0][0] = %q, want 28.0%%", m.Labels[0][0])
	}
}

func TestBuildMatrixExplicitOrders(t *testing.T) {
	m := BuildMatrix(sampleCells(t), []string{"college", "elementary", "ghost"}, []string{"nurse", "farmer"})
	if !reflect.DeepEqual(m.Rows, []string{"college", "elementary"}) {
		t.Errorf("rows = %v, absent categories must be filtered out", m.Rows)
	}
	if m.Percent[0][0] != 18 || m.Percent[0][1] != 42 {
		t.Errorf("first row = %v, want [18 42]", m.Percent[0])
	}
	lo, hi := m.MinMax()
	if lo != 12 || hi != 42 {
		t.Errorf("MinMax = (%v, %v), want (12, 42)", lo, hi)
	}
}

func TestBuildMatrixEmpty(t *testing.T) {
	if m := BuildMatrix(nil, nil, nil); m != nil {
		t.Errorf("BuildMatrix(nil) = %+v, want nil", m)
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{42, "42.0%"},
		{1, "1.0%"},
		{0.5, "0.50%"},
		{0.04, "0.04%"},
		{0, "0.00%"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.in); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
