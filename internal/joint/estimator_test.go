package joint

import (
	"math"
	"testing"

	"github.com/ofwlens/ofwlens/internal/reshape"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimate(t *testing.T) {
	educ := []reshape.CategoryCount{
		{Category: "college", Year: 1990, Count: 600},
		{Category: "elementary", Year: 1990, Count: 400},
	}
	occ := []reshape.CategoryCount{
		{Category: "nurse", Year: 1990, Count: 300},
		{Category: "farmer", Year: 1990, Count: 700},
	}
	cells, ok := Estimate(educ, occ, 1990)
	if !ok {
		t.Fatal("Estimate reported undefined for well-formed inputs")
	}
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}

	want := map[[2]string]float64{
		{"college", "nurse"}:     18,
		{"college", "farmer"}:    42,
		{"elementary", "nurse"}:  12,
		{"elementary", "farmer"}: 28,
	}
	var sum float64
	for _, c := range cells {
		w, found := want[[2]string{c.CategoryA, c.CategoryB}]
		if !found {
			t.Fatalf("unexpected cell %s x %s", c.CategoryA, c.CategoryB)
		}
		if !almostEqual(c.Percent, w) {
			t.Errorf("%s x %s = %v%%, want %v%%", c.CategoryA, c.CategoryB, c.Percent, w)
		}
		if c.Year != 1990 {
			t.Errorf("cell year = %d, want 1990", c.Year)
		}
		sum += c.Percent
	}
	if !almostEqual(sum, 100) {
		t.Errorf("cell percentages sum to %v, want 100", sum)
	}

	strongest, ok := Strongest(cells)
	if !ok {
		t.Fatal("Strongest reported no cells")
	}
	if strongest.CategoryA != "college" || strongest.CategoryB != "farmer" || !almostEqual(strongest.Percent, 42) {
		t.Errorf("strongest = %s x %s (%v%%), want college x farmer (42%%)", strongest.CategoryA, strongest.CategoryB, strongest.Percent)
	}
}

func TestEstimateDeterministicOrder(t *testing.T) {
	a := []reshape.CategoryCount{{Category: "x", Count: 1}, {Category: "y", Count: 1}}
	b := []reshape.CategoryCount{{Category: "p", Count: 1}, {Category: "q", Count: 1}}
	cells, ok := Estimate(a, b, 2000)
	if !ok || len(cells) != 4 {
		t.Fatalf("Estimate = (%v, %v)", cells, ok)
	}
	order := []string{"x/p", "x/q", "y/p", "y/q"}
	for i, c := range cells {
		if got := c.CategoryA + "/" + c.CategoryB; got != order[i] {
			t.Errorf("cell %d = %s, want %s", i, got, order[i])
		}
	}
}

func TestEstimateUndefined(t *testing.T) {
	some := []reshape.CategoryCount{{Category: "a", Count: 10}}
	zero := []reshape.CategoryCount{{Category: "b", Count: 0}}

	cases := []struct {
		name string
		a, b []reshape.CategoryCount
	}{
		{"empty a", nil, some},
		{"empty b", some, nil},
		{"zero total a", zero, some},
		{"zero total b", some, zero},
	}
	for _, tc := range cases {
		cells, ok := Estimate(tc.a, tc.b, 1990)
		if ok {
			t.Errorf("%s: expected undefined joint", tc.name)
		}
		if cells != nil {
			t.Errorf("%s: undefined joint must produce no cells, got %d", tc.name, len(cells))
		}
	}
}
