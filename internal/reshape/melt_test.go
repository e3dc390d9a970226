package reshape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ofwlens/ofwlens/internal/dataset"
)

func loadTable(t *testing.T, content string) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wide.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	tab, err := dataset.LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	return tab
}

func TestMelt(t *testing.T) {
	tab := loadTable(t, "year,college,elementary,unrelated\n1990,600,400,9\n1991,550,450,9\n")
	got := Melt(tab, 1990, []string{"college", "elementary"})
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Category != "college" || got[0].Count != 600 || got[0].Year != 1990 {
		t.Errorf("unexpected first row: %+v", got[0])
	}
	if got[1].Category != "elementary" || got[1].Count != 400 {
		t.Errorf("unexpected second row: %+v", got[1])
	}
	for _, c := range got {
		if c.Category == "unrelated" {
			t.Error("unrecognized column leaked into the melt")
		}
	}
}

func TestMeltSkipsAbsentColumns(t *testing.T) {
	tab := loadTable(t, "year,college\n1990,600\n")
	got := Melt(tab, 1990, []string{"college", "vocational", "elementary"})
	if len(got) != 1 || got[0].Category != "college" {
		t.Fatalf("expected only the present column, got %+v", got)
	}
}

func TestMeltNoDataForYear(t *testing.T) {
	tab := loadTable(t, "year,college\n1990,600\n")
	if got := Melt(tab, 1985, []string{"college"}); got != nil {
		t.Fatalf("absent year must yield an empty melt, got %+v", got)
	}
}

func TestMeltSumsMultipleRows(t *testing.T) {
	tab := loadTable(t, "year,college\n1990,600\n1990,100\n")
	got := Melt(tab, 1990, []string{"college"})
	if len(got) != 1 || got[0].Count != 700 {
		t.Fatalf("expected summed count 700, got %+v", got)
	}
}

func TestTotal(t *testing.T) {
	set := []CategoryCount{{Category: "a", Count: 600}, {Category: "b", Count: 400}}
	if got := Total(set); got != 1000 {
		t.Errorf("Total = %v, want 1000", got)
	}
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil) = %v, want 0", got)
	}
}

func TestFilter(t *testing.T) {
	set := []CategoryCount{
		{Category: "a", Count: 1},
		{Category: "b", Count: 2},
		{Category: "c", Count: 3},
	}
	got := Filter(set, []string{"c", "a"})
	if len(got) != 2 || got[0].Category != "a" || got[1].Category != "c" {
		t.Fatalf("Filter should preserve input order, got %+v", got)
	}
}
