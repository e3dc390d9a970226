package gender

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ofwlens/ofwlens/internal/dataset"
	"github.com/ofwlens/ofwlens/internal/reshape"
)

func loadSexTable(t *testing.T) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sex_pivot.csv")
	content := "year,male,female\n1990,400,600\n1991,0,0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	tab, err := dataset.LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	return tab
}

func TestSharesForYear(t *testing.T) {
	tab := loadSexTable(t)
	s, ok := SharesForYear(tab, 1990)
	if !ok {
		t.Fatal("expected shares for 1990")
	}
	if s.Male != 400 || s.Female != 600 {
		t.Fatalf("shares = %+v", s)
	}
	if got := s.MaleShare(); got != 0.4 {
		t.Errorf("MaleShare = %v, want 0.4", got)
	}
	if got := s.FemaleShare(); got != 0.6 {
		t.Errorf("FemaleShare = %v, want 0.6", got)
	}
	if _, ok := SharesForYear(tab, 1985); ok {
		t.Error("absent year should report no shares")
	}
}

func TestSharesEvenSplitDefault(t *testing.T) {
	tab := loadSexTable(t)
	s, ok := SharesForYear(tab, 1991)
	if !ok {
		t.Fatal("year 1991 has a row, shares should load")
	}
	if got := s.MaleShare(); got != 0.5 {
		t.Errorf("zero-total MaleShare = %v, want 0.5", got)
	}
}

func TestEstimate(t *testing.T) {
	occ := []reshape.CategoryCount{
		{Category: "nurse", Count: 300},
		{Category: "farmer", Count: 701},
	}
	splits := Estimate(occ, Shares{Year: 1990, Male: 400, Female: 600})
	if len(splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(splits))
	}
	if splits[0].Male != 120 || splits[0].Female != 180 {
		t.Errorf("nurse split = %+v, want 120/180", splits[0])
	}
	// 701 * 0.4 = 280.4 rounds down, 701 * 0.6 = 420.6 rounds up
	if splits[1].Male != 280 || splits[1].Female != 421 {
		t.Errorf("farmer split = %+v, want 280/421", splits[1])
	}
}
