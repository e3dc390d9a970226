package indicators

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ofwlens/ofwlens/internal/dataset"
	"github.com/ofwlens/ofwlens/internal/flows"
)

func loadSupplementary(t *testing.T) *dataset.Table {
	t.Helper()
	header := fmt.Sprintf("Country Name,Year,%q,%q,%q,%q,%q,%q\n",
		LifeExpectancy, HealthSpend, Unemployment, Diabetes, Hypertension, MortalityFemale)
	content := header +
		"Canada,2019,82.0,7.8,5.7,7.6,,60.1\n" +
		"Canada,2018,81.9,7.7,5.8,,,61.0\n" +
		"Japan,2019,84.4,9.2,2.4,5.6,27.0,40.2\n"
	path := filepath.Join(t.TempDir(), "supp.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	tab, err := dataset.LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	return tab
}

func TestCountryYear(t *testing.T) {
	tab := loadSupplementary(t)
	values, ok := CountryYear(tab, "Canada", 2019)
	if !ok {
		t.Fatal("expected readings for Canada 2019")
	}
	if len(values) != len(Columns) {
		t.Fatalf("expected %d values, got %d", len(Columns), len(values))
	}
	byCol := map[string]Value{}
	for _, v := range values {
		byCol[v.Column] = v
	}
	if v := byCol[LifeExpectancy]; !v.OK || v.Value != 82.0 {
		t.Errorf("life expectancy = %+v", v)
	}
	if v := byCol[Hypertension]; v.OK {
		t.Errorf("missing reading must be reported as no data, got %+v", v)
	}
	if _, ok := CountryYear(tab, "Canada", 1900); ok {
		t.Error("absent year should report no row")
	}
	if _, ok := CountryYear(tab, "Atlantis", 2019); ok {
		t.Error("absent country should report no row")
	}
}

func TestTrends(t *testing.T) {
	tab := loadSupplementary(t)
	trends := Trends(tab, "Canada")
	byCol := map[string]Trend{}
	for _, tr := range trends {
		byCol[tr.Column] = tr
	}
	le, ok := byCol[LifeExpectancy]
	if !ok {
		t.Fatal("expected a life expectancy trend")
	}
	// rows sort by year: 2018 first, 2019 last
	if le.First != 81.9 || le.Last != 82.0 || le.Points != 2 {
		t.Errorf("trend = %+v", le)
	}
	if _, ok := byCol[Diabetes]; ok {
		t.Error("single-point indicator must not yield a trend")
	}
	if got := Trends(tab, "Japan"); len(got) != 0 {
		t.Errorf("one-row country should have no trends, got %v", got)
	}
}

func TestCountriesAndYears(t *testing.T) {
	tab := loadSupplementary(t)
	if got := Countries(tab); !reflect.DeepEqual(got, []string{"Canada", "Japan"}) {
		t.Errorf("Countries = %v", got)
	}
	if got := YearsForCountry(tab, "Canada"); !reflect.DeepEqual(got, []int{2018, 2019}) {
		t.Errorf("YearsForCountry = %v", got)
	}
}

func TestMigrantMerge(t *testing.T) {
	all := []flows.Flow{
		{Year: 2019, Origin: "NCR", Destination: "Canada", Migrants: 100},
		{Year: 2019, Origin: "Region IV", Destination: "Canada", Migrants: 50},
		{Year: 2018, Origin: "NCR", Destination: "Japan", Migrants: 30},
	}
	totals := MigrantTotals(all)
	if m, ok := MigrantsFor(totals, "Canada", 2019); !ok || m != 150 {
		t.Errorf("MigrantsFor(Canada, 2019) = (%v, %v), want (150, true)", m, ok)
	}
	if _, ok := MigrantsFor(totals, "Japan", 2019); ok {
		t.Error("unmatched pair must report no migrants, not zero")
	}
	if m, ok := MigrantsFor(totals, "CANADA", 2019); !ok || m != 150 {
		t.Errorf("country match must go through normalization, got (%v, %v)", m, ok)
	}
}
