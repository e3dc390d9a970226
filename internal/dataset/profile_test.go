package dataset

import (
	"strings"
	"testing"
)

func TestProfile(t *testing.T) {
	path := writeTemp(t, "mixed.csv",
		"year,migrants,region\n1990,100,NCR\n1991,200,NCR\n1992,,Region IV\n")
	tab, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	rep := Profile(tab, 2)
	if rep.Rows != 3 {
		t.Errorf("Rows = %d, want 3", rep.Rows)
	}
	if len(rep.Samples) != 2 {
		t.Errorf("expected 2 sample rows, got %d", len(rep.Samples))
	}
	byName := map[string]ColumnProfile{}
	for _, c := range rep.Cols {
		byName[c.Name] = c
	}
	mig := byName["migrants"]
	if mig.Kind != "numeric" {
		t.Fatalf("migrants kind = %q, want numeric", mig.Kind)
	}
	if mig.NonNull != 2 || mig.Missing != 1 {
		t.Errorf("migrants non-null/missing = %d/%d, want 2/1", mig.NonNull, mig.Missing)
	}
	if mig.Min != 100 || mig.Max != 200 || mig.Mean != 150 {
		t.Errorf("migrants stats = min %v max %v mean %v", mig.Min, mig.Max, mig.Mean)
	}
	reg := byName["region"]
	if reg.Kind != "categorical" || reg.Unique != 2 {
		t.Errorf("region profile = %+v", reg)
	}
	if reg.TopValues[0].Value != "NCR" || reg.TopValues[0].Count != 2 {
		t.Errorf("region top value = %+v", reg.TopValues)
	}
}

func TestProfileMarkdown(t *testing.T) {
	path := writeTemp(t, "small.csv", "year,v\n2000,1\n")
	tab, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	md := Profile(tab, 5).Markdown()
	for _, section := range []string{"[DATASET SUMMARY]", "[SCHEMA]", "[SAMPLE ROWS]", "Rows: 1"} {
		if !strings.Contains(md, section) {
			t.Errorf("markdown missing %q:\n%s", section, md)
		}
	}
}
