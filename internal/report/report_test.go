package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBundleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b, err := New(dir, "joint", "Education x Occupation, 1990")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.AddNote("estimation caveat")
	art := b.ArtifactPath("heatmap.png")
	if filepath.Dir(art) != b.RootDir() {
		t.Errorf("artifact path %q not under bundle root %q", art, b.RootDir())
	}
	if err := os.WriteFile(art, []byte("png"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(b.RootDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ID != b.ID || loaded.Command != "joint" || loaded.Title != b.Title {
		t.Errorf("loaded bundle = %+v", loaded)
	}
	if len(loaded.Files) != 1 || loaded.Files[0] != "heatmap.png" {
		t.Errorf("loaded files = %v", loaded.Files)
	}
	if len(loaded.Notes) != 1 {
		t.Errorf("loaded notes = %v", loaded.Notes)
	}
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	older, err := New(dir, "flows", "older")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	older.CreatedAt = time.Now().Add(-time.Hour)
	if err := older.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	newer, err := New(dir, "joint", "newer")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := newer.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bundles, got %d", len(got))
	}
	if got[0].Title != "newer" || got[1].Title != "older" {
		t.Errorf("order = [%s, %s], want newest first", got[0].Title, got[1].Title)
	}
}

func TestListMissingDir(t *testing.T) {
	got, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}
