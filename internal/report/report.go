package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ofwlens/ofwlens/internal/utils"
)

const bundleFileName = "report.json"

// Bundle records one saved analysis run: the command that produced it,
// when, and the artifact files written next to the manifest. Bundles
// live in per-run directories under the configured reports dir.
type Bundle struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Title     string    `json:"title"`
	Notes     []string  `json:"notes,omitempty"`
	Files     []string  `json:"files,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	rootDir string `json:"-"`
}

// New constructs an in-memory bundle rooted under reportsDir. Call
// Save() after adding artifacts to persist the manifest.
func New(reportsDir, command, title string) (*Bundle, error) {
	id := uuid.New().String()
	dir := filepath.Join(reportsDir, id)
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &Bundle{
		ID:        id,
		Command:   command,
		Title:     title,
		CreatedAt: time.Now(),
		rootDir:   dir,
	}, nil
}

// RootDir returns the on-disk directory of the bundle.
func (b *Bundle) RootDir() string { return b.rootDir }

// ArtifactPath returns the path an artifact with the given base name
// should be written to, and records it in the manifest.
func (b *Bundle) ArtifactPath(base string) string {
	b.Files = append(b.Files, base)
	return filepath.Join(b.rootDir, base)
}

// AddNote appends a free-form note, e.g. an estimation caveat.
func (b *Bundle) AddNote(note string) {
	b.Notes = append(b.Notes, note)
}

// Save writes the manifest atomically.
func (b *Bundle) Save() error {
	data, err := utils.PrettyJSON(b)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(b.rootDir, bundleFileName), data)
}

// Load reads a bundle manifest from its directory.
func Load(dir string) (*Bundle, error) {
	raw, err := os.ReadFile(filepath.Join(dir, bundleFileName))
	if err != nil {
		return nil, fmt.Errorf("read report manifest: %w", err)
	}
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse report manifest: %w", err)
	}
	b.rootDir = dir
	return &b, nil
}

// List loads every bundle under reportsDir, newest first. A missing
// reports dir yields an empty list.
func List(reportsDir string) ([]*Bundle, error) {
	entries, err := os.ReadDir(reportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read reports dir: %w", err)
	}
	var out []*Bundle
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		b, err := Load(filepath.Join(reportsDir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
