package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	cfgpkg "github.com/ofwlens/ofwlens/internal/config"
	"github.com/ofwlens/ofwlens/internal/dataset"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	flagDataDir string

	// Loaded configuration
	cfg *cfgpkg.Global

	// Shared read-through table cache; sources are static per process.
	tables = dataset.NewCache()
)

var rootCmd = &cobra.Command{
	Use:   "ofwlens",
	Short: "ofwlens: explore Filipino overseas-worker migration statistics",
	Long: `ofwlens loads the CSV datasets behind the CFO migration statistics,
reshapes them, and computes proportional distributions, rankings, and
country indicators, with optional chart and workbook exports.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.ofwlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the source CSV datasets (overrides config)")
}

func loadConfig() {
	log.SetHandler(cli.New(os.Stderr))
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	log.Debugf("config loaded: data dir %s", cfg.DataDir)
}

// requireConfig returns the loaded configuration or an error for
// commands that cannot run without one.
func requireConfig() (*cfgpkg.Global, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no configuration loaded; check --config")
	}
	return cfg, nil
}

// loadDataset resolves a configured dataset filename and loads it
// through the shared cache.
func loadDataset(name string) (*dataset.Table, error) {
	c, err := requireConfig()
	if err != nil {
		return nil, err
	}
	path := c.DatasetPath(name)
	log.Debugf("loading dataset %s", path)
	t, err := tables.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return t, nil
}
