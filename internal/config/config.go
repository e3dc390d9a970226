package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DataDir is the directory holding the source CSV datasets.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Dataset filenames, resolved relative to DataDir.
	MergedDataset        string `mapstructure:"merged_dataset" yaml:"merged_dataset"`
	FlowsDataset         string `mapstructure:"flows_dataset" yaml:"flows_dataset"`
	OccupationDataset    string `mapstructure:"occupation_dataset" yaml:"occupation_dataset"`
	SexDataset           string `mapstructure:"sex_dataset" yaml:"sex_dataset"`
	SupplementaryDataset string `mapstructure:"supplementary_dataset" yaml:"supplementary_dataset"`

	// Ranking bounds for top/bottom-K selections.
	DefaultTopN int `mapstructure:"default_top_n" yaml:"default_top_n"`
	MinTopN     int `mapstructure:"min_top_n" yaml:"min_top_n"`
	MaxTopN     int `mapstructure:"max_top_n" yaml:"max_top_n"`

	// Chart output settings (inches).
	ChartWidthIn  float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`

	// ReportsDir is where saved report bundles are written.
	ReportsDir string `mapstructure:"reports_dir" yaml:"reports_dir"`
}

// DatasetPath resolves a configured dataset filename against DataDir.
// Absolute names are returned as-is.
func (c *Global) DatasetPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// ClampTopN bounds a caller-supplied top-N to the configured range.
func (c *Global) ClampTopN(n int) int {
	if n < c.MinTopN {
		return c.MinTopN
	}
	if n > c.MaxTopN {
		return c.MaxTopN
	}
	return n
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.ofwlens/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".ofwlens")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("OFWLENS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_dir", "data")
	v.SetDefault("merged_dataset", "merged_data.csv")
	v.SetDefault("flows_dataset", "clean_migration_origin_destination.csv")
	v.SetDefault("occupation_dataset", "occu_pivot.csv")
	v.SetDefault("sex_dataset", "sex_pivot.csv")
	v.SetDefault("supplementary_dataset", "all_countries_supplementary.csv")
	v.SetDefault("default_top_n", 10)
	v.SetDefault("min_top_n", 3)
	v.SetDefault("max_top_n", 20)
	v.SetDefault("chart_width_in", 14)
	v.SetDefault("chart_height_in", 8)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".ofwlens")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve reports_dir default: ~/.ofwlens/reports
	if c.ReportsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ReportsDir = filepath.Join(home, ".ofwlens", "reports")
	}
	return &c, nil
}
