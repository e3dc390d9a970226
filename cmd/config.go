package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/ofwlens/ofwlens/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set ofwlens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("data_dir: %s\n", cfg.DataDir)
		fmt.Printf("merged_dataset: %s\n", cfg.MergedDataset)
		fmt.Printf("flows_dataset: %s\n", cfg.FlowsDataset)
		fmt.Printf("occupation_dataset: %s\n", cfg.OccupationDataset)
		fmt.Printf("sex_dataset: %s\n", cfg.SexDataset)
		fmt.Printf("supplementary_dataset: %s\n", cfg.SupplementaryDataset)
		fmt.Printf("default_top_n: %d\n", cfg.DefaultTopN)
		fmt.Printf("min_top_n: %d\n", cfg.MinTopN)
		fmt.Printf("max_top_n: %d\n", cfg.MaxTopN)
		fmt.Printf("chart_width_in: %.1f\n", cfg.ChartWidthIn)
		fmt.Printf("chart_height_in: %.1f\n", cfg.ChartHeightIn)
		fmt.Printf("reports_dir: %s\n", cfg.ReportsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_dir":
			cfg.DataDir = val
		case "merged_dataset":
			cfg.MergedDataset = val
		case "flows_dataset":
			cfg.FlowsDataset = val
		case "occupation_dataset":
			cfg.OccupationDataset = val
		case "sex_dataset":
			cfg.SexDataset = val
		case "supplementary_dataset":
			cfg.SupplementaryDataset = val
		case "default_top_n", "min_top_n", "max_top_n":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			switch key {
			case "default_top_n":
				cfg.DefaultTopN = i
			case "min_top_n":
				cfg.MinTopN = i
			case "max_top_n":
				cfg.MaxTopN = i
			}
		case "chart_width_in", "chart_height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for %s: %v", key, val)
			}
			if key == "chart_width_in" {
				cfg.ChartWidthIn = f
			} else {
				cfg.ChartHeightIn = f
			}
		case "reports_dir":
			cfg.ReportsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
