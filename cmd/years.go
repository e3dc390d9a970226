package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var yearsDatasetFlag string

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the years available in a dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		name := yearsDatasetFlag
		if name == "" {
			name = c.MergedDataset
		}
		t, err := loadDataset(name)
		if err != nil {
			return err
		}
		years := t.Years()
		if len(years) == 0 {
			fmt.Printf("⚠ No valid years found in %s\n", t.Name)
			return nil
		}
		for _, y := range years {
			fmt.Println(y)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(yearsCmd)
	yearsCmd.Flags().StringVar(&yearsDatasetFlag, "dataset", "", "dataset filename (default: the merged dataset)")
}
