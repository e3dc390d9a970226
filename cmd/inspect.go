package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofwlens/ofwlens/internal/dataset"
)

var (
	insSampleRows int
	insOutputPath string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Profile a CSV/TSV dataset and produce a concise summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.LoadCSV(args[0])
		if err != nil {
			return err
		}
		md := dataset.Profile(t, insSampleRows).Markdown()
		if insOutputPath != "" {
			if err := os.WriteFile(insOutputPath, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote profile to %s\n", insOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&insSampleRows, "sample-rows", 5, "number of sample rows to include")
	inspectCmd.Flags().StringVarP(&insOutputPath, "output", "o", "", "optional path to write the profile (Markdown)")
}
