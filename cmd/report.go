package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofwlens/ofwlens/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage saved report bundles",
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved report bundles, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		bundles, err := report.List(c.ReportsDir)
		if err != nil {
			return err
		}
		if len(bundles) == 0 {
			fmt.Println("No saved reports")
			return nil
		}
		for _, b := range bundles {
			fmt.Printf("%s  %s  %-8s %s (%d files)\n",
				b.ID, b.CreatedAt.Format("2006-01-02 15:04"), b.Command, b.Title, len(b.Files))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportListCmd)
}
