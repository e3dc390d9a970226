package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofwlens/ofwlens/internal/flows"
	"github.com/ofwlens/ofwlens/internal/render"
)

var (
	flowYear   int
	flowOrigin string
	flowDest   string
	flowTopN   int
	flowPNG    string
)

var flowsCmd = &cobra.Command{
	Use:   "flows",
	Short: "Summarize migration flows for a year, origin region, and destination",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		t, err := loadDataset(c.FlowsDataset)
		if err != nil {
			return err
		}
		all, err := flows.FromTable(t)
		if err != nil {
			return err
		}

		years := flows.Years(all)
		if len(years) == 0 {
			fmt.Printf("⚠ No valid years found in %s\n", t.Name)
			return nil
		}
		yearKnown := false
		for _, y := range years {
			if y == flowYear {
				yearKnown = true
				break
			}
		}
		if !yearKnown {
			fmt.Printf("⚠ No data available for year %d (years range %d–%d)\n", flowYear, years[0], years[len(years)-1])
			return nil
		}

		sel := flows.Selection{Year: flowYear, Origin: flowOrigin, Destination: flowDest}
		filtered := flows.Filter(all, sel)
		total := flows.Total(filtered)
		cumulative := flows.CumulativeTotal(all, flowYear)

		originLabel := sel.Origin
		if originLabel == "" {
			originLabel = "All Regions"
		}
		destLabel := sel.Destination
		if destLabel == "" {
			destLabel = "All Countries"
		}

		fmt.Printf("Migrants from %s to %s in %d: %.0f\n", originLabel, destLabel, flowYear, total)
		fmt.Printf("Total migrant population up to %d: %.0f\n", flowYear, cumulative)
		fmt.Println()
		fmt.Println(flows.YearNote(flowYear))
		if total == 0 {
			fmt.Printf("⚠ %s\n", flows.ZeroTotalNote())
		}

		totals := flows.DestinationTotals(filtered)
		top := flows.Top(totals, c.ClampTopN(flowTopN))
		if len(top) > 0 {
			fmt.Println("\nTop destination countries:")
			for i, d := range top {
				fmt.Printf("%2d. %-40s %12.0f\n", i+1, d.Destination, d.Migrants)
			}
		}

		if sel.Destination != "" && total > 0 {
			if pct, prevYear, ok := flows.YearOverYear(all, sel); ok {
				direction := "increased"
				if pct < 0 {
					direction = "decreased"
				}
				fmt.Printf("\nThis destination's migrants %s by %.1f%% compared with %d under the same filters.\n",
					direction, abs(pct), prevYear)
			}
		}

		if flowPNG != "" {
			if len(top) == 0 {
				fmt.Println("⚠ Nothing to chart: no destinations with migrants under the current filters")
				return nil
			}
			title := fmt.Sprintf("Top destination countries, %d (%s)", flowYear, originLabel)
			if err := render.DestinationBars(top, title, flowPNG, c.ChartWidthIn, c.ChartHeightIn); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote bar chart to %s\n", flowPNG)
		}
		return nil
	},
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	rootCmd.AddCommand(flowsCmd)
	flowsCmd.Flags().IntVar(&flowYear, "year", 0, "year to summarize (required)")
	flowsCmd.Flags().StringVar(&flowOrigin, "origin", "", "origin region filter (default: all regions)")
	flowsCmd.Flags().StringVar(&flowDest, "dest", "", "destination country filter (default: all countries)")
	flowsCmd.Flags().IntVar(&flowTopN, "top-n", 10, "number of top destinations to list")
	flowsCmd.Flags().StringVar(&flowPNG, "png", "", "optional path to write a destinations bar chart")
	_ = flowsCmd.MarkFlagRequired("year")
}
