package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/ofwlens/ofwlens/internal/flows"
	"github.com/ofwlens/ofwlens/internal/indicators"
	"github.com/ofwlens/ofwlens/internal/render"
)

var (
	indCountry   string
	indYear      int
	indTrends    bool
	indPNG       string
	indIndicator string
)

var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Show health and economic indicators for a country and year",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		t, err := loadDataset(c.SupplementaryDataset)
		if err != nil {
			return err
		}

		year := indYear
		availableYears := indicators.YearsForCountry(t, indCountry)
		if len(availableYears) == 0 {
			fmt.Printf("⚠ No data available for %s\n", indCountry)
			return nil
		}
		if year == 0 {
			year = availableYears[len(availableYears)-1]
		}

		values, ok := indicators.CountryYear(t, indCountry, year)
		if !ok {
			fmt.Printf("⚠ No data available for %s in %d\n", indCountry, year)
			fmt.Printf("Available years: %v\n", availableYears)
			return nil
		}

		fmt.Printf("%s — %d\n\n", indCountry, year)
		for _, v := range values {
			if v.OK {
				fmt.Printf("%-60s %10.1f\n", v.Column, v.Value)
			} else {
				fmt.Printf("%-60s %10s\n", v.Column, "no data")
			}
		}

		// Left merge with migration flows: absence of a flow record is
		// reported, not rendered as zero.
		if ft, err := loadDataset(c.FlowsDataset); err == nil {
			if all, err := flows.FromTable(ft); err == nil {
				totals := indicators.MigrantTotals(all)
				if m, ok := indicators.MigrantsFor(totals, indCountry, year); ok {
					fmt.Printf("\nRecorded Filipino migrants to %s in %d: %.0f\n", indCountry, year, m)
				} else {
					fmt.Printf("\nNo recorded Filipino migration flows to %s in %d\n", indCountry, year)
				}
			}
		} else {
			log.Debugf("flows dataset unavailable for merge: %v", err)
		}

		if indTrends {
			trends := indicators.Trends(t, indCountry)
			if len(trends) == 0 {
				fmt.Println("\n⚠ Not enough recorded values to compute trends")
			} else {
				fmt.Println("\nTrends over the available data period:")
				for _, tr := range trends {
					fmt.Printf("%-60s %10.1f → %.1f (%+.1f over %d points)\n",
						tr.Column, tr.First, tr.Last, tr.Delta, tr.Points)
				}
			}
		}

		if indPNG != "" {
			var ys []int
			var vs []float64
			for _, y := range availableYears {
				if vals, ok := indicators.CountryYear(t, indCountry, y); ok {
					for _, v := range vals {
						if v.Column == indIndicator && v.OK {
							ys = append(ys, y)
							vs = append(vs, v.Value)
						}
					}
				}
			}
			if len(ys) == 0 {
				fmt.Printf("⚠ No recorded values of %q to chart\n", indIndicator)
				return nil
			}
			title := fmt.Sprintf("%s — %s", indCountry, indIndicator)
			if err := render.TrendLine(ys, vs, title, indIndicator, indPNG, c.ChartWidthIn, c.ChartHeightIn); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote trend chart to %s\n", indPNG)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indicatorsCmd)
	indicatorsCmd.Flags().StringVar(&indCountry, "country", "", "country name (required)")
	indicatorsCmd.Flags().IntVar(&indYear, "year", 0, "year (default: the latest recorded for the country)")
	indicatorsCmd.Flags().BoolVar(&indTrends, "trends", false, "show first-to-last indicator changes")
	indicatorsCmd.Flags().StringVar(&indPNG, "png", "", "optional path to write a trend line chart")
	indicatorsCmd.Flags().StringVar(&indIndicator, "indicator", indicators.LifeExpectancy, "indicator column for --png")
	_ = indicatorsCmd.MarkFlagRequired("country")
}
