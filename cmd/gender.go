package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ofwlens/ofwlens/internal/gender"
	"github.com/ofwlens/ofwlens/internal/joint"
	"github.com/ofwlens/ofwlens/internal/names"
	"github.com/ofwlens/ofwlens/internal/reshape"
)

var (
	genderYear    int
	genderTopN    int
	genderPercent bool
	genderOccs    []string
)

var genderCmd = &cobra.Command{
	Use:   "gender",
	Short: "Estimate the gender split per occupation for a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		occTable, err := loadDataset(c.OccupationDataset)
		if err != nil {
			return err
		}
		sexTable, err := loadDataset(c.SexDataset)
		if err != nil {
			return err
		}

		// The occupation pivot is melted over its own columns; the
		// file carries whatever occupations the source year recorded.
		var vocab []string
		for _, h := range occTable.Header {
			if strings.EqualFold(h, "year") {
				continue
			}
			vocab = append(vocab, h)
		}
		set := reshape.Melt(occTable, genderYear, vocab)
		if len(set) == 0 {
			fmt.Printf("⚠ No occupation data available for year %d\n", genderYear)
			return nil
		}

		if len(genderOccs) > 0 {
			set = reshape.Filter(set, genderOccs)
			if len(set) == 0 {
				fmt.Println("⚠ None of the requested occupations are present")
				return nil
			}
		} else {
			set = reshape.Filter(joint.Rank(set), joint.TopK(set, c.ClampTopN(genderTopN)))
		}

		shares, ok := gender.SharesForYear(sexTable, genderYear)
		if !ok {
			years := sexTable.Years()
			if len(years) == 0 {
				fmt.Printf("⚠ No gender totals available in %s\n", sexTable.Name)
				return nil
			}
			latest := years[len(years)-1]
			fmt.Printf("⚠ Gender totals not available for %d. Using overall proportions from %d.\n", genderYear, latest)
			shares, _ = gender.SharesForYear(sexTable, latest)
		}

		splits := gender.Estimate(set, shares)
		displayTotal := reshape.Total(set)
		for _, s := range splits {
			label := names.Display(names.Normalize(s.Occupation))
			if genderPercent && displayTotal > 0 {
				fmt.Printf("%-45s female %6s  male %6s\n", label,
					joint.FormatPercent(float64(s.Female)/displayTotal*100),
					joint.FormatPercent(float64(s.Male)/displayTotal*100))
			} else {
				fmt.Printf("%-45s female %8d  male %8d\n", label, s.Female, s.Male)
			}
		}
		fmt.Printf("\nOverall shares for %d: female %.1f%%, male %.1f%%\n",
			shares.Year, shares.FemaleShare()*100, shares.MaleShare()*100)
		fmt.Printf("ℹ %s\n", gender.EstimationNote)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genderCmd)
	genderCmd.Flags().IntVar(&genderYear, "year", 0, "year to estimate (required)")
	genderCmd.Flags().IntVar(&genderTopN, "top-n", 12, "number of occupations to display when no filter is given")
	genderCmd.Flags().BoolVar(&genderPercent, "percent", false, "show percentages of the displayed total instead of counts")
	genderCmd.Flags().StringSliceVar(&genderOccs, "occupations", nil, "occupation columns to keep (default: top N by count)")
	_ = genderCmd.MarkFlagRequired("year")
}
