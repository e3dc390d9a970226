package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofwlens/ofwlens/internal/joint"
	"github.com/ofwlens/ofwlens/internal/names"
	"github.com/ofwlens/ofwlens/internal/render"
	"github.com/ofwlens/ofwlens/internal/reshape"
)

var (
	catYear   int
	catTop    int
	catBottom int
	catXLSX   string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories <education|occupation>",
	Short: "Melt and rank the category counts for a year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		var vocab []string
		switch args[0] {
		case "education":
			vocab = reshape.EducationColumns
		case "occupation":
			vocab = reshape.OccupationColumns
		default:
			return fmt.Errorf("unknown category axis %q (use education or occupation)", args[0])
		}
		if catTop > 0 && catBottom > 0 {
			return fmt.Errorf("--top and --bottom are mutually exclusive")
		}

		t, err := loadDataset(c.MergedDataset)
		if err != nil {
			return err
		}
		set := reshape.Melt(t, catYear, vocab)
		if len(set) == 0 {
			fmt.Printf("⚠ No data available for year %d\n", catYear)
			return nil
		}

		ranked := joint.Rank(set)
		switch {
		case catTop > 0:
			ranked = reshape.Filter(ranked, joint.TopK(set, c.ClampTopN(catTop)))
		case catBottom > 0:
			ranked = reshape.Filter(ranked, joint.BottomK(set, c.ClampTopN(catBottom)))
		}

		for _, cc := range ranked {
			fmt.Printf("%-45s %12.0f\n", names.Display(names.Normalize(cc.Category)), cc.Count)
		}
		fmt.Printf("Total: %.0f\n", reshape.Total(set))

		if catXLSX != "" {
			title := fmt.Sprintf("%s counts, %d", args[0], catYear)
			if err := render.CategoriesWorkbook(catXLSX, ranked, title); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote workbook to %s\n", catXLSX)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().IntVar(&catYear, "year", 0, "year to melt (required)")
	categoriesCmd.Flags().IntVar(&catTop, "top", 0, "keep only the K highest-count categories")
	categoriesCmd.Flags().IntVar(&catBottom, "bottom", 0, "keep only the K lowest-count categories")
	categoriesCmd.Flags().StringVar(&catXLSX, "xlsx", "", "optional path to write the counts as a workbook")
	_ = categoriesCmd.MarkFlagRequired("year")
}
