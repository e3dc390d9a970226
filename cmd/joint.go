package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ofwlens/ofwlens/internal/joint"
	"github.com/ofwlens/ofwlens/internal/names"
	"github.com/ofwlens/ofwlens/internal/render"
	"github.com/ofwlens/ofwlens/internal/report"
	"github.com/ofwlens/ofwlens/internal/reshape"
)

var (
	jointYear   int
	jointTopN   int
	jointBottom bool
	jointPNG    string
	jointXLSX   string
	jointSave   bool
)

var jointCmd = &cobra.Command{
	Use:   "joint",
	Short: "Estimate the education × occupation proportional distribution for a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		t, err := loadDataset(c.MergedDataset)
		if err != nil {
			return err
		}

		educ := reshape.Melt(t, jointYear, reshape.EducationColumns)
		occ := reshape.Melt(t, jointYear, reshape.OccupationColumns)
		if len(educ) == 0 || len(occ) == 0 {
			fmt.Printf("⚠ No data available for year %d\n", jointYear)
			return nil
		}

		k := c.ClampTopN(jointTopN)
		var selected []string
		if jointBottom {
			selected = joint.BottomK(educ, k)
		} else {
			selected = joint.TopK(educ, k)
		}
		educSubset := reshape.Filter(educ, selected)

		cells, ok := joint.Estimate(educSubset, occ, jointYear)
		if !ok {
			fmt.Printf("⚠ Joint distribution is undefined for year %d (a marginal has no recorded migrants)\n", jointYear)
			return nil
		}

		occOrder := make([]string, 0, len(occ))
		for _, o := range occ {
			occOrder = append(occOrder, o.Category)
		}
		sort.Strings(occOrder)
		m := joint.BuildMatrix(cells, selected, occOrder)

		printMatrix(m)
		if best, ok := joint.Strongest(cells); ok {
			fmt.Printf("\nStrongest pairing: %s × %s (%s)\n",
				displayName(best.CategoryA), displayName(best.CategoryB),
				joint.FormatPercent(best.Percent))
		}
		fmt.Printf("ℹ %s\n", joint.EstimationNote)

		direction := "Top"
		if jointBottom {
			direction = "Bottom"
		}
		title := fmt.Sprintf("%s %d educational attainment × occupations, %d (proportional %%)",
			direction, k, jointYear)

		if jointPNG != "" {
			if err := heatmapPNG(m, title, jointPNG, c.ChartWidthIn, c.ChartHeightIn); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote heatmap to %s\n", jointPNG)
		}
		if jointXLSX != "" {
			if err := render.JointWorkbook(jointXLSX, displayMatrix(m), title, joint.EstimationNote); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote workbook to %s\n", jointXLSX)
		}
		if jointSave {
			b, err := report.New(c.ReportsDir, "joint", title)
			if err != nil {
				return err
			}
			b.AddNote(joint.EstimationNote)
			if err := heatmapPNG(m, title, b.ArtifactPath("joint.png"), c.ChartWidthIn, c.ChartHeightIn); err != nil {
				return err
			}
			if err := render.JointWorkbook(b.ArtifactPath("joint.xlsx"), displayMatrix(m), title, joint.EstimationNote); err != nil {
				return err
			}
			if err := b.Save(); err != nil {
				return err
			}
			fmt.Printf("✓ Saved report %s to %s\n", b.ID, b.RootDir())
		}
		return nil
	},
}

// displayMatrix maps the raw category keys of a matrix to display names
// for presentation surfaces.
func displayMatrix(m *joint.Matrix) *joint.Matrix {
	out := &joint.Matrix{Percent: m.Percent, Labels: m.Labels}
	out.Rows = make([]string, len(m.Rows))
	for i, r := range m.Rows {
		out.Rows[i] = displayName(r)
	}
	out.Cols = make([]string, len(m.Cols))
	for j, c := range m.Cols {
		out.Cols[j] = displayName(c)
	}
	return out
}

func displayName(raw string) string {
	return names.Display(names.Normalize(raw))
}

func heatmapPNG(m *joint.Matrix, title, path string, w, h float64) error {
	return render.JointHeatmap(displayMatrix(m), title, path, w, h)
}

func printMatrix(m *joint.Matrix) {
	fmt.Printf("%-45s", "")
	for _, c := range m.Cols {
		fmt.Printf(" %18s", truncate(displayName(c), 18))
	}
	fmt.Println()
	for i, r := range m.Rows {
		fmt.Printf("%-45s", truncate(displayName(r), 45))
		for j := range m.Cols {
			fmt.Printf(" %18s", m.Labels[i][j])
		}
		fmt.Println()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	rootCmd.AddCommand(jointCmd)
	jointCmd.Flags().IntVar(&jointYear, "year", 0, "year to estimate (required)")
	jointCmd.Flags().IntVar(&jointTopN, "top-n", 10, "number of educational-attainment categories to keep")
	jointCmd.Flags().BoolVar(&jointBottom, "bottom", false, "use the bottom-K categories instead of the top-K")
	jointCmd.Flags().StringVar(&jointPNG, "png", "", "optional path to write a heatmap PNG")
	jointCmd.Flags().StringVar(&jointXLSX, "xlsx", "", "optional path to write the matrix as a workbook")
	jointCmd.Flags().BoolVar(&jointSave, "save", false, "save heatmap and workbook as a report bundle")
	_ = jointCmd.MarkFlagRequired("year")
}
