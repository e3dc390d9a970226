package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ofwlens/ofwlens/internal/flows"
	"github.com/ofwlens/ofwlens/internal/joint"
)

// matrixGrid adapts a joint matrix to the plotter grid interface. Row 0
// of the matrix is drawn at the top.
type matrixGrid struct {
	m *joint.Matrix
}

func (g matrixGrid) Dims() (c, r int)   { return len(g.m.Cols), len(g.m.Rows) }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }
func (g matrixGrid) Z(c, r int) float64 { return g.m.Percent[len(g.m.Rows)-1-r][c] }

// JointHeatmap renders the joint percent matrix as a PNG heatmap with
// per-cell percentage labels.
func JointHeatmap(m *joint.Matrix, title, path string, widthIn, heightIn float64) error {
	if m == nil || len(m.Rows) == 0 || len(m.Cols) == 0 {
		return fmt.Errorf("heatmap: empty matrix")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)

	hm := plotter.NewHeatMap(matrixGrid{m}, palette.Heat(256, 1))
	p.Add(hm)

	nRows := len(m.Rows)
	var labels plotter.XYLabels
	for i, row := range m.Labels {
		for j, label := range row {
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(j), Y: float64(nRows - 1 - i)})
			labels.Labels = append(labels.Labels, label)
		}
	}
	cellLabels, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("heatmap labels: %w", err)
	}
	p.Add(cellLabels)

	p.NominalX(m.Cols...)
	yNames := make([]string, nRows)
	for i, r := range m.Rows {
		yNames[nRows-1-i] = r
	}
	p.NominalY(yNames...)

	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}

// DestinationBars renders per-destination migrant totals as a PNG bar
// chart, in the order given.
func DestinationBars(totals []flows.DestinationTotal, title, path string, widthIn, heightIn float64) error {
	if len(totals) == 0 {
		return fmt.Errorf("bar chart: no destinations")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Y.Label.Text = "Migrants"

	values := make(plotter.Values, len(totals))
	names := make([]string, len(totals))
	for i, t := range totals {
		values[i] = t.Migrants
		names[i] = t.Destination
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.Add(plotter.NewGrid())
	p.NominalX(names...)

	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("save bar chart: %w", err)
	}
	return nil
}

// TrendLine renders a year series as a PNG line chart.
func TrendLine(years []int, values []float64, title, yLabel, path string, widthIn, heightIn float64) error {
	if len(years) == 0 || len(years) != len(values) {
		return fmt.Errorf("trend line: need matching years and values")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = yLabel

	points := make(plotter.XYs, len(years))
	for i := range years {
		points[i].X = float64(years[i])
		points[i].Y = values[i]
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("trend line: %w", err)
	}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("save trend line: %w", err)
	}
	return nil
}
