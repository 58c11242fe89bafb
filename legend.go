package barchart

import (
	"fmt"

	svg "github.com/ajstarks/svgo/float"
)

const (
	DefaultSwatchSize = 14.0
	DefaultRowSpacing = 20.0
	legendOffset      = 20.0
)

type LegendRow struct {
	Category string
	Color    string
	Offset   float64
}

// Legend pairs every category of the color scale with its color, one row
// per category stacked vertically.
type Legend struct {
	Swatch  float64
	Spacing float64
	Scaler  *OrdinalScale
}

func (g Legend) Rows() []LegendRow {
	if g.Scaler == nil {
		return nil
	}
	var list []LegendRow
	for i, c := range g.Scaler.Values() {
		list = append(list, LegendRow{
			Category: c,
			Color:    g.Scaler.Scale(c),
			Offset:   float64(i) * g.Spacing,
		})
	}
	return list
}

func (g Legend) Render(canvas *svg.SVG, left, top float64) {
	canvas.Group(`class="legend"`, translate(left, top))
	for _, r := range g.Rows() {
		canvas.Group(`class="legend-row"`, translate(0, r.Offset))
		canvas.Rect(0, 0, g.Swatch, g.Swatch, fmt.Sprintf(`fill="%s"`, r.Color))
		canvas.Text(g.Swatch+6, g.Swatch/2+3, r.Category, `dy="0.32em"`, fmt.Sprintf(`font-size="%g"`, FontSize))
		canvas.Gend()
	}
	canvas.Gend()
}
