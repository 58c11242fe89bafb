package barchart

import (
	"fmt"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

const FontSize = 10.0

const (
	tickSize    = 6.0
	tickPadding = 3.0
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) String() string {
	switch o {
	case OrientTop:
		return "top"
	case OrientRight:
		return "right"
	case OrientBottom:
		return "bottom"
	case OrientLeft:
		return "left"
	default:
		return "unknown"
	}
}

type Tick struct {
	Label string
	Pos   float64
}

type Axis interface {
	Ticks() []Tick
	Render(*svg.SVG, float64, float64)
}

var (
	_ Axis = CategoryAxis{}
	_ Axis = NumberAxis{}
)

type CategoryAxis struct {
	Orientation
	Rotate float64
	Scaler BandScale
}

func (a CategoryAxis) Ticks() []Tick {
	var (
		list  []Tick
		align = a.Scaler.Bandwidth() / 2
	)
	for _, s := range a.Scaler.Values() {
		list = append(list, Tick{
			Label: s,
			Pos:   a.Scaler.Scale(s) + align,
		})
	}
	return list
}

func (a CategoryAxis) Render(canvas *svg.SVG, left, top float64) {
	renderAxis(canvas, a.Orientation, a.Scaler.Range, a.Ticks(), a.Rotate, left, top)
}

type NumberAxis struct {
	Orientation
	Scaler LinearScale
	Format func(float64) string
}

func (a NumberAxis) Ticks() []Tick {
	var (
		values = a.Scaler.Values()
		format = a.Format
		list   []Tick
	)
	if format == nil {
		format = tickFormat(values)
	}
	for _, f := range values {
		list = append(list, Tick{
			Label: format(f),
			Pos:   a.Scaler.Scale(f),
		})
	}
	return list
}

func (a NumberAxis) Render(canvas *svg.SVG, left, top float64) {
	renderAxis(canvas, a.Orientation, a.Scaler.Range, a.Ticks(), 0, left, top)
}

// tickFormat returns a formatter using the precision of the step between
// ticks.
func tickFormat(values []float64) func(float64) string {
	prec := 0
	if len(values) > 1 {
		step := math.Abs(values[1] - values[0])
		if step > 0 && step < 1 {
			prec = int(math.Ceil(-math.Log10(step)))
		}
	}
	return func(f float64) string {
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
}

func renderAxis(canvas *svg.SVG, orient Orientation, rg Range, ticks []Tick, rotate, left, top float64) {
	canvas.Group(fmt.Sprintf(`class="axis axis-%s"`, orient), translate(left, top))
	canvas.Path(domainPath(orient, rg), `class="domain"`, `fill="none"`, `stroke="currentColor"`)
	for _, t := range ticks {
		x, y := t.Pos, 0.0
		if orient.Vertical() {
			x, y = y, x
		}
		canvas.Translate(x, y)
		x1, y1, x2, y2 := lineTick(orient)
		canvas.Line(x1, y1, x2, y2, `stroke="currentColor"`)
		tickText(canvas, orient, t.Label, rotate)
		canvas.Gend()
	}
	canvas.Gend()
}

func domainPath(orient Orientation, rg Range) string {
	var (
		outer = tickSize
		f, t  = rg.Min(), rg.Max()
	)
	if orient == OrientTop || orient == OrientLeft {
		outer = -outer
	}
	if orient.Vertical() {
		return fmt.Sprintf("M%g,%gH0V%gH%g", outer, f, t, outer)
	}
	return fmt.Sprintf("M%g,%gV0H%gV%g", f, outer, t, outer)
}

func lineTick(orient Orientation) (float64, float64, float64, float64) {
	size := tickSize
	if orient == OrientTop || orient == OrientLeft {
		size = -size
	}
	if orient.Vertical() {
		return 0, 0, size, 0
	}
	return 0, 0, 0, size
}

func tickText(canvas *svg.SVG, orient Orientation, str string, rotate float64) {
	var (
		offset = tickSize + tickPadding
		anchor = "middle"
		dy     = "0.71em"
		x, y   = 0.0, offset
		attrs  []string
	)
	switch orient {
	case OrientTop:
		y, dy = -offset, "0em"
	case OrientLeft:
		x, y, dy, anchor = -offset, 0, "0.32em", "end"
	case OrientRight:
		x, y, dy, anchor = offset, 0, "0.32em", "start"
	}
	if rotate != 0 {
		anchor = "end"
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g)"`, rotate))
	}
	attrs = append(attrs,
		`fill="currentColor"`,
		fmt.Sprintf(`dy="%s"`, dy),
		fmt.Sprintf(`text-anchor="%s"`, anchor),
		fmt.Sprintf(`font-size="%g"`, FontSize),
	)
	canvas.Text(x, y, str, attrs...)
}
