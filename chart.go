package barchart

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	svg "github.com/ajstarks/svgo/float"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 450.0
	XAxisRotate   = -40.0
)

var DefaultPadding = Padding{
	Top:    40,
	Right:  140,
	Bottom: 100,
	Left:   60,
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Layout is the outer size of the chart and the margins around the
// drawing area.
type Layout struct {
	Width  float64
	Height float64
	Padding
}

func DefaultLayout() Layout {
	return Layout{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding,
	}
}

func (y Layout) InnerWidth() float64 {
	return y.Width - y.Padding.Horizontal()
}

func (y Layout) InnerHeight() float64 {
	return y.Height - y.Padding.Vertical()
}

// Origin is the translation applied to everything drawn inside the
// margins.
func (y Layout) Origin() (float64, float64) {
	return y.Padding.Left, y.Padding.Top
}

// Chart holds everything a render pass needs. Scales are rebuilt by every
// call to Update; bars and labels persist between calls so successive
// datasets transition from one to the other.
type Chart struct {
	Title string
	Layout

	Palette     Palette
	BandPadding float64
	Ticks       int
	Legend      struct {
		Swatch  float64
		Spacing float64
	}
	Tooltip *Tooltip
	Logger  *slog.Logger

	scales Scales
	binder *Binder
	rows   []Row
}

func New() *Chart {
	c := Chart{
		Layout:      DefaultLayout(),
		Palette:     Tableau10,
		BandPadding: DefaultBandPadding,
		Ticks:       DefaultTicks,
		Tooltip:     NewTooltip(DefaultFadeDuration),
		binder:      NewBinder(DefaultEnterDuration, DefaultExitDuration),
	}
	c.Legend.Swatch = DefaultSwatchSize
	c.Legend.Spacing = DefaultRowSpacing
	c.scales = BuildScales(nil, c.Layout, c.Palette, c.BandPadding, c.Ticks)
	return &c
}

// SetDurations changes the duration of the enter/update and exit
// transitions of the next Update.
func (c *Chart) SetDurations(enter, exit time.Duration) {
	c.binder.Enter = enter
	c.binder.Exit = exit
}

// Update rebuilds the scales from rows and binds rows to the chart
// elements.
func (c *Chart) Update(rows []Row) Join {
	c.rows = rows
	c.scales = BuildScales(rows, c.Layout, c.Palette, c.BandPadding, c.Ticks)
	join := c.binder.Bind(c.scales, rows)
	c.logger().Debug("dataset bound",
		"rows", len(rows),
		"enter", len(join.Enter),
		"update", len(join.Update),
		"exit", len(join.Exit),
	)
	return join
}

func (c *Chart) Rows() []Row {
	return c.rows
}

func (c *Chart) Scales() Scales {
	return c.scales
}

func (c *Chart) Binder() *Binder {
	return c.binder
}

func (c *Chart) Axes() (CategoryAxis, NumberAxis) {
	x := CategoryAxis{
		Orientation: OrientBottom,
		Rotate:      XAxisRotate,
		Scaler:      c.scales.X,
	}
	y := NumberAxis{
		Orientation: OrientLeft,
		Scaler:      c.scales.Y,
	}
	return x, y
}

func (c *Chart) LegendRows() []LegendRow {
	return c.legend().Rows()
}

// Hover moves the pointer over the center of the bar of key and returns
// false if no such bar is bound.
func (c *Chart) Hover(now time.Duration, key string) bool {
	bar, ok := c.binder.Bar(key)
	if !ok || bar.Phase == PhaseExit {
		return false
	}
	left, top := c.Origin()
	p := Pointer{
		X: left + bar.To.X + bar.To.Width/2,
		Y: top + bar.To.Y,
	}
	c.Tooltip.Enter(now, p, bar.Row)
	return true
}

// Render writes the chart as an SVG document whose transitions are played
// by the viewer.
func (c *Chart) Render(w io.Writer) error {
	return c.render(w, func(canvas *svg.SVG) {
		for _, b := range c.binder.Bars() {
			drawBar(canvas, b, b.From, true)
		}
		for _, lab := range c.binder.Labels() {
			drawLabel(canvas, lab, lab.FromX, lab.FromY, true)
		}
	}, 0)
}

// Snapshot writes the chart as it looks at elapsed since the last Update,
// without animations.
func (c *Chart) Snapshot(w io.Writer, elapsed time.Duration) error {
	frame := c.binder.Frame(elapsed)
	return c.render(w, func(canvas *svg.SVG) {
		for _, b := range frame.Bars {
			drawBar(canvas, b.Bar, b.Rect, false)
		}
		for _, lab := range frame.Labels {
			drawLabel(canvas, lab.Label, lab.X, lab.Y, false)
		}
	}, elapsed)
}

func (c *Chart) render(w io.Writer, shapes func(*svg.SVG), now time.Duration) error {
	var (
		bw     = bufio.NewWriter(w)
		canvas = svg.New(bw)
		x, y   = c.Axes()
		left   = c.Padding.Left
		top    = c.Padding.Top
	)
	canvas.Start(c.Width, c.Height, `class="barchart"`)
	if c.Title != "" {
		canvas.Title(c.Title)
	}
	canvas.Style("text/css", Stylesheet)

	canvas.Group(`class="area"`, translate(left, top))
	x.Render(canvas, 0, c.InnerHeight())
	y.Render(canvas, 0, 0)
	shapes(canvas)
	canvas.Gend()

	c.legend().Render(canvas, left+c.InnerWidth()+legendOffset, top)
	if c.Tooltip != nil {
		c.Tooltip.Render(canvas, now)
		canvas.Script("application/ecmascript", c.Tooltip.Script())
	}
	canvas.End()
	return bw.Flush()
}

func (c *Chart) legend() Legend {
	return Legend{
		Swatch:  c.Legend.Swatch,
		Spacing: c.Legend.Spacing,
		Scaler:  c.scales.Color,
	}
}

func (c *Chart) logger() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func translate(x, y float64) string {
	return fmt.Sprintf(`transform="translate(%g,%g)"`, x, y)
}
