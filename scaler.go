package barchart

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

const (
	DefaultBandPadding = 0.1
	DefaultTicks       = 10
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

// BandScale maps discrete values to evenly spaced bands. Padding is used
// both between bands and before the first and after the last one.
type BandScale struct {
	Range
	Strings []string
	Padding float64

	index map[string]int
}

func NewBandScale(str []string, rg Range, padding float64) BandScale {
	s := BandScale{
		Range:   rg,
		Padding: padding,
		Strings: make([]string, 0, len(str)),
		index:   make(map[string]int),
	}
	for _, v := range str {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = len(s.Strings)
		s.Strings = append(s.Strings, v)
	}
	return s
}

// Scale returns the start of the band of v or NaN if v is not part of the
// domain.
func (s BandScale) Scale(v string) float64 {
	x, ok := s.index[v]
	if !ok {
		return math.NaN()
	}
	return s.start() + float64(x)*s.Step()
}

func (s BandScale) Step() float64 {
	n := float64(len(s.Strings)) + s.Padding
	return s.Len() / math.Max(1, n)
}

func (s BandScale) Bandwidth() float64 {
	return s.Step() * (1 - s.Padding)
}

func (s BandScale) Values() []string {
	return s.Strings
}

func (s BandScale) start() float64 {
	n := float64(len(s.Strings)) - s.Padding
	return s.F + (s.Len()-s.Step()*n)/2
}

// LinearScale maps [0, max] rounded to a nice bound onto its range.
type LinearScale struct {
	Range
	Ticks int

	domain     scale.Linear
	degenerate bool
	empty      bool
	zero       bool
}

func NewLinearScale(max float64, rg Range, ticks int) LinearScale {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	s := LinearScale{
		Range: rg,
		Ticks: ticks,
	}
	s.domain = scale.Linear{Min: 0, Max: max}
	switch {
	case math.IsNaN(max):
		s.empty = true
		s.degenerate = true
		s.domain.Max = 0
	case max == 0:
		s.degenerate = true
		s.zero = true
	case max < 0 || math.IsInf(max, 0):
		s.degenerate = true
	default:
		s.domain.Nice(s.tickOptions())
	}
	return s
}

// Scale maps v onto the range. A [0, 0] domain maps everything to the
// middle of the range.
func (s LinearScale) Scale(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	switch {
	case s.zero:
		return s.F + s.Len()/2
	case s.degenerate:
		return s.F
	}
	return s.F + s.domain.Map(v)*s.Len()
}

// Domain returns the bounds of the scale after rounding.
func (s LinearScale) Domain() (float64, float64) {
	return s.domain.Min, s.domain.Max
}

func (s LinearScale) Values() []float64 {
	if s.empty {
		return nil
	}
	if s.degenerate {
		return []float64{0}
	}
	major, _ := s.domain.Ticks(s.tickOptions())
	return major
}

func (s LinearScale) tickOptions() scale.TickOptions {
	return scale.TickOptions{Max: s.Ticks + 1}
}

// OrdinalScale assigns the colors of a palette to categories. Unknown
// categories are added to the domain the first time they are scaled.
type OrdinalScale struct {
	Palette
	Strings []string

	index map[string]int
}

func NewOrdinalScale(str []string, palette Palette) *OrdinalScale {
	if len(palette) == 0 {
		palette = Tableau10
	}
	s := OrdinalScale{
		Palette: palette,
		index:   make(map[string]int),
	}
	for _, v := range str {
		s.lookup(v)
	}
	return &s
}

func (s *OrdinalScale) Scale(v string) string {
	return s.Color(s.lookup(v))
}

func (s *OrdinalScale) Values() []string {
	return s.Strings
}

func (s *OrdinalScale) lookup(v string) int {
	x, ok := s.index[v]
	if !ok {
		x = len(s.Strings)
		s.index[v] = x
		s.Strings = append(s.Strings, v)
	}
	return x
}

type Scales struct {
	X     BandScale
	Y     LinearScale
	Color *OrdinalScale
}

// BuildScales derives the three scales of the chart from rows. NaN values
// are ignored when looking for the upper bound of the value domain.
func BuildScales(rows []Row, lay Layout, palette Palette, padding float64, ticks int) Scales {
	max := math.NaN()
	for _, r := range rows {
		if math.IsNaN(r.Value) {
			continue
		}
		if math.IsNaN(max) || r.Value > max {
			max = r.Value
		}
	}
	return Scales{
		X:     NewBandScale(Names(rows), NewRange(0, lay.InnerWidth()), padding),
		Y:     NewLinearScale(max, NewRange(lay.InnerHeight(), 0), ticks),
		Color: NewOrdinalScale(Categories(rows), palette),
	}
}
