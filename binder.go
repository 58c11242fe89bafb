package barchart

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// LabelOffset is the distance between the top of a bar and its value label.
const LabelOffset = 5.0

type Phase int

const (
	PhaseEnter Phase = iota
	PhaseUpdate
	PhaseExit
)

func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseUpdate:
		return "update"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Join is the classification of the keys of a dataset against the keys
// already bound.
type Join struct {
	Enter  []string
	Update []string
	Exit   []string
}

func (j Join) Len() int {
	return len(j.Enter) + len(j.Update)
}

type Bar struct {
	Key   string
	ID    string
	Row   Row
	Fill  string
	Phase Phase

	From Rect
	To   Rect

	Duration time.Duration
	Ease     Ease
}

func (b Bar) Tweens() []Tween {
	return []Tween{
		NewTween("x", b.From.X, b.To.X, b.Duration, b.Ease),
		NewTween("y", b.From.Y, b.To.Y, b.Duration, b.Ease),
		NewTween("width", b.From.Width, b.To.Width, b.Duration, b.Ease),
		NewTween("height", b.From.Height, b.To.Height, b.Duration, b.Ease),
	}
}

func (b Bar) At(elapsed time.Duration) Rect {
	tw := b.Tweens()
	return Rect{
		X:      tw[0].At(elapsed),
		Y:      tw[1].At(elapsed),
		Width:  tw[2].At(elapsed),
		Height: tw[3].At(elapsed),
	}
}

// Removed reports whether an exiting bar has finished its transition.
func (b Bar) Removed(elapsed time.Duration) bool {
	return b.Phase == PhaseExit && elapsed >= b.Duration
}

type Label struct {
	Key   string
	ID    string
	Text  string
	Phase Phase

	FromX float64
	FromY float64
	X     float64
	Y     float64

	Duration time.Duration
	Ease     Ease
}

func (l Label) Tweens() []Tween {
	return []Tween{
		NewTween("x", l.FromX, l.X, l.Duration, l.Ease),
		NewTween("y", l.FromY, l.Y, l.Duration, l.Ease),
	}
}

func (l Label) At(elapsed time.Duration) (float64, float64) {
	tw := l.Tweens()
	return tw[0].At(elapsed), tw[1].At(elapsed)
}

// Binder keeps one bar and one label per key across successive datasets.
// It is not safe for concurrent use.
type Binder struct {
	Enter time.Duration
	Exit  time.Duration
	Ease  Ease

	bars   map[string]*Bar
	labels map[string]*Label
	order  []string
	seq    int
}

func NewBinder(enter, exit time.Duration) *Binder {
	return &Binder{
		Enter:  enter,
		Exit:   exit,
		Ease:   EaseCubicInOut,
		bars:   make(map[string]*Bar),
		labels: make(map[string]*Label),
	}
}

// Bind joins rows to the elements already bound. Elements removed by a
// previous call are dropped first. When two rows share a name, the last
// one wins.
func (b *Binder) Bind(sc Scales, rows []Row) Join {
	b.Settle()

	var (
		join     Join
		seen     = make(map[string]struct{})
		width    = sc.X.Bandwidth()
		baseline = sc.Y.Range.F
	)
	for _, r := range rows {
		_, dup := seen[r.Name]
		seen[r.Name] = struct{}{}

		var (
			x  = sc.X.Scale(r.Name)
			y  = sc.Y.Scale(r.Value)
			to = Rect{
				X:      x,
				Y:      y,
				Width:  width,
				Height: baseline - y,
			}
			center = x + width/2
		)
		bar, ok := b.bars[r.Name]
		if !ok {
			b.seq++
			bar = &Bar{
				Key:   r.Name,
				ID:    fmt.Sprintf("bar-%d", b.seq),
				Phase: PhaseEnter,
				From: Rect{
					X:     x,
					Y:     baseline,
					Width: width,
				},
			}
			b.bars[r.Name] = bar
			b.order = append(b.order, r.Name)
			b.labels[r.Name] = &Label{
				Key:   r.Name,
				ID:    fmt.Sprintf("label-%d", b.seq),
				Phase: PhaseEnter,
				FromX: center,
				FromY: baseline,
			}
			join.Enter = append(join.Enter, r.Name)
		} else if !dup {
			bar.Phase = PhaseUpdate
			bar.From = bar.To
			lab := b.labels[r.Name]
			lab.Phase = PhaseUpdate
			lab.FromX, lab.FromY = lab.X, lab.Y
			join.Update = append(join.Update, r.Name)
		}
		bar.Row = r
		bar.Fill = sc.Color.Scale(r.Category)
		bar.To = to
		bar.Duration = b.Enter
		bar.Ease = b.Ease

		lab := b.labels[r.Name]
		lab.Text = FormatValue(r.Value)
		lab.X = center
		lab.Y = y - LabelOffset
		lab.Duration = b.Enter
		lab.Ease = b.Ease
	}
	for _, k := range b.order {
		if _, ok := seen[k]; ok {
			continue
		}
		bar := b.bars[k]
		bar.Phase = PhaseExit
		bar.From = bar.To
		bar.To.Y = baseline
		bar.To.Height = 0
		bar.Duration = b.Exit
		bar.Ease = b.Ease
		delete(b.labels, k)
		join.Exit = append(join.Exit, k)
	}
	return join
}

// Bars returns the bound bars in document order, exiting bars included.
func (b *Binder) Bars() []Bar {
	list := make([]Bar, 0, len(b.order))
	for _, k := range b.order {
		list = append(list, *b.bars[k])
	}
	return list
}

// Labels returns the bound labels in document order.
func (b *Binder) Labels() []Label {
	list := make([]Label, 0, len(b.labels))
	for _, k := range b.order {
		if lab, ok := b.labels[k]; ok {
			list = append(list, *lab)
		}
	}
	return list
}

func (b *Binder) Bar(key string) (Bar, bool) {
	bar, ok := b.bars[key]
	if !ok {
		return Bar{}, false
	}
	return *bar, true
}

type BarFrame struct {
	Bar
	Rect
}

type LabelFrame struct {
	Label
	X float64
	Y float64
}

type Frame struct {
	Bars   []BarFrame
	Labels []LabelFrame
}

// Frame samples every element at elapsed. Exiting bars whose transition
// is over are not part of the frame.
func (b *Binder) Frame(elapsed time.Duration) Frame {
	var f Frame
	for _, bar := range b.Bars() {
		if bar.Removed(elapsed) {
			continue
		}
		f.Bars = append(f.Bars, BarFrame{Bar: bar, Rect: bar.At(elapsed)})
	}
	for _, lab := range b.Labels() {
		x, y := lab.At(elapsed)
		f.Labels = append(f.Labels, LabelFrame{Label: lab, X: x, Y: y})
	}
	return f
}

// Settle drops the bars that exited.
func (b *Binder) Settle() {
	keep := b.order[:0]
	for _, k := range b.order {
		if b.bars[k].Phase == PhaseExit {
			delete(b.bars, k)
			continue
		}
		keep = append(keep, k)
	}
	b.order = keep
}

// FormatValue formats f the way a browser prints a number.
func FormatValue(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if a := math.Abs(f); a != 0 && (a >= 1e21 || a < 1e-6) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
