package barchart

import (
	"math"
	"time"
)

const (
	DefaultEnterDuration = 800 * time.Millisecond
	DefaultExitDuration  = 400 * time.Millisecond
	DefaultFadeDuration  = 150 * time.Millisecond
)

// Ease shapes the progress of a tween. Spline is the equivalent SMIL
// keySplines value, empty for linear.
type Ease struct {
	Name   string
	Spline string
	Func   func(float64) float64
}

var (
	EaseLinear = Ease{
		Name: "linear",
		Func: func(t float64) float64 { return t },
	}
	EaseCubicInOut = Ease{
		Name:   "cubic-in-out",
		Spline: "0.645 0.045 0.355 1",
		Func:   cubicInOut,
	}
)

func (e Ease) apply(t float64) float64 {
	if e.Func == nil {
		return t
	}
	return e.Func(t)
}

func cubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Tween interpolates a single attribute between two values over time.
type Tween struct {
	Attr     string
	From     float64
	To       float64
	Delay    time.Duration
	Duration time.Duration
	Ease     Ease
}

func NewTween(attr string, from, to float64, dur time.Duration, ease Ease) Tween {
	return Tween{
		Attr:     attr,
		From:     from,
		To:       to,
		Duration: dur,
		Ease:     ease,
	}
}

// Progress returns the eased progress of t at elapsed, between 0 and 1.
func (t Tween) Progress(elapsed time.Duration) float64 {
	switch {
	case t.Done(elapsed):
		return 1
	case elapsed <= t.Delay:
		return 0
	}
	p := float64(elapsed-t.Delay) / float64(t.Duration)
	return t.Ease.apply(p)
}

func (t Tween) At(elapsed time.Duration) float64 {
	if math.IsNaN(t.From) || math.IsNaN(t.To) {
		return math.NaN()
	}
	p := t.Progress(elapsed)
	switch p {
	case 0:
		return t.From
	case 1:
		return t.To
	}
	return t.From + (t.To-t.From)*p
}

func (t Tween) Done(elapsed time.Duration) bool {
	return elapsed >= t.End()
}

func (t Tween) End() time.Duration {
	return t.Delay + t.Duration
}

// Static reports whether the tween does not change its attribute.
func (t Tween) Static() bool {
	return t.From == t.To
}
