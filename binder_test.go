package barchart

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func bind(rows []Row) (*Binder, Scales, Join) {
	var (
		b  = NewBinder(DefaultEnterDuration, DefaultExitDuration)
		sc = BuildScales(rows, DefaultLayout(), Tableau10, DefaultBandPadding, DefaultTicks)
	)
	return b, sc, b.Bind(sc, rows)
}

func TestBinderEnter(t *testing.T) {
	rows := []Row{
		CategoryRow("A", 10, "X"),
		CategoryRow("B", 20, "Y"),
	}
	b, sc, join := bind(rows)
	if got, want := join.Enter, []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("enter mismatch: got %v want %v", got, want)
	}
	if len(join.Update) != 0 || len(join.Exit) != 0 {
		t.Fatalf("unexpected update/exit: %+v", join)
	}
	height := DefaultLayout().InnerHeight()
	bars := b.Bars()
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	for i, bar := range bars {
		if bar.Phase != PhaseEnter {
			t.Fatalf("%s: expected enter phase, got %s", bar.Key, bar.Phase)
		}
		if bar.From.Y != height || bar.From.Height != 0 {
			t.Fatalf("%s: bar should grow from the baseline, got %+v", bar.Key, bar.From)
		}
		want := height - sc.Y.Scale(rows[i].Value)
		if !approx(bar.To.Height, want) {
			t.Fatalf("%s: height mismatch: got %f want %f", bar.Key, bar.To.Height, want)
		}
		if bar.To.Height < 0 {
			t.Fatalf("%s: negative height %f", bar.Key, bar.To.Height)
		}
		if bar.To.X != sc.X.Scale(bar.Key) || bar.To.Width != sc.X.Bandwidth() {
			t.Fatalf("%s: horizontal position mismatch %+v", bar.Key, bar.To)
		}
		if bar.Duration != DefaultEnterDuration {
			t.Fatalf("%s: unexpected duration %s", bar.Key, bar.Duration)
		}
	}
	if bars[1].To.Height <= bars[0].To.Height {
		t.Fatalf("B should be taller than A")
	}
	if bars[0].Fill == bars[1].Fill {
		t.Fatalf("X and Y should have distinct colors")
	}

	labels := b.Labels()
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	for i, lab := range labels {
		if lab.FromY != height {
			t.Fatalf("%s: label should start at the baseline", lab.Key)
		}
		if want := sc.Y.Scale(rows[i].Value) - LabelOffset; !approx(lab.Y, want) {
			t.Fatalf("%s: label y mismatch: got %f want %f", lab.Key, lab.Y, want)
		}
		if want := bars[i].To.X + bars[i].To.Width/2; !approx(lab.X, want) {
			t.Fatalf("%s: label x mismatch: got %f want %f", lab.Key, lab.X, want)
		}
	}
	if labels[0].Text != "10" || labels[1].Text != "20" {
		t.Fatalf("unexpected label texts %q %q", labels[0].Text, labels[1].Text)
	}
}

func TestBinderUpdateExit(t *testing.T) {
	var (
		first = []Row{
			CategoryRow("A", 10, "X"),
			CategoryRow("B", 20, "Y"),
			CategoryRow("C", 5, "X"),
		}
		second = []Row{
			CategoryRow("A", 15, "X"),
			CategoryRow("D", 8, "Z"),
			CategoryRow("C", 5, "X"),
		}
	)
	b, _, _ := bind(first)
	before, _ := b.Bar("A")

	sc := BuildScales(second, DefaultLayout(), Tableau10, DefaultBandPadding, DefaultTicks)
	join := b.Bind(sc, second)
	if got, want := join.Enter, []string{"D"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("enter mismatch: got %v want %v", got, want)
	}
	if got, want := join.Update, []string{"A", "C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("update mismatch: got %v want %v", got, want)
	}
	if got, want := join.Exit, []string{"B"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("exit mismatch: got %v want %v", got, want)
	}

	a, _ := b.Bar("A")
	if a.Phase != PhaseUpdate || a.From != before.To {
		t.Fatalf("update should start from the previous target: %+v", a)
	}
	exit, ok := b.Bar("B")
	if !ok || exit.Phase != PhaseExit {
		t.Fatalf("B should be exiting")
	}
	height := DefaultLayout().InnerHeight()
	if exit.To.Y != height || exit.To.Height != 0 || exit.Duration != DefaultExitDuration {
		t.Fatalf("exit should collapse to the baseline: %+v", exit)
	}
	for _, lab := range b.Labels() {
		if lab.Key == "B" {
			t.Fatalf("label of an exiting bar should be removed at once")
		}
	}

	mid := b.Frame(DefaultExitDuration / 2)
	if len(mid.Bars) != 4 {
		t.Fatalf("exiting bar should be drawn during its transition, got %d bars", len(mid.Bars))
	}
	end := b.Frame(DefaultExitDuration)
	if len(end.Bars) != 3 {
		t.Fatalf("exiting bar should be removed after its transition, got %d bars", len(end.Bars))
	}
	if len(end.Labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(end.Labels))
	}

	b.Settle()
	if _, ok := b.Bar("B"); ok {
		t.Fatalf("settled binder still holds B")
	}
	if got := len(b.Bars()); got != 3 {
		t.Fatalf("expected 3 bars once settled, got %d", got)
	}
}

func TestBinderFrame(t *testing.T) {
	rows := []Row{CategoryRow("A", 10, "X")}
	b, sc, _ := bind(rows)
	height := DefaultLayout().InnerHeight()

	start := b.Frame(0)
	if got := start.Bars[0].Height; got != 0 {
		t.Fatalf("bar should have no height at start, got %f", got)
	}
	end := b.Frame(DefaultEnterDuration)
	if got, want := end.Bars[0].Height, height-sc.Y.Scale(10); !approx(got, want) {
		t.Fatalf("final height mismatch: got %f want %f", got, want)
	}
	mid := b.Frame(DefaultEnterDuration / 2)
	if got := mid.Bars[0].Height; got <= 0 || got >= end.Bars[0].Height {
		t.Fatalf("mid transition height out of bounds: %f", got)
	}
	if got, want := end.Labels[0].Y, sc.Y.Scale(10)-LabelOffset; !approx(got, want) {
		t.Fatalf("final label y mismatch: got %f want %f", got, want)
	}
}

func TestBinderDuplicateKeys(t *testing.T) {
	rows := []Row{
		CategoryRow("A", 10, "X"),
		CategoryRow("A", 30, "Y"),
		CategoryRow("B", 20, "X"),
	}
	b, _, join := bind(rows)
	if got, want := join.Enter, []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("enter mismatch: got %v want %v", got, want)
	}
	if got := len(b.Bars()); got != len(Names(rows)) {
		t.Fatalf("bar count %d does not match distinct names", got)
	}
	a, _ := b.Bar("A")
	if a.Row.Value != 30 || a.Row.Category != "Y" {
		t.Fatalf("last bound row should win, got %+v", a.Row)
	}
}

func TestBinderInvalidValue(t *testing.T) {
	rows := []Row{
		CategoryRow("A", 10, "X"),
		CategoryRow("C", math.NaN(), "Z"),
	}
	b, _, _ := bind(rows)
	c, _ := b.Bar("C")
	if !math.IsNaN(c.To.Height) || !math.IsNaN(c.To.Y) {
		t.Fatalf("invalid value should give a non finite bar, got %+v", c.To)
	}
	a, _ := b.Bar("A")
	if math.IsNaN(a.To.Height) || a.To.Height <= 0 {
		t.Fatalf("valid row should not be affected, got %+v", a.To)
	}
	for _, lab := range b.Labels() {
		if lab.Key == "C" && lab.Text != "NaN" {
			t.Fatalf("label of an invalid value: got %q want NaN", lab.Text)
		}
	}
}

func TestBinderEmpty(t *testing.T) {
	b, _, join := bind(nil)
	if join.Len() != 0 || len(join.Exit) != 0 {
		t.Fatalf("empty dataset should not bind anything: %+v", join)
	}
	if len(b.Bars()) != 0 || len(b.Labels()) != 0 {
		t.Fatalf("empty dataset should not have any element")
	}
	if f := b.Frame(time.Second); len(f.Bars) != 0 {
		t.Fatalf("empty frame expected")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		In   float64
		Want string
	}{
		{In: 10, Want: "10"},
		{In: 2.5, Want: "2.5"},
		{In: -3, Want: "-3"},
		{In: 0, Want: "0"},
		{In: math.NaN(), Want: "NaN"},
		{In: math.Inf(1), Want: "Infinity"},
		{In: 1e21, Want: "1e+21"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.In); got != tt.Want {
			t.Fatalf("format %v: got %q want %q", tt.In, got, tt.Want)
		}
	}
}
