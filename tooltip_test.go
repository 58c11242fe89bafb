package barchart

import (
	"strings"
	"testing"
	"time"
)

func TestTooltipFade(t *testing.T) {
	tip := NewTooltip(150 * time.Millisecond)
	if tip.Shown() || tip.Opacity(0) != 0 {
		t.Fatalf("tooltip should start hidden")
	}
	tip.Enter(0, Pointer{X: 100, Y: 200}, CategoryRow("A", 10, "X"))
	if !tip.Shown() {
		t.Fatalf("tooltip should be shown after enter")
	}
	tests := []struct {
		Now  time.Duration
		Want float64
	}{
		{Now: 0, Want: 0},
		{Now: 75 * time.Millisecond, Want: 0.5},
		{Now: 150 * time.Millisecond, Want: 1},
		{Now: time.Second, Want: 1},
	}
	for _, tt := range tests {
		if got := tip.Opacity(tt.Now); !approx(got, tt.Want) {
			t.Fatalf("opacity at %s: got %f want %f", tt.Now, got, tt.Want)
		}
	}
	if tip.Content.Name != "A" || tip.Content.Value != "10" {
		t.Fatalf("unexpected content %+v", tip.Content)
	}
	if tip.X != 100+DefaultTooltipOffsetX || tip.Y != 200+DefaultTooltipOffsetY {
		t.Fatalf("tooltip should be offset from the pointer: (%f, %f)", tip.X, tip.Y)
	}
}

func TestTooltipLeaveDuringFade(t *testing.T) {
	tip := NewTooltip(150 * time.Millisecond)
	tip.Enter(0, Pointer{}, CategoryRow("A", 10, "X"))
	tip.Leave(75 * time.Millisecond)
	if tip.Shown() {
		t.Fatalf("tooltip should not be shown after leave")
	}
	if got := tip.Opacity(75 * time.Millisecond); !approx(got, 0.5) {
		t.Fatalf("fade out should start from the current opacity, got %f", got)
	}
	if got := tip.Opacity(225 * time.Millisecond); !approx(got, 0) {
		t.Fatalf("tooltip should be hidden at the end of the fade, got %f", got)
	}
}

func TestTooltipLastEventWins(t *testing.T) {
	tip := NewTooltip(150 * time.Millisecond)
	tip.Enter(0, Pointer{X: 10, Y: 10}, CategoryRow("A", 10, "X"))
	tip.Enter(time.Second, Pointer{X: 50, Y: 60}, CategoryRow("B", 20, "Y"))
	if tip.Content.Name != "B" || tip.Content.Value != "20" {
		t.Fatalf("content should follow the last bar: %+v", tip.Content)
	}
	if got := tip.Opacity(time.Second); !approx(got, 1) {
		t.Fatalf("moving between bars should keep the tooltip visible, got %f", got)
	}
	if tip.X != 50+DefaultTooltipOffsetX || tip.Y != 60+DefaultTooltipOffsetY {
		t.Fatalf("tooltip should follow the pointer: (%f, %f)", tip.X, tip.Y)
	}
}

func TestTooltipScript(t *testing.T) {
	tip := NewTooltip(150 * time.Millisecond)
	str := tip.Script()
	for _, s := range []string{"opacity 150ms", "+ 12", "+ -28", "data-name", "data-value"} {
		if !strings.Contains(str, s) {
			t.Fatalf("script does not contain %q", s)
		}
	}
	if strings.Contains(str, "$") {
		t.Fatalf("script still has placeholders")
	}
}
