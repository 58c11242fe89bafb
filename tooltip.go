package barchart

import (
	"fmt"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo/float"
)

const (
	DefaultTooltipOffsetX = 12.0
	DefaultTooltipOffsetY = -28.0
)

type Pointer struct {
	X float64
	Y float64
}

type TooltipContent struct {
	Name  string
	Value string
}

// Tooltip is a single floating element shown while the pointer is over a
// bar. Events carry the time at which they happen; the last event wins and
// its fade starts from the opacity reached at that time.
type Tooltip struct {
	Fade    time.Duration
	OffsetX float64
	OffsetY float64

	Content TooltipContent
	X       float64
	Y       float64

	shown bool
	at    time.Duration
	fade  Tween
}

func NewTooltip(fade time.Duration) *Tooltip {
	return &Tooltip{
		Fade:    fade,
		OffsetX: DefaultTooltipOffsetX,
		OffsetY: DefaultTooltipOffsetY,
		fade:    NewTween("opacity", 0, 0, 0, EaseCubicInOut),
	}
}

func (t *Tooltip) Enter(now time.Duration, p Pointer, r Row) {
	t.Content = TooltipContent{
		Name:  r.Name,
		Value: FormatValue(r.Value),
	}
	t.X = p.X + t.OffsetX
	t.Y = p.Y + t.OffsetY
	t.transition(now, 1)
	t.shown = true
}

func (t *Tooltip) Leave(now time.Duration) {
	t.transition(now, 0)
	t.shown = false
}

// Shown reports whether the last event was an Enter.
func (t *Tooltip) Shown() bool {
	return t.shown
}

func (t *Tooltip) Opacity(now time.Duration) float64 {
	return t.fade.At(now - t.at)
}

func (t *Tooltip) transition(now time.Duration, target float64) {
	from := t.Opacity(now)
	t.at = now
	t.fade = NewTween("opacity", from, target, t.Fade, EaseCubicInOut)
}

func (t *Tooltip) Render(canvas *svg.SVG, now time.Duration) {
	canvas.Group(`class="tooltip"`, `pointer-events="none"`, fmt.Sprintf(`opacity="%g"`, t.Opacity(now)), translate(t.X, t.Y))
	canvas.Rect(0, 0, 90, 36, `class="tooltip-box"`, `rx="3"`, `fill="white"`, `stroke="#999"`)
	canvas.Text(6, 15, t.Content.Name, `class="tooltip-name"`, `font-weight="bold"`, fmt.Sprintf(`font-size="%g"`, FontSize+2))
	canvas.Text(6, 30, t.Content.Value, `class="tooltip-value"`, fmt.Sprintf(`font-size="%g"`, FontSize+2))
	canvas.Gend()
}

// Script returns the handler wiring the tooltip to the bars of a document
// with the offsets and fade of t.
func (t *Tooltip) Script() string {
	r := strings.NewReplacer(
		"$FADE", fmt.Sprintf("%d", t.Fade.Milliseconds()),
		"$DX", fmt.Sprintf("%g", t.OffsetX),
		"$DY", fmt.Sprintf("%g", t.OffsetY),
	)
	return r.Replace(tooltipScript)
}

const tooltipScript = `(function() {
  var tip = document.querySelector("g.tooltip");
  if (!tip) return;
  var root = tip.ownerSVGElement;
  tip.style.transition = "opacity $FADEms";
  var name = tip.querySelector(".tooltip-name"), value = tip.querySelector(".tooltip-value");
  root.querySelectorAll("rect.bar").forEach(function(bar) {
    bar.addEventListener("mouseover", function(evt) {
      var box = root.getBoundingClientRect();
      name.textContent = bar.getAttribute("data-name");
      value.textContent = bar.getAttribute("data-value");
      tip.setAttribute("transform", "translate(" + (evt.clientX - box.left + $DX) + "," + (evt.clientY - box.top + $DY) + ")");
      tip.style.opacity = 1;
    });
    bar.addEventListener("mouseout", function() {
      tip.style.opacity = 0;
    });
  });
})();`
