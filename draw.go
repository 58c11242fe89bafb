package barchart

import (
	"fmt"
	"html"
	"strconv"
	"time"

	svg "github.com/ajstarks/svgo/float"
)

func drawBar(canvas *svg.SVG, b Bar, r Rect, animate bool) {
	canvas.Rect(r.X, r.Y, r.Width, r.Height,
		fmt.Sprintf(`id="%s"`, b.ID),
		`class="bar"`,
		fmt.Sprintf(`fill="%s"`, b.Fill),
		fmt.Sprintf(`data-name="%s"`, html.EscapeString(b.Row.Name)),
		fmt.Sprintf(`data-value="%s"`, FormatValue(b.Row.Value)),
	)
	if !animate {
		return
	}
	animateTweens(canvas, b.ID, b.Tweens())
	if b.Phase == PhaseExit {
		fmt.Fprintf(canvas.Writer, `<set xlink:href="#%s" attributeName="visibility" to="hidden" begin="%s" fill="freeze"/>`+"\n", b.ID, seconds(b.Duration))
	}
}

func drawLabel(canvas *svg.SVG, l Label, x, y float64, animate bool) {
	canvas.Text(x, y, l.Text,
		fmt.Sprintf(`id="%s"`, l.ID),
		`class="bar-label"`,
		`text-anchor="middle"`,
		fmt.Sprintf(`font-size="%g"`, FontSize),
	)
	if animate {
		animateTweens(canvas, l.ID, l.Tweens())
	}
}

// animateTweens writes one SMIL animation per changing attribute. Endpoints
// keep their full precision: svgo's Animate truncates them to integers.
func animateTweens(canvas *svg.SVG, id string, tweens []Tween) {
	for _, tw := range tweens {
		if tw.Static() || tw.Duration <= 0 {
			continue
		}
		fmt.Fprintf(canvas.Writer, `<animate xlink:href="#%s" attributeName="%s" from="%s" to="%s" dur="%s" begin="%s" repeatCount="1" fill="freeze"`,
			id, tw.Attr, formatCoord(tw.From), formatCoord(tw.To), seconds(tw.Duration), seconds(tw.Delay))
		if tw.Ease.Spline != "" {
			fmt.Fprintf(canvas.Writer, ` calcMode="spline" keyTimes="0;1" keySplines="%s"`, tw.Ease.Spline)
		}
		fmt.Fprintln(canvas.Writer, "/>")
	}
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%gs", d.Seconds())
}
