package figure

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/karanchawla/static-vector/src/benchdata"
)

var (
	colorBaseline = chart.ColorBlue
	colorFixedCap = chart.ColorGreen
	colorGrid     = drawing.Color{R: 180, G: 180, B: 180, A: 100}
)

// curveStyle renders a connected line with visible point markers.
func curveStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lightGrid() chart.Style {
	return chart.Style{
		StrokeWidth: 1.0,
		StrokeColor: colorGrid,
	}
}

// RenderPanel draws one operation's sub-plot: both subjects as connected
// markers on log-log axes, a legend, a light grid, and every point annotated
// with its literal timing (subject a above the marker, subject b below).
func RenderPanel(op string, a, b *benchdata.Table, opts Options) (image.Image, error) {
	sa, ok := a.Series(op)
	if !ok {
		return nil, fmt.Errorf("%s: no series for %s", a.Name, op)
	}
	sb, ok := b.Series(op)
	if !ok {
		return nil, fmt.Errorf("%s: no series for %s", b.Name, op)
	}

	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for _, s := range [][]float64{sa, sb} {
		for _, v := range s {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	yLo, yHi := logAxisBounds(minY, maxY)
	// Pad the x domain so edge markers and their labels stay inside the plot.
	xLo := benchdata.Sizes[0] * 0.7
	xHi := benchdata.Sizes[len(benchdata.Sizes)-1] * 1.4

	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load chart font: %w", err)
	}

	pw, ph := opts.PanelSize()
	ch := chart.Chart{
		Title:  op + " Performance",
		DPI:    opts.DPI,
		Width:  pw,
		Height: ph,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    opts.pt(12),
				Left:   opts.pt(6),
				Right:  opts.pt(6),
				Bottom: opts.pt(8),
			},
		},
		XAxis: chart.XAxis{
			Name:           "Number of Elements",
			Range:          &chart.LogarithmicRange{Min: xLo, Max: xHi},
			Ticks:          sizeTicks(benchdata.Sizes),
			GridMajorStyle: lightGrid(),
		},
		YAxis: chart.YAxis{
			Name:           "Time (ns)",
			Range:          &chart.LogarithmicRange{Min: yLo, Max: yHi},
			Ticks:          decadeTicks(yLo, yHi),
			GridMajorStyle: lightGrid(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: a.Name, XValues: benchdata.Sizes, YValues: sa, Style: curveStyle(colorBaseline)},
			chart.ContinuousSeries{Name: b.Name, XValues: benchdata.Sizes, YValues: sb, Style: curveStyle(colorFixedCap)},
		},
	}

	labels := func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		xr := &chart.LogarithmicRange{Min: xLo, Max: xHi}
		yr := &chart.LogarithmicRange{Min: yLo, Max: yHi}
		xr.SetDomain(canvasBox.Width())
		yr.SetDomain(canvasBox.Height())
		r.SetFont(f)
		r.SetFontSize(annotationFontSize)
		off := opts.pt(annotationOffsetPt)
		annotate := func(vals []float64, col drawing.Color, above bool) {
			r.SetFontColor(col)
			for i, v := range vals {
				label := benchdata.FormatValue(v)
				tb := r.MeasureText(label)
				x := canvasBox.Left + xr.Translate(benchdata.Sizes[i]) - tb.Width()/2
				y := canvasBox.Bottom - yr.Translate(v)
				if above {
					y -= off
				} else {
					y += off + tb.Height()
				}
				r.Text(label, x, y)
			}
		}
		annotate(sa, colorBaseline, true)
		annotate(sb, colorFixedCap, false)
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch), labels}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s panel: %w", op, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s panel: %w", op, err)
	}
	return img, nil
}
