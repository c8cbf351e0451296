// Package figure turns the embedded benchmark tables into one composed
// comparison image: a 3x2 grid of per-operation log-log panels under a
// figure title, saved as a PNG and handed to the viewer window.
package figure

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/karanchawla/static-vector/src/benchdata"
)

// OutputFile is the fixed figure path, written into the working directory.
const OutputFile = "vector_performance_comparison.png"

const (
	gridCols = 2
	gridRows = 3

	// Figure geometry in inches; pixel sizes are inches times DPI.
	panelWidthIn  = 10.0
	panelHeightIn = 5.0
	titleStripIn  = 0.6

	titleFontSize      = 20
	annotationFontSize = 8
	annotationOffsetPt = 10
)

// Options controls raster resolution. The output file is rendered at
// DefaultOptions; tests use a smaller DPI to stay fast.
type Options struct {
	DPI float64
}

func DefaultOptions() Options { return Options{DPI: 300} }

// pt converts a point/inch-based measure to pixels at the configured DPI.
func (o Options) pt(points float64) int {
	return int(points * o.DPI / 72.0)
}

// PanelSize returns one sub-plot's pixel dimensions.
func (o Options) PanelSize() (int, int) {
	return int(panelWidthIn * o.DPI), int(panelHeightIn * o.DPI)
}

// TitleStripHeight returns the pixel height of the figure title band.
func (o Options) TitleStripHeight() int {
	return int(titleStripIn * o.DPI)
}

// FigureSize returns the composed figure's pixel dimensions.
func (o Options) FigureSize() (int, int) {
	pw, ph := o.PanelSize()
	return gridCols * pw, o.TitleStripHeight() + gridRows*ph
}

// panelOrigin returns the top-left corner of panel i in the composed figure,
// row-major in operation declaration order.
func panelOrigin(i int, o Options) image.Point {
	pw, ph := o.PanelSize()
	return image.Pt((i%gridCols)*pw, o.TitleStripHeight()+(i/gridCols)*ph)
}

// Compose renders every operation panel and assembles the full figure:
// title strip on top, panels in a 3x2 grid below, caption bottom-left.
func Compose(a, b *benchdata.Table, opts Options) (image.Image, error) {
	defer TimeTrack(time.Now(), "compose figure")
	fw, fh := opts.FigureSize()
	out := image.NewRGBA(image.Rect(0, 0, fw, fh))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	title := fmt.Sprintf("Performance Comparison: %s vs %s", a.Name, b.Name)
	strip, err := renderTitleStrip(title, opts)
	if err != nil {
		return nil, err
	}
	draw.Draw(out, image.Rect(0, 0, fw, opts.TitleStripHeight()), strip, image.Point{}, draw.Over)

	for i, op := range benchdata.Operations {
		start := time.Now()
		panel, err := RenderPanel(op, a, b, opts)
		if err != nil {
			return nil, err
		}
		org := panelOrigin(i, opts)
		pw, ph := opts.PanelSize()
		draw.Draw(out, image.Rect(org.X, org.Y, org.X+pw, org.Y+ph), panel, image.Point{}, draw.Over)
		TimeTrack(start, "panel "+op)
	}

	drawCaption(out, "times in nanoseconds, both axes log scale")
	return out, nil
}

// renderTitleStrip draws the centered figure title with the chart renderer so
// it uses the same typeface as the panels.
func renderTitleStrip(title string, opts Options) (image.Image, error) {
	fw, _ := opts.FigureSize()
	h := opts.TitleStripHeight()
	r, err := chart.PNG(fw, h)
	if err != nil {
		return nil, fmt.Errorf("title renderer: %w", err)
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load chart font: %w", err)
	}
	r.SetDPI(opts.DPI)
	r.SetFont(f)
	r.SetFontSize(titleFontSize)
	r.SetFontColor(chart.DefaultTextColor)
	tb := r.MeasureText(title)
	x := (fw - tb.Width()) / 2
	if x < 0 {
		x = 0
	}
	y := (h + tb.Height()) / 2
	r.Text(title, x, y)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("render title: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode title: %w", err)
	}
	return img, nil
}

// drawCaption writes a small caption near the bottom-left of the figure.
func drawCaption(img *image.RGBA, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b := img.Bounds()
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 90, G: 90, B: 90, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 8), Y: fixed.I(b.Max.Y - 6)},
	}
	dr.DrawString(text)
}

// Save encodes the figure and writes it to path.
func Save(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
