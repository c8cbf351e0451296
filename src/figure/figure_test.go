package figure

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/karanchawla/static-vector/src/benchdata"
)

// testOptions keeps raster work small; geometry rules are DPI-independent.
func testOptions() Options { return Options{DPI: 36} }

func TestFigureGeometry(t *testing.T) {
	opts := testOptions()
	pw, ph := opts.PanelSize()
	if pw != 360 || ph != 180 {
		t.Fatalf("panel size at DPI 36 = %dx%d, want 360x180", pw, ph)
	}
	strip := opts.TitleStripHeight()
	if strip != 21 {
		t.Fatalf("title strip height = %d, want 21", strip)
	}
	fw, fh := opts.FigureSize()
	if fw != gridCols*pw || fh != strip+gridRows*ph {
		t.Fatalf("figure size = %dx%d, want %dx%d", fw, fh, gridCols*pw, strip+gridRows*ph)
	}
}

func TestPanelOriginsRowMajor(t *testing.T) {
	opts := testOptions()
	pw, ph := opts.PanelSize()
	strip := opts.TitleStripHeight()
	want := []image.Point{
		{0, strip},
		{pw, strip},
		{0, strip + ph},
		{pw, strip + ph},
		{0, strip + 2*ph},
		{pw, strip + 2*ph},
	}
	if len(want) != len(benchdata.Operations) {
		t.Fatalf("grid has %d cells for %d operations", len(want), len(benchdata.Operations))
	}
	for i := range benchdata.Operations {
		if got := panelOrigin(i, opts); got != want[i] {
			t.Fatalf("panelOrigin(%d) = %v, want %v", i, got, want[i])
		}
	}
}

func TestRenderPanelDimensions(t *testing.T) {
	opts := testOptions()
	pw, ph := opts.PanelSize()
	for _, op := range benchdata.Operations {
		img, err := RenderPanel(op, benchdata.StdVector, benchdata.StaticVector, opts)
		if err != nil {
			t.Fatalf("RenderPanel(%s): %v", op, err)
		}
		b := img.Bounds()
		if b.Dx() != pw || b.Dy() != ph {
			t.Fatalf("%s panel is %dx%d, want %dx%d", op, b.Dx(), b.Dy(), pw, ph)
		}
	}
}

func TestRenderPanelUnknownOperation(t *testing.T) {
	if _, err := RenderPanel("ShrinkToFit", benchdata.StdVector, benchdata.StaticVector, testOptions()); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestComposeFigure(t *testing.T) {
	opts := testOptions()
	img, err := Compose(benchdata.StdVector, benchdata.StaticVector, opts)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	fw, fh := opts.FigureSize()
	b := img.Bounds()
	if b.Dx() != fw || b.Dy() != fh {
		t.Fatalf("figure is %dx%d, want %dx%d", b.Dx(), b.Dy(), fw, fh)
	}
}

func TestRenderPanelDeterministic(t *testing.T) {
	opts := testOptions()
	encode := func() []byte {
		img, err := RenderPanel("Iteration", benchdata.StdVector, benchdata.StaticVector, opts)
		if err != nil {
			t.Fatalf("RenderPanel: %v", err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode: %v", err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(encode(), encode()) {
		t.Fatalf("two renders of identical data differ")
	}
}

func TestSaveWritesValidPNG(t *testing.T) {
	opts := testOptions()
	img, err := Compose(benchdata.StdVector, benchdata.StaticVector, opts)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	path := filepath.Join(t.TempDir(), OutputFile)
	if err := Save(img, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("output file is empty")
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if decoded.Bounds().Empty() {
		t.Fatalf("decoded image has empty bounds")
	}
}

func TestSaveRejectsBadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	err := Save(img, filepath.Join(t.TempDir(), "missing", "out.png"))
	if err == nil {
		t.Fatalf("expected error writing into missing directory")
	}
}
