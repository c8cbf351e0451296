// perfchart renders the embedded std::vector vs static_vector benchmark
// tables into one composed comparison figure, writes it to
// vector_performance_comparison.png in the working directory, and shows it
// in a window. It takes no arguments and reads no environment.
package main

import (
	"fmt"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/karanchawla/static-vector/cmd/perfchart/viewhelpers"
	"github.com/karanchawla/static-vector/src/benchdata"
	"github.com/karanchawla/static-vector/src/figure"
)

func main() {
	for _, tbl := range []*benchdata.Table{benchdata.StdVector, benchdata.StaticVector} {
		if err := tbl.Validate(); err != nil {
			fmt.Printf("bad timing table: %v\n", err)
			os.Exit(1)
		}
	}

	opts := figure.DefaultOptions()
	img, err := figure.Compose(benchdata.StdVector, benchdata.StaticVector, opts)
	if err != nil {
		fmt.Printf("compose figure: %v\n", err)
		os.Exit(1)
	}

	// Save before showing so the file exists even when no display is available.
	if err := figure.Save(img, figure.OutputFile); err != nil {
		fmt.Printf("save figure: %v\n", err)
		os.Exit(1)
	}
	figure.Infof("wrote %s (%dx%d)", figure.OutputFile, img.Bounds().Dx(), img.Bounds().Dy())

	a := app.New()
	w := a.NewWindow("Vector Performance Comparison")
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	winW, winH := viewhelpers.FitWindow(img.Bounds().Dx(), img.Bounds().Dy())
	w.Resize(fyne.NewSize(winW, winH))
	w.SetContent(c)
	w.ShowAndRun()
}
