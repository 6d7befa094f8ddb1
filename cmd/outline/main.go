// seehuhn.de/go/outline - raster outline tracing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
// Command outline traces the opaque regions of a raster image.
//
// The command segments the image into islands, traces their boundaries
// and optionally writes the result as JSON, SVG, PDF or PNG previews.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/alecthomas/kingpin.v2"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/export"
	"seehuhn.de/go/outline/preview"
)

type options struct {
	input     string
	threshold uint8
	conn      string
	strategy  string
	thickness float64
	aspect    bool
	workers   int

	jsonOut    string
	svgOut     string
	pdfOut     string
	meshOut    string
	overlayOut string

	flow      bool
	flowY     float64
	steps     int
	noAdvance bool

	names   bool
	showImg bool
	verbose bool
}

func main() {
	opt := &options{}
	app := kingpin.New("outline", "Trace the opaque regions of a raster image.")
	app.Arg("input", "input image (PNG, JPEG, GIF, BMP, TIFF or WebP)").Required().ExistingFileVar(&opt.input)
	app.Flag("threshold", "alpha values above this count as opaque").Default("0").Uint8Var(&opt.threshold)
	app.Flag("conn", "pixel connectivity").Default("4").EnumVar(&opt.conn, "4", "8")
	app.Flag("strategy", "boundary tracing strategy").Default("contour").EnumVar(&opt.strategy, "contour", "edges", "greedy")
	app.Flag("thickness", "stroke width of the mesh, in normalised units").Default("0.01").Float64Var(&opt.thickness)
	app.Flag("aspect", "keep the aspect ratio of the image").BoolVar(&opt.aspect)
	app.Flag("workers", "number of tracing goroutines (0 = one per CPU)").Default("0").IntVar(&opt.workers)
	app.Flag("json", "write the traced outline as JSON").PlaceHolder("FILE").StringVar(&opt.jsonOut)
	app.Flag("svg", "write the traced outline as SVG").PlaceHolder("FILE").StringVar(&opt.svgOut)
	app.Flag("pdf", "write the traced outline as PDF").PlaceHolder("FILE").StringVar(&opt.pdfOut)
	app.Flag("mesh-png", "write the rasterised stroke mesh as PNG").PlaceHolder("FILE").StringVar(&opt.meshOut)
	app.Flag("overlay-png", "write the outline drawn over the input as PNG").PlaceHolder("FILE").StringVar(&opt.overlayOut)
	app.Flag("flow", "simulate a horizontal flow through the outline").BoolVar(&opt.flow)
	app.Flag("flow-y", "vertical position of the flow, in normalised units").Default("0").Float64Var(&opt.flowY)
	app.Flag("steps", "number of flow simulation steps").Default("1000").IntVar(&opt.steps)
	app.Flag("no-advance", "keep the flow in place on steps without a boundary crossing").BoolVar(&opt.noAdvance)
	app.Flag("names", "show readable names for the islands").BoolVar(&opt.names)
	app.Flag("imgcat", "show the overlay in the terminal").BoolVar(&opt.showImg)
	app.Flag("verbose", "log pipeline statistics").Short('v').BoolVar(&opt.verbose)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, "outline:", err)
		os.Exit(1)
	}
}

func run(opt *options) error {
	level := slog.LevelWarn
	if opt.verbose {
		level = slog.LevelDebug
	}
	outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	img, err := loadImage(opt.input)
	if err != nil {
		return err
	}

	p := outline.NewPipeline()
	p.Threshold = opt.threshold
	p.Thickness = opt.thickness
	p.AspectCorrect = opt.aspect
	p.Workers = opt.workers
	if opt.conn == "8" {
		p.Connectivity = outline.Conn8
	}
	switch opt.strategy {
	case "edges":
		p.Strategy = outline.EdgeEmission
	case "greedy":
		p.Strategy = outline.GreedyWalk
	}

	res, err := p.Run(img)
	if err != nil {
		return err
	}
	printSummary(opt, res)

	if opt.flow {
		sim := outline.NewFlowSimulator()
		sim.Steps = opt.steps
		sim.Advance = !opt.noAdvance
		a := res.Aspect
		flow := res.Simulate(sim, outline.HorizontalFlow(-a, -a+0.1, opt.flowY))
		last := flow.Last()
		mp := message.NewPrinter(language.English)
		mp.Printf("flow: %d steps, %d boundary hits, end (%.4f, %.4f)\n",
			len(flow.Path), flow.Hits(), last.End.X(), last.End.Y())
	}

	return writeOutputs(opt, img, res)
}

func loadImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

func printSummary(opt *options, res *outline.Result) {
	mp := message.NewPrinter(language.English)
	mp.Printf("%s: %d×%d pixels, %d islands, %d lines, %d mesh vertices\n",
		aurora.Bold(filepath.Base(opt.input)), res.Width, res.Height,
		len(res.Segmentation.Islands), len(res.Lines), len(res.Mesh))
	if n := res.Partial(); n > 0 {
		mp.Printf("%s %d boundaries were traced partially\n", aurora.Yellow("warning:"), n)
	}
	if !opt.names {
		return
	}
	for i, is := range res.Segmentation.Islands {
		b := &res.Boundaries[i]
		holes := 0
		for _, loop := range b.Loops {
			if loop.Hole {
				holes++
			}
		}
		mp.Printf("  %-24s id %d, %d pixels, %d lines, %d holes\n",
			aurora.Cyan(petname.Generate(2, "-")).String(), is.ID, is.Len(), len(b.Lines), holes)
	}
}

func writeOutputs(opt *options, img image.Image, res *outline.Result) error {
	if opt.jsonOut != "" {
		if err := writeFile(opt.jsonOut, func(f *os.File) error { return export.WriteJSON(f, res) }); err != nil {
			return err
		}
	}
	if opt.svgOut != "" {
		if err := writeFile(opt.svgOut, func(f *os.File) error { return export.WriteSVG(f, res) }); err != nil {
			return err
		}
	}
	if opt.pdfOut != "" {
		if err := export.WritePDF(opt.pdfOut, res, float64(res.Width), float64(res.Height)); err != nil {
			return err
		}
	}
	if opt.meshOut != "" {
		mesh := preview.RenderMesh(res.Mesh, res.Width, res.Height, res.Aspect)
		if err := preview.SavePNG(opt.meshOut, mesh); err != nil {
			return err
		}
	}

	overlay := opt.overlayOut
	if overlay == "" && opt.showImg {
		overlay = filepath.Join(os.TempDir(), "outline-overlay.png")
	}
	if overlay != "" {
		if err := preview.SavePNG(overlay, preview.Overlay(img, res.Lines, res.Aspect)); err != nil {
			return err
		}
		if opt.showImg {
			imgcat.CatFile(overlay, os.Stdout)
		}
	}
	return nil
}

func writeFile(fname string, write func(*os.File) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
