package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/vi-life/config"
	"github.com/lixenwraith/vi-life/dispatch"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/grid"
	"github.com/lixenwraith/vi-life/parameter"
	"github.com/lixenwraith/vi-life/terminal"
	"github.com/lixenwraith/vi-life/visual"
)

// headlessSize fits a text frame of two columns per cell into the terminal
func headlessSize(cfg config.Config, fd int) (int, int) {
	width, height := cfg.Width, cfg.Height
	if width > 0 && height > 0 {
		return width, height
	}
	cols, rows := terminal.Size(fd)
	if width <= 0 {
		width = max(cols/2, 1)
	}
	if height <= 0 {
		height = max(rows-2, 1)
	}
	return width, height
}

// runHeadless prints the initial frame and then one frame per generation
func runHeadless(w io.Writer, e *engine.Engine, generations int) error {
	if generations <= 0 {
		generations = parameter.DefaultHeadlessGenerations
	}
	writeFrame(w, e.ReadCurrent())
	for i := 0; i < generations; i++ {
		if err := e.Advance(); err != nil {
			return err
		}
		writeFrame(w, e.ReadCurrent())
	}
	return nil
}

func writeFrame(w io.Writer, s grid.Snapshot) {
	fmt.Fprintf(w, "generation %d population %d\n", s.Generation, s.Population())
	io.WriteString(w, visual.Text(s))
}

// writePNG renders s scaled by scale with a caption strip below it
func writePNG(path string, s grid.Snapshot, m *visual.Mapper, caption string, scale int) error {
	cells := visual.Scale(m.Image(s), scale)
	b := cells.Bounds()

	img := image.NewRGBA(image.Rect(0, 0, max(b.Dx(), 1), b.Dy()+parameter.PNGCaptionHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(m.Off)), image.Point{}, draw.Src)
	draw.Draw(img, b, cells, b.Min, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rgba(m.Young)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, b.Dy()+parameter.PNGCaptionHeight-4),
	}
	d.DrawString(caption)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rgba(c terminal.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// benchResult is one dispatcher's measured throughput
type benchResult struct {
	Name      string
	Steps     int
	Elapsed   time.Duration
	CellsStep int
}

func (r benchResult) StepsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Elapsed.Seconds()
}

func (r benchResult) String() string {
	return fmt.Sprintf("%-12s %6d steps in %10v  %10.1f gen/s  %8.2f Mcell/s",
		r.Name, r.Steps, r.Elapsed.Round(time.Microsecond), r.StepsPerSec(),
		r.StepsPerSec()*float64(r.CellsStep)/1e6)
}

// runBench advances identical grids on sequential and pooled dispatch
func runBench(cfg config.Config, width, height, steps int, seed int64) ([]benchResult, error) {
	params, err := cfg.Params(width, height)
	if err != nil {
		return nil, err
	}
	cells := grid.Random(width, height, cfg.Density, seed)

	pool := dispatch.NewPool(cfg.Workers, cfg.TileSize)
	defer pool.Close()

	candidates := []struct {
		name string
		d    dispatch.Dispatcher
	}{
		{"sequential", dispatch.Sequential{}},
		{fmt.Sprintf("pool/%d", pool.Workers()), pool},
	}

	var results []benchResult
	for _, c := range candidates {
		e, err := engine.New(params, cells, engine.WithDispatcher(c.d))
		if err != nil {
			return nil, err
		}
		start := time.Now()
		err = e.AdvanceN(steps)
		elapsed := time.Since(start)
		e.Close()
		if err != nil {
			return nil, err
		}
		results = append(results, benchResult{Name: c.name, Steps: steps, Elapsed: elapsed, CellsStep: width * height})
	}
	return results, nil
}
