package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/render"
	"github.com/0x0FACED/go-voronoi/pkg/sites"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

const usage = `voronoi - Fortune's sweep, clipped edges and largest empty circles.

Sites come from -points (a file, "-" for stdin), -random or -grid.
Without any of them sites are read from stdin.

`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, colorize(os.Stderr, chalk.Red, "error: "+err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("voronoi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "JSON config file")
		points     = fs.String("points", "", "Sites file, one \"x, y\" per line")
		random     = fs.Bool("random", false, "Generate 15-30 random sites")
		seed       = fs.Int64("seed", 0, "Random seed (0 uses the clock)")
		grid       = fs.Int("grid", 0, "Lay n sites on a regular grid")
		width      = fs.Int("width", 0, "Bounding box width")
		height     = fs.Int("height", 0, "Bounding box height")
		svgOut     = fs.String("svg", "", "Write an SVG image")
		pngOut     = fs.String("png", "", "Write a PNG image")
		geoOut     = fs.String("geojson", "", "Write a GeoJSON feature collection")
		saveOut    = fs.String("save", "", "Save the sites used")
		logLevel   = fs.String("log-level", "", "debug|info|warn|error")
	)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// флаги поверх конфига, только заданные явно
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			cfg.Points = *points
		case "random":
			cfg.Random = *random
		case "seed":
			cfg.Seed = *seed
		case "grid":
			cfg.Grid = *grid
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "svg":
			cfg.Output.SVG = *svgOut
		case "png":
			cfg.Output.PNG = *pngOut
		case "geojson":
			cfg.Output.GeoJSON = *geoOut
		case "save":
			cfg.Output.Points = *saveOut
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log := logger.New(logger.WithLevel(cfg.Level()), logger.WithConsole(stderr))
	defer log.Sync()

	input, err := loadSites(cfg, stdin)
	if err != nil {
		return err
	}

	start := time.Now()
	bbox := voronoi.NewBoundingBox(float64(cfg.Width), float64(cfg.Height))
	diagram := voronoi.CreateDiagram(input, bbox, log)
	log.Debug("[cli] Диаграмма построена", zap.Duration("took", time.Since(start)))

	printDiagram(stdout, diagram)

	if err := writeOutputs(cfg.Output, diagram, input, stdout); err != nil {
		return err
	}

	printSummary(stdout, diagram)
	return nil
}

func loadSites(cfg config.Config, stdin io.Reader) ([]voronoi.Vertex, error) {
	width := float64(cfg.Width)
	height := float64(cfg.Height)

	switch {
	case cfg.Random:
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return sites.Random(rand.New(rand.NewSource(seed)), width, height), nil
	case cfg.Grid > 0:
		return sites.Grid(cfg.Grid, width, height), nil
	case cfg.Points != "" && cfg.Points != pipeName:
		loaded, err := sites.LoadFile(cfg.Points)
		if err != nil {
			return nil, err
		}
		return sites.InBounds(loaded, width, height), nil
	default:
		loaded, err := sites.Parse(stdin)
		if err != nil {
			return nil, err
		}
		return sites.InBounds(loaded, width, height), nil
	}
}

func writeOutputs(out config.Output, d *voronoi.Diagram, input []voronoi.Vertex, stdout io.Writer) error {
	if out.Points != "" {
		if err := sites.SaveFile(out.Points, input); err != nil {
			return err
		}
	}

	if out.SVG != "" {
		var buf bytes.Buffer
		if err := render.SVG(&buf, d); err != nil {
			return err
		}
		if err := writeFile(out.SVG, buf.Bytes(), stdout); err != nil {
			return err
		}
	}

	if out.PNG != "" {
		var buf bytes.Buffer
		if err := render.PNG(&buf, d); err != nil {
			return err
		}
		if err := writeFile(out.PNG, buf.Bytes(), stdout); err != nil {
			return err
		}
	}

	if out.GeoJSON != "" {
		data, err := render.GeoJSON(d)
		if err != nil {
			return err
		}
		if err := writeFile(out.GeoJSON, data, stdout); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, data []byte, stdout io.Writer) error {
	if path == pipeName {
		_, err := stdout.Write(data)
		return errors.Wrap(err, "write stdout")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}

func printDiagram(w io.Writer, d *voronoi.Diagram) {
	for _, s := range d.Segments {
		fmt.Fprintf(w, "edge %.1f, %.1f -> %.1f, %.1f\n", s.X1, s.Y1, s.X2, s.Y2)
	}
	for _, c := range d.Circles {
		fmt.Fprintf(w, "circle %v r=%.4f sites %v %v %v\n", c.Center, c.Radius, c.Sites[0], c.Sites[1], c.Sites[2])
	}
}

func printSummary(w io.Writer, d *voronoi.Diagram) {
	var radius float64
	if len(d.Circles) > 0 {
		radius = d.Circles[0].Radius
	}

	fmt.Fprintln(w, colorize(w, chalk.Green, fmt.Sprintf("%d sites, %d edges", len(d.Sites), len(d.Segments))))
	fmt.Fprintln(w, colorize(w, chalk.Yellow, fmt.Sprintf("%d largest empty circle(s), radius %.4f", len(d.Circles), radius)))
}

// colorize красит текст, только если пишем в терминал
func colorize(w io.Writer, c chalk.Color, s string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return s
	}
	return c.Color(s)
}
