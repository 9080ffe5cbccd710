package render

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// svgo работает в целых числах, поэтому рисуем в десятых долях и
// масштабируем обратно. Заодно переворачиваем y: у диаграммы ось вверх.
const svgScale = 10

const (
	siteStyle   = "fill:rgb(0,0,0)"
	edgeStyle   = "stroke:rgb(0,0,255);stroke-width:10"
	circleStyle = "fill:none;stroke:rgb(255,0,0);stroke-width:20"
	centerStyle = "fill:rgb(255,0,0)"
)

func tenths(v float64) int {
	return int(math.Round(v * svgScale))
}

// SVG writes the diagram as an SVG document the size of its bounding box.
func SVG(w io.Writer, d *voronoi.Diagram) error {
	width, height, err := canvasSize(d.BBox)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	canvas.Gtransform(fmt.Sprintf("translate(%g,%g) scale(%g,%g)",
		-d.BBox.X0, d.BBox.Y1, 1.0/svgScale, -1.0/svgScale))

	for _, seg := range d.Segments {
		canvas.Line(tenths(seg.X1), tenths(seg.Y1), tenths(seg.X2), tenths(seg.Y2), edgeStyle)
	}
	for _, c := range d.Circles {
		canvas.Circle(tenths(c.Center.X()), tenths(c.Center.Y()), tenths(c.Radius), circleStyle)
		canvas.Circle(tenths(c.Center.X()), tenths(c.Center.Y()), 40, centerStyle)
	}
	for _, site := range d.Sites {
		canvas.Circle(tenths(site.X()), tenths(site.Y()), 30, siteStyle)
	}

	canvas.Gend()
	canvas.End()

	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "render: write svg")
}

func canvasSize(bbox voronoi.BoundingBox) (int, int, error) {
	width := int(math.Ceil(bbox.Width()))
	height := int(math.Ceil(bbox.Height()))
	if width <= 0 || height <= 0 {
		return 0, 0, errors.Errorf("render: empty canvas %dx%d", width, height)
	}
	return width, height, nil
}
