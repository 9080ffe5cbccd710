package render

import (
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// PNG draws the diagram in diagram coordinates and flips the image so the y
// axis points up.
func PNG(w io.Writer, d *voronoi.Diagram) error {
	width, height, err := canvasSize(d.BBox)
	if err != nil {
		return err
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Translate(-d.BBox.X0, -d.BBox.Y0)

	dc.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 255, A: 255}))
	dc.SetLineWidth(1)
	for _, seg := range d.Segments {
		dc.DrawLine(seg.X1, seg.Y1, seg.X2, seg.Y2)
		dc.Stroke()
	}

	dc.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 255, G: 0, B: 0, A: 255}))
	dc.SetFillStyle(gg.NewSolidPattern(color.RGBA{R: 255, G: 0, B: 0, A: 255}))
	dc.SetLineWidth(2)
	for _, c := range d.Circles {
		dc.DrawCircle(c.Center.X(), c.Center.Y(), c.Radius)
		dc.Stroke()
		dc.DrawCircle(c.Center.X(), c.Center.Y(), 4)
		dc.Fill()
	}

	dc.SetFillStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 255}))
	for _, site := range d.Sites {
		dc.DrawCircle(site.X(), site.Y(), 3)
		dc.Fill()
	}

	img := imaging.FlipV(dc.Image())
	return errors.Wrap(png.Encode(w, img), "render: encode png")
}
