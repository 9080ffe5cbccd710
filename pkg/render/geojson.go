package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// Feature kinds in the exported collection.
const (
	KindSite   = "site"
	KindEdge   = "edge"
	KindCircle = "circle"
)

func orbPoint(p voronoi.Point) orb.Point {
	return orb.Point{p.X(), p.Y()}
}

// Collection builds a FeatureCollection with the sites, the edges and the
// centers of the largest empty circles. Circle features carry "radius" and
// the three "sites" they touch.
func Collection(d *voronoi.Diagram) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.BBox{d.BBox.X0, d.BBox.Y0, d.BBox.X1, d.BBox.Y1}

	for _, site := range d.Sites {
		f := geojson.NewFeature(orbPoint(site))
		f.Properties["kind"] = KindSite
		fc.Append(f)
	}

	for _, seg := range d.Segments {
		f := geojson.NewFeature(orb.LineString{{seg.X1, seg.Y1}, {seg.X2, seg.Y2}})
		f.Properties["kind"] = KindEdge
		f.Properties["length"] = seg.Length()
		fc.Append(f)
	}

	for _, c := range d.Circles {
		sites := make([][2]float64, 0, len(c.Sites))
		for _, s := range c.Sites {
			sites = append(sites, [2]float64{s.X(), s.Y()})
		}

		f := geojson.NewFeature(orbPoint(c.Center))
		f.Properties["kind"] = KindCircle
		f.Properties["radius"] = c.Radius
		f.Properties["sites"] = sites
		fc.Append(f)
	}

	return fc
}

func GeoJSON(d *voronoi.Diagram) ([]byte, error) {
	data, err := Collection(d).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "render: marshal geojson")
	}
	return data, nil
}
