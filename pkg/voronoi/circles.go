package voronoi

import (
	"github.com/dhconnelly/rtreego"
	"go.uber.org/zap"
)

// siteEntry wraps a site for R-tree storage
type siteEntry struct {
	site Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (s *siteEntry) Bounds() rtreego.Rect {
	return s.bbox
}

// siteIndex answers "which sites are near this circle" for the emptiness test
type siteIndex struct {
	tree *rtreego.Rtree
}

func newSiteIndex(sites []Point) *siteIndex {
	tree := rtreego.NewTree(2, 25, 50)

	for _, site := range sites {
		bbox, err := rtreego.NewRect(
			rtreego.Point{site.x - epsilon, site.y - epsilon},
			[]float64{2 * epsilon, 2 * epsilon},
		)
		if err != nil {
			continue
		}
		tree.Insert(&siteEntry{site: site, bbox: bbox})
	}

	return &siteIndex{tree: tree}
}

// near returns the sites whose bounds intersect the circle's bounding square
func (ix *siteIndex) near(cx, cy, radius float64) []Point {
	bbox, err := rtreego.NewRect(
		rtreego.Point{cx - radius, cy - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil
	}

	results := ix.tree.SearchIntersect(bbox)
	sites := make([]Point, 0, len(results))
	for _, item := range results {
		sites = append(sites, item.(*siteEntry).site)
	}
	return sites
}

// isEmpty - внутри окружности нет сайтов, кроме трех определяющих
func (v *Voronoi) isEmpty(c EmptyCircle) bool {
	for _, site := range v.index.near(c.Center.x, c.Center.y, c.Radius) {
		if site == c.Sites[0] || site == c.Sites[1] || site == c.Sites[2] {
			continue
		}
		if site.DistanceTo(c.Center) < c.Radius-epsilon {
			return false
		}
	}
	return true
}

// trackCircle обновляет список наибольших пустых окружностей
func (v *Voronoi) trackCircle(c EmptyCircle) {
	if !v.isEmpty(c) {
		v.logger.Debug("[v-lec] Окружность не пустая", zap.Stringer("center", c.Center), zap.Float64("r", c.Radius))
		return
	}

	switch {
	case equalWithEpsilon(c.Radius, v.maxRadius):
		v.circles = append(v.circles, c)
		v.logger.Debug("[v-lec] Еще одна наибольшая окружность", zap.Stringer("center", c.Center), zap.Float64("r", c.Radius))
	case c.Radius > v.maxRadius:
		v.maxRadius = c.Radius
		v.circles = []EmptyCircle{c}
		v.logger.Debug("[v-lec] Новая наибольшая окружность", zap.Stringer("center", c.Center), zap.Float64("r", c.Radius))
	}
}
