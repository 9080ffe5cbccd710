package voronoi

import (
	"math"

	"go.uber.org/zap"
)

// completeEdges закрывает ребра, которые остались лучами после сканирования.
// Для каждой пары соседних дуг берем серединный перпендикуляр их сайтов и
// доводим луч до границы бокса.
func (v *Voronoi) completeEdges() {
	margin := v.bbox.margin()

	for i := v.beachline.first(); i != nil; i = i.next() {
		next := i.next()
		if next == nil {
			break
		}
		if i.s1 == nil || i.s1.Finished() {
			continue
		}

		p1, p2 := i.site, next.site
		mx := (p1.x + p2.x) / 2
		my := (p1.y + p2.y) / 2
		dx := p2.x - p1.x
		dy := p2.y - p1.y

		// сайты совпали - закрывать нечего
		if math.Abs(dx) < epsilon && math.Abs(dy) < epsilon {
			continue
		}

		// излом между i и next уходит в сторону (dy, -dx)
		length := math.Hypot(dx, dy)
		nx := dy / length
		ny := -dx / length

		x, y := v.rayToBox(mx, my, nx, ny, margin)
		if !isFinite(x) || !isFinite(y) {
			v.logger.Debug("[v-clip] Луч не дошел до бокса", zap.Stringer("a", p1), zap.Stringer("b", p2))
			continue
		}
		i.s1.Finish(NewPoint(x, y))
	}
}

// rayToBox идет от (mx, my) вдоль (nx, ny) на margin и подрезает шаг
// по той стороне бокса, за которую вышли
func (v *Voronoi) rayToBox(mx, my, nx, ny, margin float64) (float64, float64) {
	b := v.bbox
	t := margin
	px := mx + nx*t
	py := my + ny*t

	if px < b.X0 {
		t = (b.X0 - mx) / nx
	} else if px > b.X1 {
		t = (b.X1 - mx) / nx
	}

	if py < b.Y0 {
		t = math.Min(t, (b.Y0-my)/ny)
	} else if py > b.Y1 {
		t = math.Min(t, (b.Y1-my)/ny)
	}

	return mx + nx*t, my + ny*t
}

// handleTwoSites - ровно два сайта: circle events не бывает, диаграмма -
// одна серединная прямая, продленная за бокс в обе стороны
func (v *Voronoi) handleTwoSites() {
	p1 := v.siteEvents.pop().p
	p2 := v.siteEvents.pop().p

	mx := (p1.x + p2.x) / 2
	my := (p1.y + p2.y) / 2
	dx := p2.x - p1.x
	dy := p2.y - p1.y

	var start, end Point
	switch {
	case math.Abs(dx) < epsilon: // сайты друг над другом - прямая горизонтальна
		start = NewPoint(mx-v.bbox.X1, my)
		end = NewPoint(mx+v.bbox.X1, my)
	case math.Abs(dy) < epsilon: // сайты на одной высоте - прямая вертикальна
		start = NewPoint(mx, my-v.bbox.Y1)
		end = NewPoint(mx, my+v.bbox.Y1)
	default:
		length := math.Hypot(dx, dy)
		nx, ny := -dy/length, dx/length
		margin := v.bbox.margin()
		start = NewPoint(mx+nx*margin, my+ny*margin)
		end = NewPoint(mx-nx*margin, my-ny*margin)
	}

	edge := v.createEdge(start)
	edge.Finish(end)
}

// collectSegments собирает вывод: склеивает пары, обрезает по боксу,
// выбрасывает вырожденные отрезки
func (v *Voronoi) collectSegments() {
	v.segments = v.segments[:0]

	for _, edge := range v.edges {
		seg, ok := edge.segment()
		if !ok {
			continue
		}
		if !v.twoSites {
			if !clipEdge(&seg, v.bbox) {
				continue
			}
			if seg.Length() < 1e-9 {
				continue
			}
		}
		v.segments = append(v.segments, seg)
	}
}

// clipEdge - отсечение Лианга-Барски. false - отрезок целиком вне бокса.
func clipEdge(seg *Segment, bbox BoundingBox) bool {
	ax := seg.X1
	ay := seg.Y1
	bx := seg.X2
	by := seg.Y2
	t0 := float64(0)
	t1 := float64(1)
	dx := bx - ax
	dy := by - ay

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			} else if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			} else if r < t1 {
				t1 = r
			}
		}
		return true
	}

	// left, right, top, bottom
	if !clip(-dx, ax-bbox.X0) || !clip(dx, bbox.X1-ax) ||
		!clip(-dy, ay-bbox.Y0) || !clip(dy, bbox.Y1-ay) {
		return false
	}

	if t1 < 1 {
		seg.X2 = round1(ax + t1*dx)
		seg.Y2 = round1(ay + t1*dy)
	}
	if t0 > 0 {
		seg.X1 = round1(ax + t0*dx)
		seg.Y1 = round1(ay + t0*dy)
	}
	return true
}
