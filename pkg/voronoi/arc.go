package voronoi

// arc - дуга пляжной линии
type arc struct {
	node  *rbtNode
	site  Point
	event *event
	// левое и правое ребра, которые дуга ограничивает
	s0 *Edge
	s1 *Edge
}

func newArc(site Point) *arc {
	return &arc{site: site}
}

func (a *arc) prev() *arc {
	if a.node == nil || a.node.prev == nil {
		return nil
	}
	return a.node.prev.value
}

func (a *arc) next() *arc {
	if a.node == nil || a.node.next == nil {
		return nil
	}
	return a.node.next.value
}

// alive - дуга все еще на пляжной линии
func (a *arc) alive() bool {
	return a.node != nil
}

// intersect проверяет, пересекает ли парабола нового сайта p дугу a.
// Если да - возвращает точку на дуге на высоте p.y.
func (a *arc) intersect(p Point) (Point, bool) {
	if a == nil || p.x == a.site.x {
		return Point{}, false
	}

	prev := a.prev()
	next := a.next()

	var lo, hi float64
	if prev != nil {
		lo = findIntersection(prev.site, a.site, p.x).y
	}
	if next != nil {
		hi = findIntersection(a.site, next.site, p.x).y
	}

	if (prev == nil || lo <= p.y) && (next == nil || p.y <= hi) {
		py := p.y
		px := (a.site.x*a.site.x + (a.site.y-py)*(a.site.y-py) - p.x*p.x) / (2*a.site.x - 2*p.x)
		return NewPoint(px, py), true
	}
	return Point{}, false
}
