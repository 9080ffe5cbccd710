package voronoi

// event - site event (arc == nil) или circle event (arc - дуга,
// которая должна исчезнуть). x - позиция прямой сканирования.
type event struct {
	x     float64
	p     Point
	arc   *arc
	valid bool
}

// eventKey - логическая идентичность события в очереди
type eventKey struct {
	x float64
	p Point
}

func newSiteEvent(p Point) *event {
	return &event{x: p.x, p: p, valid: true}
}

func newCircleEvent(x float64, center Point, a *arc) *event {
	return &event{x: x, p: center, arc: a, valid: true}
}

func (e *event) key() eventKey {
	return eventKey{e.x, e.p}
}
