package voronoi

// Edge - ребро диаграммы. Начало известно сразу, конец - когда
// ребро упрется в вершину или в границу бокса.
type Edge struct {
	start    Point
	end      Point
	finished bool

	// twin - встречное ребро, рожденное тем же site event в той же точке
	twin *Edge
	// lead - первое ребро пары, именно оно попадает в вывод
	lead bool
}

func newEdge(start Point) *Edge {
	return &Edge{start: start}
}

func (e *Edge) Start() Point { return e.start }

// End returns the end point and whether the edge has been finished.
func (e *Edge) End() (Point, bool) { return e.end, e.finished }

func (e *Edge) Finished() bool { return e.finished }

// Finish sets the end point. Only the first call has an effect.
func (e *Edge) Finish(p Point) {
	if e.finished {
		return
	}
	e.end = p
	e.finished = true
}

// pairEdges связывает два ребра, выходящих из одной точки в разные стороны
func pairEdges(lead, other *Edge) {
	lead.twin = other
	lead.lead = true
	other.twin = lead
}

// segment собирает выходной отрезок. Для пары склеиваются концы обеих
// половинок, вторая половина пары отдельно не выводится.
func (e *Edge) segment() (Segment, bool) {
	if e.twin != nil {
		if !e.lead {
			return Segment{}, false
		}
		switch {
		case e.finished && e.twin.finished:
			return Segment{e.end.x, e.end.y, e.twin.end.x, e.twin.end.y}, true
		case e.twin.finished:
			return e.twin.halfSegment(), true
		}
	}
	if !e.finished {
		return Segment{}, false
	}
	return e.halfSegment(), true
}

func (e *Edge) halfSegment() Segment {
	return Segment{e.start.x, e.start.y, e.end.x, e.end.y}
}
