package voronoi

import (
	"errors"
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// ErrAlreadyGenerated is returned when Generate is called on a consumed engine.
var ErrAlreadyGenerated = errors.New("voronoi: diagram already generated")

// Основная структура
type Voronoi struct {
	bbox BoundingBox

	// различные сайты после округления, в порядке обработки
	sites []Point
	// ребра диаграммы (полуребра пар хранятся по отдельности)
	edges []*Edge
	// готовые отрезки, собираются после обрезки
	segments []Segment

	// Пляжная линия
	beachline rbt
	// Очередь site events
	siteEvents *schedule
	// Очередь circle events
	circleEvents *schedule

	// наибольшие пустые окружности и их радиус
	circles   []EmptyCircle
	maxRadius float64
	index     *siteIndex

	generated bool
	twoSites  bool

	logger *logger.ZapLogger
}

// New prepares an engine for the given sites. Sites are canonicalized to one
// decimal; sites equal after rounding collapse into one. Input order is not
// kept: sites are sorted by x, then y, so sites sharing an x are swept from
// the lowest y up. A nil logger disables logging.
func New(sites []Vertex, bbox BoundingBox, log *logger.ZapLogger) *Voronoi {
	if log == nil {
		log = logger.NewNop()
	}

	v := &Voronoi{
		bbox:         bbox,
		siteEvents:   newSchedule(),
		circleEvents: newSchedule(),
		logger:       log,
	}

	points := make([]Point, 0, len(sites))
	for _, site := range sites {
		points = append(points, site.Point())
	}
	// сортируем по X (потом по Y), сканирование идет слева направо
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].x != points[j].x {
			return points[i].x < points[j].x
		}
		return points[i].y < points[j].y
	})

	for _, p := range points {
		v.siteEvents.push(newSiteEvent(p))
	}

	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		v.sites = append(v.sites, p)
	}
	v.index = newSiteIndex(v.sites)

	return v
}

// Generate runs the sweep. The engine is consumed afterwards: a second call
// returns ErrAlreadyGenerated.
func (v *Voronoi) Generate() error {
	if v.generated {
		return ErrAlreadyGenerated
	}
	v.generated = true

	v.logger.Info("[v] Алгоритм Форчуна запущен",
		zap.Int("sites", v.siteEvents.len()),
		zap.Any("bbox", v.bbox),
	)

	if v.siteEvents.len() == 2 {
		v.twoSites = true
		v.handleTwoSites()
		v.collectSegments()
		v.logger.Info("[v] Два сайта - одна серединная прямая", zap.Int("edges", len(v.segments)))
		return nil
	}

	var counter int
	// основной цикл: берем событие с меньшим x
	for !v.siteEvents.empty() {
		counter++
		if !v.circleEvents.empty() && v.circleEvents.peek().x <= v.siteEvents.peek().x {
			v.processCircleEvent()
		} else {
			v.processSiteEvent()
		}
	}

	v.logger.Info("[v] Сайты закончились, дорабатываем circle events", zap.Int("iterations", counter), zap.Int("left", v.circleEvents.len()))

	for !v.circleEvents.empty() {
		v.processCircleEvent()
	}

	v.logger.Info("[v] Алгоритм завершен!")

	v.completeEdges()
	v.collectSegments()

	v.logger.Info("[v] Остатки соединены",
		zap.Int("edges", len(v.segments)),
		zap.Int("circles", len(v.circles)),
		zap.Float64("max-radius", v.maxRadius),
	)
	return nil
}

func (v *Voronoi) processSiteEvent() {
	ev := v.siteEvents.pop()
	v.logger.Debug("[v-site] Site event", zap.Stringer("site", ev.p))
	v.addArc(ev.p)
}

func (v *Voronoi) processCircleEvent() {
	ev := v.circleEvents.pop()
	if !ev.valid {
		v.logger.Debug("[v-circle] Событие устарело", zap.Float64("x", ev.x), zap.Stringer("center", ev.p))
		return
	}

	a := ev.arc
	if !a.alive() {
		v.logger.Debug("[v-circle] Дуга уже удалена", zap.Float64("x", ev.x), zap.Stringer("center", ev.p))
		return
	}

	v.logger.Debug("[v-circle] Circle event", zap.Float64("x", ev.x), zap.Stringer("center", ev.p), zap.Stringer("arc-site", a.site))

	// новое ребро из вершины
	s := v.createEdge(ev.p)

	prev := a.prev()
	next := a.next()
	if prev != nil {
		prev.s1 = s
	}
	if next != nil {
		next.s0 = s
	}
	v.beachline.removeNode(a.node)

	// ребра исчезнувшей дуги заканчиваются в вершине
	if a.s0 != nil {
		a.s0.Finish(ev.p)
	}
	if a.s1 != nil {
		a.s1.Finish(ev.p)
	}

	if prev != nil {
		v.checkCircleEvent(prev, ev.x)
	}
	if next != nil {
		v.checkCircleEvent(next, ev.x)
	}
}

// addArc добавляет на пляжную линию дугу нового сайта
func (v *Voronoi) addArc(p Point) {
	if v.beachline.empty() {
		v.beachline.insertSuccessor(nil, newArc(p))
		return
	}

	// ищем дугу, которую пересекает парабола нового сайта
	for i := v.beachline.first(); i != nil; i = i.next() {
		z, ok := i.intersect(p)
		if !ok {
			continue
		}

		v.logger.Debug("[v-site] Разбиваем дугу", zap.Stringer("arc-site", i.site), zap.Stringer("z", z))

		// i -> (i, q, dup): копия дуги встает справа, между ними новая
		dup := newArc(i.site)
		v.beachline.insertSuccessor(i.node, dup)
		dup.s1 = i.s1

		q := newArc(p)
		v.beachline.insertSuccessor(i.node, q)

		left := v.createEdge(z)
		i.s1 = left
		q.s0 = left

		right := v.createEdge(z)
		q.s1 = right
		dup.s0 = right

		pairEdges(left, right)

		v.checkCircleEvent(q, p.x)
		v.checkCircleEvent(i, p.x)
		v.checkCircleEvent(dup, p.x)
		return
	}

	// никто не пересечен - дописываем дугу в хвост
	tail := v.beachline.last()
	q := newArc(p)
	v.beachline.insertSuccessor(tail.node, q)

	start := NewPoint(v.bbox.X0, (q.site.y+tail.site.y)/2)
	s := v.createEdge(start)
	tail.s1 = s
	q.s0 = s

	v.logger.Debug("[v-site] Дуга добавлена в хвост", zap.Stringer("site", p), zap.Stringer("start", start))
}

// checkCircleEvent пересчитывает событие круга для дуги a
func (v *Voronoi) checkCircleEvent(a *arc, sweep float64) {
	if a.event != nil && a.event.x != v.bbox.X0 {
		a.event.valid = false
	}
	a.event = nil

	prev := a.prev()
	next := a.next()
	if prev == nil || next == nil {
		return
	}

	x, center, radius, ok := checkCircle(prev.site, a.site, next.site)
	if !ok || x <= sweep {
		return
	}

	a.event = newCircleEvent(x, center, a)
	v.circleEvents.push(a.event)

	v.logger.Debug("[v-circle] Запланировано событие", zap.Float64("x", x), zap.Stringer("center", center), zap.Float64("r", radius))

	v.trackCircle(EmptyCircle{
		Center: center,
		Radius: radius,
		Sites:  [3]Point{prev.site, a.site, next.site},
	})
}

// Создание ребра
func (v *Voronoi) createEdge(start Point) *Edge {
	edge := newEdge(start)
	v.edges = append(v.edges, edge)
	return edge
}

// Edges returns the raw half-edges in creation order. Half-edge pairs born
// at the same site event are reported separately here; Segments joins them.
func (v *Voronoi) Edges() []*Edge {
	return v.edges
}

// Segments returns every finished edge as (x1, y1, x2, y2).
func (v *Voronoi) Segments() []Segment {
	out := make([]Segment, len(v.segments))
	copy(out, v.segments)
	return out
}

// LargestEmptyCircles returns the empty circles sharing the maximum radius.
func (v *Voronoi) LargestEmptyCircles() []EmptyCircle {
	out := make([]EmptyCircle, len(v.circles))
	copy(out, v.circles)
	return out
}

func (v *Voronoi) MaxRadius() float64 {
	return v.maxRadius
}

// Sites returns the distinct canonical sites ordered by (x, y).
func (v *Voronoi) Sites() []Point {
	out := make([]Point, len(v.sites))
	copy(out, v.sites)
	return out
}

func (v *Voronoi) BoundingBox() BoundingBox {
	return v.bbox
}
