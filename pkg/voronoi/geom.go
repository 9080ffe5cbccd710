package voronoi

import (
	"fmt"
	"math"
	"strconv"
)

// Допуск для сравнения радиусов и проверки пустоты окружности
const epsilon = 1e-10

// Vertex - сырая входная координата (как ее прислал клиент)
type Vertex struct {
	X float64
	Y float64
}

// Point returns the canonical one-decimal point for the vertex.
func (v Vertex) Point() Point {
	return NewPoint(v.X, v.Y)
}

// Point is an immutable site/vertex rounded to one decimal. Two points are
// equal when their rounded coordinates are equal, so Point is used directly
// as a map key.
type Point struct {
	x float64
	y float64
}

func NewPoint(x, y float64) Point {
	return Point{round1(x), round1(y)}
}

func (p Point) X() float64 { return p.x }
func (p Point) Y() float64 { return p.y }

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.x-other.x, p.y-other.y)
}

func (p Point) Vertex() Vertex {
	return Vertex{p.x, p.y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.x, p.y)
}

// round1 округляет через форматирование с одним знаком после запятой.
// Это не то же самое, что math.Round(v*10)/10: 0.35 здесь дает 0.3.
func round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		// -0 -> 0
		return 0
	}
	return r
}

// Bounding Box
type BoundingBox struct {
	X0, Y0, X1, Y1 float64
}

// Create new Bounding Box spanning [0, width] x [0, height]
func NewBoundingBox(width, height float64) BoundingBox {
	return BoundingBox{0, 0, width, height}
}

func (b BoundingBox) Width() float64  { return b.X1 - b.X0 }
func (b BoundingBox) Height() float64 { return b.Y1 - b.Y0 }

// margin - длина, которой гарантированно хватает, чтобы выйти за бокс
func (b BoundingBox) margin() float64 {
	return math.Max(b.Width(), b.Height())
}

func (b BoundingBox) Contains(x, y, tolerance float64) bool {
	return x >= b.X0-tolerance && x <= b.X1+tolerance &&
		y >= b.Y0-tolerance && y <= b.Y1+tolerance
}

// Segment - готовое ребро диаграммы в формате (x1, y1, x2, y2)
type Segment struct {
	X1, Y1, X2, Y2 float64
}

func (s Segment) Length() float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

// EmptyCircle is a candidate largest empty circle: centered at a Voronoi
// vertex and passing through the three sites whose arcs met there.
type EmptyCircle struct {
	Center Point
	Radius float64
	Sites  [3]Point
}

// Пересечение двух парабол с фокусами p0, p1 и общей директрисой l.
// Возвращает точку излома пляжной линии (уже округленную).
func findIntersection(p0, p1 Point, l float64) Point {
	p := p0
	var py float64

	switch {
	case p0.x == p1.x:
		py = (p0.y + p1.y) / 2
	case p1.x == l:
		py = p1.y
	case p0.x == l:
		py = p0.y
		p = p1
	default:
		z0 := 2 * (p0.x - l)
		z1 := 2 * (p1.x - l)

		a := 1/z0 - 1/z1
		b := -2 * (p0.y/z0 - p1.y/z1)
		c := (p0.y*p0.y+p0.x*p0.x-l*l)/z0 - (p1.y*p1.y+p1.x*p1.x-l*l)/z1

		// меньший корень - излом, у которого дуга p0 слева от p1
		py = (-b - math.Sqrt(b*b-4*a*c)) / (2 * a)
	}

	px := (p.x*p.x + (p.y-py)*(p.y-py) - l*l) / (2*p.x - 2*l)
	return NewPoint(px, py)
}

// checkCircle проверяет, образуют ли a, b, c (в порядке пляжной линии)
// событие круга. Возвращает x события, центр и радиус окружности.
func checkCircle(a, b, c Point) (x float64, center Point, radius float64, ok bool) {
	// bc должен поворачивать направо относительно ab
	if (b.x-a.x)*(c.y-a.y)-(c.x-a.x)*(b.y-a.y) > 0 {
		return 0, Point{}, 0, false
	}

	A := b.x - a.x
	B := b.y - a.y
	C := c.x - a.x
	D := c.y - a.y
	E := A*(a.x+b.x) + B*(a.y+b.y)
	F := C*(a.x+c.x) + D*(a.y+c.y)
	G := 2 * (A*(c.y-b.y) - B*(c.x-b.x))

	if G == 0 { // коллинеарные точки
		return 0, Point{}, 0, false
	}

	ox := (D*E - B*F) / G
	oy := (A*F - C*E) / G

	radius = math.Hypot(a.x-ox, a.y-oy)
	return ox + radius, NewPoint(ox, oy), radius, true
}

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
