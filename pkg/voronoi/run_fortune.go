package voronoi

import (
	"github.com/0x0FACED/go-voronoi/pkg/logger"
)

// Структура диаграммы
type Diagram struct {
	BBox     BoundingBox
	Sites    []Point
	Segments []Segment
	Circles  []EmptyCircle
}

// Основная функция - база.
// Собирает движок, прогоняет сканирование и отдает результат.
func CreateDiagram(sites []Vertex, bbox BoundingBox, logger *logger.ZapLogger) *Diagram {
	v := New(sites, bbox, logger)
	// свежий движок, ошибки повторного запуска тут быть не может
	_ = v.Generate()

	return &Diagram{
		BBox:     bbox,
		Sites:    v.Sites(),
		Segments: v.Segments(),
		Circles:  v.LargestEmptyCircles(),
	}
}
