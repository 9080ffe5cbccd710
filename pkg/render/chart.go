package render

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// сколько точек в контуре окружности на графике
const circleSteps = 72

// prepareScatter - темная тема, оси по размеру бокса, зум колесом по обеим осям
func prepareScatter(scatter *charts.Scatter, bbox voronoi.BoundingBox) {
	label := &opts.AxisLabel{Color: "white"}
	noGrid := &opts.SplitLine{Show: opts.Bool(false)}

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{Color: "white"},
			Right:     "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (Форчун)",
			Subtitle:             fmt.Sprintf("%g x %g", bbox.Width(), bbox.Height()),
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value", Name: "Ширина", Min: bbox.X0, Max: bbox.X1,
			AxisLabel: label, SplitLine: noGrid,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value", Name: "Высота", Min: bbox.Y0, Max: bbox.Y1,
			AxisLabel: label, SplitLine: noGrid,
		}),
	}
	for _, orient := range []string{"horizontal", "vertical"} {
		global = append(global, charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     orient,
		}))
	}

	scatter.SetGlobalOptions(global...)
}

// Chart переводит диаграмму в Echarts: станции, границы поверх них,
// наибольшие пустые окружности и их центры.
func Chart(d *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, len(d.Sites))
	for _, site := range d.Sites {
		points = append(points, opts.ScatterData{
			Value: []float64{site.X(), site.Y()},
		})
	}

	// Дизайним скаттер
	prepareScatter(scatter, d.BBox)

	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, seg := range d.Segments {
		scatter.Overlap(segmentLine(seg))
	}

	if len(d.Circles) == 0 {
		return scatter
	}

	centers := make([]opts.ScatterData, 0, len(d.Circles))
	for _, c := range d.Circles {
		centers = append(centers, opts.ScatterData{
			Value: []float64{c.Center.X(), c.Center.Y()},
		})
		scatter.Overlap(circleLine(c))
	}

	scatter.AddSeries("Центры", centers).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "red",
			}),
		)

	return scatter
}

func segmentLine(seg voronoi.Segment) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	line.AddSeries("Границы", []opts.LineData{
		{Value: []float64{seg.X1, seg.Y1}},
		{Value: []float64{seg.X2, seg.Y2}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 2,
		}),
	)

	return line
}

func circleLine(c voronoi.EmptyCircle) *charts.Line {
	data := make([]opts.LineData, 0, circleSteps+1)
	for i := 0; i <= circleSteps; i++ {
		a := 2 * math.Pi * float64(i) / circleSteps
		data = append(data, opts.LineData{
			Value: []float64{c.Center.X() + c.Radius*math.Cos(a), c.Center.Y() + c.Radius*math.Sin(a)},
		})
	}

	line := charts.NewLine()
	line.AddSeries("Пустые окружности", data).SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(false),
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Color: "red",
			Width: 2,
		}),
	)

	return line
}
