package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/render"
	"github.com/0x0FACED/go-voronoi/pkg/sites"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/0x0FACED/go-voronoi/static"
)

// станций по умолчанию, если не задано ни random, ни points
const defaultStations = 12

// пределы для запросов к серверу, холст PNG занимает 4*W*H байт
const (
	maxSide     = 5000
	maxStations = 500
	maxPoints   = 10000
)

type server struct {
	cfg config.Config
	log *logger.ZapLogger
}

func newRouter(cfg config.Config, log *logger.ZapLogger) *mux.Router {
	s := &server{cfg: cfg, log: log}

	router := mux.NewRouter()
	router.HandleFunc("/", s.diagramHandler).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/diagram.svg", s.svgHandler).Methods(http.MethodGet)
	router.HandleFunc("/diagram.png", s.pngHandler).Methods(http.MethodGet)
	router.HandleFunc("/diagram.geojson", s.geojsonHandler).Methods(http.MethodGet)

	return router
}

// request - параметры диаграммы из формы или query
type request struct {
	cfg      config.Config
	stations int
	points   string
}

func intValue(r *http.Request, key string, def int) (int, error) {
	raw := r.FormValue(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "bad %s", key)
	}
	return v, nil
}

func (s *server) parseRequest(r *http.Request) (request, error) {
	if err := r.ParseForm(); err != nil {
		return request{}, errors.Wrap(err, "parse form")
	}

	req := request{cfg: s.cfg, stations: defaultStations}
	// файл с точками на сервере не читаем, точки приходят в теле
	req.cfg.Points = ""
	req.cfg.Grid = 0

	var err error
	if req.cfg.Width, err = intValue(r, "width", s.cfg.Width); err != nil {
		return req, err
	}
	if req.cfg.Height, err = intValue(r, "height", s.cfg.Height); err != nil {
		return req, err
	}
	if req.stations, err = intValue(r, "stations", defaultStations); err != nil {
		return req, err
	}
	if raw := r.FormValue("seed"); raw != "" {
		if req.cfg.Seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return req, errors.Wrap(err, "bad seed")
		}
	}

	switch r.FormValue("random") {
	case "true", "on", "1":
		req.cfg.Random = true
	case "false", "0":
		req.cfg.Random = false
	}
	req.points = strings.TrimSpace(r.FormValue("points"))
	if req.points != "" {
		req.cfg.Random = false
	}

	if req.stations < 0 || req.stations > maxStations {
		return req, errors.Errorf("bad stations: %d, want 0..%d", req.stations, maxStations)
	}
	if req.cfg.Width > maxSide || req.cfg.Height > maxSide {
		return req, errors.Errorf("bad size: %dx%d, max side is %d", req.cfg.Width, req.cfg.Height, maxSide)
	}

	return req, req.cfg.Validate()
}

func (req request) vertices() ([]voronoi.Vertex, error) {
	width := float64(req.cfg.Width)
	height := float64(req.cfg.Height)

	switch {
	case req.points != "":
		points, err := sites.Parse(strings.NewReader(req.points))
		if err != nil {
			return nil, err
		}
		if len(points) > maxPoints {
			return nil, errors.Errorf("too many points: %d, max is %d", len(points), maxPoints)
		}
		return sites.InBounds(points, width, height), nil
	case req.cfg.Random:
		seed := req.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return sites.Random(rand.New(rand.NewSource(seed)), width, height), nil
	default:
		return sites.Grid(req.stations, width, height), nil
	}
}

// build разбирает запрос и строит диаграмму. Логи движка пишутся в log.
func (s *server) build(r *http.Request, log *logger.ZapLogger) (*voronoi.Diagram, error) {
	req, err := s.parseRequest(r)
	if err != nil {
		return nil, err
	}

	points, err := req.vertices()
	if err != nil {
		return nil, err
	}

	bbox := voronoi.NewBoundingBox(float64(req.cfg.Width), float64(req.cfg.Height))
	diagram := voronoi.CreateDiagram(points, bbox, log)

	s.log.Info("[app] Диаграмма построена",
		zap.String("path", r.URL.Path),
		zap.Int("sites", len(diagram.Sites)),
		zap.Int("edges", len(diagram.Segments)),
		zap.Int("circles", len(diagram.Circles)),
	)
	return diagram, nil
}

func (s *server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn("[app] Неверные параметры", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// http обработчик страницы с диаграмой и формой для ввода данных
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	log := logger.New(logger.WithLevel(s.cfg.Level()))
	defer log.ClearLogs()

	diagram, err := s.build(r, log)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	scatter := render.Chart(diagram)

	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		s.log.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Part3)
}

func (s *server) svgHandler(w http.ResponseWriter, r *http.Request) {
	diagram, err := s.build(r, nil)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, diagram); err != nil {
		s.log.Error("[app] svg", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func (s *server) pngHandler(w http.ResponseWriter, r *http.Request) {
	diagram, err := s.build(r, nil)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, diagram); err != nil {
		s.log.Error("[app] png", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *server) geojsonHandler(w http.ResponseWriter, r *http.Request) {
	diagram, err := s.build(r, nil)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	data, err := render.GeoJSON(diagram)
	if err != nil {
		s.log.Error("[app] geojson", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(data)
}
