package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
)

// Output - куда сохранять результаты. Пустая строка - не сохранять.
type Output struct {
	SVG     string `json:"svg"`
	PNG     string `json:"png"`
	GeoJSON string `json:"geojson"`
	Points  string `json:"points"`
}

// Config is shared by the web server and the CLI. Values from a JSON file
// are layered on top of Default(); command line flags go on top of that.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Points - файл со станциями, по одной на строку
	Points string `json:"points"`
	// Random - сколько-то случайных станций (от 15 до 30)
	Random bool  `json:"random"`
	Seed   int64 `json:"seed"`
	// Grid - число станций на ровной сетке
	Grid int `json:"grid"`

	Output Output `json:"output"`

	LogLevel string `json:"log_level"`
	Addr     string `json:"addr"`
}

func Default() Config {
	return Config{
		Width:    600,
		Height:   600,
		LogLevel: "info",
		Addr:     ":8080",
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: decode %s", path)
	}

	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var err error

	if c.Width <= 0 {
		err = multierr.Append(err, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.Grid < 0 {
		err = multierr.Append(err, fmt.Errorf("grid must not be negative, got %d", c.Grid))
	}
	if _, levelErr := logger.ParseLevel(c.LogLevel); levelErr != nil {
		err = multierr.Append(err, errors.Wrap(levelErr, "log_level"))
	}

	sources := 0
	if c.Points != "" {
		sources++
	}
	if c.Random {
		sources++
	}
	if c.Grid > 0 {
		sources++
	}
	if sources > 1 {
		err = multierr.Append(err, errors.New("points, random and grid are mutually exclusive"))
	}

	return err
}

// Level returns the parsed log level, Info when it is not valid.
func (c Config) Level() zapcore.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
