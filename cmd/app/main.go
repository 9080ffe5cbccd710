package main

import (
	"flag"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "JSON config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.New(logger.WithConsole(os.Stderr)).Fatal("[app] Не удалось загрузить конфиг", zap.Error(err))
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	log := logger.New(logger.WithLevel(cfg.Level()), logger.WithConsole(os.Stdout))
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("[app] Неверный конфиг", zap.Error(err))
	}

	router := newRouter(cfg, log)

	log.Info("[app] Сервер запущен", zap.String("addr", "http://localhost"+cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal("[app] Err ListenAndServe", zap.Error(err))
	}
}
