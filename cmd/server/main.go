package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"arena-server/internal/engine"
	"arena-server/internal/server"
	"arena-server/internal/version"
	"arena-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.Int64Var(&seed, "seed", 0, "Arena seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting Vector Arena...")
	logger.Log.Info(version.String())

	// Формируем конфиг: файл поверх дефолтов, флаг поверх файла
	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			logger.Log.Fatal("Config error: ", err)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using seed: %d", cfg.Seed)
	}

	if addr := os.Getenv("ARENA_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	// 2. Инициализация ядра с конфигом
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Arena init error: ", err)
	}
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Addr)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Stop()
	logger.Log.Info("Done.")
}
