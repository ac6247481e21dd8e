package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"hrportal/internal/mock"
	"hrportal/internal/platform/config"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	dataset, err := mock.NewDataset(cfg.DatasetSeed, cfg.SeedEmployees, cfg.SeedPassword)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	server := mock.NewServer(cfg, dataset, logger)

	logger.Info("mock backend listening", "addr", cfg.Addr, "seed", cfg.DatasetSeed, "employees", cfg.SeedEmployees)
	if err := http.ListenAndServe(cfg.Addr, server.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
