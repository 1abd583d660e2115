package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/vovanwin/enumtoggles/example/service/internal/features"
	"github.com/vovanwin/enumtoggles/example/service/internal/server"
	"github.com/vovanwin/enumtoggles/pkg/toggles"
)

// loadFeatures собирает набор один раз: дефолты манифеста + файл из TOGGLES_FILE
var loadFeatures = toggles.Once(func() (*toggles.Set[features.Feature], error) {
	s := features.NewFeatureSet()
	path := os.Getenv("TOGGLES_FILE")
	if path == "" {
		slog.Warn("TOGGLES_FILE not set, using manifest defaults")
		return s, nil
	}
	if err := s.LoadAuto(path); err != nil {
		return nil, err
	}
	return s, nil
})

func main() {
	f, err := loadFeatures()
	if err != nil {
		slog.Error("Failed to load toggles", "error", err)
		os.Exit(1)
	}
	slog.Info("Toggles loaded", "enabled", f.Count(), "total", f.Len())

	srv := server.New(f)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", srv.HealthHandler())
	mux.HandleFunc("/catalog", srv.CatalogHandler())
	mux.HandleFunc("/features", srv.FeaturesHandler())

	addr := ":8080"
	if v := os.Getenv("ADDR"); v != "" {
		addr = v
	}
	slog.Info("Listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
