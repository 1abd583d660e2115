package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vovanwin/enumtoggles/example/service/internal/features"
	"github.com/vovanwin/enumtoggles/pkg/toggles"
)

type Server struct {
	features *toggles.Set[features.Feature]
}

// New принимает набор, собранный при старте; дальше он только читается
func New(f *toggles.Set[features.Feature]) *Server {
	return &Server{features: f}
}

// Theme возвращает тему интерфейса
func (s *Server) Theme() string {
	if s.features.GetEnum(features.FeatureDarkMode) {
		return "dark"
	}
	return "light"
}

// HealthHandler возвращает хендлер для health check со списком включённых toggle
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enabled := []string{}
		for _, f := range s.features.Enabled() {
			enabled = append(enabled, f.String())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "ok",
			"features": enabled,
		})
	}
}

// CatalogHandler отдаёт версию каталога в зависимости от toggle
func (s *Server) CatalogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := "v1"
		if s.features.GetEnum(features.FeatureNewCatalogUi) {
			version = "v2"
		}
		fmt.Fprintf(w, "catalog %s (%s)", version, s.Theme())
	}
}

// CheckoutSteps возвращает число шагов оформления заказа
func (s *Server) CheckoutSteps() int {
	if s.features.GetEnum(features.FeatureFastCheckout) {
		return 1
	}
	return 3
}

// FeaturesHandler отдаёт текущее состояние всех toggle в текстовом формате
func (s *Server) FeaturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, s.features)
	}
}
