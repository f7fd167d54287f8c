package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medscan/medscan-api/internal/handlers"
	"github.com/medscan/medscan-api/internal/middleware"
	"github.com/medscan/medscan-api/internal/services"
	"github.com/medscan/medscan-api/internal/utils"
)

func NewRouter(scanService services.ScanService, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	scanHandler := handlers.NewScanHandler(scanService, logger)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Scan endpoints
	api.HandleFunc("/scans", scanHandler.CreateScan).Methods(http.MethodPost)
	api.HandleFunc("/scans", scanHandler.ListScans).Methods(http.MethodGet)
	api.HandleFunc("/scans", scanHandler.ClearScans).Methods(http.MethodDelete)
	api.HandleFunc("/scans/{id}", scanHandler.GetScan).Methods(http.MethodGet)
	api.HandleFunc("/scans/{id}/speech", scanHandler.SpeechSummary).Methods(http.MethodPost)

	// Favorites endpoints
	api.HandleFunc("/favorites", scanHandler.ListFavorites).Methods(http.MethodGet)
	api.HandleFunc("/favorites", scanHandler.AddFavorite).Methods(http.MethodPost)
	api.HandleFunc("/favorites/{name}", scanHandler.RemoveFavorite).Methods(http.MethodDelete)

	return r
}
