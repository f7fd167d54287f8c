package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/medscan/medscan-api/internal/models"
	"github.com/medscan/medscan-api/internal/services"
	"github.com/medscan/medscan-api/internal/utils"
)

const (
	MaxImageSize = 10 << 20 // 10MB
)

type ScanHandler struct {
	service services.ScanService
	logger  *utils.Logger
}

func NewScanHandler(service services.ScanService, logger *utils.Logger) *ScanHandler {
	return &ScanHandler{
		service: service,
		logger:  logger,
	}
}

// CreateScan accepts a multipart image upload (field "image", optional
// "language" form field) and runs the analysis pipeline on it.
func (h *ScanHandler) CreateScan(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > MaxImageSize {
		h.respondError(w, utils.NewBadRequestError("Image size exceeds 10MB limit"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxImageSize)

	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			h.respondError(w, utils.NewBadRequestError("Image size exceeds 10MB limit"))
			return
		}
		h.respondError(w, utils.NewBadRequestError("Invalid form data"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondError(w, utils.NewBadRequestError("No image provided"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isSupportedImageType(contentType, header.Filename) {
		h.respondError(w, utils.NewBadRequestError("Only JPEG and PNG images are allowed"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		h.respondError(w, utils.NewInternalError("Failed to read image"))
		return
	}
	if len(data) > MaxImageSize {
		h.respondError(w, utils.NewBadRequestError("Image size exceeds 10MB limit"))
		return
	}
	if len(data) == 0 {
		h.respondError(w, utils.NewBadRequestError("Uploaded image is empty"))
		return
	}

	req := &models.ScanRequest{
		Image:    data,
		Language: r.FormValue("language"),
	}

	result, err := h.service.ProcessScan(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}

func (h *ScanHandler) ListScans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.respondError(w, utils.NewBadRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	scans, err := h.service.History(r.Context(), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if scans == nil {
		scans = []*models.ScanRecord{}
	}

	h.respondJSON(w, http.StatusOK, scans)
}

func (h *ScanHandler) GetScan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.respondError(w, utils.NewBadRequestError("Scan ID is required"))
		return
	}

	scan, err := h.service.GetScan(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, scan)
}

func (h *ScanHandler) ClearScans(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context()); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// SpeechSummary returns the bounded utterance for a stored scan, for the
// on-device speech engine to render.
func (h *ScanHandler) SpeechSummary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.respondError(w, utils.NewBadRequestError("Scan ID is required"))
		return
	}

	var body struct {
		Language string `json:"language"`
	}
	if r.Body != nil {
		// Body is optional; an empty language falls back to en-US.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	summary, err := h.service.SpeechSummary(r.Context(), id, body.Language)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

func (h *ScanHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.Favorites(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if favorites == nil {
		favorites = []*models.Favorite{}
	}

	h.respondJSON(w, http.StatusOK, favorites)
}

func (h *ScanHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
		Info string `json:"info"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid JSON body"))
		return
	}

	if err := h.service.AddFavorite(r.Context(), body.Name, body.Info); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (h *ScanHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		h.respondError(w, utils.NewBadRequestError("Favorite name is required"))
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), name); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func isSupportedImageType(contentType, filename string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}

	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg") ||
		strings.HasSuffix(lower, ".png")
}

func (h *ScanHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *ScanHandler) respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch e := err.(type) {
	case *utils.AppError:
		status = e.StatusCode
		message = e.Message
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
