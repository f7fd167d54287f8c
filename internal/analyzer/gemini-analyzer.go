package analyzer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/medscan/medscan-api/internal/utils"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNoAnalysis indicates the model responded without any usable text.
var ErrNoAnalysis = errors.New("no analysis received")

// APIError carries the upstream HTTP status so the orchestrator can decide
// between fallback and a categorized user-facing failure.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API returned status %d", e.StatusCode)
}

// Analyzer produces a free-text medicine analysis from a raw image.
type Analyzer interface {
	Analyze(ctx context.Context, imageData []byte, tag language.Tag) (string, error)
}

type geminiAnalyzer struct {
	apiKey  string
	model   string
	baseURL string
	logger  *utils.Logger
	client  *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewGeminiAnalyzer(apiKey, model string, logger *utils.Logger) Analyzer {
	return &geminiAnalyzer{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		logger:  logger,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (a *geminiAnalyzer) Analyze(ctx context.Context, imageData []byte, tag language.Tag) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: promptFor(tag)},
					{InlineData: &inlineData{
						MimeType: "image/jpeg",
						Data:     base64.StdEncoding.EncodeToString(imageData),
					}},
				},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.baseURL, a.model, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("gemini API error", "status", resp.StatusCode, "body", string(body))
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 {
		return "", ErrNoAnalysis
	}

	var analysisText strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		analysisText.WriteString(part.Text)
	}

	// Anything this short is noise, not an analysis.
	text := strings.TrimSpace(analysisText.String())
	if len(text) <= 10 {
		return "", ErrNoAnalysis
	}

	return text, nil
}
