package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/medscan/medscan-api/internal/utils"
)

func newTestAnalyzer(baseURL string) *geminiAnalyzer {
	return &geminiAnalyzer{
		apiKey:  "test-key",
		model:   "gemini-1.5-flash",
		baseURL: baseURL,
		logger:  utils.NewTestLogger(),
		client:  http.DefaultClient,
	}
}

func geminiReply(text string) string {
	reply := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiReply("Paracetamol 500mg tablets, used for fever and pain relief.")))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	text, err := a.Analyze(context.Background(), []byte{0xff, 0xd8, 0xff}, language.AmericanEnglish)

	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg tablets, used for fever and pain relief.", text)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 2)
	assert.NotEmpty(t, gotBody.Contents[0].Parts[0].Text, "first part is the prompt")
	require.NotNil(t, gotBody.Contents[0].Parts[1].InlineData)
	assert.Equal(t, "image/jpeg", gotBody.Contents[0].Parts[1].InlineData.MimeType)
	assert.NotEmpty(t, gotBody.Contents[0].Parts[1].InlineData.Data, "image is base64 inline data")
}

func TestAnalyzeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"overloaded"}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	_, err := a.Analyze(context.Background(), []byte{1}, language.AmericanEnglish)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "overloaded")
}

func TestAnalyzeNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	_, err := a.Analyze(context.Background(), []byte{1}, language.AmericanEnglish)

	assert.ErrorIs(t, err, ErrNoAnalysis)
}

func TestAnalyzeTooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply("  short  ")))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	_, err := a.Analyze(context.Background(), []byte{1}, language.AmericanEnglish)

	assert.ErrorIs(t, err, ErrNoAnalysis)
}

func TestPromptFor(t *testing.T) {
	assert.Contains(t, promptFor(language.AmericanEnglish), "Analyze this medicine image")
	assert.Contains(t, promptFor(language.MustParse("hi-IN")), "दवा")
	assert.Contains(t, promptFor(language.MustParse("kn-IN")), "ಔಷಧ")
	assert.Equal(t, promptFor(language.AmericanEnglish), promptFor(language.MustParse("fr-FR")),
		"unsupported tags fall back to the English prompt")
}
