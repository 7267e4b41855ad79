package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobcost-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(baseURL string) *geminiAnalyzer {
	return &geminiAnalyzer{
		apiKey:     "test-key",
		model:      "gemini-2.5-pro",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("fake-jpeg-bytes"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAnalyzeReceiptImage(t *testing.T) {
	imageServer := newImageServer(t)

	t.Run("returns first candidate text", func(t *testing.T) {
		var gotPath string
		geminiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path

			var body struct {
				Contents []struct {
					Parts []json.RawMessage `json:"parts"`
				} `json:"contents"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Contents, 1)
			assert.Len(t, body.Contents[0].Parts, 2)

			_, _ = fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"{\"receipt_items\":[]}"}]}}]}`)
		}))
		defer geminiServer.Close()

		analyzer := newTestAnalyzer(geminiServer.URL)
		raw, text, err := analyzer.AnalyzeReceiptImage(context.Background(), imageServer.URL)
		require.NoError(t, err)
		assert.Equal(t, "/v1beta/models/gemini-2.5-pro:generateContent", gotPath)
		assert.Equal(t, `{"receipt_items":[]}`, text)
		assert.NotEmpty(t, raw)
	})

	t.Run("upstream error status", func(t *testing.T) {
		geminiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
		}))
		defer geminiServer.Close()

		analyzer := newTestAnalyzer(geminiServer.URL)
		_, _, err := analyzer.AnalyzeReceiptImage(context.Background(), imageServer.URL)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInferenceCallFailed))
	})

	t.Run("empty candidates", func(t *testing.T) {
		geminiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"candidates":[]}`)
		}))
		defer geminiServer.Close()

		analyzer := newTestAnalyzer(geminiServer.URL)
		raw, _, err := analyzer.AnalyzeReceiptImage(context.Background(), imageServer.URL)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParseInferenceResponse))
		assert.NotEmpty(t, raw)
	})

	t.Run("image fetch failure", func(t *testing.T) {
		brokenImageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "access denied", http.StatusForbidden)
		}))
		defer brokenImageServer.Close()

		analyzer := newTestAnalyzer("http://unused.invalid")
		_, _, err := analyzer.AnalyzeReceiptImage(context.Background(), brokenImageServer.URL)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInferenceCallFailed))
	})
}
