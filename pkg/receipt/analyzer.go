package receipt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobcost-backend/domain"
)

type (
	// ReceiptAnalyzer submits a receipt image to the inference service and
	// returns the raw response body plus the first candidate's text.
	ReceiptAnalyzer interface {
		AnalyzeReceiptImage(ctx context.Context, imageURL string) (json.RawMessage, string, error)
	}

	geminiAnalyzer struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func NewGeminiAnalyzer(apiKey string, model string) ReceiptAnalyzer {
	if model == "" {
		model = "gemini-2.5-pro"
	}
	return &geminiAnalyzer{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (g *geminiAnalyzer) AnalyzeReceiptImage(ctx context.Context, imageURL string) (json.RawMessage, string, error) {
	imageData, mimeType, err := g.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInferenceCallFailed, err)
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": extractionPrompt,
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64.StdEncoding.EncodeToString(imageData),
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.2,
			"topP":        0.95,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, "", err
	}

	apiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInferenceCallFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInferenceCallFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInferenceCallFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: %s - %s", domain.ErrInferenceCallFailed, resp.Status, string(body))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return body, "", fmt.Errorf("%w: %v", domain.ErrParseInferenceResponse, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return body, "", fmt.Errorf("%w: invalid response structure", domain.ErrParseInferenceResponse)
	}

	return body, geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

func (g *geminiAnalyzer) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetching receipt image: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return data, mimeType, nil
}
