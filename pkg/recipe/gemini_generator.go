package recipe

import (
	"EcoPanier/domain"
	"EcoPanier/internal/metrics"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultGeminiURL   = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel = "gemini-1.5-flash"
)

type (
	geminiGenerator struct {
		baseURL    string
		apiKey     string
		model      string
		httpClient *http.Client
	}

	geminiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

func NewGeminiGenerator(baseURL, apiKey, model string, httpClient *http.Client) Generator {
	if baseURL == "" {
		baseURL = DefaultGeminiURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &geminiGenerator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

func (g *geminiGenerator) GenerateRecipe(ctx context.Context, items []domain.InventoryItem) (domain.GeneratedRecipe, error) {
	if g.apiKey == "" {
		return domain.GeneratedRecipe{}, domain.ErrAIKeyMissing
	}

	text, err := g.generateContent(ctx, buildPrompt(items))
	metrics.ObserveExternal(metrics.ServiceGemini, err)
	if err != nil {
		return domain.GeneratedRecipe{}, domain.ExternalError(metrics.ServiceGemini, err)
	}
	return parseGeneratedRecipe(text)
}

func (g *geminiGenerator) generateContent(ctx context.Context, prompt string) (string, error) {
	geminiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.9,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from AI")
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
