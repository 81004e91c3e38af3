package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/recipe-search/internal/logger"
)

// TranslationHTTPFacade translates text through the Cloud Translation v2 REST API.
// The source language is detected by the service.
type TranslationHTTPFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewTranslationHTTPFacade creates a new facade. baseURL is normally
// https://translation.googleapis.com.
func NewTranslationHTTPFacade(client *http.Client, baseURL, apiKey string) *TranslationHTTPFacade {
	return &TranslationHTTPFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates text into the target language.
func (f *TranslationHTTPFacade) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	body, err := json.Marshal(translateRequest{Q: text, Target: target, Format: "text"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal translate request: %w", err)
	}

	endpoint := f.baseURL + "/language/translate/v2?key=" + url.QueryEscape(f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("translate request failed", "text", text, "error", err)
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("translate returned non-OK status", "text", text, "status", resp.StatusCode)
		return "", fmt.Errorf("translate returned status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}
	if len(out.Data.Translations) == 0 {
		return "", fmt.Errorf("translate returned no translations for %q", text)
	}

	return html.UnescapeString(out.Data.Translations[0].TranslatedText), nil
}
