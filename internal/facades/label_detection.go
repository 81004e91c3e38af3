package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
)

// LabelDetectionHTTPFacade detects image labels through the Cloud Vision
// images:annotate REST endpoint.
type LabelDetectionHTTPFacade struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	maxResults int
}

// NewLabelDetectionHTTPFacade creates a new facade. baseURL is normally
// https://vision.googleapis.com.
func NewLabelDetectionHTTPFacade(client *http.Client, baseURL, apiKey string, maxResults int) *LabelDetectionHTTPFacade {
	return &LabelDetectionHTTPFacade{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		maxResults: maxResults,
	}
}

type annotateRequest struct {
	Requests []annotateImageRequest `json:"requests"`
}

type annotateImageRequest struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations []struct {
			Description string  `json:"description"`
			Score       float64 `json:"score"`
		} `json:"labelAnnotations"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// DetectLabels returns the labels detected on the image, best match first.
func (f *LabelDetectionHTTPFacade) DetectLabels(ctx context.Context, image []byte) ([]models.Label, error) {
	body, err := json.Marshal(annotateRequest{
		Requests: []annotateImageRequest{{
			Image:    annotateImage{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []annotateFeature{{Type: "LABEL_DETECTION", MaxResults: f.maxResults}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal annotate request: %w", err)
	}

	endpoint := f.baseURL + "/v1/images:annotate?key=" + url.QueryEscape(f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create annotate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("label detection request failed", "error", err)
		return nil, fmt.Errorf("label detection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("label detection returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("label detection returned status %d", resp.StatusCode)
	}

	var out annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode annotate response: %w", err)
	}
	if len(out.Responses) == 0 {
		return []models.Label{}, nil
	}
	if e := out.Responses[0].Error; e != nil {
		return nil, fmt.Errorf("label detection failed: %d %s", e.Code, e.Message)
	}

	labels := make([]models.Label, 0, len(out.Responses[0].LabelAnnotations))
	for _, a := range out.Responses[0].LabelAnnotations {
		labels = append(labels, models.Label{Description: a.Description, Score: a.Score})
	}

	logger.Log.Infow("labels detected", "count", len(labels))

	return labels, nil
}
