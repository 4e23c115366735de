package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// VisionClient is a VisionAnalyzer backed by the Azure Computer Vision
// image analysis REST API.
type VisionClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ VisionAnalyzer = (*VisionClient)(nil)

// NewVisionClient creates a client for the given Computer Vision endpoint.
func NewVisionClient(endpoint, apiKey string) *VisionClient {
	return &VisionClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type visionResponse struct {
	Description struct {
		Captions []struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"captions"`
	} `json:"description"`
	Tags []struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	} `json:"tags"`
}

// Analyze submits raw image bytes and returns the top caption plus the
// detected tags in service order.
func (c *VisionClient) Analyze(ctx context.Context, image []byte) (*Analysis, error) {
	url := c.endpoint + "/vision/v3.2/analyze?visualFeatures=Description,Tags"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return nil, &ServiceError{Provider: "vision", Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ServiceError{Provider: "vision", Err: fmt.Errorf("vision request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Provider: "vision", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{
			Provider: "vision",
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status, body: %s", string(body)),
		}
	}

	var parsed visionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ServiceError{Provider: "vision", Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	analysis := &Analysis{}
	if len(parsed.Description.Captions) > 0 {
		analysis.Caption = parsed.Description.Captions[0].Text
	}
	for _, tag := range parsed.Tags {
		analysis.Tags = append(analysis.Tags, Tag{Name: tag.Name, Confidence: tag.Confidence})
	}

	return analysis, nil
}
