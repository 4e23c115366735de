package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SpeechClient is a SpeechTranscriber backed by the Azure Speech
// short-audio recognition REST API.
type SpeechClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ SpeechTranscriber = (*SpeechClient)(nil)

// NewSpeechClient creates a transcriber for the given Azure Speech region.
func NewSpeechClient(region, apiKey string) *SpeechClient {
	return &SpeechClient{
		baseURL: fmt.Sprintf("https://%s.stt.speech.microsoft.com", region),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type speechResponse struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
}

// Transcribe submits WAV audio and returns the recognized text.
func (c *SpeechClient) Transcribe(ctx context.Context, audio []byte) (string, error) {
	url := c.baseURL + "/speech/recognition/conversation/cognitiveservices/v1?language=en-US"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(audio))
	if err != nil {
		return "", &ServiceError{Provider: "speech", Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "audio/wav; codecs=audio/pcm; samplerate=16000")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ServiceError{Provider: "speech", Err: fmt.Errorf("speech request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServiceError{Provider: "speech", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{
			Provider: "speech",
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status, body: %s", string(body)),
		}
	}

	var parsed speechResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ServiceError{Provider: "speech", Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	if parsed.RecognitionStatus != "Success" {
		return "", &ServiceError{
			Provider: "speech",
			Err:      fmt.Errorf("recognition failed with status %q", parsed.RecognitionStatus),
		}
	}

	return parsed.DisplayText, nil
}
