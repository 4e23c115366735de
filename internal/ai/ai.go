package ai

import (
	"context"
	"fmt"
)

// TextGenerator produces a chat completion for a system + user prompt pair.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Tag is a single label detected in an image with its confidence.
type Tag struct {
	Name       string
	Confidence float64
}

// Analysis is the result of a vision call: a caption plus ordered tags.
type Analysis struct {
	Caption string
	Tags    []Tag
}

// VisionAnalyzer captions an image and labels its contents.
type VisionAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (*Analysis, error)
}

// SpeechTranscriber converts spoken audio to text.
type SpeechTranscriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// ServiceError reports a failed call to a configured external AI service.
// Callers degrade to canned responses on it; it never reaches end users.
type ServiceError struct {
	Provider string
	Status   int
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s service error (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s service error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
