package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"techmart-assistant/internal/ai"
	"techmart-assistant/internal/catalog"
	"techmart-assistant/internal/domain"
	"techmart-assistant/internal/intent"
	"techmart-assistant/internal/repository"
)

type panickingRenderer struct{}

func (panickingRenderer) Render(ctx context.Context, it intent.Intent) string {
	panic("renderer exploded")
}

type mockVisionAnalyzer struct {
	analysis ai.Analysis
	err      error
}

func (m *mockVisionAnalyzer) Analyze(ctx context.Context, image []byte) (*ai.Analysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.analysis, nil
}

type mockSpeechTranscriber struct{}

func (mockSpeechTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return "", nil
}

func newTestDialogService(t *testing.T, vision ai.VisionAnalyzer, speech ai.SpeechTranscriber) (DialogService, repository.SessionRepository) {
	t.Helper()
	sessions := repository.NewMemorySessionRepository()
	cat := catalog.New(catalog.Sample())
	responder := NewResponder(cat, nil, zap.NewNop())
	svc := NewDialogService(sessions, responder, cat, vision, speech, zap.NewNop())
	return svc, sessions
}

func TestHandleMessageAppendsBothTurns(t *testing.T) {
	svc, sessions := newTestDialogService(t, nil, nil)
	ctx := context.Background()

	response := svc.HandleMessage(ctx, "user-1", "hello")
	assert.Contains(t, response, "Welcome to TechMart")

	turns, err := sessions.History(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, domain.RoleUser, turns[0].Role)
	assert.Equal(t, "hello", turns[0].Text)
	assert.Equal(t, domain.RoleBot, turns[1].Role)
	assert.Equal(t, response, turns[1].Text)
}

func TestHandleMessageEmptyUserIDUsesAnonymousSession(t *testing.T) {
	svc, sessions := newTestDialogService(t, nil, nil)
	ctx := context.Background()

	svc.HandleMessage(ctx, "", "hi")

	turns, err := sessions.History(ctx, domain.AnonymousUserID)
	require.NoError(t, err)
	assert.Len(t, turns, 2)
}

func TestHandleMessageRecoversFromRendererPanic(t *testing.T) {
	sessions := repository.NewMemorySessionRepository()
	cat := catalog.New(catalog.Sample())
	svc := NewDialogService(sessions, panickingRenderer{}, cat, nil, nil, zap.NewNop())
	ctx := context.Background()

	response := svc.HandleMessage(ctx, "user-1", "hello")
	assert.Equal(t, "I apologize, but I'm having trouble processing your request. Please try again.", response)

	// The failed turn is still fully recorded: user turn plus apology turn
	turns, err := sessions.History(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, response, turns[1].Text)
}

func TestHandleMessageConcurrentSameUser(t *testing.T) {
	svc, sessions := newTestDialogService(t, nil, nil)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc.HandleMessage(ctx, "user-1", fmt.Sprintf("message %d", i))
		}(i)
	}
	wg.Wait()

	turns, err := sessions.History(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, turns, 2*n)
}

func TestDescribeImageWithoutVisionAnswersDemoMode(t *testing.T) {
	svc, _ := newTestDialogService(t, nil, nil)

	got := svc.DescribeImage(context.Background(), "user-1", []byte{0x1})
	assert.Contains(t, got, "Demo Mode")
}

func TestDescribeImageVisionErrorDegradesToDemoMode(t *testing.T) {
	vision := &mockVisionAnalyzer{err: &ai.ServiceError{Provider: "vision", Status: 500, Err: fmt.Errorf("boom")}}
	svc, _ := newTestDialogService(t, vision, nil)

	got := svc.DescribeImage(context.Background(), "user-1", []byte{0x1})
	assert.Contains(t, got, "Demo Mode")
}

func TestDescribeImageIdentifiesLaptop(t *testing.T) {
	vision := &mockVisionAnalyzer{analysis: ai.Analysis{
		Caption: "a laptop on a desk",
		Tags: []ai.Tag{
			{Name: "laptop", Confidence: 0.92},
			{Name: "desk", Confidence: 0.88},
		},
	}}
	svc, _ := newTestDialogService(t, vision, nil)

	got := svc.DescribeImage(context.Background(), "user-1", []byte{0x1})

	assert.Contains(t, got, "Image Analysis Complete")
	assert.Contains(t, got, "**laptop**")
	// Similar products are capped at two, in catalog order
	assert.Contains(t, got, "Dell XPS 13 (2024)")
	assert.Contains(t, got, "MacBook Air M2")
	assert.NotContains(t, got, "ASUS ROG")
}

func TestDescribeImageIdentifiesPhone(t *testing.T) {
	vision := &mockVisionAnalyzer{analysis: ai.Analysis{
		Caption: "a hand holding a phone",
		Tags:    []ai.Tag{{Name: "phone", Confidence: 0.75}},
	}}
	svc, _ := newTestDialogService(t, vision, nil)

	got := svc.DescribeImage(context.Background(), "user-1", []byte{0x1})

	assert.Contains(t, got, "**phone**")
	assert.Contains(t, got, "iPhone 15 Pro")
	assert.Contains(t, got, "Samsung Galaxy S24 Ultra")
	assert.NotContains(t, got, "Pixel 8 Pro")
}

func TestDescribeImageLowConfidenceTagsIgnored(t *testing.T) {
	vision := &mockVisionAnalyzer{analysis: ai.Analysis{
		Caption: "a blurry scene",
		Tags:    []ai.Tag{{Name: "laptop", Confidence: 0.4}},
	}}
	svc, _ := newTestDialogService(t, vision, nil)

	got := svc.DescribeImage(context.Background(), "user-1", []byte{0x1})

	assert.Contains(t, got, "Image Received")
	assert.Contains(t, got, "a blurry scene")
	assert.NotContains(t, got, "Image Analysis Complete")
}

func TestDescribeImageNoTechTagsReportsCaption(t *testing.T) {
	vision := &mockVisionAnalyzer{analysis: ai.Analysis{
		Caption: "a bowl of fruit",
		Tags:    []ai.Tag{{Name: "banana", Confidence: 0.99}},
	}}
	svc, _ := newTestDialogService(t, vision, nil)

	got := svc.DescribeImage(context.Background(), "user-1", []byte{0x1})

	assert.Contains(t, got, "a bowl of fruit")
	assert.Contains(t, got, "What type of technology are you looking for?")
}

func TestDescribeAudioWithoutSpeechAnswersDemoMode(t *testing.T) {
	svc, _ := newTestDialogService(t, nil, nil)

	got := svc.DescribeAudio(context.Background(), "user-1", []byte{0x1})
	assert.Contains(t, got, "Voice Input Received")
	assert.Contains(t, got, "demo mode")
}

func TestDescribeAudioWithSpeechConfigured(t *testing.T) {
	svc, _ := newTestDialogService(t, nil, mockSpeechTranscriber{})

	got := svc.DescribeAudio(context.Background(), "user-1", []byte{0x1})
	assert.Contains(t, got, "Voice Processing Available")
}
