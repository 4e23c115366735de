package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"techmart-assistant/internal/ai"
	"techmart-assistant/internal/catalog"
	"techmart-assistant/internal/domain"
	"techmart-assistant/internal/intent"
	"techmart-assistant/internal/repository"
)

// techProductTags is the vocabulary of image labels treated as tech products.
var techProductTags = []string{"laptop", "computer", "phone", "smartphone", "tablet", "monitor", "keyboard"}

const minTagConfidence = 0.5
const maxSimilarProducts = 2

// DialogService is the single entry point the transport layer calls. Every
// method returns user-facing text and never an error: failures degrade to
// deterministic fallback strings.
type DialogService interface {
	HandleMessage(ctx context.Context, userID, message string) string
	DescribeImage(ctx context.Context, userID string, image []byte) string
	DescribeAudio(ctx context.Context, userID string, audio []byte) string
}

// ResponseRenderer turns a classified intent into response text.
type ResponseRenderer interface {
	Render(ctx context.Context, it intent.Intent) string
}

type dialogService struct {
	sessions  repository.SessionRepository
	responder ResponseRenderer
	catalog   *catalog.Catalog
	vision    ai.VisionAnalyzer    // nil when unconfigured
	speech    ai.SpeechTranscriber // nil when unconfigured
	logger    *zap.Logger
}

// NewDialogService creates a new instance of DialogService. vision and
// speech may be nil; the corresponding intake paths then answer in demo mode.
func NewDialogService(
	sessions repository.SessionRepository,
	responder ResponseRenderer,
	cat *catalog.Catalog,
	vision ai.VisionAnalyzer,
	speech ai.SpeechTranscriber,
	logger *zap.Logger,
) DialogService {
	return &dialogService{
		sessions:  sessions,
		responder: responder,
		catalog:   cat,
		vision:    vision,
		speech:    speech,
		logger:    logger,
	}
}

// HandleMessage records the inbound turn, classifies the message, renders a
// response and records the outbound turn. Exactly two turns are appended per
// call regardless of which path the rendering takes.
func (s *dialogService) HandleMessage(ctx context.Context, userID, message string) string {
	if userID == "" {
		userID = domain.AnonymousUserID
	}

	s.appendTurn(ctx, userID, domain.RoleUser, message)

	response := s.respond(ctx, message)

	s.appendTurn(ctx, userID, domain.RoleBot, response)

	return response
}

// respond classifies and renders, converting any panic into the apology
// string so nothing escapes the service boundary.
func (s *dialogService) respond(ctx context.Context, message string) (response string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Message processing panicked",
				zap.Any("panic", r),
			)
			response = processingApology
		}
	}()

	it := intent.Classify(message)
	s.logger.Debug("Classified message",
		zap.String("intent", string(it.Type)),
		zap.String("category", string(it.Category)),
		zap.String("subcategory", string(it.Subcategory)),
	)

	return s.responder.Render(ctx, it)
}

func (s *dialogService) appendTurn(ctx context.Context, userID string, role domain.Role, text string) {
	if err := s.sessions.Append(ctx, userID, domain.NewTurn(role, text)); err != nil {
		s.logger.Error("Failed to record conversation turn",
			zap.String("user_id", userID),
			zap.String("role", string(role)),
			zap.Error(err),
		)
	}
}

// DescribeImage analyzes an uploaded image and answers with identified
// products, or a demo-mode message when vision is unconfigured or failing.
func (s *dialogService) DescribeImage(ctx context.Context, userID string, image []byte) string {
	if s.vision == nil {
		s.logger.Debug("Vision service not configured, answering in demo mode",
			zap.String("user_id", userID),
		)
		return imageDemoResponse
	}

	analysis, err := s.vision.Analyze(ctx, image)
	if err != nil {
		s.logger.Warn("Image analysis failed, degrading to demo mode",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return imageDemoResponse
	}

	detected := filterTechTags(analysis.Tags)
	if len(detected) == 0 {
		return fmt.Sprintf("📷 **Image Received:** %s\n\n"+
			"While I couldn't identify a specific tech product, I'm here to help you find what you need!\n\n"+
			"**What type of technology are you looking for?**\n• Laptops 💻\n• Smartphones 📱\n• Tablets\n• Accessories",
			analysis.Caption)
	}

	techType := strings.ToLower(detected[0])

	var b strings.Builder
	fmt.Fprintf(&b, "📷 **Image Analysis Complete!**\n\nI can see this appears to be a **%s**!\n\n", techType)

	similar := s.similarProducts(techType)
	if len(similar) > 0 {
		b.WriteString("**Here are some similar products I'd recommend:**\n\n")
		for _, p := range similar {
			fmt.Fprintf(&b, "• **%s** - $%s\n", p.Name, formatPrice(p.Price))
			fmt.Fprintf(&b, "  ⭐ %.1f/5 | %s...\n\n", p.Rating, truncate(p.Features, 50))
		}
	}

	b.WriteString("💡 **Want more details about any of these products?**")
	return b.String()
}

// DescribeAudio answers with the voice capability message. Transcription is
// declared on the SpeechTranscriber interface but this path does not invoke
// it; the response depends only on whether speech is configured.
func (s *dialogService) DescribeAudio(ctx context.Context, userID string, audio []byte) string {
	if s.speech == nil {
		s.logger.Debug("Speech service not configured, answering in demo mode",
			zap.String("user_id", userID),
		)
		return voiceDemoResponse
	}

	return voiceAvailableResponse
}

// filterTechTags keeps tags from the tech-product vocabulary detected with
// confidence above the threshold, in service order.
func filterTechTags(tags []ai.Tag) []string {
	detected := []string{}
	for _, tag := range tags {
		if tag.Confidence <= minTagConfidence {
			continue
		}
		name := strings.ToLower(tag.Name)
		for _, known := range techProductTags {
			if name == known {
				detected = append(detected, tag.Name)
				break
			}
		}
	}
	return detected
}

func (s *dialogService) similarProducts(techType string) []domain.Product {
	var products []domain.Product
	switch {
	case strings.Contains(techType, "laptop") || strings.Contains(techType, "computer"):
		products = s.catalog.ByCategory(domain.CategoryLaptop)
	case strings.Contains(techType, "phone"):
		products = s.catalog.ByCategory(domain.CategorySmartphone)
	}

	if len(products) > maxSimilarProducts {
		products = products[:maxSimilarProducts]
	}
	return products
}
