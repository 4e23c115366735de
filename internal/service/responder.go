package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"techmart-assistant/internal/ai"
	"techmart-assistant/internal/catalog"
	"techmart-assistant/internal/domain"
	"techmart-assistant/internal/intent"
)

const featuresPreviewLen = 60

// pricePrinter renders prices with English thousands grouping.
var pricePrinter = message.NewPrinter(language.English)

// Responder renders a deterministic text response for a classified intent.
// It is side-effect free except for the optional text generation call on
// general queries, and it never propagates an error across its boundary.
type Responder struct {
	catalog *catalog.Catalog
	textGen ai.TextGenerator // nil when no text generation service is configured
	logger  *zap.Logger
}

var _ ResponseRenderer = (*Responder)(nil)

// NewResponder creates a Responder. textGen may be nil; general queries then
// degrade to a static fallback.
func NewResponder(cat *catalog.Catalog, textGen ai.TextGenerator, logger *zap.Logger) *Responder {
	return &Responder{
		catalog: cat,
		textGen: textGen,
		logger:  logger,
	}
}

// Render produces the response text for the given intent.
func (r *Responder) Render(ctx context.Context, it intent.Intent) string {
	switch it.Type {
	case intent.TypeGreeting:
		return greetingResponse
	case intent.TypeProductSearch:
		return r.renderProductSearch(it)
	case intent.TypeProductCompare:
		return comparisonResponse
	case intent.TypeRecommendation:
		return r.renderRecommendation()
	case intent.TypePriceInquiry:
		return priceGuideResponse
	case intent.TypeHelp:
		return helpResponse
	case intent.TypeGeneralQuery:
		return r.renderGeneralQuery(ctx, it.RawText)
	default:
		return "I'm here to help you find great tech products! Ask me about laptops, smartphones, or any tech-related questions."
	}
}

func (r *Responder) renderProductSearch(it intent.Intent) string {
	var b strings.Builder

	switch it.Category {
	case domain.CategoryLaptop:
		laptops := r.catalog.ByCategory(domain.CategoryLaptop)

		switch it.Subcategory {
		case domain.SubcategoryGaming:
			laptops = catalog.FilterByUseCases(laptops, "gaming", "streaming")
			b.WriteString("💻 **Gaming Laptops Available:**\n\n")
		case domain.SubcategoryBusiness:
			laptops = catalog.FilterByUseCases(laptops, "work", "productivity")
			b.WriteString("💻 **Business Laptops Available:**\n\n")
		default:
			b.WriteString("💻 **Laptops Available:**\n\n")
		}

		for _, laptop := range laptops {
			r.writeProductBlock(&b, laptop)
		}

	case domain.CategorySmartphone:
		b.WriteString("📱 **Excellent Smartphones:**\n\n")
		for _, phone := range r.catalog.ByCategory(domain.CategorySmartphone) {
			r.writeProductBlock(&b, phone)
		}

	default:
		b.WriteString(searchGuidanceResponse)
	}

	b.WriteString(searchFooter)
	return b.String()
}

func (r *Responder) writeProductBlock(b *strings.Builder, p domain.Product) {
	fmt.Fprintf(b, "**%s** - $%s\n", p.Name, formatPrice(p.Price))
	fmt.Fprintf(b, "✨ %s\n", p.Features)
	fmt.Fprintf(b, "⭐ Rating: %.1f/5 | 🎯 Best for: %s\n\n", p.Rating, strings.Join(p.UseCases, ", "))
}

func (r *Responder) renderRecommendation() string {
	top := r.catalog.TopRated(4)

	var b strings.Builder
	b.WriteString("🌟 **My Top Recommendations:**\n\n")

	for i, p := range top {
		fmt.Fprintf(&b, "**%d. %s** - $%s\n", i+1, p.Name, formatPrice(p.Price))
		fmt.Fprintf(&b, "   📱 %s | ⭐ %.1f/5\n", titleCase(string(p.Category)), p.Rating)
		fmt.Fprintf(&b, "   ✨ %s...\n\n", truncate(p.Features, featuresPreviewLen))
	}

	b.WriteString(recommendationFooter)
	return b.String()
}

func (r *Responder) renderGeneralQuery(ctx context.Context, rawText string) string {
	if r.textGen == nil {
		return generalQueryFallback
	}

	reply, err := r.textGen.Complete(ctx, generalQuerySystemPrompt, rawText)
	if err != nil {
		r.logger.Warn("Text generation failed, degrading to fallback", zap.Error(err))
		return generalQueryErrorFallback
	}

	return reply + generalQuerySuffix
}

// formatPrice renders a price with thousands grouping and two decimals,
// e.g. 1299.99 -> "1,299.99".
func formatPrice(price float64) string {
	return pricePrinter.Sprintf("%.2f", price)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
