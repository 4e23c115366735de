package intent

import (
	"strings"

	"techmart-assistant/internal/domain"
)

// Type is the discrete conversational category a message resolves to
type Type string

const (
	TypeGreeting       Type = "greeting"
	TypeProductSearch  Type = "product_search"
	TypeProductCompare Type = "product_compare"
	TypeRecommendation Type = "recommendation"
	TypePriceInquiry   Type = "price_inquiry"
	TypeHelp           Type = "help"
	TypeGeneralQuery   Type = "general_query"
)

// Intent is the classification result for a single message. Exactly one
// variant is produced per input; unmatched input resolves to GeneralQuery.
type Intent struct {
	Type        Type
	Category    domain.Category    // set for product_search
	Subcategory domain.Subcategory // set for laptop searches
	RawText     string             // set for general_query
}

// Keyword tables, checked in priority order. Matching is substring matching
// on the lower-cased message, not word-boundary matching: "hi" matches
// inside "this". Known imprecision kept for classification stability.
var (
	greetingTokens = []string{"hello", "hi", "hey", "good morning", "good afternoon"}
	laptopTokens   = []string{"laptop", "computer", "notebook"}
	gamingTokens   = []string{"gaming", "game", "rtx", "nvidia"}
	businessTokens = []string{"work", "business", "office", "productivity"}
	phoneTokens    = []string{"phone", "smartphone", "mobile", "iphone", "android"}
	compareTokens  = []string{"compare", "difference", "versus", "vs", "better"}
	suggestTokens  = []string{"recommend", "suggest", "best", "top"}
	priceTokens    = []string{"price", "cost", "budget", "expensive", "cheap", "$"}
	helpTokens     = []string{"help", "what can you do", "features"}
)

// Classify maps free text to exactly one intent. It is pure, deterministic
// and total: no input is ever rejected. Rule order is significant since the
// token sets overlap (a greeting beats a laptop mention, and so on).
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, greetingTokens):
		return Intent{Type: TypeGreeting}

	case containsAny(lower, laptopTokens):
		sub := domain.SubcategoryNone
		if containsAny(lower, gamingTokens) {
			sub = domain.SubcategoryGaming
		} else if containsAny(lower, businessTokens) {
			sub = domain.SubcategoryBusiness
		}
		return Intent{Type: TypeProductSearch, Category: domain.CategoryLaptop, Subcategory: sub}

	case containsAny(lower, phoneTokens):
		return Intent{Type: TypeProductSearch, Category: domain.CategorySmartphone}

	case containsAny(lower, compareTokens):
		return Intent{Type: TypeProductCompare}

	case containsAny(lower, suggestTokens):
		return Intent{Type: TypeRecommendation}

	case containsAny(lower, priceTokens):
		return Intent{Type: TypePriceInquiry}

	case containsAny(lower, helpTokens):
		return Intent{Type: TypeHelp}

	default:
		return Intent{Type: TypeGeneralQuery, RawText: text}
	}
}

func containsAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
