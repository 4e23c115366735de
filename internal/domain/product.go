package domain

// Category identifies a product family in the catalog
type Category string

const (
	CategoryLaptop     Category = "laptop"
	CategorySmartphone Category = "smartphone"
)

// Subcategory narrows a laptop search to a usage profile
type Subcategory string

const (
	SubcategoryNone     Subcategory = ""
	SubcategoryGaming   Subcategory = "gaming"
	SubcategoryBusiness Subcategory = "business"
)

// Product represents an immutable catalog record
type Product struct {
	ID       string   `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Category Category `json:"category" db:"category"`
	Brand    string   `json:"brand" db:"brand"`
	Price    float64  `json:"price" db:"price"`
	Rating   float64  `json:"rating" db:"rating"`
	Features string   `json:"features" db:"features"`
	UseCases []string `json:"use_cases" db:"use_cases"`
}

// HasAnyUseCase reports whether the product is tagged with at least one
// of the given use cases.
func (p Product) HasAnyUseCase(useCases ...string) bool {
	for _, want := range useCases {
		for _, have := range p.UseCases {
			if have == want {
				return true
			}
		}
	}
	return false
}
