package catalog

import "techmart-assistant/internal/domain"

// Sample returns the built-in TechMart product set, used when no product
// database is configured. Insertion order matters: it is the tie-break
// order for rating sorts.
func Sample() []domain.Product {
	return []domain.Product{
		{
			ID:       "laptop_001",
			Name:     "Dell XPS 13 (2024)",
			Category: domain.CategoryLaptop,
			Brand:    "Dell",
			Price:    1299.99,
			Rating:   4.6,
			Features: `Intel Core i7-1355U, 16GB LPDDR5, 512GB SSD, 13.3" 4K Display`,
			UseCases: []string{"work", "productivity", "travel"},
		},
		{
			ID:       "laptop_002",
			Name:     "MacBook Air M2",
			Category: domain.CategoryLaptop,
			Brand:    "Apple",
			Price:    1199.99,
			Rating:   4.8,
			Features: `Apple M2 chip, 8GB unified memory, 256GB SSD, 13.6" Liquid Retina`,
			UseCases: []string{"creative", "work", "productivity"},
		},
		{
			ID:       "laptop_003",
			Name:     "ASUS ROG Strix G15",
			Category: domain.CategoryLaptop,
			Brand:    "ASUS",
			Price:    1599.99,
			Rating:   4.4,
			Features: `AMD Ryzen 7, RTX 4060, 16GB DDR4, 1TB SSD, 15.6" 144Hz`,
			UseCases: []string{"gaming", "streaming", "content creation"},
		},
		{
			ID:       "phone_001",
			Name:     "iPhone 15 Pro",
			Category: domain.CategorySmartphone,
			Brand:    "Apple",
			Price:    999.99,
			Rating:   4.7,
			Features: "A17 Pro chip, 128GB storage, 48MP camera system, Titanium design",
			UseCases: []string{"photography", "communication", "entertainment"},
		},
		{
			ID:       "phone_002",
			Name:     "Samsung Galaxy S24 Ultra",
			Category: domain.CategorySmartphone,
			Brand:    "Samsung",
			Price:    1199.99,
			Rating:   4.5,
			Features: "Snapdragon 8 Gen 3, 256GB storage, 200MP camera, S Pen included",
			UseCases: []string{"photography", "productivity", "gaming"},
		},
		{
			ID:       "phone_003",
			Name:     "Google Pixel 8 Pro",
			Category: domain.CategorySmartphone,
			Brand:    "Google",
			Price:    899.99,
			Rating:   4.4,
			Features: "Google Tensor G3, 128GB storage, AI-enhanced cameras, 7 years updates",
			UseCases: []string{"photography", "AI features", "pure Android"},
		},
	}
}
