package catalog

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techmart-assistant/internal/domain"
)

func TestByCategory(t *testing.T) {
	c := New(Sample())

	laptops := c.ByCategory(domain.CategoryLaptop)
	require.Len(t, laptops, 3)
	assert.Equal(t, "laptop_001", laptops[0].ID)
	assert.Equal(t, "laptop_002", laptops[1].ID)
	assert.Equal(t, "laptop_003", laptops[2].ID)

	phones := c.ByCategory(domain.CategorySmartphone)
	require.Len(t, phones, 3)
	assert.Equal(t, "phone_001", phones[0].ID)
}

func TestFilterByUseCases(t *testing.T) {
	c := New(Sample())
	laptops := c.ByCategory(domain.CategoryLaptop)

	gaming := FilterByUseCases(laptops, "gaming", "streaming")
	require.Len(t, gaming, 1)
	assert.Equal(t, "ASUS ROG Strix G15", gaming[0].Name)

	business := FilterByUseCases(laptops, "work", "productivity")
	require.Len(t, business, 2)
	assert.Equal(t, "Dell XPS 13 (2024)", business[0].Name)
	assert.Equal(t, "MacBook Air M2", business[1].Name)
}

func TestTopRatedOrder(t *testing.T) {
	c := New(Sample())

	top := c.TopRated(4)
	require.Len(t, top, 4)

	assert.Equal(t, "MacBook Air M2", top[0].Name)           // 4.8
	assert.Equal(t, "iPhone 15 Pro", top[1].Name)            // 4.7
	assert.Equal(t, "Dell XPS 13 (2024)", top[2].Name)       // 4.6
	assert.Equal(t, "Samsung Galaxy S24 Ultra", top[3].Name) // 4.5
}

func TestTopRatedTieBreaksByCatalogOrder(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "A", Rating: 4.0},
		{ID: "b", Name: "B", Rating: 4.5},
		{ID: "c", Name: "C", Rating: 4.0},
	}
	c := New(products)

	top := c.TopRated(3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{top[0].ID, top[1].ID, top[2].ID})
}

func TestFilteringNeverMutatesCatalog(t *testing.T) {
	c := New(Sample())

	// Derive and discard a narrowed view, then mutate what we got back
	gaming := FilterByUseCases(c.ByCategory(domain.CategoryLaptop), "gaming", "streaming")
	if len(gaming) > 0 {
		gaming[0].Name = "mutated"
	}
	all := c.All()
	all[0].Name = "also mutated"
	_ = c.TopRated(4)

	// The second query still sees the full unfiltered laptop set
	laptops := c.ByCategory(domain.CategoryLaptop)
	require.Len(t, laptops, 3)
	assert.Equal(t, "Dell XPS 13 (2024)", laptops[0].Name)
}

func TestSampleCatalogHasUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Sample() {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}
}

// Property: TopRated is deterministic and sorted by rating descending for
// any catalog.
func TestProperty_TopRatedSortedDescending(t *testing.T) {
	properties := gopter.NewProperties(nil)

	ratingGen := gen.Float64Range(0.0, 5.0)

	properties.Property("top rated is sorted descending and idempotent", prop.ForAll(
		func(ratings []float64) bool {
			products := make([]domain.Product, len(ratings))
			for i, r := range ratings {
				products[i] = domain.Product{ID: string(rune('a' + i%26)), Rating: r}
			}
			c := New(products)

			first := c.TopRated(4)
			second := c.TopRated(4)

			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i].ID != second[i].ID || first[i].Rating != second[i].Rating {
					return false
				}
				if i > 0 && first[i-1].Rating < first[i].Rating {
					return false
				}
			}
			return true
		},
		gen.SliceOf(ratingGen),
	))

	properties.TestingRun(t)
}
