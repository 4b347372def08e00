package menu

import (
	"testing"

	"github.com/masera/storefront/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Morning Glory Breakfast": "morning-glory-breakfast",
		"Focaccia  Fiesta":        "focaccia-fiesta",
		// Stripped punctuation leaves its hyphens behind; runs are not
		// collapsed, so the derived id stays stable for anchor links.
		"Juices & Smoothies": "juices--smoothies",
		"  Hot Drinks  ":     "hot-drinks",
		"Café Crème":         "caf-crme",
		"":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	names := []string{"Morning Glory Breakfast", "popular-food", "Juices & Smoothies"}
	for _, name := range names {
		once := Slugify(name)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestCategorySlugPrefersExplicit(t *testing.T) {
	c := models.MenuCategory{Name: "Hot Drinks", Slug: "drinks-hot"}
	assert.Equal(t, "drinks-hot", CategorySlug(c))

	c.Slug = "  "
	assert.Equal(t, "hot-drinks", CategorySlug(c))
}

func TestRefSlugMatchesCategorySlug(t *testing.T) {
	// The item's category reference and the category listing must derive
	// the same identifier or grouping silently loses items.
	cat := models.MenuCategory{Name: "Morning Glory Breakfast"}
	ref := models.CategoryRef{Name: "Morning Glory Breakfast"}
	assert.Equal(t, CategorySlug(cat), RefSlug(ref))
}
