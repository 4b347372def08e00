package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/masera/storefront/internal/menu"
	"github.com/masera/storefront/internal/models"
)

var fake = faker.New()

type ContentFactory struct{}

var branchNames = []string{
	"Smouha", "Fouad Street", "San Stefano", "Gleem", "Kafr Abdo", "Miami",
}

var foodCategories = []string{
	"Breakfast", "Salads", "Pasta", "Pizza", "Sandwiches", "Main Courses", "Desserts",
}

var drinkCategories = []string{
	"Hot Drinks", "Cold Drinks", "Fresh Juices", "Smoothies",
}

var dietaryTags = []string{"vegetarian", "vegan", "gluten-free", "spicy", "nuts"}

func (cf *ContentFactory) CreateBranches(count int) []models.Branch {
	if count > len(branchNames) {
		count = len(branchNames)
	}
	branches := make([]models.Branch, 0, count)
	for i := 0; i < count; i++ {
		name := branchNames[i]
		branches = append(branches, models.Branch{
			ID:             cuid.New(),
			Name:           name,
			Slug:           menu.Slugify(name),
			Address:        fake.Address().StreetAddress(),
			Phone:          fake.Phone().Number(),
			WhatsApp:       fake.Phone().Number(),
			OperatingHours: "9:00 AM - 1:00 AM",
			GoogleMapsURL:  "https://maps.google.com/?q=" + menu.Slugify(name),
			IsActive:       true,
		})
	}
	return branches
}

func (cf *ContentFactory) CreateCategories(count int) []models.MenuCategory {
	names := append(append([]string{}, foodCategories...), drinkCategories...)
	if count > len(names) {
		count = len(names)
	}
	categories := make([]models.MenuCategory, 0, count)
	for i := 0; i < count; i++ {
		name := names[i]
		kind := models.CategoryKindFood
		if i >= len(foodCategories) {
			kind = models.CategoryKindDrink
		}
		categories = append(categories, models.MenuCategory{
			ID:           cuid.New(),
			Name:         name,
			Slug:         menu.Slugify(name),
			Kind:         kind,
			Description:  fake.Lorem().Sentence(8),
			DisplayOrder: i + 1,
			IsActive:     true,
		})
	}
	return categories
}

func (cf *ContentFactory) CreateItem(category models.MenuCategory, branches []models.Branch) models.MenuItem {
	item := models.MenuItem{
		ID:          cuid.New(),
		Name:        generateItemName(category),
		Description: fake.Lorem().Sentence(10),
		Category: models.CategoryRef{
			ID:   category.ID,
			Name: category.Name,
			Slug: category.Slug,
		},
		DietaryTags:  randomTags(),
		DisplayOrder: rand.Intn(100),
		IsActive:     true,
		IsNew:        rand.Float64() < 0.1,
	}

	if rand.Float64() < 0.2 {
		item.IsPopular = true
		item.PopularityScope = models.PopularityScopeAll
		if len(branches) > 0 && rand.Float64() < 0.4 {
			item.PopularityScope = branches[rand.Intn(len(branches))].Slug
		}
	}

	base := fake.Float64(0, 60, 450)
	for _, b := range branches {
		bp := models.BranchPrice{
			BranchID:   b.ID,
			BranchSlug: b.Slug,
			// Branches price independently within a narrow band.
			Price:         base + fake.Float64(0, 0, 30),
			IsHighlighted: rand.Float64() < 0.05,
		}
		if rand.Float64() < 0.1 {
			unavailable := false
			bp.IsAvailable = &unavailable
		}
		item.BranchPricing = append(item.BranchPricing, bp)
	}
	return item
}

func (cf *ContentFactory) CreateItems(count int, categories []models.MenuCategory, branches []models.Branch) []models.MenuItem {
	items := make([]models.MenuItem, 0, count)
	for i := 0; i < count; i++ {
		category := categories[i%len(categories)]
		items = append(items, cf.CreateItem(category, branches))
	}
	return items
}

func (cf *ContentFactory) CreateHomepage() models.Homepage {
	features := make([]models.FeatureItem, 0, 3)
	for i := 0; i < 3; i++ {
		features = append(features, models.FeatureItem{
			Title:       fake.Lorem().Word(),
			Description: fake.Lorem().Sentence(6),
			Icon:        "star",
		})
	}
	return models.Homepage{
		Meta: models.HomepageMeta{
			Title:       "Ma Sera | Restaurant & Cafe",
			Description: fake.Lorem().Sentence(12),
		},
		Sections: []models.Section{
			models.HeroSection{
				Key:      cuid.Slug(),
				Title:    "Ma Sera",
				Subtitle: fake.Lorem().Sentence(6),
				CTAText:  "View Menu",
				CTALink:  "/menu",
			},
			models.FeaturesSection{
				Key:   cuid.Slug(),
				Title: "Why Ma Sera",
				Items: features,
			},
		},
	}
}

func generateItemName(category models.MenuCategory) string {
	names := map[string][]string{
		"Breakfast":    {"Burrata Avocado Toast", "Shakshuka", "Eggs Benedict", "Granola Bowl"},
		"Salads":       {"Caesar Salad", "Quinoa Salad", "Halloumi Salad", "Greek Salad"},
		"Pasta":        {"Truffle Alfredo", "Penne Arrabbiata", "Seafood Linguine", "Pesto Fusilli"},
		"Pizza":        {"Margherita", "Pepperoni", "Quattro Formaggi", "Funghi"},
		"Sandwiches":   {"Chicken Pesto Panini", "Club Sandwich", "Halloumi Wrap", "Steak Sandwich"},
		"Main Courses": {"Grilled Salmon", "Ribeye Steak", "Chicken Milanese", "Mixed Grill"},
		"Desserts":     {"Tiramisu", "Molten Cake", "Cheesecake", "Um Ali"},
		"Hot Drinks":   {"Flat White", "Turkish Coffee", "Spanish Latte", "Hot Chocolate"},
		"Cold Drinks":  {"Iced Spanish Latte", "Cold Brew", "Iced Tea", "Sparkling Lemonade"},
		"Fresh Juices": {"Orange Juice", "Mango Juice", "Watermelon Juice", "Carrot Juice"},
		"Smoothies":    {"Berry Smoothie", "Tropical Smoothie", "Green Smoothie", "Banana Date Smoothie"},
	}
	if options, ok := names[category.Name]; ok {
		return options[rand.Intn(len(options))]
	}
	return fake.Lorem().Word()
}

func randomTags() []string {
	if rand.Float64() < 0.5 {
		return nil
	}
	count := rand.Intn(2) + 1
	tags := make([]string, 0, count)
	for i := 0; i < count; i++ {
		tags = append(tags, dietaryTags[rand.Intn(len(dietaryTags))])
	}
	return tags
}
