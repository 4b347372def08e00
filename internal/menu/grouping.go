package menu

import (
	"sort"

	"github.com/masera/storefront/internal/models"
)

// Synthesized "popular" pseudo-categories. Negative display orders keep
// them ahead of every authored category when the menu is flattened.
var (
	popularFoodView = models.CategoryView{
		ID:           "popular-food",
		Name:         "Most Popular",
		Slug:         "popular-food",
		Description:  "Our guests' favorite dishes",
		Kind:         models.CategoryKindFood,
		DisplayOrder: -2,
	}
	popularDrinksView = models.CategoryView{
		ID:           "popular-drinks",
		Name:         "Top Drinks",
		Slug:         "popular-drinks",
		Description:  "Most loved refreshments",
		Kind:         models.CategoryKindDrink,
		DisplayOrder: -1,
	}
)

// Menu is the composed, render-ready menu. Groups holds the standard
// category groups in display order; PopularFood and PopularDrinks are the
// synthesized partitions (nil when empty). Page layouts differ on whether
// popular items render standalone, in-category, or both, so the
// partitions stay exposed alongside the standard groups.
type Menu struct {
	Groups        []models.CategoryGroup `json:"groups"`
	PopularFood   *models.CategoryGroup  `json:"popular_food,omitempty"`
	PopularDrinks *models.CategoryGroup  `json:"popular_drinks,omitempty"`
}

// Compose resolves every item against the optional branch context and
// partitions the result into ordered category groups. Empty categories
// are dropped; a category missing a kind counts as food.
func Compose(items []models.MenuItem, categories []models.MenuCategory, branchSlug string) Menu {
	resolved := ResolveItems(items, branchSlug)

	active := make([]models.MenuCategory, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DisplayOrder < active[j].DisplayOrder
	})

	drinkSlugs := make(map[string]bool)
	for _, c := range active {
		if c.Kind == models.CategoryKindDrink {
			drinkSlugs[CategorySlug(c)] = true
		}
	}

	byCategory := make(map[string][]models.DisplayItem)
	for _, it := range resolved {
		if !it.IsAvailable {
			continue
		}
		byCategory[it.CategorySlug] = append(byCategory[it.CategorySlug], it)
	}

	groups := make([]models.CategoryGroup, 0, len(active))
	seen := make(map[string]bool)
	for _, c := range active {
		slug := CategorySlug(c)
		// Two categories resolving to the same slug would render the same
		// items twice; the first one in display order wins.
		if seen[slug] {
			continue
		}
		seen[slug] = true

		matched := byCategory[slug]
		if len(matched) == 0 {
			continue
		}
		kind := c.Kind
		if kind == "" {
			kind = models.CategoryKindFood
		}
		groups = append(groups, models.CategoryGroup{
			Category: models.CategoryView{
				ID:           c.ID,
				Name:         c.Name,
				Slug:         slug,
				Description:  c.Description,
				Image:        c.Image,
				Kind:         kind,
				DisplayOrder: c.DisplayOrder,
			},
			Items: matched,
		})
	}

	var popularFood, popularDrinks []models.DisplayItem
	for _, it := range resolved {
		if !it.IsPopular || !it.IsAvailable {
			continue
		}
		// Popular rails are image-led; items without an image stay in
		// their standard category only.
		if it.Image == nil || it.Image.URL == "" {
			continue
		}
		if drinkSlugs[it.CategorySlug] {
			popularDrinks = append(popularDrinks, it)
		} else {
			popularFood = append(popularFood, it)
		}
	}

	m := Menu{Groups: groups}
	if len(popularFood) > 0 {
		m.PopularFood = &models.CategoryGroup{Category: popularFoodView, Items: popularFood}
	}
	if len(popularDrinks) > 0 {
		m.PopularDrinks = &models.CategoryGroup{Category: popularDrinksView, Items: popularDrinks}
	}
	return m
}

// Ordered flattens the menu for layouts that render popular groups as
// standalone sections: each popular group leads its food/drink partition,
// followed by that partition's standard groups.
func (m Menu) Ordered() []models.CategoryGroup {
	var food, drink []models.CategoryGroup
	for _, g := range m.Groups {
		if g.Category.Kind == models.CategoryKindDrink {
			drink = append(drink, g)
		} else {
			food = append(food, g)
		}
	}

	out := make([]models.CategoryGroup, 0, len(m.Groups)+2)
	if m.PopularFood != nil {
		out = append(out, *m.PopularFood)
	}
	out = append(out, food...)
	if m.PopularDrinks != nil {
		out = append(out, *m.PopularDrinks)
	}
	out = append(out, drink...)
	return out
}
