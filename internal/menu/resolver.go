package menu

import (
	"github.com/masera/storefront/internal/models"
)

// ResolveItem projects a MenuItem onto a DisplayItem for an optional
// branch context. An empty branchSlug means the branch-agnostic (social)
// menu: no price is ever attached and availability defaults to true.
//
// Resolution is a pure function of its inputs and safe to call
// concurrently for many items.
func ResolveItem(item models.MenuItem, branchSlug string) models.DisplayItem {
	popular := item.IsPopular
	if popular {
		scope := item.PopularityScope
		if scope == "" {
			scope = models.PopularityScopeAll
		}
		if scope != models.PopularityScopeAll && scope != branchSlug {
			popular = false
		}
	}

	var price *float64
	available := true
	if branchSlug != "" {
		for _, bp := range item.BranchPricing {
			if bp.BranchSlug != branchSlug {
				continue
			}
			p := bp.Price
			price = &p
			available = bp.Available()
			if bp.IsHighlighted {
				// A branch-local highlight always wins over scope rules.
				popular = true
			}
			break
		}
	}

	return models.DisplayItem{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Image:        item.Image,
		CategorySlug: RefSlug(item.Category),
		Price:        price,
		DietaryTags:  item.DietaryTags,
		IsNew:        item.IsNew,
		IsPopular:    popular,
		IsAvailable:  available,
	}
}

// ResolveItems resolves every item against the given branch context,
// preserving input order.
func ResolveItems(items []models.MenuItem, branchSlug string) []models.DisplayItem {
	out := make([]models.DisplayItem, 0, len(items))
	for _, item := range items {
		out = append(out, ResolveItem(item, branchSlug))
	}
	return out
}
