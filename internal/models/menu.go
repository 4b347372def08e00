package models

const (
	CategoryKindFood  = "food"
	CategoryKindDrink = "drink"
)

// PopularityScopeAll marks an item as popular at every branch.
const PopularityScopeAll = "all"

type MenuCategory struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug,omitempty"` // explicit slug; derived from Name when empty
	Kind         string    `json:"kind,omitempty"` // "food" or "drink"; empty is treated as food
	Description  string    `json:"description,omitempty"`
	Image        *ImageDTO `json:"image,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}

// CategoryRef is the pre-joined category reference carried on a menu item.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// BranchPrice overrides price and availability for one branch. A true
// IsHighlighted forces the item to render as popular at that branch only.
type BranchPrice struct {
	BranchID      string  `json:"branch_id"`
	BranchSlug    string  `json:"branch_slug"`
	Price         float64 `json:"price"`
	IsAvailable   *bool   `json:"is_available,omitempty"` // nil means available
	IsHighlighted bool    `json:"is_highlighted,omitempty"`
}

// Available reports the effective availability flag, defaulting to true.
func (bp BranchPrice) Available() bool {
	return bp.IsAvailable == nil || *bp.IsAvailable
}

type MenuItem struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Image           *ImageDTO     `json:"image,omitempty"`
	Category        CategoryRef   `json:"category"`
	BranchPricing   []BranchPrice `json:"branch_pricing,omitempty"`
	DietaryTags     []string      `json:"dietary_tags,omitempty"`
	DisplayOrder    int           `json:"display_order"`
	IsActive        bool          `json:"is_active"`
	IsNew           bool          `json:"is_new,omitempty"`
	IsPopular       bool          `json:"is_popular,omitempty"`
	PopularityScope string        `json:"popularity_scope,omitempty"` // "all" or a branch slug; empty means all
}
