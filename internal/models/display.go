package models

// DisplayItem is the render-ready projection of a MenuItem against an
// optional branch context. Built fresh per request, never persisted.
type DisplayItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Image        *ImageDTO `json:"image,omitempty"`
	CategorySlug string    `json:"category_slug"`
	Price        *float64  `json:"price,omitempty"` // nil when no branch context or no override
	DietaryTags  []string  `json:"dietary_tags,omitempty"`
	IsNew        bool      `json:"is_new,omitempty"`
	IsPopular    bool      `json:"is_popular,omitempty"`
	IsAvailable  bool      `json:"is_available"`
}

// CategoryView is the category as rendered, covering both authored
// categories and the synthesized "popular" pseudo-categories.
type CategoryView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Image        *ImageDTO `json:"image,omitempty"`
	Kind         string    `json:"kind"`
	DisplayOrder int       `json:"display_order"`
}

type CategoryGroup struct {
	Category CategoryView  `json:"category"`
	Items    []DisplayItem `json:"items"`
}
