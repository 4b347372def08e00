package menu

import (
	"strings"

	"github.com/masera/storefront/internal/models"
)

// Slugify derives a URL-safe identifier from a display name: lower-cased,
// whitespace runs collapsed to a single hyphen, everything outside
// [a-z0-9-] stripped. Applying it to an already-slugified string is a
// no-op, so category listing and item category references can both derive
// independently and still match.
func Slugify(name string) string {
	joined := strings.Join(strings.Fields(strings.ToLower(name)), "-")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CategorySlug resolves a category's identifier: the authored slug when
// present, otherwise derived from the name.
func CategorySlug(c models.MenuCategory) string {
	if s := strings.TrimSpace(c.Slug); s != "" {
		return s
	}
	return Slugify(c.Name)
}

// RefSlug resolves the slug of an item's category reference with the same
// fallback rule as CategorySlug.
func RefSlug(ref models.CategoryRef) string {
	if s := strings.TrimSpace(ref.Slug); s != "" {
		return s
	}
	return Slugify(ref.Name)
}
