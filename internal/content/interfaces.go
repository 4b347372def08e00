// Package content defines the contract with the externally-authored
// content store. Implementations fetch already-published documents; the
// core never writes content.
package content

import (
	"context"
	"time"

	"github.com/masera/storefront/internal/models"
)

// Store is the read-only content-store collaborator. List methods return
// active/published documents only, in their authored order (branches by
// name, categories and items by display order, policies by order).
type Store interface {
	Branches(ctx context.Context) ([]models.Branch, error)
	BranchBySlug(ctx context.Context, slug string) (*models.Branch, error)
	Categories(ctx context.Context) ([]models.MenuCategory, error)
	Items(ctx context.Context) ([]models.MenuItem, error)
	Homepage(ctx context.Context) (models.Homepage, error)
	SiteSettings(ctx context.Context) (models.SiteSettingsDTO, error)
	Navigation(ctx context.Context) (models.NavigationDTO, error)
	PageBySlug(ctx context.Context, slug string) (*models.PageDTO, error)
	Policies(ctx context.Context) ([]models.PolicyDTO, error)
	PolicyBySlug(ctx context.Context, slug string) (*models.PolicyDTO, error)
}

// Cache holds raw query results between requests. A miss is reported via
// the bool; errors are the implementation's problem to log, callers just
// fall through to the upstream fetch.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
