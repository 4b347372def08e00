// Package postgres implements the content.Store contract against a
// read-only Postgres mirror of the content store. Menu data is held
// relationally; page-level documents (homepage, site settings, policies)
// are mirrored as raw JSON bodies and run through the same transformer
// as the API-backed store.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/masera/storefront/internal/cms"
	"github.com/masera/storefront/internal/models"
)

type Store struct {
	pool        *pgxpool.Pool
	transformer *cms.Transformer
}

func NewStore(ctx context.Context, cfg models.DatabaseConfig, transformer *cms.Transformer) (*Store, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &Store{pool: pool, transformer: transformer}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Branches(ctx context.Context) ([]models.Branch, error) {
	query := `
        SELECT id, name, slug, address, phone, whatsapp,
               operating_hours, google_maps_url, is_active
        FROM branches
        WHERE is_active
        ORDER BY name
    `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Address, &b.Phone,
			&b.WhatsApp, &b.OperatingHours, &b.GoogleMapsURL, &b.IsActive); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (s *Store) BranchBySlug(ctx context.Context, slug string) (*models.Branch, error) {
	branches, err := s.Branches(ctx)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].Slug == slug {
			return &branches[i], nil
		}
	}
	return nil, nil
}

func (s *Store) Categories(ctx context.Context) ([]models.MenuCategory, error) {
	query := `
        SELECT id, name, slug, kind, description,
               image_url, image_alt, image_width, image_height,
               display_order, is_active
        FROM menu_categories
        WHERE is_active
        ORDER BY display_order
    `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.MenuCategory
	for rows.Next() {
		var c models.MenuCategory
		var img imageColumns
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Kind, &c.Description,
			&img.URL, &img.Alt, &img.Width, &img.Height,
			&c.DisplayOrder, &c.IsActive); err != nil {
			return nil, err
		}
		c.Image = img.toDTO()
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) Items(ctx context.Context) ([]models.MenuItem, error) {
	query := `
        SELECT i.id, i.name, i.description,
               i.image_url, i.image_alt, i.image_width, i.image_height,
               c.id, c.name, c.slug,
               i.dietary_tags, i.display_order, i.is_active,
               i.is_new, i.is_popular, i.popularity_scope
        FROM menu_items i
        JOIN menu_categories c ON c.id = i.category_id
        WHERE i.is_active
        ORDER BY i.display_order
    `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	index := make(map[string]int)
	for rows.Next() {
		var it models.MenuItem
		var img imageColumns
		if err := rows.Scan(&it.ID, &it.Name, &it.Description,
			&img.URL, &img.Alt, &img.Width, &img.Height,
			&it.Category.ID, &it.Category.Name, &it.Category.Slug,
			&it.DietaryTags, &it.DisplayOrder, &it.IsActive,
			&it.IsNew, &it.IsPopular, &it.PopularityScope); err != nil {
			return nil, err
		}
		it.Image = img.toDTO()
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachBranchPricing(ctx, items, index); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) attachBranchPricing(ctx context.Context, items []models.MenuItem, index map[string]int) error {
	query := `
        SELECT bp.item_id, bp.branch_id, b.slug, bp.price, bp.is_available, bp.is_highlighted
        FROM branch_prices bp
        JOIN branches b ON b.id = bp.branch_id
        WHERE b.is_active
    `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		var bp models.BranchPrice
		if err := rows.Scan(&itemID, &bp.BranchID, &bp.BranchSlug,
			&bp.Price, &bp.IsAvailable, &bp.IsHighlighted); err != nil {
			return err
		}
		if i, ok := index[itemID]; ok {
			items[i].BranchPricing = append(items[i].BranchPricing, bp)
		}
	}
	return rows.Err()
}

func (s *Store) Homepage(ctx context.Context) (models.Homepage, error) {
	raw, err := s.document(ctx, "homepage")
	if err != nil {
		return models.Homepage{}, err
	}
	return s.transformer.Homepage(raw), nil
}

func (s *Store) SiteSettings(ctx context.Context) (models.SiteSettingsDTO, error) {
	raw, err := s.document(ctx, "siteSettings")
	if err != nil {
		return models.SiteSettingsDTO{}, err
	}
	return s.transformer.SiteSettings(raw), nil
}

func (s *Store) Navigation(ctx context.Context) (models.NavigationDTO, error) {
	raw, err := s.document(ctx, "navigation")
	if err != nil {
		return models.NavigationDTO{}, err
	}
	return s.transformer.Navigation(raw), nil
}

func (s *Store) PageBySlug(ctx context.Context, slug string) (*models.PageDTO, error) {
	var body []byte
	row := s.pool.QueryRow(ctx,
		`SELECT body FROM documents WHERE doc_type = 'page' AND body->'slug'->>'current' = $1 LIMIT 1`, slug)
	if err := row.Scan(&body); err != nil {
		return nil, documentFetchErr("page", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding page document: %w", err)
	}
	page := s.transformer.Page(doc)
	return &page, nil
}

func (s *Store) Policies(ctx context.Context) ([]models.PolicyDTO, error) {
	rows, err := s.pool.Query(ctx, `SELECT body FROM documents WHERE doc_type = 'policy'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raw []map[string]interface{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decoding policy document: %w", err)
		}
		raw = append(raw, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	policies := s.transformer.Policies(raw)
	published := policies[:0]
	for _, p := range policies {
		if p.IsPublished {
			published = append(published, p)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Order < published[j].Order
	})
	return published, nil
}

func (s *Store) PolicyBySlug(ctx context.Context, slug string) (*models.PolicyDTO, error) {
	policies, err := s.Policies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range policies {
		if policies[i].Slug == slug {
			return &policies[i], nil
		}
	}
	return nil, nil
}

func (s *Store) document(ctx context.Context, docType string) (map[string]interface{}, error) {
	var body []byte
	row := s.pool.QueryRow(ctx, `SELECT body FROM documents WHERE doc_type = $1 LIMIT 1`, docType)
	if err := row.Scan(&body); err != nil {
		// A missing document is an empty state; anything else is a real
		// fetch failure and must reach the page layer.
		return nil, documentFetchErr(docType, err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s document: %w", docType, err)
	}
	return doc, nil
}

func documentFetchErr(docType string, err error) error {
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return fmt.Errorf("loading %s document: %w", docType, err)
}

type imageColumns struct {
	URL    *string
	Alt    *string
	Width  *int
	Height *int
}

func (c imageColumns) toDTO() *models.ImageDTO {
	if c.URL == nil || *c.URL == "" {
		return nil
	}
	img := &models.ImageDTO{URL: *c.URL}
	if c.Alt != nil {
		img.Alt = *c.Alt
	}
	if c.Width != nil {
		img.Width = *c.Width
	}
	if c.Height != nil {
		img.Height = *c.Height
	}
	return img
}
