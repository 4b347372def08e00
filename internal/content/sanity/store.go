package sanity

import (
	"context"
	"fmt"

	"github.com/masera/storefront/internal/cms"
	"github.com/masera/storefront/internal/models"
)

// Menu item photos render at a fixed card size, so the raster pipeline
// crops them; category and section images keep their authored framing.
const (
	itemImageWidth  = 600
	itemImageHeight = 450
)

const branchFields = `
  _id,
  name,
  slug,
  address,
  phone,
  whatsapp,
  operatingHours,
  googleMapsUrl,
  isActive
`

const (
	branchesQuery = `*[_type == "branch" && isActive == true] | order(name asc) {` + branchFields + `}`

	branchBySlugQuery = `*[_type == "branch" && slug.current == $slug && isActive == true][0] {` + branchFields + `}`

	categoriesQuery = `*[_type == "menuCategory" && isActive == true] | order(displayOrder asc) {
  _id,
  name,
  slug,
  type,
  description,
  image { asset->, alt },
  displayOrder,
  isActive
}`

	itemsQuery = `*[_type == "menuItem" && isActive == true] | order(displayOrder asc) {
  _id,
  name,
  description,
  image { asset->, alt },
  category->{ _id, name, slug },
  branchPricing[]{
    branch->{ _id, slug },
    price,
    isAvailable,
    isHighlighted
  },
  dietaryTags,
  displayOrder,
  isActive,
  isNew,
  isPopular,
  popularAt
}`

	homepageQuery = `*[_id == "homepage"][0] {
  title,
  description,
  sections[] {
    ...,
    _type == 'hero' => { image { asset->, alt } }
  }
}`

	siteSettingsQuery = `*[_type == "siteSettings"][0] {
  siteName,
  siteUrl,
  headerLogo { asset->, alt },
  footerLogo { asset->, alt },
  favicon { asset->, alt },
  footerDescription,
  address,
  businessHours,
  googleMapsUrl,
  quickLinks,
  socialLinks,
  announcementBar,
  seo { metaTitle, metaDescription, keywords, ogImage { asset->, alt } },
  defaultLocale
}`

	navigationQuery = `*[_type == "navigation"][0] {
  items[] {
    _key,
    label,
    href,
    target,
    children[] {
      _key,
      label,
      href,
      target
    }
  }
}`

	pageBySlugQuery = `*[_type == "page" && slug.current == $slug][0] {
  _id,
  _createdAt,
  _updatedAt,
  title,
  slug,
  description,
  content,
  seo,
  publishedAt,
  locale
}`

	policiesQuery = `*[_type == "policy" && isPublished == true] | order(order asc) {
  _id,
  title,
  slug,
  icon,
  shortDescription,
  content,
  lastUpdated,
  isPublished,
  order
}`

	policyBySlugQuery = `*[_type == "policy" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  icon,
  shortDescription,
  content,
  lastUpdated,
  isPublished,
  order
}`
)

type rawSlug struct {
	Current string `json:"current"`
}

type rawBranch struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Slug           rawSlug `json:"slug"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone"`
	WhatsApp       string  `json:"whatsapp"`
	OperatingHours string  `json:"operatingHours"`
	GoogleMapsURL  string  `json:"googleMapsUrl"`
	IsActive       bool    `json:"isActive"`
}

type rawCategory struct {
	ID           string      `json:"_id"`
	Name         string      `json:"name"`
	Slug         rawSlug     `json:"slug"`
	Type         string      `json:"type"`
	Description  string      `json:"description"`
	Image        interface{} `json:"image"`
	DisplayOrder int         `json:"displayOrder"`
	IsActive     bool        `json:"isActive"`
}

type rawBranchPrice struct {
	Branch struct {
		ID   string  `json:"_id"`
		Slug rawSlug `json:"slug"`
	} `json:"branch"`
	Price         float64 `json:"price"`
	IsAvailable   *bool   `json:"isAvailable"`
	IsHighlighted bool    `json:"isHighlighted"`
}

type rawItem struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       interface{} `json:"image"`
	Category    struct {
		ID   string  `json:"_id"`
		Name string  `json:"name"`
		Slug rawSlug `json:"slug"`
	} `json:"category"`
	BranchPricing []rawBranchPrice `json:"branchPricing"`
	DietaryTags   []string         `json:"dietaryTags"`
	DisplayOrder  int              `json:"displayOrder"`
	IsActive      bool             `json:"isActive"`
	IsNew         bool             `json:"isNew"`
	IsPopular     bool             `json:"isPopular"`
	PopularAt     string           `json:"popularAt"`
}

// Store fetches published documents from Sanity and hands their raw
// shapes to the transformer.
type Store struct {
	client      *Client
	transformer *cms.Transformer
}

func NewStore(client *Client, transformer *cms.Transformer) *Store {
	return &Store{client: client, transformer: transformer}
}

func (s *Store) Branches(ctx context.Context) ([]models.Branch, error) {
	var raw []rawBranch
	if err := s.client.Fetch(ctx, branchesQuery, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetching branches: %w", err)
	}
	branches := make([]models.Branch, 0, len(raw))
	for _, b := range raw {
		branches = append(branches, b.toModel())
	}
	return branches, nil
}

func (s *Store) BranchBySlug(ctx context.Context, slug string) (*models.Branch, error) {
	var raw *rawBranch
	if err := s.client.Fetch(ctx, branchBySlugQuery, map[string]interface{}{"slug": slug}, &raw); err != nil {
		return nil, fmt.Errorf("fetching branch %s: %w", slug, err)
	}
	if raw == nil {
		return nil, nil
	}
	branch := raw.toModel()
	return &branch, nil
}

func (s *Store) Categories(ctx context.Context) ([]models.MenuCategory, error) {
	var raw []rawCategory
	if err := s.client.Fetch(ctx, categoriesQuery, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	categories := make([]models.MenuCategory, 0, len(raw))
	for _, c := range raw {
		categories = append(categories, models.MenuCategory{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug.Current,
			Kind:         c.Type,
			Description:  c.Description,
			Image:        s.transformer.Image(c.Image),
			DisplayOrder: c.DisplayOrder,
			IsActive:     c.IsActive,
		})
	}
	return categories, nil
}

func (s *Store) Items(ctx context.Context) ([]models.MenuItem, error) {
	var raw []rawItem
	if err := s.client.Fetch(ctx, itemsQuery, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetching menu items: %w", err)
	}
	items := make([]models.MenuItem, 0, len(raw))
	for _, it := range raw {
		pricing := make([]models.BranchPrice, 0, len(it.BranchPricing))
		for _, bp := range it.BranchPricing {
			pricing = append(pricing, models.BranchPrice{
				BranchID:      bp.Branch.ID,
				BranchSlug:    bp.Branch.Slug.Current,
				Price:         bp.Price,
				IsAvailable:   bp.IsAvailable,
				IsHighlighted: bp.IsHighlighted,
			})
		}
		items = append(items, models.MenuItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Image:       s.transformer.ImageSized(it.Image, itemImageWidth, itemImageHeight),
			Category: models.CategoryRef{
				ID:   it.Category.ID,
				Name: it.Category.Name,
				Slug: it.Category.Slug.Current,
			},
			BranchPricing:   pricing,
			DietaryTags:     it.DietaryTags,
			DisplayOrder:    it.DisplayOrder,
			IsActive:        it.IsActive,
			IsNew:           it.IsNew,
			IsPopular:       it.IsPopular,
			PopularityScope: it.PopularAt,
		})
	}
	return items, nil
}

func (s *Store) Homepage(ctx context.Context) (models.Homepage, error) {
	var raw map[string]interface{}
	if err := s.client.Fetch(ctx, homepageQuery, nil, &raw); err != nil {
		return models.Homepage{}, fmt.Errorf("fetching homepage: %w", err)
	}
	return s.transformer.Homepage(raw), nil
}

func (s *Store) SiteSettings(ctx context.Context) (models.SiteSettingsDTO, error) {
	var raw map[string]interface{}
	if err := s.client.Fetch(ctx, siteSettingsQuery, nil, &raw); err != nil {
		return models.SiteSettingsDTO{}, fmt.Errorf("fetching site settings: %w", err)
	}
	return s.transformer.SiteSettings(raw), nil
}

func (s *Store) Navigation(ctx context.Context) (models.NavigationDTO, error) {
	var raw map[string]interface{}
	if err := s.client.Fetch(ctx, navigationQuery, nil, &raw); err != nil {
		return models.NavigationDTO{}, fmt.Errorf("fetching navigation: %w", err)
	}
	return s.transformer.Navigation(raw), nil
}

func (s *Store) PageBySlug(ctx context.Context, slug string) (*models.PageDTO, error) {
	var raw map[string]interface{}
	if err := s.client.Fetch(ctx, pageBySlugQuery, map[string]interface{}{"slug": slug}, &raw); err != nil {
		return nil, fmt.Errorf("fetching page %s: %w", slug, err)
	}
	if raw == nil {
		return nil, nil
	}
	page := s.transformer.Page(raw)
	return &page, nil
}

func (s *Store) Policies(ctx context.Context) ([]models.PolicyDTO, error) {
	var raw []map[string]interface{}
	if err := s.client.Fetch(ctx, policiesQuery, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetching policies: %w", err)
	}
	return s.transformer.Policies(raw), nil
}

func (s *Store) PolicyBySlug(ctx context.Context, slug string) (*models.PolicyDTO, error) {
	var raw map[string]interface{}
	if err := s.client.Fetch(ctx, policyBySlugQuery, map[string]interface{}{"slug": slug}, &raw); err != nil {
		return nil, fmt.Errorf("fetching policy %s: %w", slug, err)
	}
	if raw == nil {
		return nil, nil
	}
	policy := s.transformer.Policy(raw)
	return &policy, nil
}

func (b rawBranch) toModel() models.Branch {
	return models.Branch{
		ID:             b.ID,
		Name:           b.Name,
		Slug:           b.Slug.Current,
		Address:        b.Address,
		Phone:          b.Phone,
		WhatsApp:       b.WhatsApp,
		OperatingHours: b.OperatingHours,
		GoogleMapsURL:  b.GoogleMapsURL,
		IsActive:       b.IsActive,
	}
}
