package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masera/storefront/internal/models"
)

type stubStore struct {
	branches   []models.Branch
	categories []models.MenuCategory
	items      []models.MenuItem
	homepage   models.Homepage
	settings   models.SiteSettingsDTO
	navigation models.NavigationDTO
	pages      []models.PageDTO
	policies   []models.PolicyDTO
	err        error
}

func (s *stubStore) Branches(context.Context) ([]models.Branch, error) {
	return s.branches, s.err
}

func (s *stubStore) BranchBySlug(_ context.Context, slug string) (*models.Branch, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.branches {
		if s.branches[i].Slug == slug {
			return &s.branches[i], nil
		}
	}
	return nil, nil
}

func (s *stubStore) Categories(context.Context) ([]models.MenuCategory, error) {
	return s.categories, s.err
}

func (s *stubStore) Items(context.Context) ([]models.MenuItem, error) {
	return s.items, s.err
}

func (s *stubStore) Homepage(context.Context) (models.Homepage, error) {
	return s.homepage, s.err
}

func (s *stubStore) SiteSettings(context.Context) (models.SiteSettingsDTO, error) {
	return s.settings, s.err
}

func (s *stubStore) Navigation(context.Context) (models.NavigationDTO, error) {
	return s.navigation, s.err
}

func (s *stubStore) PageBySlug(_ context.Context, slug string) (*models.PageDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.pages {
		if s.pages[i].Slug == slug {
			return &s.pages[i], nil
		}
	}
	return nil, nil
}

func (s *stubStore) Policies(context.Context) ([]models.PolicyDTO, error) {
	return s.policies, s.err
}

func (s *stubStore) PolicyBySlug(_ context.Context, slug string) (*models.PolicyDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.policies {
		if s.policies[i].Slug == slug {
			return &s.policies[i], nil
		}
	}
	return nil, nil
}

type recordingSink struct {
	pages  []string
	labels []map[string]string
}

func (r *recordingSink) PageView(_ context.Context, page string, labels map[string]string) {
	r.pages = append(r.pages, page)
	r.labels = append(r.labels, labels)
}

func fixtureStore() *stubStore {
	img := &models.ImageDTO{URL: "https://cdn.example.com/burrata.jpg", Width: 600, Height: 450}
	return &stubStore{
		branches: []models.Branch{
			{ID: "b1", Name: "Smouha", Slug: "smouha", Address: "14 Victor Emanuel Sq", IsActive: true},
			{ID: "b2", Name: "Fouad Street", Slug: "fouad-street", IsActive: true},
		},
		categories: []models.MenuCategory{
			{ID: "c1", Name: "Breakfast", Kind: models.CategoryKindFood, DisplayOrder: 1, IsActive: true},
			{ID: "c2", Name: "Hot Drinks", Kind: models.CategoryKindDrink, DisplayOrder: 2, IsActive: true},
		},
		items: []models.MenuItem{
			{
				ID: "i1", Name: "Burrata Avocado", Image: img,
				Category:  models.CategoryRef{ID: "c1", Name: "Breakfast"},
				IsActive:  true, IsPopular: true,
				PopularityScope: models.PopularityScopeAll,
				BranchPricing: []models.BranchPrice{
					{BranchID: "b1", BranchSlug: "smouha", Price: 185},
				},
			},
			{
				ID: "i2", Name: "Flat White",
				Category: models.CategoryRef{ID: "c2", Name: "Hot Drinks"},
				IsActive: true,
			},
		},
		settings: models.SiteSettingsDTO{
			SiteName: "Ma Sera",
			SEO:      models.SEOMetadata{Title: "Ma Sera", Description: "Restaurant and cafe"},
		},
		navigation: models.NavigationDTO{
			Items: []models.NavItemDTO{
				{ID: "n1", Label: "Menu", Href: "/menu", Children: []models.NavItemDTO{
					{ID: "n1a", Label: "Smouha", Href: "/branch/smouha"},
				}},
			},
		},
		pages: []models.PageDTO{
			{ID: "pg1", Title: "About Us", Slug: "about-us", Locale: "en"},
		},
		policies: []models.PolicyDTO{
			{ID: "p1", Title: "Refund Policy", Slug: "refund-policy", IsPublished: true},
		},
	}
}

func testServer(store *stubStore, sink AnalyticsSink) *Server {
	return New(&models.Config{CORSOrigins: "*"}, store, sink)
}

func doJSON(t *testing.T, s *Server, path string, out interface{}) *http.Response {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	var body map[string]string
	resp := doJSON(t, s, "/healthz", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestMenuHasNoPricesWithoutBranch(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	var body menuResponse
	resp := doJSON(t, s, "/api/menu", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotEmpty(t, body.Sections)
	for _, group := range body.Sections {
		for _, item := range group.Items {
			assert.Nil(t, item.Price, "item %s priced without branch context", item.Name)
		}
	}

	// Popular food leads the flattened layout.
	assert.Equal(t, "popular-food", body.Sections[0].Category.Slug)
}

func TestMenuEmptyStoreDegradesToEmptyArrays(t *testing.T) {
	s := testServer(&stubStore{}, nil)

	var body menuResponse
	resp := doJSON(t, s, "/api/menu", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body.Sections)
	assert.Empty(t, body.Sections)
}

func TestBranchMenu(t *testing.T) {
	sink := &recordingSink{}
	s := testServer(fixtureStore(), sink)

	var body branchMenuResponse
	resp := doJSON(t, s, "/api/branches/smouha/menu", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Smouha", body.Branch.Name)
	assert.Len(t, body.Branches, 2)

	var burrata *models.DisplayItem
	for _, group := range body.Menu.Groups {
		for i := range group.Items {
			if group.Items[i].Name == "Burrata Avocado" {
				burrata = &group.Items[i]
			}
		}
	}
	require.NotNil(t, burrata)
	require.NotNil(t, burrata.Price)
	assert.Equal(t, 185.0, *burrata.Price)

	// Site defaults stand except where the branch page overrides them.
	assert.Equal(t, "Smouha | Ma Sera", body.Meta.Title)

	require.Len(t, sink.pages, 1)
	assert.Equal(t, "branch-menu", sink.pages[0])
	assert.Equal(t, "smouha", sink.labels[0]["branch"])
}

func TestBranchMenuNotFound(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	var body map[string]string
	resp := doJSON(t, s, "/api/branches/cairo/menu", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "branch not found", body["error"])
}

func TestStoreFailureIsBadGateway(t *testing.T) {
	s := testServer(&stubStore{err: errors.New("connection refused")}, nil)

	resp := doJSON(t, s, "/api/menu", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHomepageMetaMerge(t *testing.T) {
	store := fixtureStore()
	store.homepage = models.Homepage{
		Meta: models.HomepageMeta{Title: "Ma Sera | Menu"},
	}
	s := testServer(store, nil)

	var body homepageResponse
	resp := doJSON(t, s, "/api/homepage", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Ma Sera | Menu", body.Meta.Title)
	assert.Equal(t, "Restaurant and cafe", body.Meta.Description)
}

func TestNavigationPreservesNesting(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	var body models.NavigationDTO
	resp := doJSON(t, s, "/api/navigation", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Items, 1)
	require.Len(t, body.Items[0].Children, 1)
	assert.Equal(t, "/branch/smouha", body.Items[0].Children[0].Href)
}

func TestNavigationEmptyStore(t *testing.T) {
	s := testServer(&stubStore{}, nil)

	var body models.NavigationDTO
	resp := doJSON(t, s, "/api/navigation", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body.Items)
	assert.Empty(t, body.Items)
}

func TestPageBySlug(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	var body models.PageDTO
	resp := doJSON(t, s, "/api/pages/about-us", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "About Us", body.Title)
}

func TestPageNotFound(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	resp := doJSON(t, s, "/api/pages/careers", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPolicyNotFound(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	resp := doJSON(t, s, "/api/policies/shipping", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPolicyBySlug(t *testing.T) {
	s := testServer(fixtureStore(), nil)

	var body models.PolicyDTO
	resp := doJSON(t, s, "/api/policies/refund-policy", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Refund Policy", body.Title)
}
