package sanity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/masera/storefront/internal/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeFor(srv *httptest.Server) *Store {
	transformer := cms.NewTransformer(NewImageBuilder("proj1", "production"))
	return NewStore(testClient(srv), transformer)
}

func TestStoreItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[{
			"_id":"item-1",
			"name":"Burrata Avocado",
			"image":{"alt":"Burrata","asset":{"_id":"image-abc123-800x600-jpg","mimeType":"image/jpeg"}},
			"category":{"_id":"c1","name":"Breakfast","slug":{"current":"breakfast"}},
			"branchPricing":[{"branch":{"_id":"b1","slug":{"current":"smouha"}},"price":185,"isHighlighted":true}],
			"displayOrder":1,
			"isActive":true,
			"isPopular":true,
			"popularAt":"smouha"
		}]}`))
	}))
	defer srv.Close()

	items, err := storeFor(srv).Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Burrata Avocado", item.Name)
	assert.Equal(t, "breakfast", item.Category.Slug)
	assert.Equal(t, "smouha", item.PopularityScope)

	require.Len(t, item.BranchPricing, 1)
	assert.Equal(t, "smouha", item.BranchPricing[0].BranchSlug)
	assert.True(t, item.BranchPricing[0].IsHighlighted)
	assert.True(t, item.BranchPricing[0].Available())

	// Item photos run through the crop pipeline at card size.
	require.NotNil(t, item.Image)
	assert.Contains(t, item.Image.URL, "w=600")
	assert.Contains(t, item.Image.URL, "h=450")
}

func TestStoreBranchBySlugNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	branch, err := storeFor(srv).BranchBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, branch)
}

func TestStoreCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[
			{"_id":"c1","name":"Hot Drinks","type":"drink","displayOrder":3,"isActive":true},
			{"_id":"c2","name":"Breakfast","type":"food","displayOrder":1,"isActive":true}
		]}`))
	}))
	defer srv.Close()

	categories, err := storeFor(srv).Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "drink", categories[0].Kind)
	assert.Nil(t, categories[0].Image)
}

func TestStoreNavigation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{
			"items":[
				{"_key":"n1","label":"Menu","href":"/menu","children":[
					{"_key":"n1a","label":"Smouha","href":"/branch/smouha"}
				]}
			]
		}}`))
	}))
	defer srv.Close()

	nav, err := storeFor(srv).Navigation(context.Background())
	require.NoError(t, err)
	require.Len(t, nav.Items, 1)
	require.Len(t, nav.Items[0].Children, 1)
	assert.Equal(t, "Smouha", nav.Items[0].Children[0].Label)
}

func TestStorePageBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"about-us"`, r.URL.Query().Get("$slug"))
		w.Write([]byte(`{"result":{
			"_id":"pg1",
			"title":"About Us",
			"slug":{"current":"about-us"}
		}}`))
	}))
	defer srv.Close()

	page, err := storeFor(srv).PageBySlug(context.Background(), "about-us")
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "About Us", page.Title)
	assert.Equal(t, "en", page.Locale)
}

func TestStorePageBySlugNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	page, err := storeFor(srv).PageBySlug(context.Background(), "careers")
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestStoreHomepage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{
			"title":"Ma Sera | Menu",
			"sections":[
				{"_type":"hero","title":"Ma Sera"},
				{"_type":"mystery"}
			]
		}}`))
	}))
	defer srv.Close()

	homepage, err := storeFor(srv).Homepage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ma Sera | Menu", homepage.Meta.Title)
	require.Len(t, homepage.Sections, 1)
}
