package httphandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogMux() *http.ServeMux {
	s := service.New(catalog.NewRepository(), cart.NewStore(), nil, nil)
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, s, s)
	return mux
}

func doGET(t *testing.T, mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListProducts(t *testing.T) {

	t.Run("PriceAscQuery", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux,
			"/v1/products?minPrice=0&maxPrice=1000&rating=0&sort=price-asc")
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		require.Len(t, ps, 6)
		assert.Equal(t, "Yoga Mat Premium", ps[0].Name)
		assert.Equal(t, "Smartphone Pro X", ps[5].Name)
	})

	t.Run("RepeatableCategoryParams", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux,
			"/v1/products?category=Fashion&category=Sports+%26+Outdoors")
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		assert.Len(t, ps, 2)
	})

	t.Run("MalformedNumericParam", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/products?minPrice=cheap")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownSortFallsBackToPopularity", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/products?sort=alphabetical")
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		require.Len(t, ps, 6)
		// top popularity score is the yoga mat: 4.9*300
		assert.Equal(t, "6", ps[0].ID)
	})

	t.Run("NoMatchesIsEmptyList", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/products?q=zeppelin")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestGetProduct(t *testing.T) {

	t.Run("Found", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/products/2")
		require.Equal(t, http.StatusOK, rec.Code)

		var p httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
		assert.Equal(t, "AudioPhonic", p.Brand)
	})

	t.Run("NotFound", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/products/42")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetProductReviews(t *testing.T) {

	t.Run("WithReviews", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/products/1/reviews")
		require.Equal(t, http.StatusOK, rec.Code)

		var rs []httphandler.Review
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&rs))
		assert.Len(t, rs, 2)
	})

	t.Run("NoReviewsIsEmptyList", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/products/4/reviews")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestGetCatalogFacets(t *testing.T) {
	mux := newCatalogMux()

	rec := doGET(t, mux, "/v1/catalog/facets")
	require.Equal(t, http.StatusOK, rec.Code)

	var facets httphandler.CatalogFacets
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&facets))
	assert.Equal(t, []string{
		"Electronics", "Home Appliances", "Fashion", "Sports & Outdoors",
	}, facets.Categories)
	assert.Contains(t, facets.Brands, "ZenFlow")
	assert.Len(t, facets.Brands, 6)
	assert.InDelta(t, 799.99, facets.MaxPrice, 1e-9)
}

func TestHighlightRoutes(t *testing.T) {

	t.Run("Deals", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/deals")
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		assert.Len(t, ps, 4)
	})

	t.Run("BestOfCategory", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/categories/Electronics/top")
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		require.Len(t, ps, 2)
		assert.Equal(t, "2", ps[0].ID)
	})

	t.Run("CategoryDeals", func(t *testing.T) {
		mux := newCatalogMux()

		rec := doGET(t, mux, "/v1/categories/Fashion/deals")
		require.Equal(t, http.StatusOK, rec.Code)

		var ps []httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&ps))
		require.Len(t, ps, 1)
		assert.Equal(t, "5", ps[0].ID)
	})
}
