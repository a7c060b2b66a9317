package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/products?category=&brand=&minPrice=&maxPrice=&rating=&q=&sort=
// GET /v1/products/{id}
// GET /v1/products/{id}/reviews
// GET /v1/catalog/facets
// GET /v1/deals
// GET /v1/categories/{category}/top
// GET /v1/categories/{category}/deals

type CatalogHandler struct {
	products   port.ProductsReader
	highlights port.HighlightsReader
}

func RegisterCatalog(
	mux *http.ServeMux, pr port.ProductsReader, hr port.HighlightsReader,
) {
	h := CatalogHandler{pr, hr}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/products/{id}/reviews", h.GetProductReviews)
	mux.HandleFunc("GET /v1/catalog/facets", h.GetCatalogFacets)
	mux.HandleFunc("GET /v1/deals", h.DealsOfTheDay)
	mux.HandleFunc("GET /v1/categories/{category}/top", h.BestOfCategory)
	mux.HandleFunc("GET /v1/categories/{category}/deals", h.CategoryTopDeals)
}

func (h CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListProducts"
	log := slog.With("op", op)

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, "invalid query parameter", http.StatusBadRequest)
		log.Warn("failed to parse listing filter", "err", err)
		return
	}

	ps, err := h.products.ListProducts(r.Context(), filter)
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		log.Error("failed to list products", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.products.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to get product", http.StatusInternalServerError)
		log.Error("failed to get product", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h CatalogHandler) GetProductReviews(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CatalogHandler.GetProductReviews"
	log := slog.With("op", op)

	rs, err := h.products.ProductReviews(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "failed to get reviews", http.StatusInternalServerError)
		log.Error("failed to get reviews", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toReviews(rs))
}

func (h CatalogHandler) GetCatalogFacets(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CatalogHandler.GetCatalogFacets"
	log := slog.With("op", op)

	facets, err := h.products.CatalogFacets(r.Context())
	if err != nil {
		http.Error(w, "failed to get catalog facets", http.StatusInternalServerError)
		log.Error("failed to get catalog facets", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, CatalogFacets{
		Categories: facets.Categories,
		Brands:     facets.Brands,
		MaxPrice:   facets.MaxPrice,
	})
}

func (h CatalogHandler) DealsOfTheDay(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.DealsOfTheDay"
	log := slog.With("op", op)

	ps, err := h.highlights.DealsOfTheDay(r.Context())
	if err != nil {
		http.Error(w, "failed to get deals", http.StatusInternalServerError)
		log.Error("failed to get deals", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) BestOfCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.BestOfCategory"
	log := slog.With("op", op)

	ps, err := h.highlights.BestOfCategory(
		r.Context(), r.PathValue("category"),
	)
	if err != nil {
		http.Error(w, "failed to get category top", http.StatusInternalServerError)
		log.Error("failed to get category top", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) CategoryTopDeals(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CatalogHandler.CategoryTopDeals"
	log := slog.With("op", op)

	ps, err := h.highlights.CategoryTopDeals(
		r.Context(), r.PathValue("category"),
	)
	if err != nil {
		http.Error(w, "failed to get category deals", http.StatusInternalServerError)
		log.Error("failed to get category deals", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

// parseFilter maps listing query parameters onto the domain filter.
// Absent parameters keep their zero value, which the engine treats as
// "no restriction"; the sort key falls back to popularity.
func parseFilter(query url.Values) (domain.ProductFilter, error) {
	f := domain.ProductFilter{
		Categories: query["category"],
		Brands:     query["brand"],
		Query:      query.Get("q"),
		Sort:       domain.SortKeyOf(query.Get("sort")),
	}

	var err error
	f.PriceMin, err = floatParam(query, "minPrice")
	if err != nil {
		return domain.ProductFilter{}, err
	}
	f.PriceMax, err = floatParam(query, "maxPrice")
	if err != nil {
		return domain.ProductFilter{}, err
	}
	f.MinRating, err = floatParam(query, "rating")
	if err != nil {
		return domain.ProductFilter{}, err
	}
	return f, nil
}

func floatParam(query url.Values, name string) (float64, error) {
	s := query.Get(name)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func toProduct(p domain.Product) Product {
	return Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		ImageURL:        p.ImageURL,
		Images:          p.Images,
		Category:        p.Category,
		Brand:           p.Brand,
		Rating:          p.Rating,
		ReviewsCount:    p.ReviewsCount,
		Stock:           p.Stock,
		Tags:            p.Tags,
		Specifications:  p.Specifications,
	}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toReviews(rs []domain.Review) []Review {
	out := make([]Review, 0, len(rs))
	for _, review := range rs {
		out = append(out, Review{
			ID:        review.ID,
			ProductID: review.ProductID,
			Author:    review.Author,
			Rating:    review.Rating,
			Comment:   review.Comment,
			Date:      review.Date,
		})
	}
	return out
}
