package service

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

const (
	highlightLimit = 10
	dealRatingMin  = 4.8
	bestRatingMin  = 4.6
)

// deriveListing narrows the catalog by the filter's conjunctive
// predicates and orders the survivors by the sort key. The input
// slice is never mutated; derivation re-runs from scratch on every
// call by design.
func deriveListing(
	ps []domain.Product, f domain.ProductFilter,
) []domain.Product {
	query := strings.ToLower(f.Query)

	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
			continue
		}
		if p.Price < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && p.Price > f.PriceMax {
			continue
		}
		if f.MinRating > 0 && p.Rating < f.MinRating {
			continue
		}
		out = append(out, p)
	}

	sortListing(out, f.Sort)
	return out
}

func matchesQuery(p domain.Product, query string) bool {
	for _, s := range []string{p.Name, p.Description, p.Brand, p.Category} {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

// sortListing orders products stably, so products with equal keys
// keep their relative catalog order.
func sortListing(ps []domain.Product, key domain.SortKey) {
	var compare func(a, b domain.Product) int

	switch key {
	case domain.SortPriceAsc:
		compare = func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case domain.SortPriceDesc:
		compare = func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		}
	case domain.SortRating:
		compare = func(a, b domain.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		}
	default:
		compare = func(a, b domain.Product) int {
			return cmp.Compare(b.Popularity(), a.Popularity())
		}
	}

	slices.SortStableFunc(ps, compare)
}

// dealsOfTheDay joins discounted products with top-rated ones,
// shuffles and slices. An ad hoc demo heuristic with no business
// intent behind it; a product may appear in both source lists.
func dealsOfTheDay(ps []domain.Product) []domain.Product {
	if len(ps) == 0 {
		return nil
	}

	var deals []domain.Product
	for _, p := range ps {
		if p.Discounted() && len(deals) < highlightLimit {
			deals = append(deals, p)
		}
	}

	var topRated int
	for _, p := range ps {
		if p.Rating >= dealRatingMin && topRated < highlightLimit {
			deals = append(deals, p)
			topRated++
		}
	}

	rand.Shuffle(len(deals), func(i, j int) {
		deals[i], deals[j] = deals[j], deals[i]
	})
	return headOf(deals)
}

func bestOfCategory(ps []domain.Product, category string) []domain.Product {
	var out []domain.Product
	for _, p := range ps {
		if strings.EqualFold(p.Category, category) && p.Rating >= bestRatingMin {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Product) int {
		return cmp.Compare(b.ReviewsCount, a.ReviewsCount)
	})
	return headOf(out)
}

func categoryTopDeals(ps []domain.Product, category string) []domain.Product {
	var out []domain.Product
	for _, p := range ps {
		if strings.EqualFold(p.Category, category) && p.Discounted() {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Product) int {
		discountA := a.OriginalPrice - a.Price
		discountB := b.OriginalPrice - b.Price
		return cmp.Compare(discountB, discountA)
	})
	return headOf(out)
}

// catalogFacets collects the distinct categories and brands in
// first-seen catalog order and the highest product price.
func catalogFacets(ps []domain.Product) domain.CatalogFacets {
	f := domain.CatalogFacets{
		Categories: make([]string, 0, len(ps)),
		Brands:     make([]string, 0, len(ps)),
	}
	for _, p := range ps {
		if !slices.Contains(f.Categories, p.Category) {
			f.Categories = append(f.Categories, p.Category)
		}
		if !slices.Contains(f.Brands, p.Brand) {
			f.Brands = append(f.Brands, p.Brand)
		}
		f.MaxPrice = max(f.MaxPrice, p.Price)
	}
	return f
}

func headOf(ps []domain.Product) []domain.Product {
	if len(ps) > highlightLimit {
		return ps[:highlightLimit]
	}
	return ps
}
