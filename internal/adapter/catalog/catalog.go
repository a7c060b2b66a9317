// Package catalog is the read-only in-memory catalog source.
// Products and reviews are fixed for the process lifetime; there is
// no mutation path and no I/O.
package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*Repository)(nil)

type Repository struct {
	products []domain.Product
	reviews  []domain.Review
}

func NewRepository() Repository {
	return Repository{products: fixtureProducts, reviews: fixtureReviews}
}

// Products returns all catalog products in catalog order.
// The returned slice is the caller's to reorder.
func (r Repository) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "Repository.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return slices.Clone(r.products), nil
}

func (r Repository) ProductByID(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "Repository.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf(
		"%s: %q: %w", op, productID, domain.ErrProductNotFound,
	)
}

// ReviewsByProductID returns the product's reviews, an empty slice
// when there are none. An unknown product id is not an error.
func (r Repository) ReviewsByProductID(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	const op = "Repository.ReviewsByProductID"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rs := make([]domain.Review, 0)
	for _, review := range r.reviews {
		if review.ProductID == productID {
			rs = append(rs, review)
		}
	}
	return rs, nil
}
