package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Inbound ports implemented by the core service.

type ProductsReader interface {
	ListProducts(context.Context, domain.ProductFilter) ([]domain.Product, error)
	Product(ctx context.Context, productID string) (domain.Product, error)
	ProductReviews(ctx context.Context, productID string) ([]domain.Review, error)
	CatalogFacets(context.Context) (domain.CatalogFacets, error)
}

type HighlightsReader interface {
	DealsOfTheDay(context.Context) ([]domain.Product, error)
	BestOfCategory(ctx context.Context, category string) ([]domain.Product, error)
	CategoryTopDeals(ctx context.Context, category string) ([]domain.Product, error)
}

type CartKeeper interface {
	Cart(context.Context) (domain.CartView, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	SetCartQuantity(ctx context.Context, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, productID string) error
	ClearCart(context.Context) error
}

type CheckoutSubmitter interface {
	Checkout(ctx context.Context, paymentMethod string) (domain.OrderConfirmation, error)
}

type OrderRecorder interface {
	RecordOrder(context.Context, domain.Order) (domain.OrderConfirmation, error)
}

// Outbound ports implemented by adapters.

type CatalogProvider interface {
	Products(context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, productID string) (domain.Product, error)
	ReviewsByProductID(ctx context.Context, productID string) ([]domain.Review, error)
}

type OrderSubmitter interface {
	SubmitOrder(context.Context, domain.Order) (domain.OrderConfirmation, error)
}

type OrderEventsProducer interface {
	ProduceOrder(context.Context, domain.PlacedOrder) error
}
