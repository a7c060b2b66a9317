package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ProductsReader = (*Service)(nil)
var _ port.HighlightsReader = (*Service)(nil)
var _ port.CartKeeper = (*Service)(nil)
var _ port.CheckoutSubmitter = (*Service)(nil)
var _ port.OrderRecorder = (*Service)(nil)

// The recorded total is subtotal with a fixed 5% tax applied.
// There is no real tax logic behind it.
const taxMultiplier = 1.05

type Service struct {
	catalog     port.CatalogProvider
	cart        *cart.Store
	submitter   port.OrderSubmitter
	orderEvents port.OrderEventsProducer
}

// New wires the core service. orderEvents may be nil when event
// emission is disabled.
func New(
	catalog port.CatalogProvider,
	cartStore *cart.Store,
	submitter port.OrderSubmitter,
	orderEvents port.OrderEventsProducer,
) Service {
	return Service{catalog, cartStore, submitter, orderEvents}
}

func (s Service) ListProducts(
	ctx context.Context, f domain.ProductFilter,
) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	ps, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return deriveListing(ps, f), nil
}

func (s Service) Product(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "Service.Product"

	p, err := s.catalog.ProductByID(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) ProductReviews(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	const op = "Service.ProductReviews"

	rs, err := s.catalog.ReviewsByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rs, nil
}

func (s Service) CatalogFacets(
	ctx context.Context,
) (domain.CatalogFacets, error) {
	const op = "Service.CatalogFacets"

	ps, err := s.catalog.Products(ctx)
	if err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}
	return catalogFacets(ps), nil
}

func (s Service) DealsOfTheDay(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.DealsOfTheDay"

	ps, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return dealsOfTheDay(ps), nil
}

func (s Service) BestOfCategory(
	ctx context.Context, category string,
) ([]domain.Product, error) {
	const op = "Service.BestOfCategory"

	ps, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bestOfCategory(ps, category), nil
}

func (s Service) CategoryTopDeals(
	ctx context.Context, category string,
) ([]domain.Product, error) {
	const op = "Service.CategoryTopDeals"

	ps, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categoryTopDeals(ps, category), nil
}

func (s Service) Cart(ctx context.Context) (domain.CartView, error) {
	const op = "Service.Cart"

	if err := ctx.Err(); err != nil {
		return domain.CartView{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.CartView{
		Items:      s.cart.Items(),
		TotalPrice: s.cart.TotalPrice(),
		ItemCount:  s.cart.ItemCount(),
	}, nil
}

func (s Service) AddToCart(
	ctx context.Context, productID string, quantity int,
) error {
	const op = "Service.AddToCart"

	p, err := s.catalog.ProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cart.Add(p, quantity)
	return nil
}

func (s Service) SetCartQuantity(
	ctx context.Context, productID string, quantity int,
) error {
	const op = "Service.SetCartQuantity"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cart.SetQuantity(productID, quantity)
	return nil
}

func (s Service) RemoveFromCart(ctx context.Context, productID string) error {
	const op = "Service.RemoveFromCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cart.Remove(productID)
	return nil
}

func (s Service) ClearCart(ctx context.Context) error {
	const op = "Service.ClearCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cart.Clear()
	return nil
}

// Checkout submits the current cart snapshot for recording.
// On success the cart is cleared; on failure it stays untouched and
// the caller may resubmit. There is no automatic retry.
func (s Service) Checkout(
	ctx context.Context, paymentMethod string,
) (domain.OrderConfirmation, error) {
	const op = "Service.Checkout"

	if err := ctx.Err(); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	if !domain.ValidPaymentMethod(paymentMethod) {
		return domain.OrderConfirmation{}, fmt.Errorf(
			"%s: %q: %w", op, paymentMethod, domain.ErrUnknownPaymentMethod,
		)
	}

	order := s.buildOrder(paymentMethod)

	conf, err := s.submitter.SubmitOrder(ctx, order)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cart.Clear()
	s.emitOrderEvent(ctx, conf.OrderID, order)

	return conf, nil
}

// RecordOrder is the recording endpoint's core: log the payload and
// confirm. Deliberately a stub, it accepts any well-formed order,
// empty item lists included.
func (s Service) RecordOrder(
	ctx context.Context, order domain.Order,
) (domain.OrderConfirmation, error) {
	const op = "Service.RecordOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	orderID := uuid.NewString()
	log.Info("order received",
		"orderID", orderID,
		"nItems", len(order.Items),
		"totalPrice", order.TotalPrice,
		"paymentMethod", order.PaymentMethod,
		"orderDate", time.Now().UTC().Format(time.RFC3339),
	)

	return domain.OrderConfirmation{
		OrderID: orderID,
		Message: "Order placed successfully (simulated)",
	}, nil
}

func (s Service) buildOrder(paymentMethod string) domain.Order {
	items := s.cart.Items()

	order := domain.Order{
		Items:         make([]domain.OrderItem, 0, len(items)),
		TotalPrice:    s.cart.TotalPrice() * taxMultiplier,
		PaymentMethod: paymentMethod,
	}
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Category:  item.Product.Category,
		})
	}
	return order
}

// emitOrderEvent publishes the placed order when a producer is wired.
// Emission is best effort: the order is already recorded, so a broker
// failure only logs.
func (s Service) emitOrderEvent(
	ctx context.Context, orderID string, order domain.Order,
) {
	const op = "Service.emitOrderEvent"

	if s.orderEvents == nil {
		return
	}

	placed := domain.PlacedOrder{
		OrderID:  orderID,
		Order:    order,
		PlacedAt: time.Now().UTC(),
	}
	if err := s.orderEvents.ProduceOrder(ctx, placed); err != nil {
		slog.Error("failed to produce order event",
			"op", op, "orderID", orderID, "err", err)
	}
}
