package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderSubmitter struct {
	mock.Mock
}

func (m *MockOrderSubmitter) SubmitOrder(
	ctx context.Context, order domain.Order,
) (domain.OrderConfirmation, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(domain.OrderConfirmation), args.Error(1)
}

type MockOrderEventsProducer struct {
	mock.Mock
}

func (m *MockOrderEventsProducer) ProduceOrder(
	ctx context.Context, placed domain.PlacedOrder,
) error {
	args := m.Called(ctx, placed)
	return args.Error(0)
}

func TestCheckout(t *testing.T) {

	t.Run("SuccessClearsCartAndEmitsEvent", func(t *testing.T) {
		submitter := new(MockOrderSubmitter)
		events := new(MockOrderEventsProducer)
		cartStore := cart.NewStore()
		s := service.New(catalog.NewRepository(), cartStore, submitter, events)

		require.NoError(t, s.AddToCart(t.Context(), "6", 2)) // 39.99 each

		var submitted domain.Order
		submitter.On("SubmitOrder", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				submitted = args.Get(1).(domain.Order)
			}).
			Return(domain.OrderConfirmation{
				OrderID: "testOrderID",
				Message: "Order placed successfully (simulated)",
			}, nil)
		events.On("ProduceOrder", mock.Anything, mock.Anything).Return(nil)

		conf, err := s.Checkout(t.Context(), domain.PaymentCreditCard)
		require.NoError(t, err)
		assert.Equal(t, "testOrderID", conf.OrderID)

		require.Len(t, submitted.Items, 1)
		assert.Equal(t, "6", submitted.Items[0].ProductID)
		assert.Equal(t, 2, submitted.Items[0].Quantity)
		assert.InDelta(t, 2*39.99*1.05, submitted.TotalPrice, 1e-9)
		assert.Equal(t, domain.PaymentCreditCard, submitted.PaymentMethod)

		view, err := s.Cart(t.Context())
		require.NoError(t, err)
		assert.Empty(t, view.Items)

		events.AssertCalled(t, "ProduceOrder", mock.Anything, mock.Anything)
	})

	t.Run("FailureLeavesCartUntouched", func(t *testing.T) {
		submitter := new(MockOrderSubmitter)
		cartStore := cart.NewStore()
		s := service.New(catalog.NewRepository(), cartStore, submitter, nil)

		require.NoError(t, s.AddToCart(t.Context(), "1", 1))

		submitter.On("SubmitOrder", mock.Anything, mock.Anything).
			Return(domain.OrderConfirmation{}, errors.New("recorder is down"))

		_, err := s.Checkout(t.Context(), domain.PaymentUPI)
		require.Error(t, err)

		view, err := s.Cart(t.Context())
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "1", view.Items[0].Product.ID)
	})

	t.Run("UnknownPaymentMethod", func(t *testing.T) {
		submitter := new(MockOrderSubmitter)
		s := service.New(
			catalog.NewRepository(), cart.NewStore(), submitter, nil,
		)

		_, err := s.Checkout(t.Context(), "barter")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownPaymentMethod)
		submitter.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything)
	})

	t.Run("EmptyCartSubmitsSuccessfully", func(t *testing.T) {
		submitter := new(MockOrderSubmitter)
		s := service.New(
			catalog.NewRepository(), cart.NewStore(), submitter, nil,
		)

		var submitted domain.Order
		submitter.On("SubmitOrder", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				submitted = args.Get(1).(domain.Order)
			}).
			Return(domain.OrderConfirmation{OrderID: "testOrderID"}, nil)

		_, err := s.Checkout(t.Context(), domain.PaymentCashOnDelivery)
		require.NoError(t, err)
		assert.Empty(t, submitted.Items)
		assert.Zero(t, submitted.TotalPrice)
	})

	t.Run("EventFailureDoesNotFailCheckout", func(t *testing.T) {
		submitter := new(MockOrderSubmitter)
		events := new(MockOrderEventsProducer)
		cartStore := cart.NewStore()
		s := service.New(catalog.NewRepository(), cartStore, submitter, events)

		require.NoError(t, s.AddToCart(t.Context(), "2", 1))

		submitter.On("SubmitOrder", mock.Anything, mock.Anything).
			Return(domain.OrderConfirmation{OrderID: "testOrderID"}, nil)
		events.On("ProduceOrder", mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable"))

		_, err := s.Checkout(t.Context(), domain.PaymentUPI)
		require.NoError(t, err)

		view, err := s.Cart(t.Context())
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	})
}

func TestRecordOrder(t *testing.T) {

	t.Run("ConfirmsWithOrderID", func(t *testing.T) {
		s := fixtureService()

		conf, err := s.RecordOrder(t.Context(), domain.Order{
			Items: []domain.OrderItem{
				{ProductID: "1", Name: "testProduct", Price: 10, Quantity: 1},
			},
			TotalPrice:    10.5,
			PaymentMethod: domain.PaymentUPI,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, conf.OrderID)
		assert.NotEmpty(t, conf.Message)
	})

	t.Run("AcceptsEmptyItemList", func(t *testing.T) {
		s := fixtureService()

		conf, err := s.RecordOrder(t.Context(), domain.Order{
			PaymentMethod: domain.PaymentCreditCard,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, conf.OrderID)
	})
}

func TestCartOperations(t *testing.T) {

	t.Run("AddUnknownProduct", func(t *testing.T) {
		s := fixtureService()

		err := s.AddToCart(t.Context(), "unknown", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("AddSnapshotsCatalogProduct", func(t *testing.T) {
		s := fixtureService()

		require.NoError(t, s.AddToCart(t.Context(), "4", 1))

		view, err := s.Cart(t.Context())
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "Espresso Coffee Machine", view.Items[0].Product.Name)
		assert.InDelta(t, 199.50, view.TotalPrice, 1e-9)
	})

	t.Run("SetZeroQuantityExcludesFromCount", func(t *testing.T) {
		s := fixtureService()

		require.NoError(t, s.AddToCart(t.Context(), "5", 3))
		require.NoError(t, s.SetCartQuantity(t.Context(), "5", 0))

		view, err := s.Cart(t.Context())
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Equal(t, 0, view.ItemCount)
	})
}
