package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
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

func newCheckoutMux(submitter *MockOrderSubmitter) *http.ServeMux {
	s := service.New(catalog.NewRepository(), cart.NewStore(), submitter, nil)
	mux := http.NewServeMux()
	httphandler.RegisterCheckout(mux, s)
	return mux
}

func TestPostCheckout(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		submitter := new(MockOrderSubmitter)
		submitter.On("SubmitOrder", mock.Anything, mock.Anything).
			Return(domain.OrderConfirmation{
				OrderID: "testOrderID",
				Message: "Order placed successfully (simulated)",
			}, nil)
		mux := newCheckoutMux(submitter)

		rec := doJSON(t, mux, http.MethodPost, "/v1/checkout",
			`{"payment_method":"upi"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var conf httphandler.OrderConfirmation
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&conf))
		assert.Equal(t, "testOrderID", conf.OrderID)
	})

	t.Run("UnknownPaymentMethod", func(t *testing.T) {
		mux := newCheckoutMux(new(MockOrderSubmitter))

		rec := doJSON(t, mux, http.MethodPost, "/v1/checkout",
			`{"payment_method":"barter"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("SubmissionFailure", func(t *testing.T) {
		submitter := new(MockOrderSubmitter)
		submitter.On("SubmitOrder", mock.Anything, mock.Anything).
			Return(domain.OrderConfirmation{}, errors.New("recorder is down"))
		mux := newCheckoutMux(submitter)

		rec := doJSON(t, mux, http.MethodPost, "/v1/checkout",
			`{"payment_method":"credit-card"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		mux := newCheckoutMux(new(MockOrderSubmitter))

		rec := doJSON(t, mux, http.MethodPost, "/v1/checkout", `{"payment`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostOrders(t *testing.T) {

	newOrdersMux := func() *http.ServeMux {
		s := service.New(catalog.NewRepository(), cart.NewStore(), nil, nil)
		mux := http.NewServeMux()
		httphandler.RegisterOrders(mux, s)
		return mux
	}

	t.Run("RecordsWellFormedPayload", func(t *testing.T) {
		mux := newOrdersMux()

		body := `{
			"items":[{"productId":"1","name":"Smartphone Pro X","price":799.99,"quantity":1,"category":"Electronics"}],
			"totalPrice":839.99,
			"paymentMethod":"credit-card"
		}`
		rec := doJSON(t, mux, http.MethodPost, "/v1/orders", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var conf httphandler.OrderConfirmation
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&conf))
		assert.NotEmpty(t, conf.OrderID)
		assert.NotEmpty(t, conf.Message)
	})

	t.Run("AcceptsEmptyItemList", func(t *testing.T) {
		mux := newOrdersMux()

		rec := doJSON(t, mux, http.MethodPost, "/v1/orders",
			`{"items":[],"totalPrice":0,"paymentMethod":"upi"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		mux := newOrdersMux()

		rec := doJSON(t, mux, http.MethodPost, "/v1/orders", `{"items":`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
