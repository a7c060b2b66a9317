package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST /v1/checkout {"payment_method"} (200 OK, 400 Bad request, 502 Bad gateway)

type CheckoutHandler struct {
	submitter port.CheckoutSubmitter
}

func RegisterCheckout(mux *http.ServeMux, cs port.CheckoutSubmitter) {
	h := CheckoutHandler{cs}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	var body CheckoutRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	conf, err := h.submitter.Checkout(r.Context(), body.PaymentMethod)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPaymentMethod) {
			http.Error(w, "unknown payment method", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to place order", http.StatusBadGateway)
		log.Error("failed to place order", "err", err)
		return
	}

	log.Info("order placed", "orderID", conf.OrderID)
	writeJSON(w, http.StatusOK, OrderConfirmation{
		OrderID: conf.OrderID,
		Message: conf.Message,
	})
}

// POST /v1/orders — the recording endpoint. Accepts any well-formed
// payload, logs it and confirms; a real backend would validate,
// charge and persist here. Responds 500 on malformed input, matching
// the documented contract (200/500 only, no 400 taxonomy).

type OrdersHandler struct {
	recorder port.OrderRecorder
}

func RegisterOrders(mux *http.ServeMux, rec port.OrderRecorder) {
	h := OrdersHandler{rec}
	mux.HandleFunc("POST /v1/orders", h.PostOrders)
}

func (h OrdersHandler) PostOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PostOrders"
	log := slog.With("op", op)

	var payload OrderPayload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		log.Warn("failed to parse order payload", "err", err)
		writeJSON(w, http.StatusInternalServerError, OrderConfirmation{
			Message: "Error processing order",
		})
		return
	}

	conf, err := h.recorder.RecordOrder(r.Context(), toOrder(payload))
	if err != nil {
		log.Error("failed to record order", "err", err)
		writeJSON(w, http.StatusInternalServerError, OrderConfirmation{
			Message: "Error processing order",
		})
		return
	}

	writeJSON(w, http.StatusOK, OrderConfirmation{
		OrderID: conf.OrderID,
		Message: conf.Message,
	})
}

func toOrder(payload OrderPayload) domain.Order {
	order := domain.Order{
		Items:         make([]domain.OrderItem, 0, len(payload.Items)),
		TotalPrice:    payload.TotalPrice,
		PaymentMethod: payload.PaymentMethod,
	}
	for _, item := range payload.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Category:  item.Category,
		})
	}
	return order
}
