package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET    /v1/cart
// POST   /v1/cart/items       {"product_id", "quantity"}
// PUT    /v1/cart/items/{id}  {"quantity"}
// DELETE /v1/cart/items/{id}
// DELETE /v1/cart

type CartHandler struct {
	cart port.CartKeeper
}

func RegisterCart(mux *http.ServeMux, ck port.CartKeeper) {
	h := CartHandler{ck}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.SetQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respondCart(w, r, http.StatusOK)
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var body AddCartItem
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err = h.cart.AddToCart(r.Context(), body.ProductID, body.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add cart item", http.StatusInternalServerError)
		log.Error("failed to add cart item", "err", err)
		return
	}

	h.respondCart(w, r, http.StatusOK)
}

func (h CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.SetQuantity"
	log := slog.With("op", op)

	var body SetCartQuantity
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err = h.cart.SetCartQuantity(r.Context(), r.PathValue("id"), body.Quantity)
	if err != nil {
		http.Error(w, "failed to set quantity", http.StatusInternalServerError)
		log.Error("failed to set quantity", "err", err)
		return
	}

	h.respondCart(w, r, http.StatusOK)
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	err := h.cart.RemoveFromCart(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "failed to remove cart item", http.StatusInternalServerError)
		log.Error("failed to remove cart item", "err", err)
		return
	}

	h.respondCart(w, r, http.StatusOK)
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ClearCart"
	log := slog.With("op", op)

	err := h.cart.ClearCart(r.Context())
	if err != nil {
		http.Error(w, "failed to clear cart", http.StatusInternalServerError)
		log.Error("failed to clear cart", "err", err)
		return
	}

	h.respondCart(w, r, http.StatusOK)
}

// respondCart writes the refreshed cart so the client always sees the
// state resulting from its mutation.
func (h CartHandler) respondCart(
	w http.ResponseWriter, r *http.Request, status int,
) {
	const op = "CartHandler.respondCart"
	log := slog.With("op", op)

	view, err := h.cart.Cart(r.Context())
	if err != nil {
		http.Error(w, "failed to get cart", http.StatusInternalServerError)
		log.Error("failed to get cart", "err", err)
		return
	}

	writeJSON(w, status, toCart(view))
}

func toCart(view domain.CartView) Cart {
	c := Cart{
		Items:      make([]CartItem, 0, len(view.Items)),
		TotalPrice: view.TotalPrice,
		ItemCount:  view.ItemCount,
	}
	for _, item := range view.Items {
		c.Items = append(c.Items, CartItem{
			Product:  toProduct(item.Product),
			Quantity: item.Quantity,
		})
	}
	return c
}
