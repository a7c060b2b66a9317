// Package cart keeps the process-local session cart.
//
// The store holds at most one entry per product id, in insertion
// order. It is designed for a single logical session; the mutex only
// guards against the server's concurrent handler goroutines.
package cart

import (
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

type Store struct {
	mu    sync.Mutex
	ids   []string
	items map[string]domain.CartItem
}

func NewStore() *Store {
	return &Store{items: make(map[string]domain.CartItem)}
}

// Add inserts the product or increments the existing quantity.
// Non-positive quantities are rejected as a no-op.
func (s *Store) Add(p domain.Product, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item, ok := s.items[p.ID]; ok {
		item.Quantity += quantity
		s.items[p.ID] = item
		return
	}
	s.items[p.ID] = domain.CartItem{Product: p, Quantity: quantity}
	s.ids = append(s.ids, p.ID)
}

// SetQuantity sets the entry quantity directly, removing the entry
// when quantity is not positive. Absent product ids are a no-op.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	item.Quantity = quantity
	s.items[productID] = item
}

func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.items = make(map[string]domain.CartItem)
}

// Items returns the entries in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, 0, len(s.ids))
	for _, id := range s.ids {
		items = append(items, s.items[id])
	}
	return items
}

func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums quantities over entries, not the entry count.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

func (s *Store) removeLocked(productID string) {
	if _, ok := s.items[productID]; !ok {
		return
	}
	delete(s.items, productID)
	for i, id := range s.ids {
		if id == productID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}
