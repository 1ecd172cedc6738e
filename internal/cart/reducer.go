// Package cart implements the session cart state machine. Transitions are
// pure and total: every action returns a valid next state, invalid targets
// are no-ops, and persistence failures never surface to callers.
package cart

import (
	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single line item. Increments past the cap are no-ops.
const MaxQuantity = 99

// Item is one product entry in the cart. Quantity is always in [1, MaxQuantity].
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

// State is an ordered sequence of items. Insertion order is display order.
// No two items share an ID and no quantity is ever zero.
type State struct {
	Items []Item `json:"items"`
}

// Empty returns the default state.
func Empty() State {
	return State{Items: []Item{}}
}

func (s State) clone() State {
	next := State{Items: make([]Item, len(s.Items))}
	copy(next.Items, s.Items)
	return next
}

func (s State) indexOf(id string) int {
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Add appends item with quantity 1, or increments an existing line with the
// same ID. The incoming item's own Quantity field is ignored.
func (s State) Add(item Item) State {
	if item.ID == "" {
		return s
	}
	next := s.clone()
	if i := next.indexOf(item.ID); i >= 0 {
		if next.Items[i].Quantity < MaxQuantity {
			next.Items[i].Quantity++
		}
		return next
	}
	item.Quantity = 1
	next.Items = append(next.Items, item)
	return next
}

// Increment bumps the quantity of the line with the given ID, capped at
// MaxQuantity. Absent IDs are a no-op.
func (s State) Increment(id string) State {
	i := s.indexOf(id)
	if i < 0 || s.Items[i].Quantity >= MaxQuantity {
		return s
	}
	next := s.clone()
	next.Items[i].Quantity++
	return next
}

// Decrement lowers the quantity of the line with the given ID, removing the
// line when it reaches zero. Absent IDs are a no-op.
func (s State) Decrement(id string) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	next := s.clone()
	if next.Items[i].Quantity <= 1 {
		next.Items = append(next.Items[:i], next.Items[i+1:]...)
		return next
	}
	next.Items[i].Quantity--
	return next
}

// Remove drops the line with the given ID regardless of quantity.
func (s State) Remove(id string) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	next := s.clone()
	next.Items = append(next.Items[:i], next.Items[i+1:]...)
	return next
}

// Clear resets to the empty state.
func (s State) Clear() State {
	return Empty()
}

// ItemsCount is the sum of all line quantities.
func (s State) ItemsCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity over all lines.
func (s State) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}
