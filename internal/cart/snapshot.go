package cart

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// wireItem tolerates the loose shapes snapshots have been written with over
// time. Quantity in particular has been observed as a number, a numeric
// string, or garbage, so it is decoded untyped and normalized.
type wireItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity any             `json:"quantity"`
}

type wireSnapshot struct {
	Items []wireItem `json:"items"`
}

// EncodeSnapshot serializes the full state for storage.
func EncodeSnapshot(state State) (string, error) {
	if state.Items == nil {
		state.Items = []Item{}
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeSnapshot restores a persisted state. Decoding is total: malformed
// payloads yield the empty state, quantities are clamped into [1, MaxQuantity],
// and lines with an empty or duplicate ID are dropped.
func DecodeSnapshot(raw string) State {
	if raw == "" {
		return Empty()
	}

	var snapshot wireSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return Empty()
	}

	state := Empty()
	for _, wire := range snapshot.Items {
		if wire.ID == "" || state.indexOf(wire.ID) >= 0 {
			continue
		}
		state.Items = append(state.Items, Item{
			ID:       wire.ID,
			Name:     wire.Name,
			Price:    wire.Price,
			Image:    wire.Image,
			Quantity: normalizeQuantity(wire.Quantity),
		})
	}
	return state
}

func normalizeQuantity(value any) int {
	quantity := 1
	switch v := value.(type) {
	case float64:
		quantity = int(v)
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			quantity = int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			quantity = parsed
		}
	}
	if quantity < 1 {
		return 1
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
