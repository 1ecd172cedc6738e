// Package checkout turns a cart snapshot into a WhatsApp deep link carrying
// a pre-filled order summary. The receiving side is a human operator, so the
// body is plain Spanish text, not a schema.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smontoya/kickstore-backend/internal/cart"
	"github.com/smontoya/kickstore-backend/pkg/config"
	"github.com/smontoya/kickstore-backend/pkg/currency"
)

const waBaseURL = "https://wa.me/"

// LinkBuilder builds checkout deep links for one configured store line.
type LinkBuilder struct {
	phone     string
	storeName string
}

func NewLinkBuilder(cfg config.CheckoutConfig) (*LinkBuilder, error) {
	phone := cfg.Phone()
	if phone == "" {
		return nil, errors.New("checkout whatsapp phone is required")
	}
	storeName := strings.TrimSpace(cfg.StoreName)
	if storeName == "" {
		storeName = "KickStore"
	}
	return &LinkBuilder{phone: phone, storeName: storeName}, nil
}

// BuildLink is pure and deterministic: the same items and subtotal always
// produce the same link byte for byte. An empty cart yields a generic
// inquiry message instead of an order summary.
func (b *LinkBuilder) BuildLink(items []cart.Item, subtotal decimal.Decimal) string {
	var msg strings.Builder

	if len(items) == 0 {
		fmt.Fprintf(&msg, "¡Hola %s! Quisiera más información sobre sus productos.", b.storeName)
	} else {
		fmt.Fprintf(&msg, "¡Hola %s! Quiero hacer este pedido:\n", b.storeName)
		for _, item := range items {
			lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			fmt.Fprintf(&msg, "- %d x %s (%s)\n", item.Quantity, item.Name, currency.Format(lineTotal))
		}
		fmt.Fprintf(&msg, "Subtotal: %s\n", currency.Format(subtotal))
		msg.WriteString("¿Me confirman disponibilidad y tiempo de entrega, por favor?")
	}

	return waBaseURL + b.phone + "?text=" + url.QueryEscape(msg.String())
}
