package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smontoya/kickstore-backend/internal/cart"
	"github.com/smontoya/kickstore-backend/pkg/config"
)

func newBuilder(t *testing.T) *LinkBuilder {
	t.Helper()
	b, err := NewLinkBuilder(config.CheckoutConfig{
		WhatsAppPhone: "+57 300 123 4567",
		StoreName:     "KickStore",
	})
	require.NoError(t, err)
	return b
}

// decodeText extracts the url-decoded message body from a built link.
func decodeText(t *testing.T, link string) string {
	t.Helper()
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	return parsed.Query().Get("text")
}

func TestNewLinkBuilderRequiresPhone(t *testing.T) {
	t.Parallel()

	_, err := NewLinkBuilder(config.CheckoutConfig{WhatsAppPhone: "no digits here"})
	assert.Error(t, err)
}

func TestBuildLinkEmptyCart(t *testing.T) {
	t.Parallel()

	link := newBuilder(t).BuildLink(nil, decimal.Zero)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/573001234567?text="), link)
	text := decodeText(t, link)
	assert.Equal(t, "¡Hola KickStore! Quisiera más información sobre sus productos.", text)
}

func TestBuildLinkOrderSummary(t *testing.T) {
	t.Parallel()

	items := []cart.Item{
		{ID: "a", Name: "Shoe X", Price: decimal.NewFromInt(1000), Quantity: 2},
		{ID: "b", Name: "Shoe Y", Price: decimal.NewFromInt(150000), Quantity: 1},
	}
	subtotal := decimal.NewFromInt(152000)

	text := decodeText(t, newBuilder(t).BuildLink(items, subtotal))

	assert.Contains(t, text, "- 2 x Shoe X ($ 2.000)")
	assert.Contains(t, text, "- 1 x Shoe Y ($ 150.000)")
	assert.Contains(t, text, "Subtotal: $ 152.000")
	assert.Contains(t, text, "disponibilidad")

	// line order follows cart order
	assert.Less(t, strings.Index(text, "Shoe X"), strings.Index(text, "Shoe Y"))
}

func TestBuildLinkIsDeterministic(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	items := []cart.Item{
		{ID: "a", Name: "Shoe X", Price: decimal.NewFromInt(1000), Quantity: 2},
	}
	subtotal := decimal.NewFromInt(2000)

	first := b.BuildLink(items, subtotal)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, b.BuildLink(items, subtotal))
	}
}
