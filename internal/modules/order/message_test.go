package order

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *Order {
	return &Order{
		CustomerName:  "Carlos M.",
		CustomerPhone: "0981123456",
		Total:         315000,
		Method:        MethodTransfer,
		Status:        StatusPendingWhatsApp,
		Items: []*Line{
			{ProductName: "POEDAGAR MAGNATE SQUARE", Variant: "bottle", VariantLabel: "Unidad",
				UnitPrice: 260000, Quantity: 1, LineTotal: 260000},
			{ProductName: "Khamrah", Variant: "5ml", VariantLabel: "Decant 5ml",
				UnitPrice: 55000, Quantity: 1, LineTotal: 55000},
		},
	}
}

func TestFormatGs(t *testing.T) {
	assert.Equal(t, "Gs. 1.350.000", FormatGs(1350000))
	assert.Equal(t, "Gs. 55.000", FormatGs(55000))
	assert.Equal(t, "Gs. 0", FormatGs(0))
}

func TestMessageContents(t *testing.T) {
	msg := sampleOrder().Message("Lucas")

	assert.True(t, strings.HasPrefix(msg, "Hola Lucas, quiero realizar el siguiente pedido:"))
	assert.Contains(t, msg, "- POEDAGAR MAGNATE SQUARE (Unidad) x1 - Gs. 260.000")
	assert.Contains(t, msg, "- Khamrah (Decant 5ml) x1 - Gs. 55.000")
	assert.Contains(t, msg, "Subtotal: Gs. 315.000")
	assert.Contains(t, msg, "Total: Gs. 315.000")
	assert.Contains(t, msg, "Método de pago seleccionado: Transferencia Bancaria")
	assert.Contains(t, msg, "Dirección de entrega: A coordinar")
	assert.True(t, strings.HasSuffix(msg, "¡Gracias!"))
}

func TestMessageUsesAddressWhenGiven(t *testing.T) {
	o := sampleOrder()
	o.CustomerAddress = "Avda. España 1234, Asunción"

	msg := o.Message("Lucas")

	assert.Contains(t, msg, "Dirección de entrega: Avda. España 1234, Asunción")
	assert.NotContains(t, msg, "A coordinar")
}

func TestMessageAggregatedQuantities(t *testing.T) {
	o := sampleOrder()
	o.Items = []*Line{
		{ProductName: "Khamrah", Variant: "5ml", VariantLabel: "Decant 5ml",
			UnitPrice: 55000, Quantity: 3, LineTotal: 165000},
	}
	o.Total = 165000

	msg := o.Message("Lucas")

	assert.Contains(t, msg, "- Khamrah (Decant 5ml) x3 - Gs. 165.000")
}

func TestWhatsAppURL(t *testing.T) {
	raw := sampleOrder().WhatsAppURL("595984508348", "Lucas")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/595984508348", u.Path)

	text := u.Query().Get("text")
	assert.Contains(t, text, "Hola Lucas")
	assert.Contains(t, text, "Khamrah")

	// spaces render as %20, never as query-style +
	assert.Contains(t, raw, "%20")
	assert.NotContains(t, raw, "+")
}

func TestPaymentMethodLabels(t *testing.T) {
	assert.Equal(t, "Tarjeta de Crédito", MethodCreditCard.Label())
	assert.Equal(t, "Tarjeta de Débito", MethodDebitCard.Label())
	assert.Equal(t, "Transferencia Bancaria", MethodTransfer.Label())
	assert.Equal(t, "Efectivo (Solo Asunción)", MethodCash.Label())
}
