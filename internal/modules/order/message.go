package order

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders guaraní amounts with es-style grouping: 1350000 -> 1.350.000.
var printer = message.NewPrinter(language.Spanish)

// FormatGs formats an amount in guaraníes for customer-facing text.
func FormatGs(v int64) string {
	return printer.Sprintf("Gs. %d", v)
}

// Message builds the pre-filled plain-text WhatsApp order message: one line
// per aggregated item with quantity and subtotal, the grand total, the
// payment label and the delivery address (or a placeholder when the customer
// left it blank).
func (o *Order) Message(contactName string) string {
	var items strings.Builder
	for _, line := range o.Items {
		fmt.Fprintf(&items, "- %s (%s) x%d - %s\n",
			line.ProductName, line.VariantLabel, line.Quantity, FormatGs(line.LineTotal))
	}

	address := o.CustomerAddress
	if address == "" {
		address = "A coordinar"
	}

	return fmt.Sprintf(`Hola %s, quiero realizar el siguiente pedido:

%s
Subtotal: %s
Total: %s

Método de pago seleccionado: %s

Dirección de entrega: %s

¡Gracias!`,
		contactName, items.String(), FormatGs(o.Total), FormatGs(o.Total),
		o.Method.Label(), address)
}

// WhatsAppURL builds the wa.me compose link embedding the operator phone
// number and the URL-encoded message. Spaces are encoded as %20, not +:
// some WhatsApp clients render query-style + literally in the compose box.
// Opening the link is the caller's problem; the hand-off is fire and forget.
func (o *Order) WhatsAppURL(phoneNumber, contactName string) string {
	text := strings.ReplaceAll(url.QueryEscape(o.Message(contactName)), "+", "%20")
	return "https://wa.me/" + phoneNumber + "?text=" + text
}
