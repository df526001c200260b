package order

import "time"

// Status is the lifecycle state of an order. There is only one: the order
// log records purchase intent handed off to WhatsApp, and the system never
// learns what happened afterwards.
type Status string

const StatusPendingWhatsApp Status = "PENDING_WHATSAPP"

// PaymentMethod is the customer's declared payment preference. It is a label
// for the operator, not a processed payment.
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
	MethodTransfer   PaymentMethod = "TRANSFER"
	MethodCash       PaymentMethod = "CASH"
)

// Label is the Spanish payment-method label shown to the operator.
func (m PaymentMethod) Label() string {
	switch m {
	case MethodCreditCard:
		return "Tarjeta de Crédito"
	case MethodDebitCard:
		return "Tarjeta de Débito"
	case MethodTransfer:
		return "Transferencia Bancaria"
	case MethodCash:
		return "Efectivo (Solo Asunción)"
	}
	return string(m)
}

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodTransfer, MethodCash:
		return true
	}
	return false
}

// Line is one entry of an order: cart lines aggregated by product+variant,
// so identical picks collapse into a quantity.
type Line struct {
	ProductName  string `json:"product_name"`
	Variant      string `json:"variant"`
	VariantLabel string `json:"variant_label"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	LineTotal    int64  `json:"line_total"`
}

// Order is an append-only record of a checkout. Never mutated, never
// deleted through the API.
type Order struct {
	ID              string        `json:"id"`
	CreatedAt       time.Time     `json:"created_at"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address,omitempty"`
	Total           int64         `json:"total"`
	Method          PaymentMethod `json:"method"`
	Status          Status        `json:"status"`
	Items           []*Line       `json:"items"`
}
