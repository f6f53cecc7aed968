package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the subset of a commerce-platform order the invoice needs.
//
// Orders are read-only here: they are fetched per request and never stored.
type Order struct {
	ID              string
	Name            string
	Email           string
	CreatedAt       time.Time
	BillingAddress  *Address
	ShippingAddress *Address
	LineItems       []LineItem
}

type Address struct {
	Name     string
	Address1 string
	City     string
	Province string
}

// LineItem is one order line. ProductID is empty for custom items that do
// not reference a catalogue product.
type LineItem struct {
	ProductID string
	Title     string
	Quantity  int
	Price     decimal.Decimal
}

// Metafield is a namespaced key/value attached to a product.
type Metafield struct {
	Namespace string
	Key       string
	Value     string
}
