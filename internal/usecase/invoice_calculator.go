package usecase

import (
	"strconv"
	"time"

	"gst_invoice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	invoiceNumberPrefix = "INV-"
	invoiceDateLayout   = "02/01/2006"
	moneyPlaces         = 2
)

var hundred = decimal.NewFromInt(100)

// BuildInvoice maps an order and the tax metadata of each of its line items
// (same order, same length) into the invoice view model.
//
// Totals sum the already-rounded item amounts and round again.
func BuildInvoice(order entities.Order, taxes []entities.TaxMetadata, seller entities.Party, loc *time.Location, now time.Time) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(order.LineItems))
	sumTaxable := decimal.Zero
	sumTax := decimal.Zero

	for i, li := range order.LineItems {
		var meta entities.TaxMetadata
		if i < len(taxes) {
			meta = taxes[i]
		}
		gstRate := meta.EffectiveRate()

		taxable := decimal.NewFromInt(int64(li.Quantity)).Mul(li.Price).Round(moneyPlaces)
		taxAmount := taxable.Mul(gstRate).Div(hundred).Round(moneyPlaces)

		sumTaxable = sumTaxable.Add(taxable)
		sumTax = sumTax.Add(taxAmount)

		items = append(items, entities.InvoiceItem{
			Title:     li.Title,
			HSN:       meta.EffectiveHSN(),
			Quantity:  li.Quantity,
			Rate:      li.Price.StringFixed(moneyPlaces),
			Taxable:   taxable.StringFixed(moneyPlaces),
			GSTRate:   gstRate.StringFixed(moneyPlaces),
			TaxAmount: taxAmount.StringFixed(moneyPlaces),
		})
	}

	totalTaxable := sumTaxable.Round(moneyPlaces)
	totalTax := sumTax.Round(moneyPlaces)
	total := totalTaxable.Add(totalTax).Round(moneyPlaces)

	return entities.Invoice{
		Seller: seller,
		Buyer:  buyerFromOrder(order),
		Items:  items,
		Totals: entities.InvoiceTotals{
			Taxable: totalTaxable.StringFixed(moneyPlaces),
			Tax:     totalTax.StringFixed(moneyPlaces),
			Total:   total.StringFixed(moneyPlaces),
		},
		InvoiceNumber: NewInvoiceNumber(now),
		Date:          formatInvoiceDate(order.CreatedAt, loc),
		OrderName:     order.Name,
		PlaceOfSupply: placeOfSupply(order),
	}
}

// NewInvoiceNumber derives the invoice number from the wall clock. Two
// invoices generated in the same millisecond share a number.
func NewInvoiceNumber(now time.Time) string {
	return invoiceNumberPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

func buyerFromOrder(order entities.Order) entities.Party {
	b := order.BillingAddress
	if b == nil {
		return entities.Party{Name: order.Email}
	}

	name := b.Name
	if name == "" {
		name = order.Email
	}
	// Empty parts are kept so the separators stay in place.
	return entities.Party{
		Name:    name,
		Address: b.Address1 + " " + b.City + " " + b.Province,
	}
}

func placeOfSupply(order entities.Order) string {
	if order.ShippingAddress == nil {
		return ""
	}
	return order.ShippingAddress.Province
}

func formatInvoiceDate(createdAt time.Time, loc *time.Location) string {
	if createdAt.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return createdAt.In(loc).Format(invoiceDateLayout)
}
