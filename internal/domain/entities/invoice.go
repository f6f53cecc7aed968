package entities

// Invoice is the request-scoped view model handed to the invoice template.
//
// Monetary fields are already formatted with exactly two decimals.
type Invoice struct {
	Seller        Party
	Buyer         Party
	Items         []InvoiceItem
	Totals        InvoiceTotals
	InvoiceNumber string
	Date          string
	OrderName     string
	PlaceOfSupply string
}

// Party is a seller or buyer block. Buyer GSTIN is always empty: B2B
// identifiers are not collected at checkout.
type Party struct {
	Name    string
	Address string
	GSTIN   string
}

type InvoiceItem struct {
	Title     string
	HSN       string
	Quantity  int
	Rate      string
	Taxable   string
	GSTRate   string
	TaxAmount string
}

type InvoiceTotals struct {
	Taxable string
	Tax     string
	Total   string
}

// Filename is the name the rendered PDF is stored and served under.
func (i Invoice) Filename() string {
	return i.InvoiceNumber + ".pdf"
}

// RenderedInvoice is the outcome of one invoice generation: the view model,
// the printed PDF and where it was stored.
type RenderedInvoice struct {
	Invoice  Invoice
	PDF      []byte
	Location string
}
