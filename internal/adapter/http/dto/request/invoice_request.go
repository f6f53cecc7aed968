package request

import "strings"

// InvoiceRequest carries the path parameters of GET /invoice/:orderId.
type InvoiceRequest struct {
	OrderID string `uri:"orderId"`
}

func (r InvoiceRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}
