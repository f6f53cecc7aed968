package interfaces

import (
	"context"
	"gst_invoice/internal/domain/entities"
)

// IHTMLRenderer turns the invoice view model into an HTML document.
type IHTMLRenderer interface {
	RenderHTML(inv entities.Invoice) (string, error)
}

// IPDFRenderer prints an HTML document to PDF bytes.
type IPDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
