package interfaces

import "context"

// IInvoiceStorage persists rendered invoice PDFs.
//
// Save returns the location the file was written to (path or URL).
type IInvoiceStorage interface {
	Save(ctx context.Context, filename string, pdf []byte) (string, error)
}
