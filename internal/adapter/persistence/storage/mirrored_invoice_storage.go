package storage

import (
	"context"
	"fmt"
	"log"

	"gst_invoice/internal/usecase/interfaces"
)

// MirroredInvoiceStorage saves to a primary store, then to every mirror.
// Any failure fails the save; the primary location is returned.
type MirroredInvoiceStorage struct {
	primary interfaces.IInvoiceStorage
	mirrors []interfaces.IInvoiceStorage
}

var _ interfaces.IInvoiceStorage = (*MirroredInvoiceStorage)(nil)

func NewMirroredInvoiceStorage(primary interfaces.IInvoiceStorage, mirrors ...interfaces.IInvoiceStorage) *MirroredInvoiceStorage {
	return &MirroredInvoiceStorage{primary: primary, mirrors: mirrors}
}

func (s *MirroredInvoiceStorage) Save(ctx context.Context, filename string, pdf []byte) (string, error) {
	location, err := s.primary.Save(ctx, filename, pdf)
	if err != nil {
		return "", err
	}
	for _, m := range s.mirrors {
		mirrored, err := m.Save(ctx, filename, pdf)
		if err != nil {
			return "", fmt.Errorf("mirror %s: %w", filename, err)
		}
		log.Printf("[invoice][storage] mirrored filename=%s location=%s", filename, mirrored)
	}
	return location, nil
}
