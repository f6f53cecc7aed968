package interfaces

import (
	"context"
	"gst_invoice/internal/domain/entities"
)

// ICommerceGateway abstracts the commerce platform's Admin API (Shopify).
//
// GetOrder failures must reach the caller. ListProductMetafields failures are
// reported too; the tax enricher decides to swallow them.
type ICommerceGateway interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListProductMetafields(ctx context.Context, productID string) ([]entities.Metafield, error)
}
