package usecase

import (
	"context"
	"log"

	"gst_invoice/internal/domain/entities"
	"gst_invoice/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

const defaultEnrichConcurrency = 4

// TaxEnricher resolves GST metadata for order line items.
//
// Lookup failures are not errors here: a product whose metafields cannot be
// read is treated as having none, so the defaults apply.
type TaxEnricher struct {
	gateway     interfaces.ICommerceGateway
	concurrency int
}

func NewTaxEnricher(gateway interfaces.ICommerceGateway, concurrency int) *TaxEnricher {
	if concurrency <= 0 {
		concurrency = defaultEnrichConcurrency
	}
	return &TaxEnricher{gateway: gateway, concurrency: concurrency}
}

// Lookup returns the tax metadata of one product.
func (e *TaxEnricher) Lookup(ctx context.Context, productID string) entities.TaxMetadata {
	if productID == "" {
		return entities.TaxMetadata{}
	}

	mfs, err := e.gateway.ListProductMetafields(ctx, productID)
	if err != nil {
		log.Printf("[invoice][enricher] metafields lookup failed product_id=%s err=%v; using defaults", productID, err)
		return entities.TaxMetadata{}
	}
	return entities.TaxMetadataFromMetafields(mfs)
}

// Enrich looks up every line item in parallel. The result is index-aligned
// with items.
func (e *TaxEnricher) Enrich(ctx context.Context, items []entities.LineItem) []entities.TaxMetadata {
	out := make([]entities.TaxMetadata, len(items))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, li := range items {
		if li.ProductID == "" {
			continue
		}
		i, li := i, li
		g.Go(func() error {
			out[i] = e.Lookup(ctx, li.ProductID)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
