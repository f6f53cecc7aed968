package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gst_invoice/internal/domain/entities"
	"gst_invoice/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderFetch     = errors.New("order fetch failed")
	ErrInvoiceRender  = errors.New("invoice render failed")
	ErrInvoicePersist = errors.New("invoice persist failed")
)

// IInvoiceUseCase generates the GST invoice of a single order.
type IInvoiceUseCase interface {
	GenerateInvoice(ctx context.Context, orderID string) (entities.RenderedInvoice, error)
}

// InvoiceOptions carries the process-wide settings the use case needs.
type InvoiceOptions struct {
	Seller            entities.Party
	Location          *time.Location
	EnrichConcurrency int
}

type InvoiceUseCase struct {
	commerce interfaces.ICommerceGateway
	enricher *TaxEnricher
	html     interfaces.IHTMLRenderer
	pdf      interfaces.IPDFRenderer
	storage  interfaces.IInvoiceStorage
	seller   entities.Party
	location *time.Location
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	commerce interfaces.ICommerceGateway,
	html interfaces.IHTMLRenderer,
	pdf interfaces.IPDFRenderer,
	storage interfaces.IInvoiceStorage,
	opts InvoiceOptions,
) *InvoiceUseCase {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &InvoiceUseCase{
		commerce: commerce,
		enricher: NewTaxEnricher(commerce, opts.EnrichConcurrency),
		html:     html,
		pdf:      pdf,
		storage:  storage,
		seller:   opts.Seller,
		location: loc,
		now:      time.Now,
	}
}

func (u *InvoiceUseCase) GenerateInvoice(ctx context.Context, orderID string) (entities.RenderedInvoice, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.RenderedInvoice{}, ErrInvalidOrderID
	}
	log.Printf("[invoice][usecase] generate start order_id=%s", orderID)

	order, err := u.commerce.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("[invoice][usecase] order fetch failed order_id=%s err=%v", orderID, err)
		return entities.RenderedInvoice{}, fmt.Errorf("%w: %w", ErrOrderFetch, err)
	}
	log.Printf("[invoice][usecase] order loaded order_id=%s name=%s line_items=%d", orderID, order.Name, len(order.LineItems))

	taxes := u.enricher.Enrich(ctx, order.LineItems)
	inv := BuildInvoice(order, taxes, u.seller, u.location, u.now())
	log.Printf("[invoice][usecase] invoice computed order_id=%s invoice_number=%s total=%s", orderID, inv.InvoiceNumber, inv.Totals.Total)

	html, err := u.html.RenderHTML(inv)
	if err != nil {
		log.Printf("[invoice][usecase] html render failed invoice_number=%s err=%v", inv.InvoiceNumber, err)
		return entities.RenderedInvoice{}, fmt.Errorf("%w: %w", ErrInvoiceRender, err)
	}

	pdf, err := u.pdf.RenderPDF(ctx, html)
	if err != nil {
		log.Printf("[invoice][usecase] pdf render failed invoice_number=%s err=%v", inv.InvoiceNumber, err)
		return entities.RenderedInvoice{}, fmt.Errorf("%w: %w", ErrInvoiceRender, err)
	}

	location, err := u.storage.Save(ctx, inv.Filename(), pdf)
	if err != nil {
		log.Printf("[invoice][usecase] persist failed invoice_number=%s err=%v", inv.InvoiceNumber, err)
		return entities.RenderedInvoice{}, fmt.Errorf("%w: %w", ErrInvoicePersist, err)
	}
	log.Printf("[invoice][usecase] generate success order_id=%s invoice_number=%s bytes=%d location=%s", orderID, inv.InvoiceNumber, len(pdf), location)

	return entities.RenderedInvoice{Invoice: inv, PDF: pdf, Location: location}, nil
}
