package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gst_invoice/internal/domain/entities"
	mock_interfaces "gst_invoice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type invoiceMocks struct {
	commerce *mock_interfaces.MockICommerceGateway
	html     *mock_interfaces.MockIHTMLRenderer
	pdf      *mock_interfaces.MockIPDFRenderer
	storage  *mock_interfaces.MockIInvoiceStorage
}

func newInvoiceUseCaseForTest(t *testing.T) (*InvoiceUseCase, invoiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := invoiceMocks{
		commerce: mock_interfaces.NewMockICommerceGateway(ctrl),
		html:     mock_interfaces.NewMockIHTMLRenderer(ctrl),
		pdf:      mock_interfaces.NewMockIPDFRenderer(ctrl),
		storage:  mock_interfaces.NewMockIInvoiceStorage(ctrl),
	}
	uc := NewInvoiceUseCase(m.commerce, m.html, m.pdf, m.storage, InvoiceOptions{
		Seller:            entities.Party{Name: "Acme Traders", Address: "Bengaluru", GSTIN: "29ABCDE1234F1Z5"},
		Location:          time.UTC,
		EnrichConcurrency: 2,
	})
	uc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return uc, m
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID:        "5001",
		Name:      "#1001",
		Email:     "buyer@example.com",
		CreatedAt: time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC),
		LineItems: []entities.LineItem{
			{ProductID: "p-1", Title: "Kurta", Quantity: 2, Price: decimal.RequireFromString("100.00")},
		},
	}
}

func TestInvoiceUseCase_GenerateInvoice_Validation(t *testing.T) {
	uc, _ := newInvoiceUseCaseForTest(t)
	_, err := uc.GenerateInvoice(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}
}

func TestInvoiceUseCase_GenerateInvoice_OrderFetchFails(t *testing.T) {
	uc, m := newInvoiceUseCaseForTest(t)
	upstream := errors.New("unexpected status 404")
	m.commerce.EXPECT().GetOrder(gomock.Any(), "5001").Return(entities.Order{}, upstream)

	_, err := uc.GenerateInvoice(context.Background(), " 5001 ")
	if !errors.Is(err, ErrOrderFetch) {
		t.Fatalf("expected ErrOrderFetch, got %v", err)
	}
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error to be wrapped, got %v", err)
	}
}

func TestInvoiceUseCase_GenerateInvoice_EnrichmentFailureUsesDefaults(t *testing.T) {
	uc, m := newInvoiceUseCaseForTest(t)
	m.commerce.EXPECT().GetOrder(gomock.Any(), "5001").Return(sampleOrder(), nil)
	m.commerce.EXPECT().ListProductMetafields(gomock.Any(), "p-1").Return(nil, errors.New("connection reset"))
	m.html.EXPECT().RenderHTML(gomock.Any()).DoAndReturn(func(inv entities.Invoice) (string, error) {
		it := inv.Items[0]
		if it.GSTRate != "18.00" || it.HSN != "" || it.TaxAmount != "36.00" {
			t.Fatalf("expected defaults, got %+v", it)
		}
		return "<html></html>", nil
	})
	m.pdf.EXPECT().RenderPDF(gomock.Any(), "<html></html>").Return([]byte("%PDF-1.4"), nil)
	m.storage.EXPECT().Save(gomock.Any(), "INV-1700000000000.pdf", []byte("%PDF-1.4")).Return("invoices/INV-1700000000000.pdf", nil)

	res, err := uc.GenerateInvoice(context.Background(), "5001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Invoice.Totals.Total != "236.00" {
		t.Fatalf("unexpected total: %s", res.Invoice.Totals.Total)
	}
}

func TestInvoiceUseCase_GenerateInvoice_Success(t *testing.T) {
	uc, m := newInvoiceUseCaseForTest(t)
	m.commerce.EXPECT().GetOrder(gomock.Any(), "5001").Return(sampleOrder(), nil)
	m.commerce.EXPECT().ListProductMetafields(gomock.Any(), "p-1").Return([]entities.Metafield{
		{Namespace: "gst", Key: "hsn", Value: "6211"},
		{Namespace: "gst", Key: "rate", Value: "12"},
	}, nil)
	m.html.EXPECT().RenderHTML(gomock.Any()).DoAndReturn(func(inv entities.Invoice) (string, error) {
		if inv.Seller.Name != "Acme Traders" || inv.Buyer.Name != "buyer@example.com" || inv.Date != "01/10/2024" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		return "<html>" + inv.InvoiceNumber + "</html>", nil
	})
	m.pdf.EXPECT().RenderPDF(gomock.Any(), "<html>INV-1700000000000</html>").Return([]byte("%PDF"), nil)
	m.storage.EXPECT().Save(gomock.Any(), "INV-1700000000000.pdf", []byte("%PDF")).Return("invoices/INV-1700000000000.pdf", nil)

	res, err := uc.GenerateInvoice(context.Background(), "5001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Invoice.InvoiceNumber != "INV-1700000000000" || string(res.PDF) != "%PDF" || res.Location != "invoices/INV-1700000000000.pdf" {
		t.Fatalf("unexpected result: %+v", res)
	}
	it := res.Invoice.Items[0]
	if it.HSN != "6211" || it.GSTRate != "12.00" || it.TaxAmount != "24.00" {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestInvoiceUseCase_GenerateInvoice_DownstreamFailures(t *testing.T) {
	t.Run("html render", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.commerce.EXPECT().GetOrder(gomock.Any(), "5001").Return(sampleOrder(), nil)
		m.commerce.EXPECT().ListProductMetafields(gomock.Any(), "p-1").Return(nil, nil)
		m.html.EXPECT().RenderHTML(gomock.Any()).Return("", errors.New("template: bad field"))

		_, err := uc.GenerateInvoice(context.Background(), "5001")
		if !errors.Is(err, ErrInvoiceRender) {
			t.Fatalf("expected ErrInvoiceRender, got %v", err)
		}
	})

	t.Run("pdf render", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.commerce.EXPECT().GetOrder(gomock.Any(), "5001").Return(sampleOrder(), nil)
		m.commerce.EXPECT().ListProductMetafields(gomock.Any(), "p-1").Return(nil, nil)
		m.html.EXPECT().RenderHTML(gomock.Any()).Return("<html></html>", nil)
		m.pdf.EXPECT().RenderPDF(gomock.Any(), gomock.Any()).Return(nil, errors.New("browser crashed"))

		_, err := uc.GenerateInvoice(context.Background(), "5001")
		if !errors.Is(err, ErrInvoiceRender) || !strings.Contains(err.Error(), "browser crashed") {
			t.Fatalf("expected ErrInvoiceRender, got %v", err)
		}
	})

	t.Run("persist", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.commerce.EXPECT().GetOrder(gomock.Any(), "5001").Return(sampleOrder(), nil)
		m.commerce.EXPECT().ListProductMetafields(gomock.Any(), "p-1").Return(nil, nil)
		m.html.EXPECT().RenderHTML(gomock.Any()).Return("<html></html>", nil)
		m.pdf.EXPECT().RenderPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		_, err := uc.GenerateInvoice(context.Background(), "5001")
		if !errors.Is(err, ErrInvoicePersist) {
			t.Fatalf("expected ErrInvoicePersist, got %v", err)
		}
	})
}
