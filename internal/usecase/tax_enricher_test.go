package usecase

import (
	"context"
	"errors"
	"testing"

	"gst_invoice/internal/domain/entities"
	mock_interfaces "gst_invoice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTaxEnricher_Lookup(t *testing.T) {
	t.Run("empty product id skips gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICommerceGateway(ctrl)
		e := NewTaxEnricher(gw, 1)

		if m := e.Lookup(context.Background(), ""); m.Found() {
			t.Fatalf("expected no metadata, got %+v", m)
		}
	})

	t.Run("gateway error yields defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICommerceGateway(ctrl)
		e := NewTaxEnricher(gw, 1)

		gw.EXPECT().ListProductMetafields(gomock.Any(), "42").Return(nil, errors.New("502 bad gateway"))

		m := e.Lookup(context.Background(), "42")
		if m.Found() || m.EffectiveRate().String() != "18" || m.EffectiveHSN() != "" {
			t.Fatalf("expected defaults, got %+v", m)
		}
	})

	t.Run("metafields found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICommerceGateway(ctrl)
		e := NewTaxEnricher(gw, 1)

		gw.EXPECT().ListProductMetafields(gomock.Any(), "42").Return([]entities.Metafield{
			{Namespace: "gst", Key: "hsn", Value: "6109"},
			{Namespace: "gst", Key: "rate", Value: "5"},
		}, nil)

		m := e.Lookup(context.Background(), "42")
		if m.EffectiveHSN() != "6109" || m.EffectiveRate().String() != "5" {
			t.Fatalf("unexpected metadata: %+v", m)
		}
	})
}

func TestTaxEnricher_EnrichPreservesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockICommerceGateway(ctrl)
	e := NewTaxEnricher(gw, 3)

	rates := map[string]string{"1": "5", "2": "12", "3": "28", "4": "18"}
	gw.EXPECT().ListProductMetafields(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, productID string) ([]entities.Metafield, error) {
			if productID == "3" {
				return nil, errors.New("timeout")
			}
			return []entities.Metafield{{Namespace: "gst", Key: "rate", Value: rates[productID]}}, nil
		},
	).Times(4)

	items := []entities.LineItem{
		{ProductID: "1"}, {ProductID: ""}, {ProductID: "2"}, {ProductID: "3"}, {ProductID: "4"},
	}
	got := e.Enrich(context.Background(), items)

	if len(got) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(got))
	}
	want := []string{"5", "18", "12", "18", "18"}
	for i, w := range want {
		if got[i].EffectiveRate().String() != w {
			t.Fatalf("item %d: expected rate %s, got %s", i, w, got[i].EffectiveRate().String())
		}
	}
	if got[1].Found() || got[3].Found() {
		t.Fatalf("expected custom item and failed lookup to have no metadata")
	}
}
