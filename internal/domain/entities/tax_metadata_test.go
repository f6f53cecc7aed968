package entities

import "testing"

func TestTaxMetadataFromMetafields(t *testing.T) {
	cases := []struct {
		name     string
		mfs      []Metafield
		wantHSN  string
		wantRate string
		found    bool
	}{
		{name: "nothing found", mfs: nil, wantHSN: "", wantRate: "18", found: false},
		{
			name: "both present",
			mfs: []Metafield{
				{Namespace: "gst", Key: "hsn", Value: "6109"},
				{Namespace: "gst", Key: "rate", Value: "12"},
			},
			wantHSN: "6109", wantRate: "12", found: true,
		},
		{
			name:    "other namespace ignored",
			mfs:     []Metafield{{Namespace: "custom", Key: "rate", Value: "5"}},
			wantHSN: "", wantRate: "18", found: false,
		},
		{
			name:    "unparseable rate falls back",
			mfs:     []Metafield{{Namespace: "gst", Key: "rate", Value: "n/a"}},
			wantHSN: "", wantRate: "18", found: false,
		},
		{
			name:    "leading number accepted",
			mfs:     []Metafield{{Namespace: "gst", Key: "rate", Value: " 12.5%"}},
			wantHSN: "", wantRate: "12.5", found: true,
		},
		{
			name: "first match wins",
			mfs: []Metafield{
				{Namespace: "gst", Key: "rate", Value: "5"},
				{Namespace: "gst", Key: "rate", Value: "28"},
			},
			wantHSN: "", wantRate: "5", found: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := TaxMetadataFromMetafields(tc.mfs)
			if m.EffectiveHSN() != tc.wantHSN {
				t.Fatalf("expected hsn %q, got %q", tc.wantHSN, m.EffectiveHSN())
			}
			if m.EffectiveRate().String() != tc.wantRate {
				t.Fatalf("expected rate %s, got %s", tc.wantRate, m.EffectiveRate().String())
			}
			if m.Found() != tc.found {
				t.Fatalf("expected found=%v", tc.found)
			}
		})
	}
}

func TestInvoice_Filename(t *testing.T) {
	inv := Invoice{InvoiceNumber: "INV-1700000000000"}
	if got := inv.Filename(); got != "INV-1700000000000.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}
