package entities

import (
	"regexp"

	"github.com/shopspring/decimal"
)

const (
	GSTMetafieldNamespace = "gst"
	GSTMetafieldHSNKey    = "hsn"
	GSTMetafieldRateKey   = "rate"
)

// DefaultGSTRate applies when a product has no usable rate metafield.
var DefaultGSTRate = decimal.NewFromInt(18)

// TaxMetadata is the result of a product tax lookup.
//
// A zero value means nothing was found; callers apply defaults through
// EffectiveRate and EffectiveHSN.
type TaxMetadata struct {
	HSN     string
	HasHSN  bool
	Rate    decimal.Decimal
	HasRate bool
}

func (m TaxMetadata) Found() bool {
	return m.HasHSN || m.HasRate
}

func (m TaxMetadata) EffectiveRate() decimal.Decimal {
	if m.HasRate {
		return m.Rate
	}
	return DefaultGSTRate
}

func (m TaxMetadata) EffectiveHSN() string {
	if m.HasHSN {
		return m.HSN
	}
	return ""
}

// TaxMetadataFromMetafields picks the gst.hsn and gst.rate entries. A rate
// value is accepted when it starts with a number ("12", "12.5%", " 5 ");
// anything else leaves the rate unset.
func TaxMetadataFromMetafields(mfs []Metafield) TaxMetadata {
	var m TaxMetadata
	hsnSeen, rateSeen := false, false
	for _, mf := range mfs {
		if mf.Namespace != GSTMetafieldNamespace {
			continue
		}
		switch mf.Key {
		case GSTMetafieldHSNKey:
			if !hsnSeen {
				hsnSeen = true
				m.HSN, m.HasHSN = mf.Value, true
			}
		case GSTMetafieldRateKey:
			if !rateSeen {
				rateSeen = true
				if rate, ok := parseLeadingDecimal(mf.Value); ok {
					m.Rate, m.HasRate = rate, true
				}
			}
		}
	}
	return m
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func parseLeadingDecimal(s string) (decimal.Decimal, bool) {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r') {
		s = s[1:]
	}
	match := leadingNumber.FindString(s)
	if match == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
