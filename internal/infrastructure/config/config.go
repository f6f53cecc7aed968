package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingShopCredentials = errors.New("missing SHOP or SHOPIFY_ACCESS_TOKEN")

const (
	defaultPort              = "3000"
	defaultInvoiceDir        = "./invoices"
	defaultSellerName        = "Your Business"
	defaultShopifyAPIVersion = "2024-10"
	defaultShopifyTimeout    = 15 * time.Second
	defaultRenderTimeout     = 60 * time.Second
	defaultEnrichConcurrency = 4
)

// Config is loaded once at startup and handed to the components that need it.
//
// Supported env vars:
//   - SHOP, SHOPIFY_ACCESS_TOKEN (required)
//   - SHOPIFY_API_VERSION (default: 2024-10)
//   - SHOPIFY_BASE_URL (default: https://$SHOP)
//   - SHOPIFY_TIMEOUT_MS (default: 15000)
//   - PORT (default: 3000)
//   - INVOICE_DIR (default: ./invoices)
//   - INVOICE_TEMPLATE (optional template file; embedded template otherwise)
//   - INVOICE_TIMEZONE (default: local zone)
//   - SELLER_NAME, SELLER_ADDRESS, SELLER_GSTIN
//   - RENDER_TIMEOUT_MS (default: 60000), CHROME_BIN (optional)
//   - ENRICH_CONCURRENCY (default: 4)
//   - INVOICE_S3_BUCKET, INVOICE_S3_PREFIX, AWS_REGION, S3_ENDPOINT (optional mirror)
type Config struct {
	Port string

	Shop              string
	AccessToken       string
	ShopifyAPIVersion string
	ShopifyBaseURL    string
	ShopifyTimeout    time.Duration

	InvoiceDir      string
	TemplatePath    string
	InvoiceLocation *time.Location

	SellerName    string
	SellerAddress string
	SellerGSTIN   string

	RenderTimeout time.Duration
	ChromeBin     string

	EnrichConcurrency int

	S3 S3Config
}

type S3Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	shop := strings.TrimSpace(os.Getenv("SHOP"))
	token := strings.TrimSpace(os.Getenv("SHOPIFY_ACCESS_TOKEN"))
	if shop == "" || token == "" {
		return Config{}, ErrMissingShopCredentials
	}

	loc := time.Local
	if tz := strings.TrimSpace(os.Getenv("INVOICE_TIMEZONE")); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INVOICE_TIMEZONE %q: %w", tz, err)
		}
		loc = l
	}

	shopifyTimeout, err := durationMSDefault("SHOPIFY_TIMEOUT_MS", defaultShopifyTimeout)
	if err != nil {
		return Config{}, err
	}
	renderTimeout, err := durationMSDefault("RENDER_TIMEOUT_MS", defaultRenderTimeout)
	if err != nil {
		return Config{}, err
	}
	concurrency, err := intDefault("ENRICH_CONCURRENCY", defaultEnrichConcurrency)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port: getenvDefault("PORT", defaultPort),

		Shop:              shop,
		AccessToken:       token,
		ShopifyAPIVersion: getenvDefault("SHOPIFY_API_VERSION", defaultShopifyAPIVersion),
		ShopifyBaseURL:    strings.TrimRight(getenvDefault("SHOPIFY_BASE_URL", "https://"+shop), "/"),
		ShopifyTimeout:    shopifyTimeout,

		InvoiceDir:      getenvDefault("INVOICE_DIR", defaultInvoiceDir),
		TemplatePath:    os.Getenv("INVOICE_TEMPLATE"),
		InvoiceLocation: loc,

		SellerName:    getenvDefault("SELLER_NAME", defaultSellerName),
		SellerAddress: os.Getenv("SELLER_ADDRESS"),
		SellerGSTIN:   os.Getenv("SELLER_GSTIN"),

		RenderTimeout: renderTimeout,
		ChromeBin:     os.Getenv("CHROME_BIN"),

		EnrichConcurrency: concurrency,

		S3: S3Config{
			Bucket:   strings.TrimSpace(os.Getenv("INVOICE_S3_BUCKET")),
			Prefix:   strings.Trim(os.Getenv("INVOICE_S3_PREFIX"), "/"),
			Region:   getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint: os.Getenv("S3_ENDPOINT"),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intDefault(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}

func durationMSDefault(key string, def time.Duration) (time.Duration, error) {
	n, err := intDefault(key, int(def/time.Millisecond))
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}
