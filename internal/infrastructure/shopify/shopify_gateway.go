package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gst_invoice/internal/domain/entities"
	"gst_invoice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	accessTokenHeader = "X-Shopify-Access-Token"
	maxErrorBody      = 2048
)

var (
	ErrMissingAccessToken = errors.New("missing SHOPIFY_ACCESS_TOKEN")
	ErrMissingBaseURL     = errors.New("missing shopify base url")
	ErrUnexpectedStatus   = errors.New("shopify unexpected status")
	ErrMalformedResponse  = errors.New("shopify malformed response")
)

// ShopifyGateway reads orders and product metafields from the Shopify Admin
// REST API using a static access token.
type ShopifyGateway struct {
	baseURL     string
	apiVersion  string
	accessToken string
	client      *http.Client
}

var _ interfaces.ICommerceGateway = (*ShopifyGateway)(nil)

func NewShopifyGateway(baseURL, apiVersion, accessToken string, timeout time.Duration) (*ShopifyGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingAccessToken
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	return &ShopifyGateway{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiVersion:  apiVersion,
		accessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
	}, nil
}

type orderEnvelope struct {
	Order *orderDTO `json:"order"`
}

type orderDTO struct {
	ID              json.Number   `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	CreatedAt       time.Time     `json:"created_at"`
	BillingAddress  *addressDTO   `json:"billing_address"`
	ShippingAddress *addressDTO   `json:"shipping_address"`
	LineItems       []lineItemDTO `json:"line_items"`
}

type addressDTO struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	City     string `json:"city"`
	Province string `json:"province"`
}

type lineItemDTO struct {
	ProductID json.Number     `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type metafieldsEnvelope struct {
	Metafields []metafieldDTO `json:"metafields"`
}

type metafieldDTO struct {
	Namespace string          `json:"namespace"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
}

func (g *ShopifyGateway) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var env orderEnvelope
	if err := g.get(ctx, "/orders/"+url.PathEscape(orderID)+".json", &env); err != nil {
		return entities.Order{}, err
	}
	if env.Order == nil {
		return entities.Order{}, fmt.Errorf("%w: order missing from body", ErrMalformedResponse)
	}
	return toOrder(*env.Order), nil
}

func (g *ShopifyGateway) ListProductMetafields(ctx context.Context, productID string) ([]entities.Metafield, error) {
	var env metafieldsEnvelope
	if err := g.get(ctx, "/products/"+url.PathEscape(productID)+"/metafields.json", &env); err != nil {
		return nil, err
	}

	out := make([]entities.Metafield, 0, len(env.Metafields))
	for _, mf := range env.Metafields {
		out = append(out, entities.Metafield{
			Namespace: mf.Namespace,
			Key:       mf.Key,
			Value:     metafieldValue(mf.Value),
		})
	}
	return out, nil
}

func (g *ShopifyGateway) get(ctx context.Context, path string, dst any) error {
	endpoint := g.baseURL + "/admin/api/" + g.apiVersion + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(accessTokenHeader, g.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("[invoice][shopify] request failed path=%s status=%d body=%s", path, resp.StatusCode, strings.TrimSpace(string(body)))
		return fmt.Errorf("%w: status=%d path=%s", ErrUnexpectedStatus, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

func toOrder(o orderDTO) entities.Order {
	items := make([]entities.LineItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, entities.LineItem{
			ProductID: productRef(li.ProductID),
			Title:     li.Name,
			Quantity:  li.Quantity,
			Price:     li.Price,
		})
	}
	return entities.Order{
		ID:              o.ID.String(),
		Name:            o.Name,
		Email:           o.Email,
		CreatedAt:       o.CreatedAt,
		BillingAddress:  toAddress(o.BillingAddress),
		ShippingAddress: toAddress(o.ShippingAddress),
		LineItems:       items,
	}
}

// productRef returns "" for line items not backed by a product (custom items
// carry a null or zero product_id).
func productRef(id json.Number) string {
	if s := id.String(); s != "" && s != "0" {
		return s
	}
	return ""
}

func toAddress(a *addressDTO) *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{Name: a.Name, Address1: a.Address1, City: a.City, Province: a.Province}
}

// metafieldValue flattens a metafield value to text: strings are unquoted,
// numbers and other literals keep their JSON form, null becomes "".
func metafieldValue(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
	}
	return s
}
