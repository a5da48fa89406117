package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/angelpay/topup/internal/config"
	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/pkg/clients"
)

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=provider

// ClientI is the fulfillment provider surface the services depend on.
type ClientI interface {
	CreateOrder(ctx context.Context, region domain.Region, game domain.Game, targetID, zoneID, componentID string) (string, error)
	GetRole(ctx context.Context, game domain.Game, targetID, zoneID, componentID string) (string, error)
	QueryPoints(ctx context.Context, region domain.Region, game domain.Game) (string, error)
	CheckCard(ctx context.Context, code string) (*CardInfo, error)
	RedeemCard(ctx context.Context, code string) error
}

// OrderError is a provider-side rejection of a createorder call. The raw
// message matters downstream: refund eligibility is decided from it.
type OrderError struct {
	Message string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("provider rejected order: %s", e.Message)
}

// CardInfo describes a checked top-up card.
type CardInfo struct {
	Amount  string
	Country string
}

// Client talks to the provider's smilecoin and smilecard APIs.
//
// Order creation goes through a plain client with no retries: a timed-out
// createorder may still have been fulfilled, and a blind retry would double
// charge the account. Read-only calls go through the retryable client.
type Client struct {
	orders   *clients.HTTPClient
	lookups  *clients.HTTPClient
	bases    map[domain.Region]string
	cardBase string
	uid      string
	email    string
	key      string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		orders:  clients.NewHTTPClient(),
		lookups: clients.NewRetryableClient(),
		bases: map[domain.Region]string{
			domain.RegionPH: cfg.ProviderPHAddress,
			domain.RegionBR: cfg.ProviderBRAddress,
		},
		cardBase: cfg.ProviderCardAddress,
		uid:      cfg.ProviderUID,
		email:    cfg.ProviderEmail,
		key:      cfg.ProviderKey,
	}
}

// SetOrderClient replaces the order transport. Used by tests.
func (c *Client) SetOrderClient(h clients.HTTPClientI) {
	c.orders.SetClient(h)
}

// SetLookupClient replaces the lookup transport. Used by tests.
func (c *Client) SetLookupClient(h clients.HTTPClientI) {
	c.lookups.SetClient(h)
}

func (c *Client) signedForm(params map[string]string) url.Values {
	params["uid"] = c.uid
	params["email"] = c.email
	params["time"] = strconv.FormatInt(time.Now().Unix(), 10)
	params["sign"] = sign(params, c.key)

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	return form
}

// CreateOrder submits one component order and returns the provider order id.
// A rejection with a provider message comes back as *OrderError.
func (c *Client) CreateOrder(ctx context.Context, region domain.Region, game domain.Game, targetID, zoneID, componentID string) (string, error) {
	base, ok := c.bases[region]
	if !ok {
		return "", fmt.Errorf("no provider endpoint for region %s", region)
	}

	params := map[string]string{
		"userid":    targetID,
		"product":   game.ProductType(),
		"productid": componentID,
	}
	if zoneID != "" {
		params["zoneid"] = zoneID
	}

	status, body, err := c.orders.PostForm(ctx, base+"/smilecoin/api/createorder", c.signedForm(params))
	if err != nil {
		return "", fmt.Errorf("createorder request: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("createorder: unexpected status %d", status)
	}

	var resp struct {
		Status  int    `json:"status"`
		OrderID string `json:"order_id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("createorder: decode response: %w", err)
	}
	if resp.Status != http.StatusOK {
		zap.L().Warn("provider rejected order",
			zap.String("region", string(region)),
			zap.String("componentID", componentID),
			zap.String("message", resp.Message))
		return "", &OrderError{Message: resp.Message}
	}
	return resp.OrderID, nil
}

// GetRole resolves the in-game username behind a target account. The provider
// serves role lookups for every region from the PH endpoint.
func (c *Client) GetRole(ctx context.Context, game domain.Game, targetID, zoneID, componentID string) (string, error) {
	params := map[string]string{
		"userid":    targetID,
		"product":   game.ProductType(),
		"productid": componentID,
	}
	if zoneID != "" {
		params["zoneid"] = zoneID
	}

	status, body, err := c.lookups.PostForm(ctx, c.bases[domain.RegionPH]+"/smilecoin/api/getrole", c.signedForm(params))
	if err != nil {
		return "", fmt.Errorf("getrole request: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("getrole: unexpected status %d", status)
	}

	var resp struct {
		Status   int    `json:"status"`
		Username string `json:"username"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("getrole: decode response: %w", err)
	}
	if resp.Status != http.StatusOK {
		return "", fmt.Errorf("getrole: %s", resp.Message)
	}
	return resp.Username, nil
}

// QueryPoints reports the remaining provider credit for one region and game.
func (c *Client) QueryPoints(ctx context.Context, region domain.Region, game domain.Game) (string, error) {
	base, ok := c.bases[region]
	if !ok {
		return "", fmt.Errorf("no provider endpoint for region %s", region)
	}

	params := map[string]string{"product": game.ProductType()}

	status, body, err := c.lookups.PostForm(ctx, base+"/smilecoin/api/querypoints", c.signedForm(params))
	if err != nil {
		return "", fmt.Errorf("querypoints request: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("querypoints: unexpected status %d", status)
	}

	// The provider returns smile_points as either a number or a string
	// depending on the account, so it is decoded loosely.
	var resp struct {
		Status int `json:"status"`
		Points any `json:"smile_points"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("querypoints: decode response: %w", err)
	}
	if resp.Status != http.StatusOK {
		return "", fmt.Errorf("querypoints: status %d", resp.Status)
	}
	return fmt.Sprint(resp.Points), nil
}
