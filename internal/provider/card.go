package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// CardError is a provider-side rejection of a card check or redemption.
type CardError struct {
	Message string
}

func (e *CardError) Error() string {
	return fmt.Sprintf("card rejected: %s", e.Message)
}

type cardResponse struct {
	Code    int    `json:"code"`
	Info    string `json:"info"`
	Country string `json:"country"`
	Message string `json:"message"`
}

func (c *Client) postCard(ctx context.Context, path, code string) (*cardResponse, error) {
	form := url.Values{}
	form.Set("sec", code)

	status, body, err := c.orders.PostForm(ctx, c.cardBase+path, form)
	if err != nil {
		return nil, fmt.Errorf("card request: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("card request: unexpected status %d", status)
	}

	var resp cardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		// The endpoint falls back to an HTML page when the session is
		// not accepted, which is not a card problem.
		return nil, errors.New("card request: non-JSON response from provider")
	}
	return &resp, nil
}

// CheckCard validates a top-up card and reports its value and issuing country
// without consuming it.
func (c *Client) CheckCard(ctx context.Context, code string) (*CardInfo, error) {
	resp, err := c.postCard(ctx, "/smilecard/pay/checkcard", code)
	if err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, &CardError{Message: resp.Message}
	}
	return &CardInfo{
		Amount:  resp.Info,
		Country: cleanCountry(resp.Country),
	}, nil
}

// RedeemCard consumes a previously checked card.
func (c *Client) RedeemCard(ctx context.Context, code string) error {
	resp, err := c.postCard(ctx, "/smilecard/pay/payajax", code)
	if err != nil {
		return err
	}
	if resp.Code != http.StatusOK {
		return &CardError{Message: resp.Message}
	}
	return nil
}

// cleanCountry strips the provider's parenthesised suffix, e.g.
// "Brasil（BR）" becomes "Brasil".
func cleanCountry(raw string) string {
	if raw == "" {
		return "Unknown"
	}
	country, _, _ := strings.Cut(raw, "（")
	return strings.TrimSpace(country)
}
