package provider

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/angelpay/topup/internal/config"
	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/pkg/clients"
)

func newTestClient(t *testing.T) (*Client, *clients.MockHTTPClientI, *clients.MockHTTPClientI) {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		ProviderPHAddress:   "https://provider.test/ph",
		ProviderBRAddress:   "https://provider.test/br",
		ProviderCardAddress: "https://provider.test",
		ProviderUID:         "1001",
		ProviderEmail:       "ops@example.com",
		ProviderKey:         "secret",
	}
	c := NewClient(cfg)

	orders := clients.NewMockHTTPClientI(ctrl)
	lookups := clients.NewMockHTTPClientI(ctrl)
	c.SetOrderClient(orders)
	c.SetLookupClient(lookups)
	return c, orders, lookups
}

func TestSign(t *testing.T) {
	// The signature covers the sorted parameters and the secret, hashed
	// twice, so any change to either must change the output.
	a := sign(map[string]string{"b": "2", "a": "1"}, "key")
	b := sign(map[string]string{"a": "1", "b": "2"}, "key")
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)

	c := sign(map[string]string{"a": "1", "b": "2"}, "otherkey")
	assert.NotEqual(t, a, c)

	d := sign(map[string]string{"a": "1", "b": "3"}, "key")
	assert.NotEqual(t, a, d)
}

func TestClient_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), "https://provider.test/ph/smilecoin/api/createorder", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, form url.Values) (int, []byte, error) {
				assert.Equal(t, "12345", form.Get("userid"))
				assert.Equal(t, "2001", form.Get("zoneid"))
				assert.Equal(t, "mobilelegends", form.Get("product"))
				assert.Equal(t, "213", form.Get("productid"))
				assert.NotEmpty(t, form.Get("sign"))
				assert.NotEmpty(t, form.Get("time"))
				return http.StatusOK, []byte(`{"status":200,"order_id":"S1-777"}`), nil
			})

		orderID, err := c.CreateOrder(ctx, domain.RegionPH, domain.GameMLBB, "12345", "2001", "213")
		require.NoError(t, err)
		assert.Equal(t, "S1-777", orderID)
	})

	t.Run("zone omitted when empty", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), "https://provider.test/br/smilecoin/api/createorder", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, form url.Values) (int, []byte, error) {
				_, present := form["zoneid"]
				assert.False(t, present)
				assert.Equal(t, "bigo", form.Get("product"))
				return http.StatusOK, []byte(`{"status":200,"order_id":"S1-778"}`), nil
			})

		_, err := c.CreateOrder(ctx, domain.RegionBR, domain.GameBIGO, "777", "", "16081")
		require.NoError(t, err)
	})

	t.Run("provider rejection", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":500,"message":"Award failure"}`), nil)

		_, err := c.CreateOrder(ctx, domain.RegionPH, domain.GameMLBB, "12345", "2001", "213")
		var orderErr *OrderError
		require.ErrorAs(t, err, &orderErr)
		assert.Equal(t, "Award failure", orderErr.Message)
	})

	t.Run("transport error", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, nil, errors.New("connection refused"))

		_, err := c.CreateOrder(ctx, domain.RegionPH, domain.GameMLBB, "12345", "2001", "213")
		require.Error(t, err)
		var orderErr *OrderError
		assert.False(t, errors.As(err, &orderErr))
	})
}

func TestClient_GetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c, _, lookups := newTestClient(t)
		lookups.EXPECT().
			PostForm(gomock.Any(), "https://provider.test/ph/smilecoin/api/getrole", gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":200,"username":"PlayerOne"}`), nil)

		username, err := c.GetRole(ctx, domain.GameMLBB, "12345", "2001", "213")
		require.NoError(t, err)
		assert.Equal(t, "PlayerOne", username)
	})

	t.Run("not found", func(t *testing.T) {
		c, _, lookups := newTestClient(t)
		lookups.EXPECT().
			PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":404,"message":"role not found"}`), nil)

		_, err := c.GetRole(ctx, domain.GameMLBB, "12345", "2001", "213")
		assert.ErrorContains(t, err, "role not found")
	})
}

func TestClient_QueryPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("numeric points", func(t *testing.T) {
		c, _, lookups := newTestClient(t)
		lookups.EXPECT().
			PostForm(gomock.Any(), "https://provider.test/br/smilecoin/api/querypoints", gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":200,"smile_points":"15230.50"}`), nil)

		points, err := c.QueryPoints(ctx, domain.RegionBR, domain.GameMLBB)
		require.NoError(t, err)
		assert.Equal(t, "15230.50", points)
	})

	t.Run("error status", func(t *testing.T) {
		c, _, lookups := newTestClient(t)
		lookups.EXPECT().
			PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":403}`), nil)

		_, err := c.QueryPoints(ctx, domain.RegionPH, domain.GameMCGG)
		assert.Error(t, err)
	})
}

func TestClient_CheckCard(t *testing.T) {
	ctx := context.Background()

	t.Run("valid card", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), "https://provider.test/smilecard/pay/checkcard", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, form url.Values) (int, []byte, error) {
				assert.Equal(t, "CARD123", form.Get("sec"))
				return http.StatusOK, []byte(`{"code":200,"info":"500.00","country":"Brasil（BR）"}`), nil
			})

		info, err := c.CheckCard(ctx, "CARD123")
		require.NoError(t, err)
		assert.Equal(t, "500.00", info.Amount)
		assert.Equal(t, "Brasil", info.Country)
	})

	t.Run("invalid card", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"code":400,"message":"Invalid code."}`), nil)

		_, err := c.CheckCard(ctx, "BAD")
		var cardErr *CardError
		require.ErrorAs(t, err, &cardErr)
		assert.Equal(t, "Invalid code.", cardErr.Message)
	})

	t.Run("html response", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`<html>login</html>`), nil)

		_, err := c.CheckCard(ctx, "CARD123")
		assert.ErrorContains(t, err, "non-JSON")
	})
}

func TestClient_RedeemCard(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), "https://provider.test/smilecard/pay/payajax", gomock.Any()).
			Return(http.StatusOK, []byte(`{"code":200}`), nil)

		assert.NoError(t, c.RedeemCard(ctx, "CARD123"))
	})

	t.Run("failure", func(t *testing.T) {
		c, orders, _ := newTestClient(t)
		orders.EXPECT().
			PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"code":400,"message":"Already used."}`), nil)

		err := c.RedeemCard(ctx, "CARD123")
		assert.ErrorContains(t, err, "Already used.")
	})
}

func TestCleanCountry(t *testing.T) {
	assert.Equal(t, "Brasil", cleanCountry("Brasil（BR）"))
	assert.Equal(t, "Philippines", cleanCountry("Philippines"))
	assert.Equal(t, "Unknown", cleanCountry(""))
}
