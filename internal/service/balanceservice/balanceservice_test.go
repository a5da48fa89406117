package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/angelpay/topup/internal/config"
	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/provider"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo, *MockTopupRepo, *MockCardClient) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	balanceRepo := NewMockBalanceRepo(ctrl)
	topupRepo := NewMockTopupRepo(ctrl)
	cards := NewMockCardClient(ctrl)
	cfg := &config.Config{TopupFeePercent: "0.2"}
	service := New(cfg, balanceRepo, topupRepo, cards)
	return service, balanceRepo, topupRepo, cards
}

func TestService_Debit(t *testing.T) {
	ctx := context.Background()

	t.Run("derives before from the debit return", func(t *testing.T) {
		service, balanceRepo, _, _ := NewMock(t)
		amount := decimal.RequireFromString("28.50")
		balanceRepo.EXPECT().
			Debit(ctx, 1, domain.CurrencyPH, amount).
			Return(decimal.RequireFromString("71.50"), nil)

		before, after, err := service.Debit(ctx, 1, domain.CurrencyPH, amount)
		require.NoError(t, err)
		assert.True(t, before.Equal(decimal.RequireFromString("100")))
		assert.True(t, after.Equal(decimal.RequireFromString("71.50")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		service, balanceRepo, _, _ := NewMock(t)
		balanceRepo.EXPECT().
			Debit(ctx, 1, domain.CurrencyBR, gomock.Any()).
			Return(decimal.Zero, domain.ErrInsufficientFunds)

		_, _, err := service.Debit(ctx, 1, domain.CurrencyBR, decimal.RequireFromString("1000"))
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("repo error passes through", func(t *testing.T) {
		service, balanceRepo, _, _ := NewMock(t)
		balanceRepo.EXPECT().
			Debit(ctx, 1, domain.CurrencyPH, gomock.Any()).
			Return(decimal.Zero, errors.New("database error"))

		_, _, err := service.Debit(ctx, 1, domain.CurrencyPH, decimal.RequireFromString("10"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInsufficientBalance)
	})
}

func TestService_RedeemCard(t *testing.T) {
	ctx := context.Background()

	t.Run("full redemption flow", func(t *testing.T) {
		service, balanceRepo, topupRepo, cards := NewMock(t)

		cards.EXPECT().CheckCard(ctx, "CARD123").
			Return(&provider.CardInfo{Amount: "500.00", Country: "Brasil"}, nil)
		cards.EXPECT().RedeemCard(ctx, "CARD123").Return(nil)

		// 0.2% of 500.00 is 1.00, so 499.00 lands on the BR wallet.
		balanceRepo.EXPECT().
			Credit(ctx, 1, domain.CurrencyBR, decimal.RequireFromString("499.00")).
			Return(decimal.RequireFromString("599.00"), nil)
		topupRepo.EXPECT().
			CreateTopup(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, topup *domain.Topup) (*domain.Topup, error) {
				assert.Equal(t, domain.TopupSourceCard, topup.Source)
				assert.True(t, topup.Fee.Equal(decimal.RequireFromString("1.00")))
				assert.True(t, topup.BalanceAfter.Equal(decimal.RequireFromString("599.00")))
				return topup, nil
			})

		topup, err := service.RedeemCard(ctx, 1, "CARD123")
		require.NoError(t, err)
		assert.True(t, topup.Amount.Equal(decimal.RequireFromString("499.00")))
		assert.Equal(t, domain.CurrencyBR, topup.Currency)
	})

	t.Run("philippines card credits PH wallet", func(t *testing.T) {
		service, balanceRepo, topupRepo, cards := NewMock(t)

		cards.EXPECT().CheckCard(ctx, "CARD456").
			Return(&provider.CardInfo{Amount: "100.00", Country: "Philippines"}, nil)
		cards.EXPECT().RedeemCard(ctx, "CARD456").Return(nil)
		balanceRepo.EXPECT().
			Credit(ctx, 2, domain.CurrencyPH, decimal.RequireFromString("99.80")).
			Return(decimal.RequireFromString("99.80"), nil)
		topupRepo.EXPECT().CreateTopup(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, topup *domain.Topup) (*domain.Topup, error) {
				return topup, nil
			})

		topup, err := service.RedeemCard(ctx, 2, "CARD456")
		require.NoError(t, err)
		assert.Equal(t, domain.CurrencyPH, topup.Currency)
	})

	t.Run("unsupported country is caught before redemption", func(t *testing.T) {
		service, _, _, cards := NewMock(t)

		cards.EXPECT().CheckCard(ctx, "CARD789").
			Return(&provider.CardInfo{Amount: "100.00", Country: "Japan"}, nil)
		// No RedeemCard expectation: the card must stay untouched.

		_, err := service.RedeemCard(ctx, 1, "CARD789")
		assert.ErrorIs(t, err, ErrUnsupportedCardCountry)
	})

	t.Run("invalid card", func(t *testing.T) {
		service, _, _, cards := NewMock(t)

		cards.EXPECT().CheckCard(ctx, "BAD").
			Return(nil, &provider.CardError{Message: "Invalid code."})

		_, err := service.RedeemCard(ctx, 1, "BAD")
		var cardErr *provider.CardError
		assert.ErrorAs(t, err, &cardErr)
	})

	t.Run("redeemed card with failed credit surfaces the error", func(t *testing.T) {
		service, balanceRepo, _, cards := NewMock(t)

		cards.EXPECT().CheckCard(ctx, "CARD123").
			Return(&provider.CardInfo{Amount: "500.00", Country: "Brasil"}, nil)
		cards.EXPECT().RedeemCard(ctx, "CARD123").Return(nil)
		balanceRepo.EXPECT().
			Credit(ctx, 1, domain.CurrencyBR, gomock.Any()).
			Return(decimal.Zero, errors.New("database error"))

		_, err := service.RedeemCard(ctx, 1, "CARD123")
		assert.Error(t, err)
	})
}

func TestService_Adjust(t *testing.T) {
	ctx := context.Background()

	t.Run("positive adjustment credits", func(t *testing.T) {
		service, balanceRepo, topupRepo, _ := NewMock(t)

		balanceRepo.EXPECT().
			Credit(ctx, 1, domain.CurrencyPH, decimal.RequireFromString("50")).
			Return(decimal.RequireFromString("150"), nil)
		topupRepo.EXPECT().CreateTopup(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, topup *domain.Topup) (*domain.Topup, error) {
				assert.Equal(t, domain.TopupSourceAdmin, topup.Source)
				assert.True(t, topup.Fee.IsZero())
				return topup, nil
			})

		topup, err := service.Adjust(ctx, 1, domain.CurrencyPH, decimal.RequireFromString("50"))
		require.NoError(t, err)
		assert.True(t, topup.BalanceAfter.Equal(decimal.RequireFromString("150")))
	})

	t.Run("negative adjustment debits", func(t *testing.T) {
		service, balanceRepo, topupRepo, _ := NewMock(t)

		balanceRepo.EXPECT().
			Debit(ctx, 1, domain.CurrencyBR, decimal.RequireFromString("30")).
			Return(decimal.RequireFromString("70"), nil)
		topupRepo.EXPECT().CreateTopup(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, topup *domain.Topup) (*domain.Topup, error) {
				return topup, nil
			})

		topup, err := service.Adjust(ctx, 1, domain.CurrencyBR, decimal.RequireFromString("-30"))
		require.NoError(t, err)
		assert.True(t, topup.Amount.IsNegative())
		assert.True(t, topup.BalanceAfter.Equal(decimal.RequireFromString("70")))
	})

	t.Run("negative adjustment cannot overdraw", func(t *testing.T) {
		service, balanceRepo, _, _ := NewMock(t)

		balanceRepo.EXPECT().
			Debit(ctx, 1, domain.CurrencyBR, decimal.RequireFromString("500")).
			Return(decimal.Zero, domain.ErrInsufficientFunds)

		_, err := service.Adjust(ctx, 1, domain.CurrencyBR, decimal.RequireFromString("-500"))
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("zero adjustment rejected", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.Adjust(ctx, 1, domain.CurrencyPH, decimal.Zero)
		assert.ErrorIs(t, err, ErrZeroAdjustment)
	})
}

func TestService_GetTopups(t *testing.T) {
	ctx := context.Background()
	service, _, topupRepo, _ := NewMock(t)

	expected := []domain.Topup{{ID: 1, UserID: 1, Source: domain.TopupSourceCard}}
	topupRepo.EXPECT().GetTopupsByUserID(ctx, 1).Return(expected, nil)

	topups, err := service.GetTopups(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, expected, topups)
}
