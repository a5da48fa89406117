package balanceservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/angelpay/topup/internal/config"
	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/provider"
)

//go:generate mockgen -source=balanceservice.go -destination=balanceservice_mock.go -package=balanceservice

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Debit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error)
}

type TopupRepo interface {
	CreateTopup(ctx context.Context, topup *domain.Topup) (*domain.Topup, error)
	GetTopupsByUserID(ctx context.Context, userID int) ([]domain.Topup, error)
}

// CardClient is the slice of the provider used for card redemption.
type CardClient interface {
	CheckCard(ctx context.Context, code string) (*provider.CardInfo, error)
	RedeemCard(ctx context.Context, code string) error
}

var (
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrUnsupportedCardCountry = errors.New("card country not supported for top-up")
	ErrZeroAdjustment         = errors.New("adjustment amount must not be zero")
)

type Service struct {
	balanceRepo BalanceRepo
	topupRepo   TopupRepo
	cards       CardClient
	feePercent  decimal.Decimal
}

func New(cfg *config.Config, balanceRepo BalanceRepo, topupRepo TopupRepo, cards CardClient) *Service {
	fee, err := decimal.NewFromString(cfg.TopupFeePercent)
	if err != nil {
		zap.L().Warn("invalid top-up fee percent, fee disabled", zap.String("value", cfg.TopupFeePercent))
		fee = decimal.Zero
	}
	return &Service{
		balanceRepo: balanceRepo,
		topupRepo:   topupRepo,
		cards:       cards,
		feePercent:  fee,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Debit charges one wallet and reports the balance on both sides of the
// charge. The before value is derived from the debit's own return, never
// re-read, so it stays true under concurrent spending.
func (s *Service) Debit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (before, after decimal.Decimal, err error) {
	after, err = s.balanceRepo.Debit(ctx, userID, currency, amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return decimal.Zero, decimal.Zero, ErrInsufficientBalance
		}
		zap.L().Error("failed to debit balance", zap.Int("userID", userID), zap.Error(err))
		return decimal.Zero, decimal.Zero, err
	}
	return after.Add(amount), after, nil
}

func (s *Service) Credit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	after, err := s.balanceRepo.Credit(ctx, userID, currency, amount)
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Int("userID", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return after, nil
}

// cardCurrency maps a card's issuing country to the wallet it can fund.
func cardCurrency(country string) (domain.Currency, bool) {
	switch {
	case strings.Contains(strings.ToLower(country), "brasil"),
		strings.Contains(strings.ToLower(country), "brazil"):
		return domain.CurrencyBR, true
	case strings.Contains(strings.ToLower(country), "philippines"):
		return domain.CurrencyPH, true
	default:
		return "", false
	}
}

// RedeemCard turns a provider gift card into wallet credit. The card is
// checked first so an unsupported country is caught before the card is
// consumed. The service fee is withheld from the credited amount.
func (s *Service) RedeemCard(ctx context.Context, userID int, code string) (*domain.Topup, error) {
	info, err := s.cards.CheckCard(ctx, code)
	if err != nil {
		zap.L().Warn("card check failed", zap.Error(err))
		return nil, err
	}

	amount, err := decimal.NewFromString(info.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, errors.New("card has no redeemable value")
	}

	currency, ok := cardCurrency(info.Country)
	if !ok {
		zap.L().Info("card country not supported", zap.String("country", info.Country))
		return nil, ErrUnsupportedCardCountry
	}

	if err := s.cards.RedeemCard(ctx, code); err != nil {
		zap.L().Error("card redemption failed", zap.Error(err))
		return nil, err
	}

	fee := amount.Mul(s.feePercent).Div(decimal.NewFromInt(100)).Round(2)
	net := amount.Sub(fee)

	after, err := s.Credit(ctx, userID, currency, net)
	if err != nil {
		// The card is already consumed at this point, so the failure is
		// logged loudly for manual reconciliation.
		zap.L().Error("card redeemed but credit failed",
			zap.Int("userID", userID),
			zap.String("amount", net.String()),
			zap.Error(err))
		return nil, err
	}

	topup := &domain.Topup{
		UserID:       userID,
		Currency:     currency,
		Amount:       net,
		Fee:          fee,
		Source:       domain.TopupSourceCard,
		BalanceAfter: after,
		ProcessedAt:  time.Now(),
	}
	if _, err := s.topupRepo.CreateTopup(ctx, topup); err != nil {
		zap.L().Error("failed to record topup", zap.Error(err))
		return nil, err
	}

	zap.L().Info("card redeemed",
		zap.Int("userID", userID),
		zap.String("currency", string(currency)),
		zap.String("amount", net.String()))
	return topup, nil
}

// Adjust applies a signed manual correction to one wallet. Negative amounts
// debit the wallet and fail when it would go below zero.
func (s *Service) Adjust(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (*domain.Topup, error) {
	if amount.IsZero() {
		return nil, ErrZeroAdjustment
	}

	var (
		after decimal.Decimal
		err   error
	)
	if amount.IsNegative() {
		_, after, err = s.Debit(ctx, userID, currency, amount.Neg())
	} else {
		after, err = s.Credit(ctx, userID, currency, amount)
	}
	if err != nil {
		return nil, err
	}

	topup := &domain.Topup{
		UserID:       userID,
		Currency:     currency,
		Amount:       amount,
		Fee:          decimal.Zero,
		Source:       domain.TopupSourceAdmin,
		BalanceAfter: after,
		ProcessedAt:  time.Now(),
	}
	if _, err := s.topupRepo.CreateTopup(ctx, topup); err != nil {
		zap.L().Error("failed to record adjustment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("balance adjusted",
		zap.Int("userID", userID),
		zap.String("currency", string(currency)),
		zap.String("amount", amount.String()))
	return topup, nil
}

func (s *Service) GetTopups(ctx context.Context, userID int) ([]domain.Topup, error) {
	topups, err := s.topupRepo.GetTopupsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch topups", zap.Error(err))
		return nil, err
	}
	return topups, nil
}
