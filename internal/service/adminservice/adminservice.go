package adminservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/service/reportservice"
)

type UserFinder interface {
	FindUser(ctx context.Context, login string) (*domain.User, error)
}

type Wallet interface {
	Adjust(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (*domain.Topup, error)
}

type Reports interface {
	DailyReport(ctx context.Context, day time.Time) (*reportservice.DailyReport, error)
}

var ErrUserNotFound = errors.New("user not found")

type Service struct {
	users   UserFinder
	wallet  Wallet
	reports Reports
}

func New(users UserFinder, wallet Wallet, reports Reports) *Service {
	return &Service{
		users:   users,
		wallet:  wallet,
		reports: reports,
	}
}

// AdjustUserBalance credits or debits another user's wallet by login. A
// negative amount debits.
func (s *Service) AdjustUserBalance(ctx context.Context, login string, currency domain.Currency, amount decimal.Decimal) (*domain.Topup, error) {
	user, err := s.users.FindUser(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	topup, err := s.wallet.Adjust(ctx, user.ID, currency, amount)
	if err != nil {
		return nil, err
	}
	zap.L().Info("admin balance adjustment",
		zap.String("login", login),
		zap.String("currency", string(currency)),
		zap.String("amount", amount.String()))
	return topup, nil
}

func (s *Service) DailyReport(ctx context.Context, day time.Time) (*reportservice.DailyReport, error) {
	return s.reports.DailyReport(ctx, day)
}
