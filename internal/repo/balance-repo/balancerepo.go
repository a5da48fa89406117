package balancerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// column maps a wallet currency to its balances column. Currencies are a
// closed set, so the result is safe to interpolate into queries.
func column(currency domain.Currency) string {
	if currency == domain.CurrencyBR {
		return "coins_br"
	}
	return "coins_ph"
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, coins_ph, coins_br
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CoinsPH, &balance.CoinsBR)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, coins_ph, coins_br)
        VALUES ($1, 0, 0)
        RETURNING id, user_id, coins_ph, coins_br
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CoinsPH, &balance.CoinsBR)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Debit subtracts amount from one wallet and returns the remaining balance.
// The subtraction and the funds check are a single conditional update, so two
// concurrent debits can never overdraw the wallet.
func (r *Repository) Debit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	col := column(currency)
	query := fmt.Sprintf(`
        UPDATE balances
        SET %[1]s = %[1]s - $2
        WHERE user_id = $1 AND %[1]s >= $2
        RETURNING %[1]s
    `, col)

	var after decimal.Decimal
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query, userID, amount).Scan(&after)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrInsufficientFunds
		}
		zap.L().Error("failed to debit balance", zap.Int("userID", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return after, nil
}

// Credit adds amount to one wallet and returns the resulting balance.
func (r *Repository) Credit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	col := column(currency)
	query := fmt.Sprintf(`
        UPDATE balances
        SET %[1]s = %[1]s + $2
        WHERE user_id = $1
        RETURNING %[1]s
    `, col)

	var after decimal.Decimal
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query, userID, amount).Scan(&after)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrBalanceNotFound
		}
		zap.L().Error("failed to credit balance", zap.Int("userID", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return after, nil
}
