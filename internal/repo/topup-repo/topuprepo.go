package topuprepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateTopup(ctx context.Context, topup *domain.Topup) (*domain.Topup, error) {
	query := `
		INSERT INTO topups (user_id, currency, amount, fee, source, balance_after, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, topup.UserID, topup.Currency, topup.Amount,
		topup.Fee, topup.Source, topup.BalanceAfter, topup.ProcessedAt).Scan(&topup.ID)
	if err != nil {
		zap.L().Error("can't save topup", zap.Error(err))
		return nil, err
	}
	return topup, nil
}

func (r *Repository) GetTopupsByUserID(ctx context.Context, userID int) ([]domain.Topup, error) {
	query := `
        SELECT id, user_id, currency, amount, fee, source, balance_after, processed_at
        FROM topups
        WHERE user_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch topups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var topups []domain.Topup
	for rows.Next() {
		var t domain.Topup
		err := rows.Scan(&t.ID, &t.UserID, &t.Currency, &t.Amount, &t.Fee, &t.Source, &t.BalanceAfter, &t.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan topup row", zap.Error(err))
			return nil, err
		}
		topups = append(topups, t)
	}

	return topups, nil
}
