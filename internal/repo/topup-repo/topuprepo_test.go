package topuprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/angelpay/topup/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_CreateTopup(t *testing.T) {
	repo, mock := NewMock(t)

	topup := &domain.Topup{
		UserID:       1,
		Currency:     domain.CurrencyBR,
		Amount:       decimal.RequireFromString("499.00"),
		Fee:          decimal.RequireFromString("1.00"),
		Source:       domain.TopupSourceCard,
		BalanceAfter: decimal.RequireFromString("599.00"),
		ProcessedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("saves topup", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO topups`)).
			WithArgs(topup.UserID, topup.Currency, topup.Amount, topup.Fee,
				topup.Source, topup.BalanceAfter, topup.ProcessedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

		saved, err := repo.CreateTopup(context.Background(), topup)
		assert.NoError(t, err)
		assert.Equal(t, 3, saved.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO topups`)).
			WithArgs(topup.UserID, topup.Currency, topup.Amount, topup.Fee,
				topup.Source, topup.BalanceAfter, topup.ProcessedAt).
			WillReturnError(errors.New("database error"))

		_, err := repo.CreateTopup(context.Background(), topup)
		assert.Error(t, err)
	})
}

func TestRepository_GetTopupsByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("returns topups", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "currency", "amount", "fee", "source", "balance_after", "processed_at"}).
			AddRow(1, 1, domain.CurrencyPH, decimal.RequireFromString("99.80"), decimal.RequireFromString("0.20"),
				domain.TopupSourceCard, decimal.RequireFromString("99.80"), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).
			AddRow(2, 1, domain.CurrencyPH, decimal.RequireFromString("50"), decimal.Zero,
				domain.TopupSourceAdmin, decimal.RequireFromString("149.80"), time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
		mock.ExpectQuery(`SELECT (.+) FROM topups WHERE user_id = \$1`).
			WithArgs(1).
			WillReturnRows(rows)

		topups, err := repo.GetTopupsByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, topups, 2)
		assert.Equal(t, domain.TopupSourceAdmin, topups[1].Source)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM topups WHERE user_id = \$1`).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetTopupsByUserID(context.Background(), 1)
		assert.Error(t, err)
	})
}
