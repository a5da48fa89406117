package settlementrepo

import (
	"context"
	"strconv"
	"strings"
	"time"

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

func (r *Repository) Save(ctx context.Context, settlement *domain.Settlement) error {
	query := `
        INSERT INTO settlements (id, user_id, target_id, zone_id, region, game, product_code,
            order_ids, total_cost, refunded, status, success_count, fail_count,
            balance_before, balance_after, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			settlement.ID, settlement.UserID, settlement.TargetID, settlement.ZoneID,
			settlement.Region, settlement.Game, settlement.ProductCode,
			settlement.OrderIDs, settlement.TotalCost, settlement.Refunded,
			settlement.Status, settlement.SuccessCount, settlement.FailCount,
			settlement.BalanceBefore, settlement.BalanceAfter, settlement.CreatedAt)
		if err != nil {
			zap.L().Error("can't save settlement", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) FindByUserID(ctx context.Context, userID int, filters domain.SettlementFilters) ([]domain.Settlement, error) {
	var sb strings.Builder
	sb.WriteString(`
        SELECT id, user_id, target_id, zone_id, region, game, product_code,
            order_ids, total_cost, refunded, status, success_count, fail_count,
            balance_before, balance_after, created_at
        FROM settlements
        WHERE user_id = $1`)

	args := []any{userID}
	if filters.Region != "" {
		args = append(args, filters.Region)
		sb.WriteString(" AND region = $" + strconv.Itoa(len(args)))
	}
	if filters.Game != "" {
		args = append(args, filters.Game)
		sb.WriteString(" AND game = $" + strconv.Itoa(len(args)))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		sb.WriteString(" AND status = $" + strconv.Itoa(len(args)))
	}
	if filters.TargetID != "" {
		args = append(args, filters.TargetID)
		sb.WriteString(" AND target_id = $" + strconv.Itoa(len(args)))
	}
	if !filters.Day.IsZero() {
		from := time.Date(filters.Day.Year(), filters.Day.Month(), filters.Day.Day(), 0, 0, 0, 0, filters.Day.Location())
		args = append(args, from)
		sb.WriteString(" AND created_at >= $" + strconv.Itoa(len(args)))
		args = append(args, from.AddDate(0, 0, 1))
		sb.WriteString(" AND created_at < $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		zap.L().Error("can't get settlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settlements []domain.Settlement
	for rows.Next() {
		var s domain.Settlement
		err := rows.Scan(&s.ID, &s.UserID, &s.TargetID, &s.ZoneID, &s.Region, &s.Game,
			&s.ProductCode, &s.OrderIDs, &s.TotalCost, &s.Refunded, &s.Status,
			&s.SuccessCount, &s.FailCount, &s.BalanceBefore, &s.BalanceAfter, &s.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan settlement row", zap.Error(err))
			return nil, err
		}
		settlements = append(settlements, s)
	}
	return settlements, nil
}

// SummaryForDay aggregates all settlements recorded during one calendar day.
func (r *Repository) SummaryForDay(ctx context.Context, day time.Time) (*domain.DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	query := `
        SELECT
            COALESCE(SUM(CASE WHEN region = 'ph' THEN total_cost - refunded ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN region = 'br' THEN total_cost - refunded ELSE 0 END), 0),
            COUNT(*) FILTER (WHERE status = 'success'),
            COUNT(*) FILTER (WHERE status = 'partial_success'),
            COUNT(*) FILTER (WHERE status = 'failed'),
            COUNT(DISTINCT user_id)
        FROM settlements
        WHERE created_at >= $1 AND created_at < $2
    `
	summary := &domain.DailySummary{Date: from}
	err := r.db.QueryRow(ctx, query, from, to).Scan(
		&summary.SpentPH, &summary.SpentBR,
		&summary.Success, &summary.Partial, &summary.Failed,
		&summary.UsersServed)
	if err != nil {
		zap.L().Error("can't aggregate daily summary", zap.Error(err))
		return nil, err
	}
	return summary, nil
}
