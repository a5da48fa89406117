package reportservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/provider"
)

type SummaryRepo interface {
	SummaryForDay(ctx context.Context, day time.Time) (*domain.DailySummary, error)
}

// DailyReport combines the settled-spend aggregate for one day with the
// current provider point balances for both regions. Point balances are
// best-effort: a provider outage leaves them empty instead of failing the
// whole report.
type DailyReport struct {
	Summary  *domain.DailySummary
	PointsPH string
	PointsBR string
}

type Service struct {
	summaries SummaryRepo
	provider  provider.ClientI
}

func New(summaries SummaryRepo, providerClient provider.ClientI) *Service {
	return &Service{
		summaries: summaries,
		provider:  providerClient,
	}
}

func (s *Service) DailyReport(ctx context.Context, day time.Time) (*DailyReport, error) {
	report := &DailyReport{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.summaries.SummaryForDay(gctx, day)
		if err != nil {
			return err
		}
		report.Summary = summary
		return nil
	})
	g.Go(func() error {
		points, err := s.provider.QueryPoints(gctx, domain.RegionPH, domain.GameMLBB)
		if err != nil {
			zap.L().Warn("can't query ph points", zap.Error(err))
			return nil
		}
		report.PointsPH = points
		return nil
	})
	g.Go(func() error {
		points, err := s.provider.QueryPoints(gctx, domain.RegionBR, domain.GameMLBB)
		if err != nil {
			zap.L().Warn("can't query br points", zap.Error(err))
			return nil
		}
		report.PointsBR = points
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("can't build daily report", zap.Error(err))
		return nil, err
	}
	return report, nil
}
