package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/provider"
)

func NewMock(t *testing.T) (*Service, *MockSummaryRepo, *provider.MockClientI) {
	ctrl := gomock.NewController(t)
	summaries := NewMockSummaryRepo(ctrl)
	providerClient := provider.NewMockClientI(ctrl)

	service := New(summaries, providerClient)
	defer ctrl.Finish()
	return service, summaries, providerClient
}

func TestDailyReport(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	summary := &domain.DailySummary{
		Date:        day,
		SpentPH:     decimal.RequireFromString("150.25"),
		SpentBR:     decimal.RequireFromString("903.10"),
		Success:     12,
		Partial:     2,
		Failed:      1,
		UsersServed: 7,
	}

	t.Run("full report", func(t *testing.T) {
		service, summaries, providerClient := NewMock(t)

		summaries.EXPECT().SummaryForDay(gomock.Any(), day).Return(summary, nil)
		providerClient.EXPECT().QueryPoints(gomock.Any(), domain.RegionPH, domain.GameMLBB).Return("1520.50", nil)
		providerClient.EXPECT().QueryPoints(gomock.Any(), domain.RegionBR, domain.GameMLBB).Return("980", nil)

		report, err := service.DailyReport(context.Background(), day)
		assert.NoError(t, err)
		assert.Equal(t, summary, report.Summary)
		assert.Equal(t, "1520.50", report.PointsPH)
		assert.Equal(t, "980", report.PointsBR)
	})

	t.Run("provider outage leaves points empty", func(t *testing.T) {
		service, summaries, providerClient := NewMock(t)

		summaries.EXPECT().SummaryForDay(gomock.Any(), day).Return(summary, nil)
		providerClient.EXPECT().QueryPoints(gomock.Any(), domain.RegionPH, domain.GameMLBB).Return("", errors.New("connection refused"))
		providerClient.EXPECT().QueryPoints(gomock.Any(), domain.RegionBR, domain.GameMLBB).Return("980", nil)

		report, err := service.DailyReport(context.Background(), day)
		assert.NoError(t, err)
		assert.Equal(t, summary, report.Summary)
		assert.Empty(t, report.PointsPH)
		assert.Equal(t, "980", report.PointsBR)
	})

	t.Run("summary error fails the report", func(t *testing.T) {
		service, summaries, providerClient := NewMock(t)

		summaries.EXPECT().SummaryForDay(gomock.Any(), day).Return(nil, errors.New("database error"))
		providerClient.EXPECT().QueryPoints(gomock.Any(), gomock.Any(), gomock.Any()).Return("0", nil).AnyTimes()

		report, err := service.DailyReport(context.Background(), day)
		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
