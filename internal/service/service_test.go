package service

import (
	"testing"

	"github.com/angelpay/topup/internal/catalog"
	"github.com/angelpay/topup/internal/config"
	"github.com/angelpay/topup/internal/provider"
	"github.com/angelpay/topup/internal/repo"
	"github.com/angelpay/topup/internal/service/authservice"
	"github.com/angelpay/topup/internal/service/balanceservice"
	"github.com/angelpay/topup/internal/service/orderservice"
	"github.com/angelpay/topup/internal/service/reportservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockSettlementRepo := orderservice.NewMockSettlementRepo(ctrl)
	mockSummaryRepo := reportservice.NewMockSummaryRepo(ctrl)
	mockBalanceRepo := balanceservice.NewMockBalanceRepo(ctrl)
	mockTopupRepo := balanceservice.NewMockTopupRepo(ctrl)
	mockProvider := provider.NewMockClientI(ctrl)

	repos := &repo.Repositories{
		UserRepo:       mockUserRepo,
		SettlementRepo: mockSettlementRepo,
		SummaryRepo:    mockSummaryRepo,
		BalanceRepo:    mockBalanceRepo,
		TopupRepo:      mockTopupRepo,
	}

	cat, err := catalog.New()
	require.NoError(t, err)

	cfg := &config.Config{TopupFeePercent: "0.2"}
	services := New(cfg, repos, cat, mockProvider)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.BalanceService)
	assert.NotNil(t, services.AdminService)
}
