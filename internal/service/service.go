package service

import (
	"github.com/angelpay/topup/internal/handlers/admin"
	"github.com/angelpay/topup/internal/handlers/auth"
	"github.com/angelpay/topup/internal/handlers/balance"
	"github.com/angelpay/topup/internal/handlers/orders"

	pkgauth "github.com/angelpay/topup/pkg/auth"

	"github.com/angelpay/topup/internal/catalog"
	"github.com/angelpay/topup/internal/config"
	"github.com/angelpay/topup/internal/provider"
	"github.com/angelpay/topup/internal/repo"
	adminservice "github.com/angelpay/topup/internal/service/adminservice"
	authservice "github.com/angelpay/topup/internal/service/authservice"
	balanceservice "github.com/angelpay/topup/internal/service/balanceservice"
	orderservice "github.com/angelpay/topup/internal/service/orderservice"
	reportservice "github.com/angelpay/topup/internal/service/reportservice"
)

type Services struct {
	AuthService    auth.Service
	OrderService   orders.Service
	BalanceService balance.Service
	AdminService   admin.Service
}

func New(cfg *config.Config, repo *repo.Repositories, cat *catalog.Catalog, providerClient provider.ClientI) *Services {
	balanceService := balanceservice.New(cfg, repo.BalanceRepo, repo.TopupRepo, providerClient)
	orderService := orderservice.New(cfg, cat, providerClient, balanceService, repo.SettlementRepo)
	authService := authservice.New(repo.UserRepo, balanceService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	reportService := reportservice.New(repo.SummaryRepo, providerClient)
	adminService := adminservice.New(authService, balanceService, reportService)

	return &Services{
		AuthService:    authService,
		OrderService:   orderService,
		BalanceService: balanceService,
		AdminService:   adminService,
	}
}
