package repo

import (
	"github.com/angelpay/topup/internal/pg"
	balancerepo "github.com/angelpay/topup/internal/repo/balance-repo"
	settlementrepo "github.com/angelpay/topup/internal/repo/settlement-repo"
	topuprepo "github.com/angelpay/topup/internal/repo/topup-repo"
	userrepo "github.com/angelpay/topup/internal/repo/user-repo"
	"github.com/angelpay/topup/internal/service/authservice"
	"github.com/angelpay/topup/internal/service/balanceservice"
	"github.com/angelpay/topup/internal/service/orderservice"
	"github.com/angelpay/topup/internal/service/reportservice"
)

type Repositories struct {
	UserRepo       authservice.Repo
	SettlementRepo orderservice.SettlementRepo
	SummaryRepo    reportservice.SummaryRepo
	BalanceRepo    balanceservice.BalanceRepo
	TopupRepo      balanceservice.TopupRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	settlementRepo := settlementrepo.New(conn, txManager)
	balanceRepo := balancerepo.New(conn, txManager)
	topupRepo := topuprepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		SettlementRepo: settlementRepo,
		SummaryRepo:    settlementRepo,
		BalanceRepo:    balanceRepo,
		TopupRepo:      topupRepo,
	}
}
