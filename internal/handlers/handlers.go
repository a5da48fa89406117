package handlers

import (
	"net/http"

	_ "github.com/angelpay/topup/docs"
	adminhandlers "github.com/angelpay/topup/internal/handlers/admin"
	authhandlers "github.com/angelpay/topup/internal/handlers/auth"
	balancehandlers "github.com/angelpay/topup/internal/handlers/balance"
	ordershandlers "github.com/angelpay/topup/internal/handlers/orders"
	"github.com/angelpay/topup/internal/service"
	"github.com/angelpay/topup/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	SubmitBulkOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Topup(w http.ResponseWriter, r *http.Request)
	GetTopups(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	OrderHandler   OrderHandler
	BalanceHandler BalanceHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		AdminHandler:   adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.SubmitBulkOrder)
				r.Get("/", h.OrderHandler.GetOrders)
			})
			r.Get("/role", h.OrderHandler.GetRole)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Post("/topup", h.BalanceHandler.Topup)
			r.Get("/topups", h.BalanceHandler.GetTopups)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Post("/balance/adjust", h.AdminHandler.AdjustBalance)
		r.Get("/report/daily", h.AdminHandler.DailyReport)
	})

	return r
}
