package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/angelpay/topup/docs"
	"github.com/angelpay/topup/internal/handlers/admin"
	"github.com/angelpay/topup/internal/handlers/auth"
	"github.com/angelpay/topup/internal/handlers/balance"
	"github.com/angelpay/topup/internal/handlers/orders"
	"github.com/angelpay/topup/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		OrderService:   orders.NewMockService(ctrl),
		BalanceService: balance.NewMockService(ctrl),
		AdminService:   admin.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().SubmitBulkOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetRole(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Topup(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetTopups(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().DailyReport(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		OrderHandler:   mockOrderHandler,
		BalanceHandler: mockBalanceHandler,
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/orders", http.StatusUnauthorized},
		{"GET", "/api/user/orders", http.StatusUnauthorized},
		{"GET", "/api/user/role", http.StatusUnauthorized},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"POST", "/api/user/topup", http.StatusUnauthorized},
		{"GET", "/api/user/topups", http.StatusUnauthorized},
		{"POST", "/api/admin/balance/adjust", http.StatusUnauthorized},
		{"GET", "/api/admin/report/daily", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
