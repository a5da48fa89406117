package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/dto"
	adminservice "github.com/angelpay/topup/internal/service/adminservice"
	balanceservice "github.com/angelpay/topup/internal/service/balanceservice"
	"github.com/angelpay/topup/internal/service/reportservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestAdjustBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	amount := decimal.RequireFromString("-25.5")

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful adjustment",
			body: `{"login":"target","currency":"ph","amount":"-25.5"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustUserBalance(gomock.Any(), "target", domain.CurrencyPH, amount).
					Return(&domain.Topup{
						Currency:     domain.CurrencyPH,
						Amount:       amount,
						BalanceAfter: decimal.RequireFromString("74.5"),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `not-json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown currency",
			body:         `{"login":"target","currency":"usd","amount":"10"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User not found",
			body: `{"login":"missing","currency":"ph","amount":"-25.5"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustUserBalance(gomock.Any(), "missing", domain.CurrencyPH, amount).
					Return(nil, adminservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Zero adjustment",
			body: `{"login":"target","currency":"ph","amount":"0"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustUserBalance(gomock.Any(), "target", domain.CurrencyPH, decimal.RequireFromString("0")).
					Return(nil, balanceservice.ErrZeroAdjustment)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Debit exceeds balance",
			body: `{"login":"target","currency":"ph","amount":"-25.5"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustUserBalance(gomock.Any(), "target", domain.CurrencyPH, amount).
					Return(nil, balanceservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: `{"login":"target","currency":"ph","amount":"-25.5"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustUserBalance(gomock.Any(), "target", domain.CurrencyPH, amount).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/balance/adjust", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.AdjustBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AdminAdjustResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "target", body.Login)
				assert.True(t, body.BalanceAfter.Equal(decimal.RequireFromString("74.5")))
			}
		})
	}
}

func TestDailyReportHandler(t *testing.T) {
	handler, service := NewMock(t)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful report",
			target: "/report/daily?day=2025-06-01",
			prepareMock: func() {
				service.EXPECT().
					DailyReport(gomock.Any(), day).
					Return(&reportservice.DailyReport{
						Summary: &domain.DailySummary{
							Date:        day,
							SpentPH:     decimal.RequireFromString("150.25"),
							SpentBR:     decimal.RequireFromString("903.1"),
							Success:     12,
							Partial:     2,
							Failed:      1,
							UsersServed: 7,
						},
						PointsPH: "1520.50",
						PointsBR: "980",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad day value",
			target:       "/report/daily?day=yesterday",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			target: "/report/daily?day=2025-06-01",
			prepareMock: func() {
				service.EXPECT().
					DailyReport(gomock.Any(), day).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.DailyReport(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DailyReportResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "2025-06-01", body.Date)
				assert.Equal(t, 12, body.Success)
				assert.Equal(t, "1520.50", body.PointsPH)
			}
		})
	}
}
