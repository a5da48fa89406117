package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/dto"
	adminservice "github.com/angelpay/topup/internal/service/adminservice"
	balanceservice "github.com/angelpay/topup/internal/service/balanceservice"
	"github.com/angelpay/topup/internal/service/reportservice"
	"github.com/angelpay/topup/pkg/utils"
)

type Service interface {
	AdjustUserBalance(ctx context.Context, login string, currency domain.Currency, amount decimal.Decimal) (*domain.Topup, error)
	DailyReport(ctx context.Context, day time.Time) (*reportservice.DailyReport, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// AdjustBalance godoc
//
//	@Summary		Adjust a user's balance
//	@Description	Credit (positive amount) or debit (negative amount) another user's wallet currency. Admin only.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AdminAdjustRequestDTO	true	"Adjustment payload"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdminAdjustResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad request"
//	@Failure		402	{object}	utils.Response	"Debit exceeds balance"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/balance/adjust [post]
func (h *AdminHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	currency := domain.Currency(req.Currency)
	if req.Login == "" || !currency.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Login and a valid currency are required")
		return
	}

	topup, err := h.adminService.AdjustUserBalance(r.Context(), req.Login, currency, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, balanceservice.ErrZeroAdjustment):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, balanceservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminAdjustResponseDTO{
		Login:        req.Login,
		Currency:     string(topup.Currency),
		Amount:       topup.Amount,
		BalanceAfter: topup.BalanceAfter,
	})
}

// DailyReport godoc
//
//	@Summary		Daily settlement report
//	@Description	Aggregate settled spend per region, status counts and unique users for one day, with current provider point balances. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Param			day	query	string	false	"Day (YYYY-MM-DD), defaults to today"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DailyReportResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad day value"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/report/daily [get]
func (h *AdminHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if raw := r.URL.Query().Get("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Day must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	report, err := h.adminService.DailyReport(r.Context(), day)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyReportResponseDTO{
		Date:        report.Summary.Date.Format("2006-01-02"),
		SpentPH:     report.Summary.SpentPH,
		SpentBR:     report.Summary.SpentBR,
		Success:     report.Summary.Success,
		Partial:     report.Summary.Partial,
		Failed:      report.Summary.Failed,
		UsersServed: report.Summary.UsersServed,
		PointsPH:    report.PointsPH,
		PointsBR:    report.PointsBR,
	})
}
