package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/dto"
	"github.com/angelpay/topup/internal/provider"
	balanceservice "github.com/angelpay/topup/internal/service/balanceservice"
	"github.com/angelpay/topup/pkg/auth"
	"github.com/angelpay/topup/pkg/utils"
)

type Service interface {
	CreateBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	RedeemCard(ctx context.Context, userID int, code string) (*domain.Topup, error)
	GetTopups(ctx context.Context, userID int) ([]domain.Topup, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current coin balance in both currencies for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current coin balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if balance == nil {
		// The user row exists but the balance was never opened.
		utils.RespondWithError(w, http.StatusInternalServerError, "Balance not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		CoinsPH: balance.CoinsPH,
		CoinsBR: balance.CoinsBR,
	})
}

// Topup godoc
//
//	@Summary		Redeem a provider gift card
//	@Description	Check and redeem a provider gift card, crediting its value minus the service fee to the wallet currency matching the card country.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopupRequestDTO	true	"Card code"
//	@Success		200		{object}	dto.TopupResponseDTO	"Credited top-up"
//	@Failure		400		{object}	utils.Response			"Invalid request body or card rejected"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	utils.Response			"Card country has no matching wallet"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/topup [post]
func (h *BalanceHandler) Topup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TopupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Card code is required")
		return
	}

	topup, err := h.balanceService.RedeemCard(r.Context(), userID, req.Code)
	if err != nil {
		var cardErr *provider.CardError
		switch {
		case errors.Is(err, balanceservice.ErrUnsupportedCardCountry):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &cardErr):
			utils.RespondWithError(w, http.StatusBadRequest, cardErr.Message)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopupResponseDTO{
		Currency:     string(topup.Currency),
		Amount:       topup.Amount,
		Fee:          topup.Fee,
		BalanceAfter: topup.BalanceAfter,
	})
}

// GetTopups godoc
//
//	@Summary		Get top-up history
//	@Description	Get top-up history for the authenticated user sorted by processing date
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetTopupsResponseDTO	"Top-up history"
//	@Success		204	{object}	utils.Response				"Top-ups not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/topups [get]
func (h *BalanceHandler) GetTopups(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	topups, err := h.balanceService.GetTopups(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch topups")
		return
	}

	if len(topups) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Topups not found")
		return
	}

	response := make([]dto.GetTopupsResponseDTO, len(topups))
	for i, tp := range topups {
		response[i] = dto.GetTopupsResponseDTO{
			Currency:    string(tp.Currency),
			Amount:      tp.Amount,
			Fee:         tp.Fee,
			Source:      string(tp.Source),
			ProcessedAt: tp.ProcessedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
