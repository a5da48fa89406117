package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/dto"

	orderservice "github.com/angelpay/topup/internal/service/orderservice"
	"github.com/angelpay/topup/pkg/auth"
	"github.com/angelpay/topup/pkg/utils"
)

type Service interface {
	SubmitBulkOrder(ctx context.Context, userID int, region domain.Region, game domain.Game, text string) (*orderservice.BatchResult, error)
	GetSettlements(ctx context.Context, userID int, filters domain.SettlementFilters) ([]domain.Settlement, error)
	GetRole(ctx context.Context, game domain.Game, targetID, zoneID string) (string, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// SubmitBulkOrder godoc
//
//	@Summary		Submit a bulk top-up order
//	@Description	Parse a bulk order text and fulfill every valid line against the provider, debiting the wallet currency of the chosen region.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BulkOrderRequestDTO	true	"Bulk order payload"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BulkOrderResponseDTO	"Settled batch"
//	@Failure		400	{object}	utils.Response				"Bad request"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		402	{object}	utils.Response				"Insufficient balance for the whole batch"
//	@Failure		422	{object}	dto.BulkOrderResponseDTO	"No valid order lines"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/orders [post]
func (h *OrderHandler) SubmitBulkOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BulkOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	region := domain.Region(req.Region)
	game := domain.Game(req.Game)
	if !region.Valid() || !game.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown region or game")
		return
	}
	if req.Text == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Order text is required")
		return
	}

	result, err := h.orderService.SubmitBulkOrder(r.Context(), userID, region, game, req.Text)
	if err != nil {
		var insufficient *orderservice.InsufficientBalanceError
		switch {
		case errors.Is(err, orderservice.ErrNoValidOrders):
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, toBatchDTO(result))
		case errors.As(err, &insufficient):
			utils.RespondWithError(w, http.StatusPaymentRequired, insufficient.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBatchDTO(result))
}

// GetOrders godoc
//
//	@Summary		Get settlement history
//	@Description	Retrieve the settlement history for the authorized user, newest first, optionally filtered by region, game, status, target id or day.
//	@Tags			Orders
//	@Produce		json
//	@Param			region	query	string	false	"Region filter (ph|br)"
//	@Param			game	query	string	false	"Game filter"
//	@Param			status	query	string	false	"Status filter"
//	@Param			target	query	string	false	"Target id filter"
//	@Param			day		query	string	false	"Day filter (YYYY-MM-DD)"
//	@Param			limit	query	int		false	"Max records"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SettlementDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		400	{object}	utils.Response	"Bad filter value"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	filters, err := parseFilters(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	settlements, err := h.orderService.GetSettlements(r.Context(), userID, filters)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(settlements) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.SettlementDTO, len(settlements))
	for i := range settlements {
		response[i] = toSettlementDTO(&settlements[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRole godoc
//
//	@Summary		Look up an in-game username
//	@Description	Resolve the in-game username for a target id (and zone, where the game uses one) via the provider.
//	@Tags			Orders
//	@Produce		json
//	@Param			game	query	string	true	"Game"
//	@Param			target	query	string	true	"Target id"
//	@Param			zone	query	string	false	"Zone id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GetRoleResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Lookup failed"
//	@Router			/api/user/role [get]
func (h *OrderHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	game := domain.Game(r.URL.Query().Get("game"))
	targetID := r.URL.Query().Get("target")
	zoneID := r.URL.Query().Get("zone")

	if !game.Valid() || targetID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Game and target are required")
		return
	}

	username, err := h.orderService.GetRole(r.Context(), game, targetID, zoneID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Role lookup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetRoleResponseDTO{Username: username})
}

func parseFilters(r *http.Request) (domain.SettlementFilters, error) {
	q := r.URL.Query()
	filters := domain.SettlementFilters{
		Region:   domain.Region(q.Get("region")),
		Game:     domain.Game(q.Get("game")),
		Status:   domain.SettlementStatus(q.Get("status")),
		TargetID: q.Get("target"),
	}
	if filters.Region != "" && !filters.Region.Valid() {
		return filters, errors.New("unknown region")
	}
	if filters.Game != "" && !filters.Game.Valid() {
		return filters, errors.New("unknown game")
	}
	if raw := q.Get("day"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, errors.New("day must be YYYY-MM-DD")
		}
		filters.Day = day
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filters, errors.New("limit must be a non-negative integer")
		}
		filters.Limit = limit
	}
	return filters, nil
}

func toSettlementDTO(s *domain.Settlement) dto.SettlementDTO {
	return dto.SettlementDTO{
		ID:            s.ID,
		TargetID:      s.TargetID,
		ZoneID:        s.ZoneID,
		Region:        string(s.Region),
		Game:          string(s.Game),
		ProductCode:   s.ProductCode,
		OrderIDs:      s.OrderIDs,
		TotalCost:     s.TotalCost,
		Refunded:      s.Refunded,
		Status:        string(s.Status),
		SuccessCount:  s.SuccessCount,
		FailCount:     s.FailCount,
		BalanceBefore: s.BalanceBefore,
		BalanceAfter:  s.BalanceAfter,
		CreatedAt:     s.CreatedAt,
	}
}

func toBatchDTO(result *orderservice.BatchResult) dto.BulkOrderResponseDTO {
	response := dto.BulkOrderResponseDTO{}
	if result == nil {
		return response
	}
	for i := range result.Settlements {
		response.Settlements = append(response.Settlements, toSettlementDTO(&result.Settlements[i]))
	}
	for _, rej := range result.Rejections {
		response.Rejections = append(response.Rejections, dto.RejectionDTO{
			TargetID: rej.TargetID,
			ZoneID:   rej.ZoneID,
			Code:     rej.Code,
			Reason:   rej.Reason,
		})
	}
	for _, f := range result.Failures {
		response.Failures = append(response.Failures, dto.ComponentFailureDTO{
			TargetID:    f.TargetID,
			ZoneID:      f.ZoneID,
			Code:        f.Code,
			ComponentID: f.ComponentID,
			Reason:      f.Reason,
			Refunded:    f.Refunded,
		})
	}
	return response
}
