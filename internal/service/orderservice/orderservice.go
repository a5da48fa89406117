package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/angelpay/topup/internal/catalog"
	"github.com/angelpay/topup/internal/config"
	"github.com/angelpay/topup/internal/domain"
	"github.com/angelpay/topup/internal/provider"
)

//go:generate mockgen -source=orderservice.go -destination=orderservice_mock.go -package=orderservice

type SettlementRepo interface {
	Save(ctx context.Context, settlement *domain.Settlement) error
	FindByUserID(ctx context.Context, userID int, filters domain.SettlementFilters) ([]domain.Settlement, error)
}

// Ledger is the wallet surface the fulfillment loop charges and refunds.
type Ledger interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Debit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (before, after decimal.Decimal, err error)
	Credit(ctx context.Context, userID int, currency domain.Currency, amount decimal.Decimal) (decimal.Decimal, error)
}

var ErrNoValidOrders = errors.New("no valid orders to process")

// InsufficientBalanceError rejects a whole batch before anything is charged.
type InsufficientBalanceError struct {
	Assets   decimal.Decimal
	Required decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient coins: assets %s, required %s", e.Assets, e.Required)
}

// ComponentFailure is one provider rejection inside a settlement, kept for
// the batch report.
type ComponentFailure struct {
	TargetID    string
	ZoneID      string
	Code        string
	ComponentID string
	Reason      string
	Refunded    bool
}

// BatchResult is everything that came out of one bulk submission.
type BatchResult struct {
	Settlements []domain.Settlement
	Rejections  []domain.Rejection
	Failures    []ComponentFailure
}

type Service struct {
	catalog     *catalog.Catalog
	provider    provider.ClientI
	ledger      Ledger
	settlements SettlementRepo

	// submitInterval spaces consecutive createorder calls of one request;
	// the provider throttles faster submissions.
	submitInterval time.Duration
}

func New(cfg *config.Config, cat *catalog.Catalog, providerClient provider.ClientI, ledger Ledger, settlements SettlementRepo) *Service {
	return &Service{
		catalog:        cat,
		provider:       providerClient,
		ledger:         ledger,
		settlements:    settlements,
		submitInterval: cfg.SubmitInterval,
	}
}

// SubmitBulkOrder parses a raw bulk order text and settles every request in
// it. Unparseable or unknown lines become rejections; when nothing parses the
// batch fails with ErrNoValidOrders before the ledger is touched.
func (s *Service) SubmitBulkOrder(ctx context.Context, userID int, region domain.Region, game domain.Game, text string) (*BatchResult, error) {
	requests, rejections := s.Compose(region, game, text)
	return s.ProcessBatch(ctx, userID, requests, rejections)
}

// ProcessBatch runs one composed batch end to end: a single affordability
// check up front, then one debit-submit-refund-settle cycle per request.
// Requests are processed in order; a failed request never blocks the rest.
func (s *Service) ProcessBatch(ctx context.Context, userID int, requests []domain.OrderRequest, rejections []domain.Rejection) (*BatchResult, error) {
	if len(requests) == 0 {
		return &BatchResult{Rejections: rejections}, ErrNoValidOrders
	}

	currency := requests[0].Region.Currency()
	if err := s.checkAffordability(ctx, userID, currency, requests); err != nil {
		return nil, err
	}

	result := &BatchResult{Rejections: rejections}
	for i := range requests {
		req := &requests[i]

		settlement, failures, err := s.fulfill(ctx, userID, currency, req)
		if err != nil {
			// The debit never landed, so the request dies without a settlement.
			result.Rejections = append(result.Rejections, domain.Rejection{
				TargetID: req.TargetID,
				ZoneID:   req.ZoneID,
				Code:     req.Product.Code,
				Reason:   fmt.Sprintf("Balance deduction failed for %s", req.Product.Code),
			})
			continue
		}

		result.Settlements = append(result.Settlements, *settlement)
		result.Failures = append(result.Failures, failures...)
	}
	return result, nil
}

// checkAffordability compares the wallet against the full batch cost before
// any debit happens, so a user is never charged for half a batch they cannot
// afford.
func (s *Service) checkAffordability(ctx context.Context, userID int, currency domain.Currency, requests []domain.OrderRequest) error {
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return err
	}
	if balance == nil {
		return domain.ErrBalanceNotFound
	}

	required := decimal.Zero
	for i := range requests {
		required = required.Add(requests[i].Product.Rate)
	}

	assets := balance.Get(currency)
	if assets.LessThan(required) {
		zap.L().Info("batch rejected, insufficient balance",
			zap.Int("userID", userID),
			zap.String("assets", assets.String()),
			zap.String("required", required.String()))
		return &InsufficientBalanceError{Assets: assets, Required: required}
	}
	return nil
}

// fulfill settles a single order request. The returned error is non-nil only
// when the initial debit failed; provider failures settle as partial or
// failed instead.
func (s *Service) fulfill(ctx context.Context, userID int, currency domain.Currency, req *domain.OrderRequest) (*domain.Settlement, []ComponentFailure, error) {
	product := req.Product

	before, after, err := s.ledger.Debit(ctx, userID, currency, product.Rate)
	if err != nil {
		zap.L().Warn("debit failed for order request",
			zap.Int("userID", userID),
			zap.String("code", product.Code),
			zap.Error(err))
		return nil, nil, err
	}

	// The money moved. From here on the request runs to completion even when
	// the caller disconnects: submissions, the refund credit and the
	// settlement insert must not die on a cancelled request context.
	ctx = context.WithoutCancel(ctx)

	outcomes := s.submit(ctx, req)
	refund := refundAmount(product, outcomes)

	final := after
	credited := false
	if refund.IsPositive() {
		balance, err := s.ledger.Credit(ctx, userID, currency, refund)
		if err != nil {
			zap.L().Error("refund credit failed, settlement records no refund",
				zap.Int("userID", userID),
				zap.String("refund", refund.String()),
				zap.Error(err))
			// The credit never landed, so the record keeps the audit
			// equation honest: nothing refunded, balance stays debited.
			refund = decimal.Zero
		} else {
			final = balance
			credited = true
		}
	}

	var (
		orderIDs []string
		failures []ComponentFailure
	)
	for _, outcome := range outcomes {
		if !outcome.Failed() {
			orderIDs = append(orderIDs, outcome.OrderID)
			continue
		}
		failures = append(failures, ComponentFailure{
			TargetID:    req.TargetID,
			ZoneID:      req.ZoneID,
			Code:        product.Code,
			ComponentID: outcome.ComponentID,
			Reason:      outcome.Failure.Raw,
			Refunded:    outcome.Failure.Refundable() && credited,
		})
	}

	successCount := len(orderIDs)
	failCount := len(product.Components) - successCount

	settlement := &domain.Settlement{
		ID:            uuid.NewString(),
		UserID:        userID,
		TargetID:      req.TargetID,
		ZoneID:        req.ZoneID,
		Region:        req.Region,
		Game:          req.Game,
		ProductCode:   product.Code,
		OrderIDs:      orderIDs,
		TotalCost:     product.Rate,
		Refunded:      refund,
		Status:        settlementStatus(successCount, failCount),
		SuccessCount:  successCount,
		FailCount:     failCount,
		BalanceBefore: before,
		BalanceAfter:  final,
		CreatedAt:     time.Now(),
	}

	if err := s.settlements.Save(ctx, settlement); err != nil {
		// The money already moved; losing the record must not fail the
		// batch. It is logged for reconciliation instead.
		zap.L().Error("failed to persist settlement",
			zap.String("settlementID", settlement.ID),
			zap.Error(err))
	}
	return settlement, failures, nil
}

// submit sends every component of one request to the provider in order and
// records the outcome per component. Refund decisions wait until every
// outcome is in, so a failure never short-circuits the remaining components.
func (s *Service) submit(ctx context.Context, req *domain.OrderRequest) []domain.ComponentOutcome {
	outcomes := make([]domain.ComponentOutcome, 0, len(req.Product.Components))
	for i, componentID := range req.Product.Components {
		if i > 0 {
			// The debit already landed, so every component is attempted even
			// when the caller is gone; the provider call carries its own
			// timeout.
			s.pause()
		}

		orderID, err := s.provider.CreateOrder(ctx, req.Region, req.Game, req.TargetID, req.ZoneID, componentID)
		if err != nil {
			reason := domain.ClassifyFailure(orderFailureReason(err))
			outcomes = append(outcomes, domain.ComponentOutcome{
				ComponentID: componentID,
				Failure:     &reason,
			})
			continue
		}
		outcomes = append(outcomes, domain.ComponentOutcome{
			ComponentID: componentID,
			OrderID:     orderID,
		})
	}
	return outcomes
}

// refundAmount aggregates the refundable value of one request's failed
// components, resolved per component through the product's refund sources.
func refundAmount(product *domain.Product, outcomes []domain.ComponentOutcome) decimal.Decimal {
	refund := decimal.Zero
	for _, outcome := range outcomes {
		if outcome.Failed() && outcome.Failure.Refundable() {
			refund = refund.Add(product.RefundFor(outcome.ComponentID))
		}
	}
	return refund
}

// pause waits out the provider's submission interval between two components
// of the same request.
func (s *Service) pause() {
	if s.submitInterval > 0 {
		time.Sleep(s.submitInterval)
	}
}

func orderFailureReason(err error) string {
	var orderErr *provider.OrderError
	if errors.As(err, &orderErr) {
		return orderErr.Message
	}
	return err.Error()
}

func settlementStatus(successCount, failCount int) domain.SettlementStatus {
	switch {
	case failCount == 0:
		return domain.StatusSuccess
	case successCount > 0:
		return domain.StatusPartialSuccess
	default:
		return domain.StatusFailed
	}
}

func (s *Service) GetSettlements(ctx context.Context, userID int, filters domain.SettlementFilters) ([]domain.Settlement, error) {
	settlements, err := s.settlements.FindByUserID(ctx, userID, filters)
	if err != nil {
		zap.L().Error("failed to get settlements", zap.Error(err))
		return nil, err
	}
	return settlements, nil
}

// roleLookupComponent is the component id sent with role lookups; the
// provider requires one even though the lookup delivers nothing.
const roleLookupComponent = "213"

// GetRole resolves a target account's in-game username.
func (s *Service) GetRole(ctx context.Context, game domain.Game, targetID, zoneID string) (string, error) {
	if !game.UsesZone() {
		zoneID = ""
	}
	username, err := s.provider.GetRole(ctx, game, targetID, zoneID, roleLookupComponent)
	if err != nil {
		zap.L().Warn("role lookup failed",
			zap.String("targetID", targetID),
			zap.Error(err))
		return "", err
	}
	return username, nil
}
