package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Region string

const (
	RegionPH Region = "ph"
	RegionBR Region = "br"
)

// Currency returns the wallet currency billed for orders in this region.
func (r Region) Currency() Currency {
	if r == RegionBR {
		return CurrencyBR
	}
	return CurrencyPH
}

func (r Region) Valid() bool {
	return r == RegionPH || r == RegionBR
}

type Currency string

const (
	CurrencyPH Currency = "ph"
	CurrencyBR Currency = "br"
)

func (c Currency) Valid() bool {
	return c == CurrencyPH || c == CurrencyBR
}

type Game string

const (
	GameMLBB Game = "mlbb"
	GameMCGG Game = "mcgg"
	GameBIGO Game = "bigo"
)

// ProductType is the provider-side product identifier sent with every request.
func (g Game) ProductType() string {
	switch g {
	case GameMCGG:
		return "magicchessgogo"
	case GameBIGO:
		return "bigo"
	default:
		return "mobilelegends"
	}
}

// UsesZone reports whether provider orders for this game carry a zone id.
func (g Game) UsesZone() bool {
	return g != GameBIGO
}

func (g Game) Valid() bool {
	return g == GameMLBB || g == GameMCGG || g == GameBIGO
}

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID      int             `db:"id"`
	UserID  int             `db:"user_id"`
	CoinsPH decimal.Decimal `db:"coins_ph"`
	CoinsBR decimal.Decimal `db:"coins_br"`
}

func (b *Balance) Get(currency Currency) decimal.Decimal {
	if currency == CurrencyBR {
		return b.CoinsBR
	}
	return b.CoinsPH
}

type TopupSource string

const (
	TopupSourceCard  TopupSource = "card"
	TopupSourceAdmin TopupSource = "admin"
)

// Topup is one credit (or, for admin corrections, debit) applied to a wallet
// outside of order settlement. Amount is the net change after Fee.
type Topup struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	Currency     Currency        `db:"currency"`
	Amount       decimal.Decimal `db:"amount"`
	Fee          decimal.Decimal `db:"fee"`
	Source       TopupSource     `db:"source"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	ProcessedAt  time.Time       `db:"processed_at"`
}

// Product is one purchasable bundle resolved from the catalog. A product with
// more than one component is composite: every component is billed to the
// provider separately and can fail on its own.
type Product struct {
	Code       string
	Components []string
	Rate       decimal.Decimal

	// Refund resolution sources, in precedence order. RefundPerComponent maps
	// a component id to its refund rate; ComponentRefund is a uniform rate for
	// any component. When both are absent the total rate splits evenly.
	RefundPerComponent map[string]decimal.Decimal
	ComponentRefund    *decimal.Decimal
}

func (p *Product) Composite() bool {
	return len(p.Components) > 1
}

// RefundFor resolves the refundable amount for one failed component.
func (p *Product) RefundFor(componentID string) decimal.Decimal {
	if p.RefundPerComponent != nil {
		if rate, ok := p.RefundPerComponent[componentID]; ok {
			return rate
		}
	}
	if p.ComponentRefund != nil {
		return *p.ComponentRefund
	}
	return p.Rate.Div(decimal.NewFromInt(int64(len(p.Components))))
}

// OrderRequest is one validated bundle item, owned by the batch that composed
// it and discarded after settlement.
type OrderRequest struct {
	TargetID string
	ZoneID   string
	Region   Region
	Game     Game
	Product  *Product
}

// Rejection is a bundle item that never became an OrderRequest.
type Rejection struct {
	TargetID string `json:"target_id"`
	ZoneID   string `json:"zone_id,omitempty"`
	Code     string `json:"code"`
	Reason   string `json:"reason"`
}

// ComponentOutcome records the provider's answer for one submitted component.
type ComponentOutcome struct {
	ComponentID string
	OrderID     string
	Failure     *FailureReason
}

func (o ComponentOutcome) Failed() bool {
	return o.Failure != nil
}

type SettlementStatus string

const (
	StatusSuccess        SettlementStatus = "success"
	StatusPartialSuccess SettlementStatus = "partial_success"
	StatusFailed         SettlementStatus = "failed"
)

// Settlement is the immutable record of one fulfilled-or-failed order request.
// BalanceBefore and BalanceAfter hold the values returned by the ledger's
// atomic operations, not re-reads, so the record stays consistent under
// concurrent batches for the same user.
type Settlement struct {
	ID            string           `db:"id"`
	UserID        int              `db:"user_id"`
	TargetID      string           `db:"target_id"`
	ZoneID        string           `db:"zone_id"`
	Region        Region           `db:"region"`
	Game          Game             `db:"game"`
	ProductCode   string           `db:"product_code"`
	OrderIDs      []string         `db:"order_ids"`
	TotalCost     decimal.Decimal  `db:"total_cost"`
	Refunded      decimal.Decimal  `db:"refunded"`
	Status        SettlementStatus `db:"status"`
	SuccessCount  int              `db:"success_count"`
	FailCount     int              `db:"fail_count"`
	BalanceBefore decimal.Decimal  `db:"balance_before"`
	BalanceAfter  decimal.Decimal  `db:"balance_after"`
	CreatedAt     time.Time        `db:"created_at"`
}

// Charged is the amount the user actually paid for this settlement.
func (s *Settlement) Charged() decimal.Decimal {
	return s.TotalCost.Sub(s.Refunded)
}

// SettlementFilters narrows a settlement history listing. Zero values mean
// no filter.
type SettlementFilters struct {
	Region   Region
	Game     Game
	Status   SettlementStatus
	TargetID string
	Day      time.Time
	Limit    int
}

// DailySummary aggregates settled spend and order outcomes for one day.
type DailySummary struct {
	Date        time.Time
	SpentPH     decimal.Decimal
	SpentBR     decimal.Decimal
	Success     int
	Partial     int
	Failed      int
	UsersServed int
}
