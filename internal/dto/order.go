package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BulkOrderRequestDTO struct {
	Region string `json:"region" example:"ph"`
	Game   string `json:"game" example:"mlbb"`
	Text   string `json:"text" example:"12345 (2001) 22+56"`
}

type SettlementDTO struct {
	ID            string          `json:"id" example:"d7f3a1c2-9f48-4b8a-9a11-0c9a2f3e4b5d"`
	TargetID      string          `json:"target_id" example:"12345"`
	ZoneID        string          `json:"zone_id,omitempty" example:"2001"`
	Region        string          `json:"region" example:"ph"`
	Game          string          `json:"game" example:"mlbb"`
	ProductCode   string          `json:"product_code" example:"22"`
	OrderIDs      []string        `json:"order_ids"`
	TotalCost     decimal.Decimal `json:"total_cost" example:"19"`
	Refunded      decimal.Decimal `json:"refunded" example:"0"`
	Status        string          `json:"status" example:"success"`
	SuccessCount  int             `json:"success_count" example:"1"`
	FailCount     int             `json:"fail_count" example:"0"`
	BalanceBefore decimal.Decimal `json:"balance_before" example:"100"`
	BalanceAfter  decimal.Decimal `json:"balance_after" example:"81"`
	CreatedAt     time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type RejectionDTO struct {
	TargetID string `json:"target_id" example:"12345"`
	ZoneID   string `json:"zone_id,omitempty" example:"2001"`
	Code     string `json:"code" example:"nosuch"`
	Reason   string `json:"reason" example:"Invalid Product Name: 'nosuch'"`
}

type ComponentFailureDTO struct {
	TargetID    string `json:"target_id" example:"12345"`
	ZoneID      string `json:"zone_id,omitempty" example:"2001"`
	Code        string `json:"code" example:"33"`
	ComponentID string `json:"component_id" example:"213"`
	Reason      string `json:"reason" example:"Product out of stock"`
	Refunded    bool   `json:"refunded" example:"true"`
}

type BulkOrderResponseDTO struct {
	Settlements []SettlementDTO       `json:"settlements"`
	Rejections  []RejectionDTO        `json:"rejections,omitempty"`
	Failures    []ComponentFailureDTO `json:"failures,omitempty"`
}

type GetRoleResponseDTO struct {
	Username string `json:"username" example:"PlayerOne"`
}
