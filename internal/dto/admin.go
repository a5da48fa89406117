package dto

import "github.com/shopspring/decimal"

type AdminAdjustRequestDTO struct {
	Login    string          `json:"login" validate:"required"`
	Currency string          `json:"currency" example:"ph"`
	Amount   decimal.Decimal `json:"amount" example:"-25.5"`
}

type AdminAdjustResponseDTO struct {
	Login        string          `json:"login" example:"testuser"`
	Currency     string          `json:"currency" example:"ph"`
	Amount       decimal.Decimal `json:"amount" example:"-25.5"`
	BalanceAfter decimal.Decimal `json:"balance_after" example:"74.5"`
}

type DailyReportResponseDTO struct {
	Date        string          `json:"date" example:"2025-06-01"`
	SpentPH     decimal.Decimal `json:"spent_ph" example:"150.25"`
	SpentBR     decimal.Decimal `json:"spent_br" example:"903.1"`
	Success     int             `json:"success" example:"12"`
	Partial     int             `json:"partial" example:"2"`
	Failed      int             `json:"failed" example:"1"`
	UsersServed int             `json:"users_served" example:"7"`
	PointsPH    string          `json:"points_ph,omitempty" example:"1520.50"`
	PointsBR    string          `json:"points_br,omitempty" example:"980"`
}
