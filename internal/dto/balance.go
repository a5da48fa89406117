package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	CoinsPH decimal.Decimal `json:"coins_ph" example:"500.5"`
	CoinsBR decimal.Decimal `json:"coins_br" example:"42"`
}

type TopupRequestDTO struct {
	Code string `json:"code" validate:"required"`
}

type TopupResponseDTO struct {
	Currency     string          `json:"currency" example:"br"`
	Amount       decimal.Decimal `json:"amount" example:"499"`
	Fee          decimal.Decimal `json:"fee" example:"1"`
	BalanceAfter decimal.Decimal `json:"balance_after" example:"742.5"`
}

type GetTopupsResponseDTO struct {
	Currency    string          `json:"currency" example:"ph"`
	Amount      decimal.Decimal `json:"amount" example:"499"`
	Fee         decimal.Decimal `json:"fee" example:"1"`
	Source      string          `json:"source" example:"card"`
	ProcessedAt time.Time       `json:"processed_at" example:"2020-12-09T16:09:57+03:00"`
}
