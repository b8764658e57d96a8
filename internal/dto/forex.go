package dto

import "github.com/shopspring/decimal"

// Forex trade directions.
const (
	ForexDirectionBuy  = "BUY"
	ForexDirectionSell = "SELL"
)

// Forex trade statuses.
const (
	ForexStatusProcessing = 0
	ForexStatusSuccess    = 1
	ForexStatusFail       = 2
	ForexStatusRefunded   = 3
)

// ForexExchangeRequest executes a currency exchange. RequestID is the
// idempotency key, filled in by the forex service.
type ForexExchangeRequest struct {
	RequestID    string          `json:"requestId,omitempty"`
	PairCode     string          `json:"pairCode" validate:"required"`
	Direction    string          `json:"direction" validate:"required,oneof=BUY SELL"`
	SellCurrency string          `json:"sellCurrency" validate:"required,len=3"`
	SellAmount   decimal.Decimal `json:"sellAmount" validate:"required"`
	BuyCurrency  string          `json:"buyCurrency" validate:"required,len=3"`
	AccountNo    string          `json:"accountNo" validate:"required"`
}

// ForexExchangeResponse is the outcome of an exchange.
type ForexExchangeResponse struct {
	TxnID        string          `json:"txnId"`
	DealRate     decimal.Decimal `json:"dealRate"`
	SellCurrency string          `json:"sellCurrency"`
	SellAmount   decimal.Decimal `json:"sellAmount"`
	BuyCurrency  string          `json:"buyCurrency"`
	BuyAmount    decimal.Decimal `json:"buyAmount"`
	Status       int             `json:"status"`
	TransTime    string          `json:"transTime"`
}

// ExchangeRateReference is one reference-rate board row.
type ExchangeRateReference struct {
	CurrencyPair   string          `json:"currencyPair"`
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	BuyRate        decimal.Decimal `json:"buyRate"`
	SellRate       decimal.Decimal `json:"sellRate"`
	ChangePercent  string          `json:"changePercent"`
	UpdateTime     string          `json:"updateTime"`
}
