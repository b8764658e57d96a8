package dto

import "github.com/shopspring/decimal"

// CurrencyBalance is one per-currency balance line inside an account.
// CurrencyCode is unique within its account.
type CurrencyBalance struct {
	CurrencyCode     string          `json:"currencyCode"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	FrozenAmount     decimal.Decimal `json:"frozenAmount"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalOutcome     decimal.Decimal `json:"totalOutcome"`
	UpdateTime       string          `json:"updateTime,omitempty"`
}

// AccountResponse is a backend-reported account with its balance lines.
type AccountResponse struct {
	ID              int64             `json:"id"`
	UserNo          string            `json:"userNo,omitempty"`
	AccountNo       string            `json:"accountNo"`
	CardNumber      string            `json:"cardNumber,omitempty"`
	AccountCategory string            `json:"accountCategory,omitempty"`
	AccountType     string            `json:"accountType,omitempty"`
	Status          string            `json:"status,omitempty"`
	RiskLevel       string            `json:"riskLevel,omitempty"`
	OpenBranchCode  string            `json:"openBranchCode,omitempty"`
	OpenBranchName  string            `json:"openBranchName,omitempty"`
	CreateTime      string            `json:"createTime,omitempty"`
	Balances        []CurrencyBalance `json:"balances"`
}

// AssetSummaryResponse is the asset overview payload.
type AssetSummaryResponse struct {
	TotalMopValue decimal.Decimal   `json:"totalMopValue"`
	Accounts      []AccountResponse `json:"accounts"`
}

// BillQuery filters the transaction flow listing.
type BillQuery struct {
	AccountNo    string `json:"accountNo,omitempty"`
	CurrencyCode string `json:"currencyCode,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Direction    string `json:"direction,omitempty" validate:"omitempty,oneof=D C"`
	BizType      string `json:"bizType,omitempty"`
	Page         int    `json:"page,omitempty"`
	PageSize     int    `json:"pageSize,omitempty"`
}

// TransactionFlowResponse is one line of the account bill.
type TransactionFlowResponse struct {
	ID           int64           `json:"id"`
	TxnID        string          `json:"txnId"`
	CurrencyCode string          `json:"currencyCode"`
	Direction    string          `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	Balance      decimal.Decimal `json:"balance"`
	BizType      string          `json:"bizType"`
	BizDesc      string          `json:"bizDesc"`
	TransTime    string          `json:"transTime"`
}
