package dto

import "github.com/shopspring/decimal"

// Transfer type discriminants. Fee and timing rules differ only on the
// backend; the client forwards the discriminant and picks the endpoint.
const (
	TransferTypeInternal    = "INTERNAL"
	TransferTypeCrossBorder = "CROSS_BORDER"
)

// TransferRequest is the shared request shape for in-network and
// cross-border transfers. IdempotentKey is filled in by the transfer
// service, never by callers.
type TransferRequest struct {
	FromAccountNo       string          `json:"fromAccountNo" validate:"required"`
	ToAccountNo         string          `json:"toAccountNo" validate:"required"`
	ToAccountName       string          `json:"toAccountName,omitempty"`
	Amount              decimal.Decimal `json:"amount" validate:"required"`
	CurrencyCode        string          `json:"currencyCode" validate:"required,len=3"`
	TransactionPassword string          `json:"transactionPassword" validate:"required"`
	Remark              string          `json:"remark,omitempty"`
	IdempotentKey       string          `json:"idempotentKey,omitempty"`
	TransferType        string          `json:"transferType,omitempty" validate:"omitempty,oneof=INTERNAL CROSS_BORDER"`
	SwiftCode           string          `json:"swiftCode,omitempty"`
	ToBankCode          string          `json:"toBankCode,omitempty"`
}

// TransferVerifyResult is advisory only; the backend reserves nothing.
type TransferVerifyResult struct {
	Fee           decimal.Decimal `json:"fee"`
	EstimatedTime string          `json:"estimatedTime"`
}

// TransferResult is the outcome of an executed transfer.
type TransferResult struct {
	TransactionID   int64           `json:"transactionId"`
	FromAccountID   int64           `json:"fromAccountId"`
	ToAccountNumber string          `json:"toAccountNumber"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"`
	Fee             decimal.Decimal `json:"fee"`
	Status          string          `json:"status"`
	TransferType    string          `json:"transferType"`
	TxnID           string          `json:"txnId"`
	CreateTime      string          `json:"createTime"`
}

// TransferRecord is one row of the transfer history.
type TransferRecord struct {
	ID              int64           `json:"id"`
	TxnID           string          `json:"txnId"`
	PayerAccountID  int64           `json:"payerAccountId"`
	PayeeAccountNo  string          `json:"payeeAccountNo"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"`
	Fee             decimal.Decimal `json:"fee"`
	Status          string          `json:"status"`
	TransferType    string          `json:"transferType"`
	TransferChannel string          `json:"transferChannel"`
	CreateTime      string          `json:"createTime"`
}

// TransferRecordQuery filters the transfer history listing.
type TransferRecordQuery struct {
	PayerAccountID     string
	PayeeAccountNumber string
	Page               int
	PageSize           int
}

// PayeeResponse is a saved payee.
type PayeeResponse struct {
	ID              string `json:"id"`
	PayeeName       string `json:"payeeName"`
	AccountNo       string `json:"accountNo"`
	BankCode        string `json:"bankCode"`
	BankName        string `json:"bankName"`
	CurrencyCode    string `json:"currencyCode"`
	AliasName       string `json:"aliasName"`
	LastTransTime   string `json:"lastTransTime,omitempty"`
	TotalTransCount int    `json:"totalTransCount,omitempty"`
}

// AddPayeeRequest creates a saved payee
type AddPayeeRequest struct {
	PayeeName    string `json:"payeeName" validate:"required"`
	AccountNo    string `json:"accountNo" validate:"required"`
	BankCode     string `json:"bankCode" validate:"required"`
	BankName     string `json:"bankName" validate:"required"`
	CurrencyCode string `json:"currencyCode,omitempty"`
	AliasName    string `json:"aliasName,omitempty"`
}

// UpdatePayeeRequest updates a saved payee
type UpdatePayeeRequest struct {
	ID           string `json:"id" validate:"required"`
	PayeeName    string `json:"payeeName,omitempty"`
	AccountNo    string `json:"accountNo,omitempty"`
	BankCode     string `json:"bankCode,omitempty"`
	BankName     string `json:"bankName,omitempty"`
	CurrencyCode string `json:"currencyCode,omitempty"`
	AliasName    string `json:"aliasName,omitempty"`
}
