package services

import (
	"context"
	"io"

	"bankclient/internal/dto"
	"bankclient/internal/session"
)

// Dispatcher is the slice of the gateway client the services depend on.
// Satisfied by *api.Client; faked in tests.
type Dispatcher interface {
	Do(ctx context.Context, method, path string, body, out any) error
	Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error
	Rearm()
}

// AuthServiceInterface defines authentication and profile operations
type AuthServiceInterface interface {
	Login(ctx context.Context, userName, password string) (*session.UserSummary, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*dto.UserProfileResponse, error)
	VerifyToken(ctx context.Context) (bool, error)
	UpdatePassword(ctx context.Context, oldPassword, newPassword string) error
	UpdateTransactionPassword(ctx context.Context, password string) error
}

// AccountServiceInterface defines balance and bill read operations
type AccountServiceInterface interface {
	Summary(ctx context.Context) (*dto.AssetSummaryResponse, error)
	List(ctx context.Context) ([]dto.AccountResponse, error)
	Bills(ctx context.Context, query dto.BillQuery) (*dto.Page[dto.TransactionFlowResponse], error)
	Aggregate(accounts []dto.AccountResponse) []DisplayAccount
	DefaultAccount(rows []DisplayAccount) (DisplayAccount, error)
	AccountByCurrency(rows []DisplayAccount, currencyCode string) (DisplayAccount, error)
}

// TransferServiceInterface defines the two-phase transfer protocol
type TransferServiceInterface interface {
	Verify(ctx context.Context, req dto.TransferRequest) (*dto.TransferVerifyResult, error)
	NewAttempt(req dto.TransferRequest) (*Attempt, error)
	Execute(ctx context.Context, attempt *Attempt) (*dto.TransferResult, error)
	Records(ctx context.Context, query dto.TransferRecordQuery) ([]dto.TransferRecord, error)
	RecordByID(ctx context.Context, id string) (*dto.TransferRecord, error)
	Payees(ctx context.Context, current, size int) (*dto.Page[dto.PayeeResponse], error)
	AddPayee(ctx context.Context, req dto.AddPayeeRequest) error
	UpdatePayee(ctx context.Context, req dto.UpdatePayeeRequest) error
	DeletePayee(ctx context.Context, id string) error
}

// UserServiceInterface defines KYC certification operations
type UserServiceInterface interface {
	SubmitCertification(ctx context.Context, req dto.CertificationRequest) error
	UploadDocument(ctx context.Context, filename string, file io.Reader) (string, error)
}

// MessageServiceInterface defines inbox operations
type MessageServiceInterface interface {
	Page(ctx context.Context, page, pageSize int) (*dto.Page[dto.MessageResponse], error)
	MarkRead(ctx context.Context, messageID string) error
	UnreadCount(ctx context.Context) (int, error)
}

// ForexServiceInterface defines currency exchange operations
type ForexServiceInterface interface {
	NewExchange(req dto.ForexExchangeRequest) (*Exchange, error)
	Execute(ctx context.Context, exchange *Exchange) (*dto.ForexExchangeResponse, error)
	ReferenceRates(ctx context.Context) ([]dto.ExchangeRateReference, error)
	Rate(ctx context.Context, from, to string) (float64, error)
}
