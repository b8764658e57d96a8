package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"bankclient/internal/dto"
	"bankclient/internal/metrics"
)

// ErrInvalidAmount rejects non-positive transfer amounts before dispatch.
var ErrInvalidAmount = errors.New("transfer amount must be positive")

// Attempt binds one user-initiated transfer intent to exactly one
// idempotency key. The key is minted when the user confirms and reused for
// every resubmission of the same intent; a retry after an ambiguous network
// failure therefore cannot double-apply on the backend.
type Attempt struct {
	request dto.TransferRequest
	key     string
}

// Key exposes the idempotency key, mainly for audit logging.
func (a *Attempt) Key() string {
	return a.key
}

type transferService struct {
	client  Dispatcher
	metrics *metrics.ClientMetrics
}

func NewTransferService(client Dispatcher, clientMetrics *metrics.ClientMetrics) TransferServiceInterface {
	return &transferService{
		client:  client,
		metrics: clientMetrics,
	}
}

// Verify asks the gateway for the advisory fee and timing estimate. No
// idempotency key is involved and nothing is reserved on the backend.
func (s *transferService) Verify(ctx context.Context, req dto.TransferRequest) (*dto.TransferVerifyResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	req.IdempotentKey = ""

	path := "/transfer/verify"
	if req.TransferType == dto.TransferTypeCrossBorder {
		path = "/transfer/crossborder/verify"
	}

	var result dto.TransferVerifyResult
	if err := s.client.Do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NewAttempt validates the request and mints the attempt's idempotency key.
// Call it once per user confirmation, not per submission.
func (s *transferService) NewAttempt(req dto.TransferRequest) (*Attempt, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	return &Attempt{
		request: req,
		key:     uuid.NewString(),
	}, nil
}

// Execute submits the attempt. On a network failure the outcome is ambiguous
// (the backend may or may not have processed it); the caller resolves this
// by calling Execute again with the same attempt, never a fresh one.
// Business rejections are surfaced verbatim and never retried here.
func (s *transferService) Execute(ctx context.Context, attempt *Attempt) (*dto.TransferResult, error) {
	req := attempt.request
	req.IdempotentKey = attempt.key

	var result dto.TransferResult
	if err := s.client.Do(ctx, http.MethodPost, "/transfer/submit", req, &result); err != nil {
		s.metrics.RecordTransfer("failed")
		return nil, err
	}

	s.metrics.RecordTransfer("submitted")
	slog.Info("transfer executed",
		"txn_id", result.TxnID,
		"currency", result.CurrencyCode,
		"status", result.Status)
	return &result, nil
}

func (s *transferService) check(req dto.TransferRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (s *transferService) Records(ctx context.Context, query dto.TransferRecordQuery) ([]dto.TransferRecord, error) {
	params := url.Values{}
	if query.PayerAccountID != "" {
		params.Set("payerAccountId", query.PayerAccountID)
	}
	if query.PayeeAccountNumber != "" {
		params.Set("payeeAccountNumber", query.PayeeAccountNumber)
	}
	page, pageSize := query.Page, query.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	var records []dto.TransferRecord
	path := "/transfer/list?" + params.Encode()
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *transferService) RecordByID(ctx context.Context, id string) (*dto.TransferRecord, error) {
	var record dto.TransferRecord
	path := "/transfer/records/" + url.PathEscape(id)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *transferService) Payees(ctx context.Context, current, size int) (*dto.Page[dto.PayeeResponse], error) {
	var page dto.Page[dto.PayeeResponse]
	path := fmt.Sprintf("/transfer/payee/page?current=%d&size=%d", current, size)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *transferService) AddPayee(ctx context.Context, req dto.AddPayeeRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.client.Do(ctx, http.MethodPost, "/transfer/payee/add", req, nil)
}

func (s *transferService) UpdatePayee(ctx context.Context, req dto.UpdatePayeeRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.client.Do(ctx, http.MethodPost, "/transfer/payee/update", req, nil)
}

func (s *transferService) DeletePayee(ctx context.Context, id string) error {
	return s.client.Do(ctx, http.MethodDelete, "/transfer/payee/"+url.PathEscape(id), nil, nil)
}
