package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"bankclient/internal/dto"
)

// Exchange binds one confirmed currency-exchange intent to a single request
// id, with the same mint-once/reuse-on-retry discipline as transfers.
type Exchange struct {
	request   dto.ForexExchangeRequest
	requestID string
}

// RequestID exposes the idempotency key, mainly for audit logging.
func (e *Exchange) RequestID() string {
	return e.requestID
}

type forexService struct {
	client Dispatcher
}

func NewForexService(client Dispatcher) ForexServiceInterface {
	return &forexService{client: client}
}

// NewExchange validates the request and mints its request id once.
func (s *forexService) NewExchange(req dto.ForexExchangeRequest) (*Exchange, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if !req.SellAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return &Exchange{
		request:   req,
		requestID: uuid.NewString(),
	}, nil
}

// Execute submits the exchange. Retries after ambiguous failures reuse the
// same Exchange and therefore the same request id.
func (s *forexService) Execute(ctx context.Context, exchange *Exchange) (*dto.ForexExchangeResponse, error) {
	req := exchange.request
	req.RequestID = exchange.requestID

	var result dto.ForexExchangeResponse
	if err := s.client.Do(ctx, http.MethodPost, "/forex/exchange", req, &result); err != nil {
		return nil, err
	}

	slog.Info("forex exchange executed",
		"txn_id", result.TxnID,
		"pair", exchange.request.PairCode,
		"status", result.Status)
	return &result, nil
}

func (s *forexService) ReferenceRates(ctx context.Context) ([]dto.ExchangeRateReference, error) {
	var rates []dto.ExchangeRateReference
	if err := s.client.Do(ctx, http.MethodGet, "/currency/reference/list", nil, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (s *forexService) Rate(ctx context.Context, from, to string) (float64, error) {
	var rate float64
	path := fmt.Sprintf("/currency/rate?from=%s&to=%s",
		url.QueryEscape(from), url.QueryEscape(to))
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &rate); err != nil {
		return 0, err
	}
	return rate, nil
}
