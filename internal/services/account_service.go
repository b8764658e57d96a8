package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"bankclient/internal/dto"
)

// ErrNoAccount is returned when an aggregated set has no row to resolve.
var ErrNoAccount = errors.New("no account available")

// DisplayAccount is one derived row per (account, currency) pair, the unit
// the balance screens render. Never persisted; regenerated wholesale on
// every aggregation.
type DisplayAccount struct {
	DisplayID       string
	AccountNo       string
	AccountCategory string
	Status          string
	CurrencyCode    string
	Amount          decimal.Decimal
	FrozenAmount    decimal.Decimal
}

type accountService struct {
	client       Dispatcher
	homeCurrency string
}

func NewAccountService(client Dispatcher, homeCurrency string) AccountServiceInterface {
	return &accountService{
		client:       client,
		homeCurrency: homeCurrency,
	}
}

func (s *accountService) Summary(ctx context.Context) (*dto.AssetSummaryResponse, error) {
	var summary dto.AssetSummaryResponse
	if err := s.client.Do(ctx, http.MethodGet, "/account/asset/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *accountService) List(ctx context.Context) ([]dto.AccountResponse, error) {
	var accounts []dto.AccountResponse
	if err := s.client.Do(ctx, http.MethodGet, "/account/list", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) Bills(ctx context.Context, query dto.BillQuery) (*dto.Page[dto.TransactionFlowResponse], error) {
	if err := validate.Struct(query); err != nil {
		return nil, err
	}

	var page dto.Page[dto.TransactionFlowResponse]
	if err := s.client.Do(ctx, http.MethodPost, "/account/bill/list", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Aggregate folds nested per-account balance records into flat display rows,
// one per currency line, using the available balance as the user-actionable
// figure. Input order is preserved on both levels; the result is rebuilt
// from scratch on every call.
func (s *accountService) Aggregate(accounts []dto.AccountResponse) []DisplayAccount {
	rows := make([]DisplayAccount, 0, len(accounts))
	for _, account := range accounts {
		for _, balance := range account.Balances {
			rows = append(rows, DisplayAccount{
				DisplayID:       account.AccountNo + "_" + balance.CurrencyCode,
				AccountNo:       account.AccountNo,
				AccountCategory: account.AccountCategory,
				Status:          account.Status,
				CurrencyCode:    balance.CurrencyCode,
				Amount:          balance.AvailableBalance,
				FrozenAmount:    balance.FrozenAmount,
			})
		}
	}

	slog.Debug("aggregated display accounts",
		"accounts", len(accounts),
		"rows", len(rows))
	return rows
}

// DefaultAccount prefers the first home-currency row, then the first row of
// the set. An empty set yields ErrNoAccount, never a panic.
func (s *accountService) DefaultAccount(rows []DisplayAccount) (DisplayAccount, error) {
	for _, row := range rows {
		if row.CurrencyCode == s.homeCurrency {
			return row, nil
		}
	}
	if len(rows) > 0 {
		return rows[0], nil
	}
	return DisplayAccount{}, ErrNoAccount
}

// AccountByCurrency returns the first row carrying the currency. Multiple
// rows may share a currency across accounts; first-in-iteration-order wins.
func (s *accountService) AccountByCurrency(rows []DisplayAccount, currencyCode string) (DisplayAccount, error) {
	for _, row := range rows {
		if row.CurrencyCode == currencyCode {
			return row, nil
		}
	}
	return DisplayAccount{}, ErrNoAccount
}
