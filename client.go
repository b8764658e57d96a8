// Package bankclient is the client runtime behind the banking app's screens:
// a typed gateway dispatcher with credential injection and single-shot
// session-invalidation handling, a two-phase idempotent transfer protocol,
// multi-currency balance aggregation, and the KYC maturity lifecycle.
package bankclient

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"bankclient/internal/api"
	"bankclient/internal/config"
	"bankclient/internal/metrics"
	"bankclient/internal/services"
	"bankclient/internal/session"
	"bankclient/internal/storage"
)

// Runtime bundles the wired client services. Views depend on the service
// interfaces only; all state mutation stays inside Session and the
// dispatcher.
type Runtime struct {
	Session   *session.Session
	Auth      services.AuthServiceInterface
	Accounts  services.AccountServiceInterface
	Transfers services.TransferServiceInterface
	Users     services.UserServiceInterface
	Messages  services.MessageServiceInterface
	Forex     services.ForexServiceInterface

	store *storage.GormStore
}

// New builds the runtime from configuration: opens the persisted store,
// hydrates the session, and wires every service through the single gateway
// dispatcher. The navigator receives the post-invalidation redirect.
func New(cfg *config.Config, navigator api.Navigator) (*Runtime, error) {
	store, err := storage.NewGormStore(&cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	runtime, err := build(cfg, store, navigator)
	if err != nil {
		store.Close()
		return nil, err
	}
	runtime.store = store
	return runtime, nil
}

// NewWithStore builds the runtime on a caller-supplied store, used by tests
// and ephemeral (non-persisting) embeddings.
func NewWithStore(cfg *config.Config, store storage.Store, navigator api.Navigator) (*Runtime, error) {
	return build(cfg, store, navigator)
}

func build(cfg *config.Config, store storage.Store, navigator api.Navigator) (*Runtime, error) {
	sess := session.New(store)
	if err := sess.Hydrate(); err != nil {
		return nil, err
	}

	clientMetrics := metrics.New(prometheus.DefaultRegisterer)
	client := api.NewClient(&cfg.Gateway, sess, navigator, clientMetrics)

	return &Runtime{
		Session:   sess,
		Auth:      services.NewAuthService(client, sess),
		Accounts:  services.NewAccountService(client, cfg.Client.HomeCurrency),
		Transfers: services.NewTransferService(client, clientMetrics),
		Users:     services.NewUserService(client, sess),
		Messages:  services.NewMessageService(client),
		Forex:     services.NewForexService(client),
	}, nil
}

// Close releases the persisted store when the runtime owns one.
func (r *Runtime) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}
