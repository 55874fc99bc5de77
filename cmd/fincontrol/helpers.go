package main

import (
	"context"

	"github.com/fincontrol/fincontrol/internal/backend"
	"github.com/fincontrol/fincontrol/internal/config"
	"github.com/fincontrol/fincontrol/internal/ledger"
	"github.com/fincontrol/fincontrol/internal/service"
)

// initLedger opens the configured backend and binds a ledger to it. The
// caller must Close the returned store.
func initLedger(ctx context.Context) (*ledger.Ledger, service.Store, error) {
	cfg, err := config.LoadBackendConfig()
	if err != nil {
		return nil, nil, err
	}

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return ledger.New(store, config.LoadSession()), store, nil
}
