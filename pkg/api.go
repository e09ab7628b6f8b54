package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/sharecart/pkg/cart"
	"github.com/provide-io/sharecart/pkg/config"
)

// Open loads configuration from the environment and opens the cart it
// points at.
func Open(name string) (*cart.Store, hclog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return OpenWithConfig(cfg, name)
}

// OpenWithConfig opens the cart described by cfg with a logger named name.
func OpenWithConfig(cfg config.Config, name string) (*cart.Store, hclog.Logger, error) {
	logger := cfg.NewLogger(name)

	paths, err := cfg.CartPaths()
	if err != nil {
		return nil, logger, err
	}
	opts, err := cfg.StoreOptions(logger)
	if err != nil {
		return nil, logger, err
	}
	store, err := cart.Open(paths, opts...)
	if err != nil {
		return nil, logger, err
	}
	logger.Debug("Opened cart", "path", store.Path())
	return store, logger, nil
}
