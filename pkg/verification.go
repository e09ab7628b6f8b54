package pkg

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/sharecart/pkg/cart"
)

// VerifyCartWithLogger checks every key of the cart, logging each result,
// and returns the joined integrity failures.
func VerifyCartWithLogger(store *cart.Store, logger hclog.Logger) error {
	logger.Info("Verifying cart integrity", "path", store.Path())

	var failures []error
	for _, key := range cart.Keys() {
		value, err := store.Get(key)
		if err != nil {
			failures = append(failures, err)
			logger.Error("✗ Key invalid", "key", key, "error", err)
			continue
		}
		logger.Info("✓ Key valid", "key", key, "value", value)
	}

	if len(failures) == 0 {
		logger.Info("✓ Cart verification passed")
		return nil
	}
	logger.Error("✗ Cart verification failed", "error_count", len(failures))
	return errors.Join(failures...)
}
