package pkg

import carterrors "github.com/provide-io/sharecart/pkg/cart/errors"

var (
	// Argument errors 📏
	ErrRange      = carterrors.ErrRange
	ErrUnknownKey = carterrors.ErrUnknownKey

	// Data errors 💾
	ErrIntegrity = carterrors.ErrIntegrity

	// Lock errors 🔒
	ErrLockTimeout = carterrors.ErrLockTimeout
)
