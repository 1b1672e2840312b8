package repository

import (
	"context"
	"errors"
	"fmt"

	"woofer/internal/common"
)

// storageErr wraps a gateway failure with its operation name. Context
// timeouts and cancellations are tagged common.ErrStorage so handlers report
// them as storage unavailability.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %v: %w", op, err, common.ErrStorage)
	}
	return fmt.Errorf("%s: %w", op, err)
}
