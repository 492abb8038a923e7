package repository

import (
	"errors"
	"fmt"
	"strings"
)

// errCritical marks errors which should stop repeater from retrying
var errCritical = errors.New("critical storage error")

// critical wraps an error to signal repeater to stop retrying
func critical(err error) error {
	return fmt.Errorf("%w: %w", errCritical, err)
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
