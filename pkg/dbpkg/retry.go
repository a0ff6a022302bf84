package dbpkg

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes that indicate the transaction lost a concurrent
// conflict and may succeed when re-run.
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// IsRetryable reports whether the error is a serialization failure or a
// deadlock, i.e. the whole transaction should be re-run from the start.
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == serializationFailure || pqErr.Code == deadlockDetected
	}

	return false
}
