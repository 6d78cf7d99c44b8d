package utility

import (
	"sync"

	"github.com/google/uuid"
)

// RunID identifies one invocation of the tool; every report produced by the
// process carries the same value.
type RunID = uuid.UUID

var (
	runID     RunID
	runIDOnce sync.Once
)

func CurrentRunID() RunID {
	runIDOnce.Do(func() {
		runID = NewRunID()
	})
	return runID
}

// NewRunID returns a time ordered (v7) identifier.
func NewRunID() RunID {
	return uuid.Must(uuid.NewV7())
}
