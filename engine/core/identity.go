package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	idMutex  sync.Mutex
	lastBase string
	idSeq    int
)

// NewRunID returns the unique identifier for a whole export run.
func NewRunID() string {
	return uuid.New().String()
}

// NewMeshID returns a timestamp identifier (YYYYMMDD_HHMMSS_microseconds)
// used in every file name written for one mesh. Ids landing in the same
// microsecond get a sequence suffix so they never repeat within a run.
func NewMeshID() string {
	idMutex.Lock()
	defer idMutex.Unlock()

	now := time.Now()
	base := fmt.Sprintf("%s_%06d", now.Format("20060102_150405"), now.Nanosecond()/1000)
	if base != lastBase {
		lastBase = base
		idSeq = 0
		return base
	}
	idSeq++
	return fmt.Sprintf("%s_%02d", base, idSeq)
}
