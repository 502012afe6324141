package employee

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewEmployeeID builds a human-readable identifier from the creation
// timestamp plus a random 4-digit suffix. Uniqueness is enforced by the
// store, not by construction: a collision surfaces as
// ErrIDGenerationFailed and the caller retries.
func NewEmployeeID(now time.Time) string {
	id := uuid.New()
	suffix := binary.BigEndian.Uint32(id[:4]) % 10000
	return fmt.Sprintf("EMP%s%04d", now.Format("060102150405"), suffix)
}
