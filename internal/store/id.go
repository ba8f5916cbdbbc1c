package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID combines a base-36 millisecond timestamp with 48 random bits from a
// v4 UUID. There is no collision check; ids only need to be unique within
// one owner's collections.
func NewID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strconv.FormatInt(now.UnixMilli(), 36) + random[len(random)-12:]
}
