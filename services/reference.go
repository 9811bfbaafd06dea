package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReference produces the external order identifier, assigned once
// per checkout before any persistence attempt and reused identically by
// whichever store accepts the write. Timestamp plus a random suffix keeps
// it unique across concurrent requests within the same millisecond.
// URL-safe and well under the 50-char column limit.
func GenerateReference() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("UN-%d-%s", time.Now().UnixMilli(), suffix)
}
