// Package sink implements the durable append-only record store behind the
// intake engine: one stream of raw interaction turns, one stream of confirmed
// submissions. Records are created, never updated or deleted.
package sink

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pqrchat/backend/internal/config"
)

// NewRadicadoID builds a submission identifier: a fixed prefix, the creation
// time to second granularity, and a short random suffix. Uniqueness within a
// run is guaranteed in practice by the UUID suffix; global uniqueness is
// best-effort.
func NewRadicadoID(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:config.RadicadoSuffixLen])
	return fmt.Sprintf("%s-%s-%s", config.RadicadoPrefix, now.Format(config.RadicadoTimeLayout), suffix)
}
