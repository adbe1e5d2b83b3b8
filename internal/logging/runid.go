// Package logging provides run identification and slog setup for the
// command-line tools. The library packages stay log-free; logging happens at
// the CLI boundary only.
package logging

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateRunID returns a ULID identifying one tool invocation. ULIDs are
// 26-character Crockford base32 and sort by creation time, which keeps log
// lines from overlapping runs distinguishable and ordered.
func GenerateRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
