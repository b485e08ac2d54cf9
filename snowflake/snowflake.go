// Package snowflake generates time-ordered 64-bit identifiers in the
// Twitter/Discord snowflake layout.
package snowflake

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Epoch is the Discord epoch: 2015-01-01T00:00:00Z.
var Epoch = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

// Bit layout of the low 22 bits: worker<<17 | process<<12 | increment.
const (
	workerBits    = 5
	processBits   = 5
	incrementBits = 12

	timestampShift = workerBits + processBits + incrementBits
	workerShift    = processBits + incrementBits
	processShift   = incrementBits
)

// New returns a fresh snowflake: milliseconds since Epoch in the high bits,
// with worker, process and increment fields drawn from a cryptographic
// random source so IDs stay unique even when generated in a tight loop.
func New() int64 {
	millis := time.Since(Epoch).Milliseconds()

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the clock so the ID is still time-ordered.
		return millis << timestampShift
	}
	r := binary.BigEndian.Uint64(buf[:])

	worker := int64(r>>40) & (1<<workerBits - 1)
	process := int64(r>>20) & (1<<processBits - 1)
	increment := int64(r) & (1<<incrementBits - 1)

	return millis<<timestampShift | worker<<workerShift | process<<processShift | increment
}

// Timestamp extracts the creation time encoded in a snowflake.
func Timestamp(id int64) time.Time {
	millis := id >> timestampShift
	return Epoch.Add(time.Duration(millis) * time.Millisecond)
}
