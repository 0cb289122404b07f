package uuidgen

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxBatchSize is the upper bound on a single batch generation request.
const MaxBatchSize = 1000

// NewV4 returns a random (version 4) UUID.
func NewV4() uuid.UUID {
	var u uuid.UUID
	// rand.Read never fails on supported platforms (it panics instead),
	// matching the no-error contract of v4 generation
	rand.Read(u[:])
	u[6] = (u[6] & 0x0F) | 0x40 // version 4
	u[8] = (u[8] & 0x3F) | 0x80 // variant 10
	return u
}

// NewV7 returns a time-ordered (version 7) UUID using the current wall clock.
func NewV7() uuid.UUID {
	return NewV7At(time.Now().UnixMilli())
}

// NewV7At builds a version 7 UUID for the given Unix-epoch millisecond
// timestamp. The layout is:
//
//	48 bits  big-endian unix milliseconds
//	 4 bits  version (0111)
//	12 bits  random
//	 2 bits  variant (10)
//	62 bits  random
//
// UUIDs generated at strictly increasing millisecond ticks sort correctly in
// byte order; within the same millisecond the tail is purely random and no
// relative order is defined.
func NewV7At(ms int64) uuid.UUID {
	var u uuid.UUID
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)
	rand.Read(u[6:])
	u[6] = (u[6] & 0x0F) | 0x70 // version 7
	u[8] = (u[8] & 0x3F) | 0x80 // variant 10
	return u
}

// Format renders a UUID in its canonical lowercase hyphenated form, with
// optional cosmetic transforms. Case and dash removal do not change the
// underlying 128-bit value.
func Format(u uuid.UUID, uppercase bool, stripDashes bool) string {
	s := u.String()
	if uppercase {
		s = strings.ToUpper(s)
	}
	if stripDashes {
		s = strings.ReplaceAll(s, "-", "")
	}
	return s
}

// GenerateBatch produces count independently generated UUID strings of the
// requested version (4 or 7) with the requested transforms applied to each.
// count must be between 1 and MaxBatchSize; out-of-range counts are rejected
// rather than clamped. No uniqueness guarantee is made beyond the underlying
// generator's collision probability.
func GenerateBatch(count int, version int, uppercase bool, stripDashes bool) ([]string, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, fmt.Errorf("batch size must be between 1 and %d, got %d", MaxBatchSize, count)
	}
	if version != 4 && version != 7 {
		return nil, fmt.Errorf("unsupported UUID version: %d", version)
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var u uuid.UUID
		if version == 7 {
			u = NewV7()
		} else {
			u = NewV4()
		}
		out = append(out, Format(u, uppercase, stripDashes))
	}
	return out, nil
}
