package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrNonPositiveMax = errors.New("max must be a positive integer")

// Source draws uniform random integers from an entropy stream.
// The zero value is not usable; construct with NewSource or use the
// package default backed by crypto/rand.
type Source struct {
	r io.Reader
}

// NewSource creates a Source reading entropy from r. Production code
// should use the default crypto/rand-backed source; injecting a reader
// exists so tests can supply deterministic bytes.
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

var defaultSource = &Source{r: rand.Reader}

// Int returns a uniformly distributed integer in [0, max) using the
// default crypto/rand-backed source.
func Int(max int) (int, error) {
	return defaultSource.Int(max)
}

// Int returns a uniformly distributed integer in [0, max).
//
// Plain `draw % max` over a 32-bit draw skews toward low values whenever
// max does not evenly divide 2^32. Draws at or above
// floor(2^32/max)*max are rejected and retried, so every output keeps
// exactly the same number of 32-bit preimages. Expected draws per call
// is below 2 for any max.
func (s *Source) Int(max int) (int, error) {
	if max <= 0 {
		return 0, ErrNonPositiveMax
	}
	if max == 1 {
		// Single outcome, no entropy needed.
		return 0, nil
	}

	m := uint64(max)
	limit := ((1 << 32) / m) * m

	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, fmt.Errorf("reading entropy source: %w", err)
		}
		draw := uint64(binary.BigEndian.Uint32(buf[:]))
		if draw >= limit {
			continue
		}
		return int(draw % m), nil
	}
}
