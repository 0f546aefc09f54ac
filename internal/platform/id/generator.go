package id

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
)

// Length is the number of hex characters in an entity identifier.
const Length = 24

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// ObjectIDGenerator produces 12-byte identifiers rendered as 24 hex chars:
// 4 bytes of unix seconds, 5 bytes of per-process randomness and a 3-byte
// counter. IDs created later in time sort after earlier ones.
type ObjectIDGenerator struct {
	clock   clockwork.Clock
	process [5]byte
	counter atomic.Uint32
}

func NewObjectIDGenerator(clock clockwork.Clock) (*ObjectIDGenerator, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	g := &ObjectIDGenerator{clock: clock}
	if _, err := rand.Read(g.process[:]); err != nil {
		return nil, fmt.Errorf("read process random bytes: %w", err)
	}

	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read counter seed: %w", err)
	}
	g.counter.Store(binary.BigEndian.Uint32(seed[:]))

	return g, nil
}

func (g *ObjectIDGenerator) NewID() (string, error) {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(g.clock.Now().Unix()))
	copy(buf[4:9], g.process[:])

	next := g.counter.Add(1)
	buf[9] = byte(next >> 16)
	buf[10] = byte(next >> 8)
	buf[11] = byte(next)

	return hex.EncodeToString(buf[:]), nil
}

// Parse trims raw and returns its canonical lower-case form when it is a
// well-formed identifier.
func Parse(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if !Valid(value) {
		return "", false
	}
	return strings.ToLower(value), true
}

// Valid reports whether raw is a well-formed identifier.
func Valid(raw string) bool {
	if len(raw) != Length {
		return false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
