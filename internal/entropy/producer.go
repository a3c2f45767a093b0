// Package entropy collects the 64-bit seed that key generation starts from.
//
// The seed mixes a clock reading, an address-derived value and one draw from
// the system random source. It is not a cryptographic seeding procedure.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
	"unsafe"
)

// Option configures a Producer.
type Option func(*Producer)

// WithClock replaces the clock tick source.
func WithClock(fn func() uint64) Option {
	return func(p *Producer) { p.clock = fn }
}

// WithAddress replaces the address-derived source.
func WithAddress(fn func() uint64) Option {
	return func(p *Producer) { p.address = fn }
}

// WithRandom replaces the system random source.
func WithRandom(r io.Reader) Option {
	return func(p *Producer) { p.random = r }
}

// Producer holds a seed collected once at construction.
type Producer struct {
	clock   func() uint64
	address func() uint64
	random  io.Reader

	raw uint64
}

// NewProducer reads every source once and combines them into the raw seed.
// It fails only when the random source cannot deliver eight bytes.
func NewProducer(opts ...Option) (*Producer, error) {
	p := &Producer{
		clock:  unixNanoTicks,
		random: rand.Reader,
	}
	p.address = func() uint64 { return uint64(uintptr(unsafe.Pointer(p))) }
	for _, opt := range opts {
		opt(p)
	}

	var buf [8]byte
	if _, err := io.ReadFull(p.random, buf[:]); err != nil {
		return nil, fmt.Errorf("read system random: %w", err)
	}

	p.raw = p.clock()
	p.raw ^= p.address()
	p.raw ^= binary.LittleEndian.Uint64(buf[:])
	return p, nil
}

// Seed returns the mixed seed.
func (p *Producer) Seed() uint64 { return Mix(p.raw) }

// Raw returns the seed before mixing.
func (p *Producer) Raw() uint64 { return p.raw }

// Mix is a xorshift pass followed by a golden-ratio multiply.
func Mix(v uint64) uint64 {
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	v *= 0x9E3779B97F4A7C15
	return v
}

func unixNanoTicks() uint64 {
	return uint64(time.Now().UnixNano())
}
