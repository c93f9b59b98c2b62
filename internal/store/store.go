// Package store holds parsed records in a growable array whose capacity
// doubles on overflow, starting from a single slot.
package store

import (
	"errors"
	"math"

	"fastabench/internal/fasta"
)

// ErrOutOfMemory is returned when the store cannot grow.
var ErrOutOfMemory = errors.New("store: cannot grow record array")

const initialCap = 1

// Store exclusively owns the records appended to it.
// It is not safe for concurrent use.
type Store struct {
	recs   []fasta.Record // len(recs) is the allocated capacity
	n      int
	bytes  int64
	limit  int // 0 = unlimited
	onGrow func(from, to int)
}

// Option configures a Store.
type Option func(*Store)

// WithLimit caps the number of slots the store may allocate.
// Growth past the cap fails with ErrOutOfMemory.
func WithLimit(slots int) Option {
	return func(s *Store) { s.limit = slots }
}

// WithGrowHook registers fn to be called after every reallocation.
func WithGrowHook(fn func(from, to int)) Option {
	return func(s *Store) { s.onGrow = fn }
}

// New returns an empty store with capacity 1.
func New(opts ...Option) *Store {
	s := &Store{recs: make([]fasta.Record, initialCap)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Len is the number of records held.
func (s *Store) Len() int { return s.n }

// Cap is the number of allocated slots.
func (s *Store) Cap() int { return len(s.recs) }

// Bytes is the total header + payload size of the records held.
func (s *Store) Bytes() int64 { return s.bytes }

// Waste is the share of allocated slots left unused, in percent.
func (s *Store) Waste() float64 {
	c := s.Cap()
	if c == 0 {
		return 0
	}
	return float64(c-s.n) / float64(c) * 100
}

// Append takes ownership of rec, doubling capacity first when full.
func (s *Store) Append(rec fasta.Record) error {
	if s.n == len(s.recs) {
		if err := s.grow(); err != nil {
			return err
		}
	}
	s.recs[s.n] = rec
	s.n++
	s.bytes += int64(rec.Size())
	return nil
}

func (s *Store) grow() error {
	from := len(s.recs)
	to, err := doubled(from, s.limit)
	if err != nil {
		return err
	}
	next := make([]fasta.Record, to)
	copy(next, s.recs[:s.n])
	clear(s.recs) // the old array must not keep the buffers alive
	s.recs = next
	if s.onGrow != nil {
		s.onGrow(from, to)
	}
	return nil
}

// doubled returns twice from, or ErrOutOfMemory when that overflows int
// or exceeds a non-zero limit.
func doubled(from, limit int) (int, error) {
	if from > math.MaxInt/2 {
		return 0, ErrOutOfMemory
	}
	to := from * 2
	if limit > 0 && to > limit {
		return 0, ErrOutOfMemory
	}
	return to, nil
}

// At returns the i-th record. It panics if i is out of range.
func (s *Store) At(i int) fasta.Record {
	if i < 0 || i >= s.n {
		panic("store: index out of range")
	}
	return s.recs[i]
}

// Drain hands every record to fn in order, releasing each slot as it goes.
// The store is empty afterwards; capacity is kept.
func (s *Store) Drain(fn func(fasta.Record)) {
	for i := 0; i < s.n; i++ {
		rec := s.recs[i]
		s.recs[i] = fasta.Record{}
		fn(rec)
	}
	s.n = 0
	s.bytes = 0
}

// Clear releases all records. Capacity is kept.
func (s *Store) Clear() {
	clear(s.recs[:s.n])
	s.n = 0
	s.bytes = 0
}
