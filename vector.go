// Package vector implements a contiguous, append-only sequence whose
// storage is pre-sized and grown from an expected typical length.
// Typical usage: create one vector per unit of work, Push the elements,
// read Size, then Release.
package vector

import "github.com/cockroachdb/errors"

// DefaultTypicalSize is the typical size used when Config.TypicalSize is zero.
const DefaultTypicalSize = 8

var (
	// ErrNegativeSizeHint is returned by New for a size hint below zero.
	ErrNegativeSizeHint = errors.New("vector: negative size hint")
	// ErrInvalidTypicalSize is returned by New for a typical size below zero.
	ErrInvalidTypicalSize = errors.New("vector: invalid typical size")
)

// GrowEvent describes one growth event of a Vector.
type GrowEvent struct {
	OldCapacity int
	NewCapacity int
	Relocated   int // live elements transferred to the new block
}

// Config tunes a Vector at construction time.
type Config[T any] struct {
	// TypicalSize is the expected common-case final length (N). It sets
	// the capacity floor and the growth increment. Zero selects
	// DefaultTypicalSize.
	TypicalSize int

	// MemoryLimit caps the size in bytes of a single storage block.
	// Zero means unlimited.
	MemoryLimit int64

	// Copy constructs a new element from an existing one during
	// relocation. When nil, elements are moved instead.
	Copy func(src T) T

	// Destroy is run for each original left behind by a copy relocation
	// and for each live element on Release.
	Destroy func(v T)

	// OnGrow is called once per growth event, after the new block has
	// been adopted.
	OnGrow func(GrowEvent)
}

// Vector is a contiguous, append-only sequence of T. Not goroutine-safe:
// an instance must be owned by a single goroutine. A Vector must be
// created with New or NewSized.
type Vector[T any] struct {
	buf    []T // len(buf) is the capacity; buf[:length] are live
	length int

	cfg     Config[T]
	growths int
}

// New creates a Vector able to hold max(sizeHint, cfg.TypicalSize)
// elements before its first growth event. A sizeHint of zero means the
// final length is unknown.
func New[T any](sizeHint int, cfg Config[T]) (*Vector[T], error) {
	if sizeHint < 0 {
		return nil, errors.Wrapf(ErrNegativeSizeHint, "size hint %d", sizeHint)
	}
	if cfg.TypicalSize < 0 {
		return nil, errors.Wrapf(ErrInvalidTypicalSize, "typical size %d", cfg.TypicalSize)
	}
	if cfg.TypicalSize == 0 {
		cfg.TypicalSize = DefaultTypicalSize
	}
	buf, err := allocate[T](InitialCapacity(sizeHint, cfg.TypicalSize), cfg.MemoryLimit)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{buf: buf, cfg: cfg}, nil
}

// NewSized creates a Vector with the given typical size and no hooks.
func NewSized[T any](sizeHint, typicalSize int) (*Vector[T], error) {
	return New[T](sizeHint, Config[T]{TypicalSize: typicalSize})
}

// Push appends x. When storage is exhausted it first grows the vector by
// GrowthIncrement(TypicalSize) elements. On error the vector is left
// exactly as it was.
func (v *Vector[T]) Push(x T) error {
	v.panicIfReleased()
	if v.length > len(v.buf) {
		panic(errors.AssertionFailedf("vector: length %d exceeds capacity %d", v.length, len(v.buf)))
	}
	if v.length == len(v.buf) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.buf[v.length] = x
	v.length++
	return nil
}

// Size returns the number of elements pushed so far.
func (v *Vector[T]) Size() int {
	return v.length
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.length {
		panic(errors.Newf("vector: index %d out of range [0:%d]", i, v.length))
	}
	return v.buf[i]
}

// Release destroys all live elements and drops the storage block. The
// vector is unusable afterwards; further calls to Push panic. Calling
// Release more than once is a no-op.
func (v *Vector[T]) Release() {
	if v.buf == nil {
		return
	}
	if v.cfg.Destroy != nil {
		for _, x := range v.buf[:v.length] {
			v.cfg.Destroy(x)
		}
	}
	v.buf = nil
	v.length = 0
}

// grow moves the live elements into a block GrowthIncrement elements
// larger. The new block is allocated before anything is touched.
func (v *Vector[T]) grow() error {
	oldCap := len(v.buf)
	newCap := NextCapacity(oldCap, v.cfg.TypicalSize)
	if newCap <= oldCap {
		return &AllocationError{Elements: oldCap, Limit: v.cfg.MemoryLimit, Reason: "capacity overflows int"}
	}
	buf, err := allocate[T](newCap, v.cfg.MemoryLimit)
	if err != nil {
		return errors.Wrapf(err, "growing from %d elements", oldCap)
	}
	relocate(buf, v.buf[:v.length], v.cfg.Copy, v.cfg.Destroy)
	v.buf = buf
	v.growths++
	if v.cfg.OnGrow != nil {
		v.cfg.OnGrow(GrowEvent{OldCapacity: oldCap, NewCapacity: newCap, Relocated: v.length})
	}
	return nil
}

// panicIfReleased panics if the vector has been released.
func (v *Vector[T]) panicIfReleased() {
	if v.buf == nil {
		panic("vector: use after Release()")
	}
}
