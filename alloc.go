package vector

import (
	"fmt"
	"math/bits"
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

// ErrAllocation is the cause of every AllocationError.
var ErrAllocation = errors.New("vector: allocation failed")

// AllocationError reports a storage block that could not be obtained.
// It unwraps to ErrAllocation.
type AllocationError struct {
	Elements int    // requested element count
	Bytes    uint64 // requested block size, when it fits in a uint64
	Limit    int64  // configured memory limit, zero if none
	Reason   string
}

func (e *AllocationError) Error() string {
	msg := fmt.Sprintf("vector: cannot allocate %d elements (%s)", e.Elements, humanize.IBytes(e.Bytes))
	if e.Limit > 0 {
		msg += fmt.Sprintf(" with limit %s", humanize.IBytes(uint64(e.Limit)))
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns ErrAllocation.
func (e *AllocationError) Unwrap() error {
	return ErrAllocation
}

// allocate returns a zeroed block of n elements of T. Size overflow, the
// memory limit and runtime refusals (makeslice panics) all surface as an
// *AllocationError. A genuine out-of-memory condition is fatal in Go and
// cannot be reported.
func allocate[T any](n int, limit int64) (buf []T, err error) {
	var zero T
	hi, size := bits.Mul64(uint64(n), uint64(unsafe.Sizeof(zero)))
	if hi != 0 {
		return nil, &AllocationError{Elements: n, Limit: limit, Reason: "size overflows uint64"}
	}
	if limit > 0 && size > uint64(limit) {
		return nil, &AllocationError{Elements: n, Bytes: size, Limit: limit, Reason: "exceeds memory limit"}
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, &AllocationError{Elements: n, Bytes: size, Limit: limit, Reason: re.Error()}
		}
	}()
	return make([]T, n), nil
}

// relocate transfers src into the front of dst. With a copy hook each
// element is copy-constructed into dst and the originals are destroyed
// once every copy succeeded; without one the elements are moved and src
// keeps no ownership. If the copy hook panics, the copies made so far are
// destroyed and src is left untouched.
func relocate[T any](dst, src []T, cp func(T) T, destroy func(T)) {
	if cp == nil {
		copy(dst, src)
		return
	}
	n := 0
	defer func() {
		if n == len(src) {
			return
		}
		if destroy != nil {
			for _, x := range dst[:n] {
				destroy(x)
			}
		}
		clear(dst[:n])
	}()
	for ; n < len(src); n++ {
		dst[n] = cp(src[n])
	}
	if destroy != nil {
		for _, x := range src {
			destroy(x)
		}
	}
}
