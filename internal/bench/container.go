// Package bench measures the sized vector against the builtin slice under
// concurrent load. Each trial samples a target length, builds a fresh
// container, pushes that many integers and checks the final size.
package bench

import (
	vector "github.com/changx03/custom-vector-multithread"
)

// Container is the contract both measured implementations satisfy.
type Container interface {
	Push(v int) error
	Size() int
}

// releaser is implemented by containers that own resources beyond the
// garbage collector's reach.
type releaser interface {
	Release()
}

// Factory builds a container from a size hint. A hint of zero means the
// final length is unknown.
type Factory func(sizeHint int) (Container, error)

// VectorFactory returns a Factory for vector.Vector[int] with the given
// typical size and per-block memory limit (zero for none).
func VectorFactory(typicalSize int, memoryLimit int64) Factory {
	cfg := vector.Config[int]{TypicalSize: typicalSize, MemoryLimit: memoryLimit}
	return func(sizeHint int) (Container, error) {
		v, err := vector.New[int](sizeHint, cfg)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// SliceFactory returns a Factory for the builtin slice reference.
func SliceFactory() Factory {
	return func(sizeHint int) (Container, error) {
		return &slice{s: make([]int, 0, sizeHint)}, nil
	}
}

// slice is the builtin dynamic array behind the Container contract.
type slice struct {
	s []int
}

func (s *slice) Push(v int) error {
	s.s = append(s.s, v)
	return nil
}

func (s *slice) Size() int {
	return len(s.s)
}
