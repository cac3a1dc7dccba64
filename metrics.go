package vector

import "unsafe"

// Cap returns the number of elements the vector can hold before its next
// growth event. A released vector reports 0.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// TypicalSize returns the typical size the vector was configured with.
func (v *Vector[T]) TypicalSize() int {
	return v.cfg.TypicalSize
}

// Growths returns the number of growth events since construction.
func (v *Vector[T]) Growths() int {
	return v.growths
}

// SizeInBytes returns the size of the storage block in bytes.
func (v *Vector[T]) SizeInBytes() int {
	var zero T
	return len(v.buf) * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}
	return float64(v.length) / float64(len(v.buf))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:        v.Size(),
		Capacity:    v.Cap(),
		TypicalSize: v.TypicalSize(),
		Growths:     v.Growths(),
		Bytes:       v.SizeInBytes(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size        int     // Live elements
	Capacity    int     // Allocated elements
	TypicalSize int     // Configured typical size
	Growths     int     // Growth events so far
	Bytes       int     // Storage block size in bytes
	Utilization float64 // Ratio of size to capacity (0.0-1.0)
}
