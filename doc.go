// Package vector implements a contiguous, append-only sequence container
// whose storage is sized from an expected typical length.
//
// # Overview
//
// Most sequences built by a program end up short, and the same few
// lengths come back over and over. A Vector is told that typical length
// (N) up front and uses it in two places:
//
//   - the first block holds max(sizeHint, N) elements, so the common case
//     never relocates
//   - every growth event adds ceil(0.2 * N) elements instead of doubling
//
// # Basic Usage
//
//	v, err := vector.NewSized[int](0, 64) // length unknown, typically 64
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//
//	for i := 0; i < n; i++ {
//		if err := v.Push(i); err != nil {
//			return err
//		}
//	}
//	fmt.Println(v.Size())
//
// # Growth Policy
//
// The increment depends only on N, never on the current capacity. Growth
// is therefore linear: while the length stays within a small multiple of
// N an append is O(1) amortized, but a sequence that ends far beyond N
// pays O(n) relocation per growth event and O(n^2 / N) overall. The
// policy is deliberate; it avoids over-allocating when N is small.
//
// # Element Lifecycle
//
// Relocation transfers elements one by one. Without hooks they are moved.
// With Config.Copy each element is copy-constructed into the new block,
// and once all copies succeeded Config.Destroy is run on every original.
// Release runs Config.Destroy on every live element. A panicking Copy
// hook leaves the vector untouched.
//
// # Thread Safety
//
// A Vector is not goroutine-safe and has no internal synchronization.
// Concurrent programs give each goroutine its own vectors.
//
// # Errors
//
// New and Push return an *AllocationError, which unwraps to ErrAllocation,
// when a block cannot be obtained: its size overflows, it exceeds
// Config.MemoryLimit, or the runtime refuses it. A Push that fails leaves
// the vector unchanged. A length beyond capacity is an internal fault and
// panics with an assertion failure.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Growth events: %d\n", m.Growths)
package vector
