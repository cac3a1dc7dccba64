package vector

// GrowthIncrement returns ceil(0.2 * typicalSize), the number of elements
// added to the capacity on every growth event. The increment does not
// depend on the current capacity, so growth is linear: appends stay
// O(1) amortized only while the length remains within a small multiple of
// typicalSize, and total relocation work tends to O(n^2/typicalSize) for
// lengths far beyond it. This is the policy under measurement.
func GrowthIncrement(typicalSize int) int {
	if typicalSize <= 0 {
		return 1
	}
	return (typicalSize + 4) / 5
}

// NextCapacity returns the capacity after one growth event.
func NextCapacity(capacity, typicalSize int) int {
	return capacity + GrowthIncrement(typicalSize)
}

// InitialCapacity returns max(sizeHint, typicalSize).
func InitialCapacity(sizeHint, typicalSize int) int {
	return max(sizeHint, typicalSize)
}
