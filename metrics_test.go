package vector

import (
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v, err := NewSized[int64](0, 10)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}

	// Test initial state
	if v.Size() != 0 {
		t.Errorf("Initial Size = %d, want 0", v.Size())
	}
	if v.Cap() != 10 {
		t.Errorf("Initial Cap = %d, want 10", v.Cap())
	}
	if v.SizeInBytes() != 80 {
		t.Errorf("Initial SizeInBytes = %d, want 80", v.SizeInBytes())
	}
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}

	for i := int64(0); i < 5; i++ {
		_ = v.Push(i)
	}
	if v.Utilization() != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", v.Utilization())
	}

	// Force growth
	for i := int64(5); i < 11; i++ {
		_ = v.Push(i)
	}
	if v.Growths() != 1 {
		t.Errorf("Growths after growth = %d, want 1", v.Growths())
	}

	// Test metrics snapshot
	metrics := v.Metrics()
	want := VectorMetrics{
		Size:        11,
		Capacity:    12,
		TypicalSize: 10,
		Growths:     1,
		Bytes:       96,
		Utilization: 11.0 / 12.0,
	}
	if metrics != want {
		t.Errorf("Metrics = %+v, want %+v", metrics, want)
	}
}

func TestVectorMetricsAfterRelease(t *testing.T) {
	v, err := NewSized[int](0, 8)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	_ = v.Push(1)

	v.Release()

	if v.Size() != 0 {
		t.Errorf("Size after Release = %d, want 0", v.Size())
	}
	if v.Cap() != 0 {
		t.Errorf("Cap after Release = %d, want 0", v.Cap())
	}
	if v.SizeInBytes() != 0 {
		t.Errorf("SizeInBytes after Release = %d, want 0", v.SizeInBytes())
	}
	if v.Utilization() != 0 {
		t.Errorf("Utilization after Release = %f, want 0", v.Utilization())
	}
}

func TestGrowthHelpers(t *testing.T) {
	tests := []struct {
		typical   int
		increment int
	}{
		{1, 1},
		{4, 1},
		{5, 1},
		{6, 2},
		{8, 2},
		{64, 13},
		{100, 20},
		{101, 21},
		{200, 40},
		{500, 100},
	}

	for _, tt := range tests {
		if got := GrowthIncrement(tt.typical); got != tt.increment {
			t.Errorf("GrowthIncrement(%d) = %d, want %d", tt.typical, got, tt.increment)
		}
		if got := NextCapacity(tt.typical, tt.typical); got != tt.typical+tt.increment {
			t.Errorf("NextCapacity(%d, %d) = %d, want %d", tt.typical, tt.typical, got, tt.typical+tt.increment)
		}
	}

	if got := InitialCapacity(0, 8); got != 8 {
		t.Errorf("InitialCapacity(0, 8) = %d, want 8", got)
	}
	if got := InitialCapacity(500, 8); got != 500 {
		t.Errorf("InitialCapacity(500, 8) = %d, want 500", got)
	}
}

func BenchmarkMetrics(b *testing.B) {
	v, _ := NewSized[int](0, 100)
	for i := 0; i < 100; i++ {
		_ = v.Push(i)
	}

	b.Run("Utilization", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Utilization()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Metrics()
		}
	})
}
