package bench

import (
	"fmt"
	"io"
	"time"
)

// Report writes one result section:
//
//	Testing with 90% of the vectors under 8 elements:
//	 * 0.412345678 seconds with custom vector
//	 * 0.512345678 seconds with builtin slice
//	 * Speedup factor: 1.2x
func Report(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w,
		"Testing with 90%% of the vectors under %d elements:\n"+
			" * %s seconds with %s\n"+
			" * %s seconds with %s\n"+
			" * Speedup factor: %.2gx\n",
		r.TypicalSize,
		formatSeconds(r.Custom.Elapsed), r.Custom.Name,
		formatSeconds(r.Builtin.Elapsed), r.Builtin.Name,
		r.Speedup(),
	)
	return err
}

// formatSeconds renders d as seconds with nanosecond precision.
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%d.%09d", d/time.Second, d%time.Second)
}
