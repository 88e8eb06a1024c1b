//go:build gem5

package gem5

// #cgo LDFLAGS: -lm5
// #include <gem5/m5ops.h>
import "C"

type hooks struct{}

// WindowOpen resets and restarts the simulator's statistics collection.
func (hooks) WindowOpen() {
	C.m5_dump_reset_stats(0, 0)
}

// WindowClose dumps the statistics accumulated during the window.
func (hooks) WindowClose() {
	C.m5_dump_stats(0, 0)
}
