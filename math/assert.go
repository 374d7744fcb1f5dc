package math

import "fmt"

// assert panics with msg if cond is false and the q_debug build tag is
// set; a no-op in release builds, where the caller falls back to a
// saturated or zero result instead.
func assert(cond bool, format string, args ...interface{}) {
	if debug && !cond {
		panic("q/math: " + fmt.Sprintf(format, args...))
	}
}
