package q

import "fmt"

// assert panics with msg if cond is false and the q_debug build tag is
// set; it is a no-op in release builds, where the caller is expected to
// fall back to a saturated or zero result instead.
func assert(cond bool, format string, args ...interface{}) {
	if debug && !cond {
		panic("q: " + fmt.Sprintf(format, args...))
	}
}
