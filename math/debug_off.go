//go:build !q_debug

package math

// debug gates this package's own domain-violation assertions (pow with an
// invalid zero/negative base-exponent combination, sqrt/log of a negative
// operand), the same way the root package gates arithmetic ones — see
// github.com/howerj/q's debug_off.go.
const debug = false
