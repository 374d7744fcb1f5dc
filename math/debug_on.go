//go:build q_debug

package math

const debug = true
