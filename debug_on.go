//go:build q_debug

package q

const debug = true
