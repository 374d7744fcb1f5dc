//go:build !q_debug

package q

// debug gates precondition assertions that catch programming errors
// (e.g. division by zero passed directly to Div rather than through the
// evaluator's precondition checks): they terminate the process in debug
// builds and are a no-op otherwise. Build with -tags q_debug to turn
// them on; see debug_on.go.
const debug = false
