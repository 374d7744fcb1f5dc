// Package q implements a signed Q16.16 fixed-point numeric core: a 32-bit
// signed two's-complement integer interpreted as value * 2^-16, intended
// for embedded and deterministic-latency environments where
// floating-point hardware is undesirable or unavailable.
//
// The following type is supported:
//
//	Q, a single machine-sized signed integer
//
// The zero value for a Q corresponds with 0. Arithmetic is exposed two
// ways, mirroring the decimal library this package is modeled on:
//
//	func Add(a, b Q) Q                 // uses the package-default Config
//	func (c Config) Add(a, b Q) Q      // uses an explicit Config
//
// Package-level functions that have a Config method are shorthand for the
// same method called on Default, the package's default-configured Config (saturating overflow,
// base 10, maximum print precision). Internally every operation widens
// its operands to a 64-bit signed intermediate before applying the
// configured overflow policy, exactly once per operation.
//
// Subpackages:
//
//	q/internal/cordic   the unified CORDIC engine
//	q/math              transcendental and extended math built on cordic
//	q/eval              a shunting-yard expression evaluator over this package
package q
