// Package math implements the transcendental and extended math functions
// derived from the unified CORDIC engine in q/internal/cordic: circular
// (sin, cos, tan, cot, atan, atan2, asin, acos), hyperbolic (sinh, cosh,
// tanh, asinh, acosh, atanh), and the exponential/logarithmic/root family
// built from range reduction around the circular and hyperbolic CORDIC
// invocations (exp, ln, pow, sqrt, hypot, polar/rectangular conversion).
package math
