// Package eval implements a shunting-yard expression evaluator over the
// Q arithmetic, rounding and transcendental operation surface: a lexer, a
// sorted operator table looked up by binary search, and a two-stack
// parser/evaluator that runs one operator's precondition check at a time
// and stops at the first error.
//
// Grounded on other_examples' robpike-ivy (an operator-table-driven
// APL-like evaluator with named variables) and skx-math-compiler (whose
// compiler.constants map is the model for this package's Variables type);
// the two-stack shunting-yard structure itself and the evaluator's
// fixed-lifecycle, construct-populate-use-once-discard instance model are
// original to this core and not present in either reference.
package eval
