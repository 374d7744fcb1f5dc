package eval

import (
	"sort"

	"github.com/howerj/q"
	qmath "github.com/howerj/q/math"
)

// Assoc is an operator's associativity, used by the shunting-yard
// pop-and-evaluate rule to decide whether an equal-precedence operator
// already on the stack yields to, or is yielded to by, the incoming one.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
)

// UnaryFunc and BinaryFunc are the two function shapes an Operator can
// carry: exactly one of Unary or Binary is set on any given Operator,
// selected by Arity. Each func already folds the operator's precondition
// check together with its evaluation, returning a *PreconditionError
// instead of a result when the check fails.
type UnaryFunc func(q.Q) (q.Q, error)
type BinaryFunc func(q.Q, q.Q) (q.Q, error)

// Operator is one entry of the sorted operator table.
type Operator struct {
	Name   string
	Arity  int // 1 (Unary set) or 2 (Binary set)
	Prec   int
	Assoc  Assoc
	Hidden bool
	Unary  UnaryFunc
	Binary BinaryFunc
}

// Precedence tiers, loosest-binding first (a higher value binds tighter).
// Unary functions (negate,
// trig, sqrt, the property predicates, ...) bind as tightly as a
// function call, so "sin 0.5 + 1" parses as "(sin 0.5) + 1" rather than
// "sin(0.5 + 1)".
const (
	precOr = 10 + iota*10
	precXor
	precAnd
	precEquality
	precRelational
	precShift
	precAddSub
	precMulDivModRem
	precPow
	precUnary
)

func boolQ(v bool) q.Q {
	if v {
		return q.One
	}
	return q.Zero
}

func shiftAmount(op string, n q.Q) (uint, error) {
	if !q.IsInteger(n) || n < 0 {
		return 0, &PreconditionError{Op: op, Message: "shift amount must be a non-negative integer"}
	}
	return uint(n.ToInt32()), nil
}

// opLParen, opRParen, opUnaryNeg and opBinaryMinus are the sentinel
// operators the parser consults directly rather than by name lookup.
var (
	opLParen      = &Operator{Name: "(", Arity: 0}
	opRParen      = &Operator{Name: ")", Arity: 0}
	opUnaryNeg    *Operator
	opBinaryMinus *Operator
)

// operatorTable holds every non-sentinel operator, sorted by Name once at
// package initialisation so lookupOperator can binary search it.
var operatorTable []*Operator

func binary(name string, prec int, assoc Assoc, hidden bool, fn BinaryFunc) *Operator {
	return &Operator{Name: name, Arity: 2, Prec: prec, Assoc: assoc, Hidden: hidden, Binary: fn}
}

func unary(name string, hidden bool, fn UnaryFunc) *Operator {
	return &Operator{Name: name, Arity: 1, Prec: precUnary, Assoc: AssocRight, Hidden: hidden, Unary: fn}
}

func checkedUnary(name, domainMsg string, precondition func(q.Q) bool, fn func(q.Q) q.Q) *Operator {
	return unary(name, false, func(a q.Q) (q.Q, error) {
		if precondition != nil && !precondition(a) {
			return 0, &PreconditionError{Op: name, Message: domainMsg}
		}
		return fn(a), nil
	})
}

func init() {
	opBinaryMinus = binary("-", precAddSub, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.Sub(a, b), nil })
	opUnaryNeg = unary("neg", false, func(a q.Q) (q.Q, error) { return q.Neg(a), nil })

	ops := []*Operator{
		opBinaryMinus,
		opUnaryNeg,

		binary("+", precAddSub, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.Add(a, b), nil }),
		binary("*", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.Mul(a, b), nil }),
		binary("/", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) {
			if b == 0 {
				return 0, &PreconditionError{Op: "/", Message: "division by zero"}
			}
			return q.Div(a, b), nil
		}),
		binary("%", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) {
			if b == 0 {
				return 0, &PreconditionError{Op: "%", Message: "modulo by zero"}
			}
			return q.Mod(a, b), nil
		}),
		binary("rem", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) {
			if b == 0 {
				return 0, &PreconditionError{Op: "rem", Message: "remainder by zero"}
			}
			return q.Rem(a, b), nil
		}),
		binary("pow", precPow, AssocRight, false, func(a, b q.Q) (q.Q, error) {
			if a == 0 && b < 0 {
				return 0, &PreconditionError{Op: "pow", Message: "zero base with negative exponent"}
			}
			if a < 0 && !q.IsInteger(b) {
				return 0, &PreconditionError{Op: "pow", Message: "negative base with non-integer exponent"}
			}
			return qmath.Pow(a, b), nil
		}),

		binary("<", precRelational, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return boolQ(q.Less(a, b)), nil }),
		binary(">", precRelational, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return boolQ(q.More(a, b)), nil }),
		binary("<=", precRelational, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return boolQ(q.LessEqual(a, b)), nil }),
		binary(">=", precRelational, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return boolQ(q.MoreEqual(a, b)), nil }),
		binary("==", precEquality, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return boolQ(q.Equal(a, b)), nil }),
		binary("!=", precEquality, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return boolQ(q.Unequal(a, b)), nil }),

		binary("&", precAnd, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.And(a, b), nil }),
		binary("|", precOr, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.Or(a, b), nil }),
		binary("xor", precXor, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.Xor(a, b), nil }),
		binary("<<", precShift, AssocLeft, false, func(a, b q.Q) (q.Q, error) {
			n, err := shiftAmount("<<", b)
			if err != nil {
				return 0, err
			}
			return q.Asl(a, n), nil
		}),
		binary(">>", precShift, AssocLeft, false, func(a, b q.Q) (q.Q, error) {
			n, err := shiftAmount(">>", b)
			if err != nil {
				return 0, err
			}
			return q.Asr(a, n), nil
		}),
		binary("lsr", precShift, AssocLeft, true, func(a, b q.Q) (q.Q, error) {
			n, err := shiftAmount("lsr", b)
			if err != nil {
				return 0, err
			}
			return q.Lsr(a, n), nil
		}),

		binary("min", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.Min(a, b), nil }),
		binary("max", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return q.Max(a, b), nil }),
		binary("copysign", precMulDivModRem, AssocLeft, true, func(a, b q.Q) (q.Q, error) { return q.Copysign(a, b), nil }),
		binary("atan2", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return qmath.Atan2(a, b), nil }),
		binary("hypot", precMulDivModRem, AssocLeft, false, func(a, b q.Q) (q.Q, error) { return qmath.Hypot(a, b), nil }),

		unary("abs", false, func(a q.Q) (q.Q, error) { return q.Abs(a), nil }),
		unary("not", false, func(a q.Q) (q.Q, error) { return q.Not(a), nil }),
		unary("floor", false, func(a q.Q) (q.Q, error) { return q.Floor(a), nil }),
		unary("ceil", false, func(a q.Q) (q.Q, error) { return q.Ceil(a), nil }),
		unary("trunc", false, func(a q.Q) (q.Q, error) { return q.Trunc(a), nil }),
		unary("round", false, func(a q.Q) (q.Q, error) { return q.Round(a), nil }),
		unary("deg2rad", false, func(a q.Q) (q.Q, error) { return qmath.Deg2Rad(a), nil }),
		unary("rad2deg", false, func(a q.Q) (q.Q, error) { return qmath.Rad2Deg(a), nil }),

		unary("int?", false, func(a q.Q) (q.Q, error) { return boolQ(q.IsInteger(a)), nil }),
		unary("odd?", false, func(a q.Q) (q.Q, error) { return boolQ(q.IsOdd(a)), nil }),
		unary("even?", false, func(a q.Q) (q.Q, error) { return boolQ(q.IsEven(a)), nil }),
		unary("pos?", false, func(a q.Q) (q.Q, error) { return boolQ(q.IsPositive(a)), nil }),
		unary("neg?", false, func(a q.Q) (q.Q, error) { return boolQ(q.IsNegative(a)), nil }),

		unary("sin", false, func(a q.Q) (q.Q, error) { return qmath.Sin(a), nil }),
		unary("cos", false, func(a q.Q) (q.Q, error) { return qmath.Cos(a), nil }),
		unary("tan", false, func(a q.Q) (q.Q, error) { return qmath.Tan(a), nil }),
		unary("cot", false, func(a q.Q) (q.Q, error) { return qmath.Cot(a), nil }),
		unary("atan", false, func(a q.Q) (q.Q, error) { return qmath.Atan(a), nil }),

		checkedUnary("asin", "argument out of range [-1, 1]",
			func(a q.Q) bool { return a >= -q.One && a <= q.One },
			qmath.Asin),
		checkedUnary("acos", "argument out of range [-1, 1]",
			func(a q.Q) bool { return a >= -q.One && a <= q.One },
			qmath.Acos),

		unary("sinh", false, func(a q.Q) (q.Q, error) { return qmath.Sinh(a), nil }),
		unary("cosh", false, func(a q.Q) (q.Q, error) { return qmath.Cosh(a), nil }),
		unary("tanh", false, func(a q.Q) (q.Q, error) { return qmath.Tanh(a), nil }),
		unary("asinh", false, func(a q.Q) (q.Q, error) { return qmath.Asinh(a), nil }),

		checkedUnary("acosh", "argument below domain minimum 1",
			func(a q.Q) bool { return a >= q.One },
			qmath.Acosh),
		checkedUnary("atanh", "argument out of range (-1, 1)",
			func(a q.Q) bool { return a > -q.One && a < q.One },
			qmath.Atanh),

		unary("exp", false, func(a q.Q) (q.Q, error) { return qmath.Exp(a), nil }),
		checkedUnary("log", "argument must be positive",
			func(a q.Q) bool { return a > 0 },
			qmath.Log),
		checkedUnary("sqrt", "argument must be non-negative",
			func(a q.Q) bool { return a >= 0 },
			qmath.Sqrt),
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	operatorTable = ops
}

// lookupOperator finds a non-sentinel operator by name via binary search
// over the sorted table.
func lookupOperator(name string) (*Operator, bool) {
	i := sort.Search(len(operatorTable), func(i int) bool { return operatorTable[i].Name >= name })
	if i < len(operatorTable) && operatorTable[i].Name == name {
		return operatorTable[i], true
	}
	return nil, false
}
