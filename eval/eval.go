package eval

import "github.com/howerj/q"

// Config controls one Evaluator's behavior. Unlike q.Config (passed
// explicitly to every arithmetic call), this is bundled with the
// Evaluator instance it configures, since an evaluator is already a
// stateful, caller-owned object — there is no stateless-call ergonomics
// to preserve here.
type Config struct {
	// HideInternals filters CORDIC-adjacent internal operators (lsr,
	// copysign, ...) out of identifier and punctuation resolution.
	HideInternals bool
	// MaxDepth bounds the operator and number stacks. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is the stack depth used when Config.MaxDepth is zero.
const DefaultMaxDepth = 64

// Evaluator holds one shunting-yard parser's state: its bounded operator
// and number stacks, its variable environment, and the first error it
// encountered. An Evaluator is constructed, populated with variables,
// used to evaluate one expression at a time, and either Reset or
// discarded; no two goroutines may share one concurrently.
type Evaluator struct {
	cfg  Config
	vars Variables
	nums []q.Q
	ops  []*Operator
	err  error
}

// New constructs an Evaluator. A nil vars is treated as empty.
func New(cfg Config, vars Variables) *Evaluator {
	if vars == nil {
		vars = Variables{}
	}
	return &Evaluator{cfg: cfg, vars: vars}
}

// Vars returns the evaluator's variable environment, for Set/Get/Delete
// between expressions.
func (e *Evaluator) Vars() Variables { return e.vars }

// Err returns the error recorded by the most recently failed Eval call,
// or nil if the last call succeeded.
func (e *Evaluator) Err() error { return e.err }

// Reset clears both stacks and the error flag, readying the Evaluator to
// parse another expression without reallocating its backing arrays.
func (e *Evaluator) Reset() {
	e.nums = e.nums[:0]
	e.ops = e.ops[:0]
	e.err = nil
}

func (e *Evaluator) maxDepth() int {
	if e.cfg.MaxDepth > 0 {
		return e.cfg.MaxDepth
	}
	return DefaultMaxDepth
}

func (e *Evaluator) pushNum(v q.Q) error {
	if len(e.nums) >= e.maxDepth() {
		return &StackError{Message: "number stack exhausted"}
	}
	e.nums = append(e.nums, v)
	return nil
}

func (e *Evaluator) popNum() (q.Q, error) {
	if len(e.nums) == 0 {
		return 0, &StackError{Message: "number stack underflow"}
	}
	v := e.nums[len(e.nums)-1]
	e.nums = e.nums[:len(e.nums)-1]
	return v, nil
}

func (e *Evaluator) pushOp(op *Operator) error {
	if len(e.ops) >= e.maxDepth() {
		return &StackError{Message: "operator stack exhausted"}
	}
	e.ops = append(e.ops, op)
	return nil
}

func (e *Evaluator) peekOp() (*Operator, bool) {
	if len(e.ops) == 0 {
		return nil, false
	}
	return e.ops[len(e.ops)-1], true
}

func (e *Evaluator) popOp() *Operator {
	op := e.ops[len(e.ops)-1]
	e.ops = e.ops[:len(e.ops)-1]
	return op
}

// applyOp pops one or two numbers per op's arity, runs op's combined
// precondition check and evaluation, and pushes the result.
func (e *Evaluator) applyOp(op *Operator) error {
	if op.Arity == 1 {
		a, err := e.popNum()
		if err != nil {
			return err
		}
		v, err := op.Unary(a)
		if err != nil {
			return err
		}
		return e.pushNum(v)
	}

	b, err := e.popNum()
	if err != nil {
		return err
	}
	a, err := e.popNum()
	if err != nil {
		return err
	}
	v, err := op.Binary(a, b)
	if err != nil {
		return err
	}
	return e.pushNum(v)
}

// popEvalUntil pops and applies operators from the top of the stack
// while pred holds for the top entry, stopping at an uncovered left
// paren regardless of pred.
func (e *Evaluator) popEvalUntil(pred func(top *Operator) bool) error {
	for {
		top, ok := e.peekOp()
		if !ok || top == opLParen || !pred(top) {
			return nil
		}
		e.popOp()
		if err := e.applyOp(top); err != nil {
			return err
		}
	}
}

func (e *Evaluator) fail(err error) (q.Q, error) {
	e.err = err
	return 0, err
}

// Eval parses and evaluates expr, returning the single resulting Q. On
// the first error — syntax, a failed operator precondition, or stack
// exhaustion — it stops and returns that error; the error is also
// retained and available from Err until the next Reset or Eval call.
func (e *Evaluator) Eval(expr string) (q.Q, error) {
	e.Reset()
	lx := newLexer(expr, e.vars, e.cfg.HideInternals)

	// prevWasOperand disambiguates a '-' token as binary minus (after a
	// number or a closing paren) or unary negate (at the start of input,
	// after '(', or after another operator).
	prevWasOperand := false

	for {
		tok, err := lx.next()
		if err != nil {
			return e.fail(err)
		}

		switch tok.kind {
		case tokEnd:
			if err := e.popEvalUntil(func(*Operator) bool { return true }); err != nil {
				return e.fail(err)
			}
			if len(e.ops) != 0 {
				return e.fail(&SyntaxError{Message: "missing closing parenthesis"})
			}
			if len(e.nums) != 1 {
				return e.fail(&StackError{Message: "malformed expression: expected exactly one result"})
			}
			return e.nums[0], nil

		case tokNumber:
			if err := e.pushNum(tok.num); err != nil {
				return e.fail(err)
			}
			prevWasOperand = true

		case tokLParen:
			if err := e.pushOp(opLParen); err != nil {
				return e.fail(err)
			}
			prevWasOperand = false

		case tokRParen:
			if err := e.popEvalUntil(func(*Operator) bool { return true }); err != nil {
				return e.fail(err)
			}
			top, ok := e.peekOp()
			if !ok || top != opLParen {
				return e.fail(&SyntaxError{Message: "unmatched closing parenthesis"})
			}
			e.popOp()
			prevWasOperand = true

		case tokOperator:
			op := tok.op
			if op == opBinaryMinus && !prevWasOperand {
				op = opUnaryNeg
			}

			pred := leftAssocYield(op)
			if err := e.popEvalUntil(pred); err != nil {
				return e.fail(err)
			}
			if err := e.pushOp(op); err != nil {
				return e.fail(err)
			}
			prevWasOperand = false
		}
	}
}

// leftAssocYield returns the pop predicate for pushing op: a left-
// associative operator yields to (pops) an equal-precedence operator
// already on the stack; a right-associative one does not.
func leftAssocYield(op *Operator) func(top *Operator) bool {
	if op.Assoc == AssocRight {
		return func(top *Operator) bool { return top.Prec > op.Prec }
	}
	return func(top *Operator) bool { return top.Prec >= op.Prec }
}
