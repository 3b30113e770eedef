package minleo

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/consensys/gnark/constraint"

	"github.com/leo-lang/leo-go/checksum"
	"github.com/leo-lang/leo-go/expr"
	"github.com/leo-lang/leo-go/field"
	"github.com/leo-lang/leo-go/frontend"
)

// Program is a compiled straight-line program. Statements are immutable
// after parsing; evaluation state lives only inside CompileConstraints.
type Program struct {
	packageName string
	field       field.Field
	statements  []Statement
	inputs      map[string]*big.Int
	state       map[string]*big.Int
}

// Checksum digests the compiled statement structure. Input and state values
// are not part of the digest; they vary per run without changing the
// compiled form.
func (p *Program) Checksum() (string, error) {
	return checksum.Sum(canonicalStatements(p.statements)), nil
}

// Clone returns an independent copy of the program.
func (p *Program) Clone() frontend.Program {
	c := &Program{
		packageName: p.packageName,
		field:       p.field,
		statements:  make([]Statement, len(p.statements)),
		inputs:      make(map[string]*big.Int, len(p.inputs)),
		state:       make(map[string]*big.Int, len(p.state)),
	}
	copy(c.statements, p.statements)
	for k, v := range p.inputs {
		c.inputs[k] = new(big.Int).Set(v)
	}
	for k, v := range p.state {
		c.state[k] = new(big.Int).Set(v)
	}
	return c
}

// wire is one allocated variable of the constraint system.
type wire struct {
	id    int
	value constraint.Element
}

type evaluator struct {
	program *Program
	sink    frontend.ConstraintSink
	f       field.Field
	one     expr.LinearCombination

	vars     map[string]wire
	nextWire int
}

// CompileConstraints evaluates the program against the sink, accumulating
// one constraint per let binding, product and assertion.
func (p *Program) CompileConstraints(sink frontend.ConstraintSink) error {
	f := sink.Field()
	ev := &evaluator{
		program:  p,
		sink:     sink,
		f:        f,
		one:      expr.NewConstant(f.One()),
		vars:     make(map[string]wire),
		nextWire: 1, // wire 0 is the constant one
	}
	for i := range p.statements {
		if err := ev.statement(&p.statements[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ev *evaluator) errorf(format string, args ...interface{}) error {
	return &frontend.SynthesisError{
		Package: ev.program.packageName,
		Message: fmt.Sprintf(format, args...),
	}
}

func (ev *evaluator) statement(st *Statement) error {
	switch st.Type {
	case StInput:
		v, ok := ev.program.inputs[st.Name]
		if !ok {
			return ev.errorf("line %d: no value for input %q", st.Line, st.Name)
		}
		val := ev.f.FromInterface(v)
		w := wire{id: ev.nextWire, value: val}
		ev.nextWire++
		ev.vars[st.Name] = w
		ev.sink.AddInputAssignment(val)
		return nil

	case StLet:
		lc, val, err := ev.expression(st.Expr)
		if err != nil {
			return err
		}
		w := ev.newAux(val)
		// lc * 1 = w
		ev.sink.AddConstraint(lc, ev.one, expr.NewLinear(w.id, ev.f.One()))
		ev.vars[st.Name] = w
		return nil

	case StAssert:
		left, vLeft, err := ev.expression(st.Expr)
		if err != nil {
			return err
		}
		right, vRight, err := ev.expression(st.Right)
		if err != nil {
			return err
		}
		if ev.f.ToBigInt(vLeft).Cmp(ev.f.ToBigInt(vRight)) != 0 {
			return ev.errorf("line %d: assertion does not hold: %s != %s",
				st.Line, ev.f.String(vLeft), ev.f.String(vRight))
		}
		// left * 1 = right
		ev.sink.AddConstraint(left, ev.one, right)
		return nil
	}
	return ev.errorf("line %d: unknown statement", st.Line)
}

func (ev *evaluator) newAux(value constraint.Element) wire {
	w := wire{id: ev.nextWire, value: value}
	ev.nextWire++
	ev.sink.AddAuxAssignment(value)
	return w
}

// expression evaluates e to a linear combination over the allocated wires
// together with its concrete value. Products of two non-constant operands
// allocate an intermediate wire and a constraint.
func (ev *evaluator) expression(e *Expression) (expr.LinearCombination, constraint.Element, error) {
	switch e.Type {
	case ExIdent:
		if w, ok := ev.vars[e.Ident]; ok {
			return expr.NewLinear(w.id, ev.f.One()), w.value, nil
		}
		if v, ok := ev.program.state[e.Ident]; ok {
			val := ev.f.FromInterface(v)
			return expr.NewConstant(val), val, nil
		}
		return nil, constraint.Element{}, ev.errorf("%d:%d: undefined variable %q", e.Line, e.Col, e.Ident)

	case ExNumber:
		val := ev.f.FromInterface(e.Value)
		return expr.NewConstant(val), val, nil

	case ExAdd, ExSub:
		left, vLeft, err := ev.expression(e.Left)
		if err != nil {
			return nil, constraint.Element{}, err
		}
		right, vRight, err := ev.expression(e.Right)
		if err != nil {
			return nil, constraint.Element{}, err
		}
		if e.Type == ExAdd {
			return ev.merge(left, right, false), ev.f.Add(vLeft, vRight), nil
		}
		return ev.merge(left, right, true), ev.f.Sub(vLeft, vRight), nil

	case ExMul:
		left, vLeft, err := ev.expression(e.Left)
		if err != nil {
			return nil, constraint.Element{}, err
		}
		right, vRight, err := ev.expression(e.Right)
		if err != nil {
			return nil, constraint.Element{}, err
		}
		value := ev.f.Mul(vLeft, vRight)
		if left.IsConstant() {
			return ev.scale(right, vLeft), value, nil
		}
		if right.IsConstant() {
			return ev.scale(left, vRight), value, nil
		}
		// non-linear product: materialize through an intermediate wire
		w := ev.newAux(value)
		out := expr.NewLinear(w.id, ev.f.One())
		ev.sink.AddConstraint(left, right, out)
		return out, value, nil
	}
	return nil, constraint.Element{}, ev.errorf("%d:%d: unknown expression", e.Line, e.Col)
}

// merge adds (or subtracts) two linear combinations, combining terms on the
// same variable and keeping the result sorted by variable id.
func (ev *evaluator) merge(a, b expr.LinearCombination, negateB bool) expr.LinearCombination {
	coeffs := make(map[int]constraint.Element, len(a)+len(b))
	for _, t := range a {
		coeffs[t.VID] = ev.f.Add(coeffs[t.VID], t.Coeff)
	}
	for _, t := range b {
		c := t.Coeff
		if negateB {
			c = ev.f.Neg(c)
		}
		coeffs[t.VID] = ev.f.Add(coeffs[t.VID], c)
	}
	ids := make([]int, 0, len(coeffs))
	for id := range coeffs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	res := make(expr.LinearCombination, 0, len(ids))
	for _, id := range ids {
		res = append(res, expr.NewTerm(id, coeffs[id]))
	}
	return res
}

func (ev *evaluator) scale(lc expr.LinearCombination, c constraint.Element) expr.LinearCombination {
	res := lc.Clone()
	for i := range res {
		res[i].Coeff = ev.f.Mul(res[i].Coeff, c)
	}
	return res
}
