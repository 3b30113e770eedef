// Package synthesizer accumulates a rank-1 constraint system while a
// compiled program is evaluated against it.
package synthesizer

import (
	"github.com/consensys/gnark/constraint"

	"github.com/leo-lang/leo-go/expr"
	"github.com/leo-lang/leo-go/field"
)

// ConstraintSystem is the accumulated result of one synthesis pass: three
// parallel slices of linear combinations, one entry per constraint of the
// form A·B = C, plus the input and auxiliary assignment vectors.
type ConstraintSystem struct {
	A []expr.LinearCombination
	B []expr.LinearCombination
	C []expr.LinearCombination

	InputAssignment []constraint.Element
	AuxAssignment   []constraint.Element
}

// NumConstraints returns the number of accumulated constraints.
// len(A) == len(B) == len(C) always holds; constraints are only appended as
// complete triples.
func (cs *ConstraintSystem) NumConstraints() int {
	return len(cs.A)
}

// Synthesizer is the sink one program synthesis pass writes into. It is not
// safe for concurrent use; a build performs exactly one single-threaded pass.
type Synthesizer struct {
	field field.Field
	cs    ConstraintSystem
}

func New(f field.Field) *Synthesizer {
	return &Synthesizer{field: f}
}

func (s *Synthesizer) Field() field.Field {
	return s.field
}

// AddConstraint appends one A·B = C constraint.
func (s *Synthesizer) AddConstraint(a, b, c expr.LinearCombination) {
	s.cs.A = append(s.cs.A, a)
	s.cs.B = append(s.cs.B, b)
	s.cs.C = append(s.cs.C, c)
}

// AddInputAssignment appends the value of an input variable.
func (s *Synthesizer) AddInputAssignment(v constraint.Element) {
	s.cs.InputAssignment = append(s.cs.InputAssignment, v)
}

// AddAuxAssignment appends the value of an auxiliary variable.
func (s *Synthesizer) AddAuxAssignment(v constraint.Element) {
	s.cs.AuxAssignment = append(s.cs.AuxAssignment, v)
}

func (s *Synthesizer) NumConstraints() int {
	return s.cs.NumConstraints()
}

// System returns the accumulated constraint system.
func (s *Synthesizer) System() *ConstraintSystem {
	return &s.cs
}
