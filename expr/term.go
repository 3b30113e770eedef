package expr

import "github.com/consensys/gnark/constraint"

// Term is one weighted variable of a linear combination.
// Variable 0 is the constant wire, so a term with VID 0 is a constant.
type Term struct {
	VID   int
	Coeff constraint.Element
}

func NewTerm(vID int, coeff constraint.Element) Term {
	return Term{VID: vID, Coeff: coeff}
}

func (t *Term) SetCoeff(c constraint.Element) {
	t.Coeff = c
}

func (t Term) IsConstant() bool {
	return t.VID == 0
}
