package minleo

import "math/big"

type StatementType int

const (
	// StInput declares an input variable whose value comes from the input
	// file.
	StInput StatementType = iota
	// StLet binds a name to an expression through a fresh auxiliary
	// variable.
	StLet
	// StAssert constrains two expressions to be equal.
	StAssert
)

type Statement struct {
	Type  StatementType
	Name  string
	Expr  *Expression // let rhs, assert lhs
	Right *Expression // assert rhs
	Line  int
}

type ExpressionType int

const (
	ExIdent ExpressionType = iota
	ExNumber
	ExAdd
	ExSub
	ExMul
)

type Expression struct {
	Type  ExpressionType
	Ident string
	Value *big.Int
	Left  *Expression
	Right *Expression
	Line  int
	Col   int
}
