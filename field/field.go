// Package field abstracts the scalar field a build is parameterized by.
// The concrete wrappers delegate to gnark-crypto and are selected from the
// manifest's curve name at build-configuration time.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/leo-lang/leo-go/field/bls12377"
	"github.com/leo-lang/leo-go/field/bn254"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

// GetFieldFromName returns the field for a manifest curve name.
// An empty name selects the default curve, BLS12-377.
func GetFieldFromName(name string) (Field, error) {
	switch name {
	case "", "bls12-377":
		return &bls12377.Field{}, nil
	case "bn254":
		return &bn254.Field{}, nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

// GetFieldFromOrder returns the field with the given modulus. It is used
// when rebuilding a constraint system from a serialized circuit, where only
// the field order is recorded.
func GetFieldFromOrder(x *big.Int) (Field, error) {
	if x.Cmp(bls12377.ScalarField) == 0 {
		return &bls12377.Field{}, nil
	}
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}, nil
	}
	return nil, fmt.Errorf("unknown field %v", x)
}
