// Package circuit converts an accumulated constraint system to and from its
// portable textual artifact.
package circuit

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/leo-lang/leo-go/expr"
	"github.com/leo-lang/leo-go/field"
	"github.com/leo-lang/leo-go/synthesizer"
)

// Term is the serialized form of one weighted variable.
type Term struct {
	Variable    int    `json:"variable"`
	Coefficient string `json:"coefficient"`
}

// SerializedCircuit is a versionless textual snapshot of a constraint
// system. Coefficients and assignment values travel as decimal strings so
// the artifact stays readable by non-Go tooling; the field modulus is
// recorded so decoding can rebuild the arithmetic.
//
// Assignment vectors are part of the artifact and must round-trip exactly.
type SerializedCircuit struct {
	Field          string `json:"field"`
	NumConstraints int    `json:"num_constraints"`

	A [][]Term `json:"at"`
	B [][]Term `json:"bt"`
	C [][]Term `json:"ct"`

	InputAssignment []string `json:"input_assignment"`
	AuxAssignment   []string `json:"aux_assignment"`
}

// DecodeError reports a structurally invalid serialized circuit. A decode
// failure right after an encode is an internal consistency failure, not a
// user input error.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode circuit: %s: %v", e.Reason, e.Err)
	}
	return "decode circuit: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FromSystem snapshots a constraint system for serialization.
func FromSystem(cs *synthesizer.ConstraintSystem, f field.Field) *SerializedCircuit {
	sc := &SerializedCircuit{
		Field:          f.Field().String(),
		NumConstraints: cs.NumConstraints(),
		A:              serializeMatrix(cs.A, f),
		B:              serializeMatrix(cs.B, f),
		C:              serializeMatrix(cs.C, f),
	}
	sc.InputAssignment = make([]string, len(cs.InputAssignment))
	for i, v := range cs.InputAssignment {
		sc.InputAssignment[i] = f.ToBigInt(v).String()
	}
	sc.AuxAssignment = make([]string, len(cs.AuxAssignment))
	for i, v := range cs.AuxAssignment {
		sc.AuxAssignment[i] = f.ToBigInt(v).String()
	}
	return sc
}

func serializeMatrix(m []expr.LinearCombination, f field.Field) [][]Term {
	res := make([][]Term, len(m))
	for i, lc := range m {
		res[i] = make([]Term, len(lc))
		for j, t := range lc {
			res[i][j] = Term{
				Variable:    t.VID,
				Coefficient: f.ToBigInt(t.Coeff).String(),
			}
		}
	}
	return res
}

// ToSystem rebuilds the constraint system this snapshot was taken from.
func (sc *SerializedCircuit) ToSystem() (*synthesizer.ConstraintSystem, field.Field, error) {
	order, ok := new(big.Int).SetString(sc.Field, 10)
	if !ok {
		return nil, nil, &DecodeError{Reason: fmt.Sprintf("invalid field modulus %q", sc.Field)}
	}
	f, err := field.GetFieldFromOrder(order)
	if err != nil {
		return nil, nil, &DecodeError{Reason: "unsupported field", Err: err}
	}
	if len(sc.A) != sc.NumConstraints || len(sc.B) != sc.NumConstraints || len(sc.C) != sc.NumConstraints {
		return nil, nil, &DecodeError{Reason: fmt.Sprintf(
			"constraint matrices have lengths %d/%d/%d, expected %d",
			len(sc.A), len(sc.B), len(sc.C), sc.NumConstraints)}
	}

	cs := &synthesizer.ConstraintSystem{}
	if cs.A, err = deserializeMatrix(sc.A, f); err != nil {
		return nil, nil, err
	}
	if cs.B, err = deserializeMatrix(sc.B, f); err != nil {
		return nil, nil, err
	}
	if cs.C, err = deserializeMatrix(sc.C, f); err != nil {
		return nil, nil, err
	}
	if cs.InputAssignment, err = deserializeAssignments(sc.InputAssignment, f); err != nil {
		return nil, nil, err
	}
	if cs.AuxAssignment, err = deserializeAssignments(sc.AuxAssignment, f); err != nil {
		return nil, nil, err
	}
	return cs, f, nil
}

func deserializeMatrix(m [][]Term, f field.Field) ([]expr.LinearCombination, error) {
	res := make([]expr.LinearCombination, len(m))
	for i, terms := range m {
		res[i] = make(expr.LinearCombination, len(terms))
		for j, t := range terms {
			coeff, ok := new(big.Int).SetString(t.Coefficient, 10)
			if !ok {
				return nil, &DecodeError{Reason: fmt.Sprintf("invalid coefficient %q", t.Coefficient)}
			}
			res[i][j] = expr.NewTerm(t.Variable, f.FromInterface(coeff))
		}
	}
	return res, nil
}

func deserializeAssignments(values []string, f field.Field) ([]constraint.Element, error) {
	res := make([]constraint.Element, len(values))
	for i, v := range values {
		x, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, &DecodeError{Reason: fmt.Sprintf("invalid assignment %q", v)}
		}
		res[i] = f.FromInterface(x)
	}
	return res, nil
}

// Encode renders the snapshot as its persisted textual form.
func (sc *SerializedCircuit) Encode() (string, error) {
	data, err := json.MarshalIndent(sc, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode circuit: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted textual form back into a snapshot.
func Decode(text string) (*SerializedCircuit, error) {
	sc := &SerializedCircuit{}
	if err := json.Unmarshal([]byte(text), sc); err != nil {
		return nil, &DecodeError{Reason: "invalid JSON", Err: err}
	}
	return sc, nil
}
