// Package frontend defines the contract between the build orchestrator and
// a language frontend. The orchestrator never sees past these interfaces;
// concrete frontends are selected at build-configuration time.
package frontend

import (
	"github.com/consensys/gnark/constraint"

	"github.com/leo-lang/leo-go/expr"
	"github.com/leo-lang/leo-go/field"
)

// ConstraintSink receives a program's constraint system during synthesis.
// One synthesis pass per build, single-threaded; a sink never fails on
// well-formed calls.
type ConstraintSink interface {
	Field() field.Field

	// AddConstraint appends one A·B = C constraint.
	AddConstraint(a, b, c expr.LinearCombination)

	AddInputAssignment(v constraint.Element)
	AddAuxAssignment(v constraint.Element)

	NumConstraints() int
}

// Program is the opaque compiled form of one package, owned by the build
// for its duration.
type Program interface {
	// Checksum returns a deterministic digest over the compiled structure.
	Checksum() (string, error)

	// CompileConstraints evaluates the program against a synthesis sink.
	// It consumes the receiver's evaluation state; synthesize on a Clone
	// when the original must stay usable.
	CompileConstraints(sink ConstraintSink) error

	// Clone returns an independent copy.
	Clone() Program
}

// Frontend compiles package sources into programs. Both entry points must
// be deterministic for identical arguments, so checksums are reproducible
// across builds of unchanged sources.
type Frontend interface {
	// CompileWithoutInput compiles a source file without external inputs.
	// It is used for library files, where only validity matters.
	CompileWithoutInput(packageName, filePath, outputsDir string) (Program, error)

	// CompileWithInput compiles the main source file together with the
	// package's input and state text.
	CompileWithInput(packageName, filePath, outputsDir, inputText, stateText string) (Program, error)
}
