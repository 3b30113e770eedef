// Package minleo is a frontend for a straight-line subset of the source
// language: field-typed inputs, let bindings over + - *, and equality
// assertions. It exists so the build pipeline can run end to end without a
// full language implementation; richer frontends plug in through the same
// frontend.Frontend contract.
package minleo

import (
	"errors"
	"os"

	"github.com/leo-lang/leo-go/field"
	"github.com/leo-lang/leo-go/frontend"
)

// Compiler implements frontend.Frontend for the minleo subset.
type Compiler struct {
	field field.Field
}

func NewCompiler(f field.Field) *Compiler {
	return &Compiler{field: f}
}

// CompileWithoutInput parses and compiles a source file with no external
// inputs. Used for library files, which are compiled only to validate.
func (c *Compiler) CompileWithoutInput(packageName, filePath, outputsDir string) (frontend.Program, error) {
	return c.compile(packageName, filePath, "", "")
}

// CompileWithInput parses and compiles the main source file together with
// the package's input and state text.
func (c *Compiler) CompileWithInput(packageName, filePath, outputsDir, inputText, stateText string) (frontend.Program, error) {
	return c.compile(packageName, filePath, inputText, stateText)
}

func (c *Compiler) compile(packageName, filePath, inputText, stateText string) (frontend.Program, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	stmts, err := parse(string(src))
	if err != nil {
		return nil, compileError(packageName, filePath, err)
	}
	inputs, err := parseBindings(inputText)
	if err != nil {
		return nil, &frontend.CompileError{Package: packageName, Path: filePath, Message: "input file: " + err.Error()}
	}
	state, err := parseBindings(stateText)
	if err != nil {
		return nil, &frontend.CompileError{Package: packageName, Path: filePath, Message: "state file: " + err.Error()}
	}
	return &Program{
		packageName: packageName,
		field:       c.field,
		statements:  stmts,
		inputs:      inputs,
		state:       state,
	}, nil
}

func compileError(packageName, filePath string, err error) *frontend.CompileError {
	ce := &frontend.CompileError{Package: packageName, Path: filePath, Message: err.Error()}
	var pe *parseError
	if errors.As(err, &pe) {
		ce.Line, ce.Column, ce.Message = pe.line, pe.col, pe.message
	}
	var se *scanError
	if errors.As(err, &se) {
		ce.Line, ce.Column, ce.Message = se.line, se.col, se.message
	}
	return ce
}

var _ frontend.Frontend = (*Compiler)(nil)
