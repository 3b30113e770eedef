package frontend

import "fmt"

// CompileError reports a source file that failed to parse or type-check.
type CompileError struct {
	Package string
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// SynthesisError reports a program whose evaluation against the synthesis
// sink failed, e.g. an assertion that does not hold for the given inputs.
type SynthesisError struct {
	Package string
	Message string
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("constraint synthesis for %s: %s", e.Package, e.Message)
}
