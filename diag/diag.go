// Package diag collects the diagnostics linkjump reports while
// lowering an AST, in the style of golang.org/x/tools/go/analysis's
// Diagnostic. Unlike analysis.Pass, which reports against a shared
// token.FileSet, a Diagnostic here carries its own Pos/End pair
// directly; there is no file set to thread through a bespoke HDL AST.
package diag

import "fmt"

import "github.com/vlgo-hdl/vlgo/ast"

// Severity distinguishes a hard error from an unsupported-construct
// warning.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Code is a stable identifier for a diagnostic, so callers can filter
// or test against it without string-matching Message.
type Code string

const (
	CodeReturnUnderFork        Code = "RETURN_UNDER_FORK"
	CodeReturnNotInFuncOrTask  Code = "RETURN_NOT_IN_FUNC_OR_TASK"
	CodeReturnMissingValue     Code = "RETURN_MISSING_VALUE"
	CodeReturnUnexpectedValue  Code = "RETURN_UNEXPECTED_VALUE"
	CodeBreakNotInLoop         Code = "BREAK_NOT_IN_LOOP"
	CodeContinueNotInLoop      Code = "CONTINUE_NOT_IN_LOOP"
	CodeUnsupported            Code = "E_UNSUPPORTED"
	CodeStaleToolVersionPragma Code = "STALE_TOOL_VERSION_PRAGMA"
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Pos, End ast.Pos
	Severity Severity
	Code     Code
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Code, d.Message)
}

// Sink accumulates diagnostics without short-circuiting, so multiple
// independent errors in one file are all reported in a single run.
type Sink struct {
	diags []Diagnostic
}

func (s *Sink) Errorf(pos ast.Pos, code Code, format string, args ...interface{}) {
	s.report(Error, pos, code, format, args...)
}

func (s *Sink) Warnf(pos ast.Pos, code Code, format string, args ...interface{}) {
	s.report(Warning, pos, code, format, args...)
}

func (s *Sink) report(sev Severity, pos ast.Pos, code Code, format string, args ...interface{}) {
	s.diags = append(s.diags, Diagnostic{
		Pos:      pos,
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

// All returns every diagnostic reported so far, in report order.
func (s *Sink) All() []Diagnostic { return s.diags }

// HasErrors reports whether any Error-severity diagnostic was
// reported (Warnings alone do not fail a run).
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
