package diag_test

import (
	"testing"

	"github.com/vlgo-hdl/vlgo/ast"
	"github.com/vlgo-hdl/vlgo/diag"
)

func TestSinkAccumulatesInOrder(t *testing.T) {
	var s diag.Sink
	s.Errorf(ast.Pos{Line: 1, Col: 1}, diag.CodeBreakNotInLoop, "first")
	s.Warnf(ast.Pos{Line: 2, Col: 1}, diag.CodeUnsupported, "second")
	s.Errorf(ast.Pos{Line: 3, Col: 1}, diag.CodeReturnMissingValue, "third")

	got := s.All()
	if len(got) != 3 {
		t.Fatalf("All() = %d diagnostics, want 3", len(got))
	}
	if got[0].Message != "first" || got[1].Message != "second" || got[2].Message != "third" {
		t.Errorf("diagnostics out of order: %+v", got)
	}
	if got[0].Severity != diag.Error || got[1].Severity != diag.Warning {
		t.Errorf("severities not preserved: %+v", got)
	}
}

func TestSinkHasErrors(t *testing.T) {
	var s diag.Sink
	if s.HasErrors() {
		t.Fatal("empty sink reports HasErrors")
	}
	s.Warnf(ast.NoPos, diag.CodeUnsupported, "just a warning")
	if s.HasErrors() {
		t.Fatal("sink with only a warning reports HasErrors")
	}
	s.Errorf(ast.NoPos, diag.CodeBreakNotInLoop, "an error")
	if !s.HasErrors() {
		t.Fatal("sink with an error does not report HasErrors")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := diag.Diagnostic{Severity: diag.Warning, Code: diag.CodeUnsupported, Message: "whatever"}
	want := "warning: E_UNSUPPORTED: whatever"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
