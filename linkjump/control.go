package linkjump

import (
	"github.com/vlgo-hdl/vlgo/ast"
	"github.com/vlgo-hdl/vlgo/diag"
)

// lowerReturn rewrites a return into an optional result assignment
// followed by a goto past the enclosing function or task, diagnosing
// the illegal placements first.
func (b *builder) lowerReturn(r *ast.Return) []ast.Stmt {
	if b.inFork {
		b.sink.Errorf(r.Pos(), diag.CodeReturnUnderFork,
			"Return isn't legal under fork (IEEE 1800-2023 9.2.3)")
		return nil
	}

	if b.currentFunctionOrTask == nil {
		b.sink.Errorf(r.Pos(), diag.CodeReturnNotInFuncOrTask,
			"Return isn't underneath a task or function")
		return nil
	}
	fn := b.currentFunctionOrTask

	var out []ast.Stmt
	switch {
	case fn.IsFunction():
		if r.Rhs == nil && !fn.IsConstructor {
			b.sink.Errorf(r.Pos(), diag.CodeReturnMissingValue,
				"Return underneath a function should have return value")
		}
		if r.Rhs != nil {
			out = append(out, ast.NewAssign(r.Pos(), ast.NewVarRef(fn.Fvarp.Pos(), fn.Fvarp, ast.Write), r.Rhs))
		}
	default: // Task
		if r.Rhs != nil {
			b.sink.Errorf(r.Pos(), diag.CodeReturnUnexpectedValue,
				"Return underneath a task shouldn't have return value")
		}
	}

	lbl := b.findOrInsertLabel(fn, false)
	out = append(out, ast.NewJumpGo(r.Pos(), lbl))
	return out
}

// lowerBreak and lowerContinue rewrite the leaf into a goto against
// the current enclosing loop.
func (b *builder) lowerBreak(n *ast.Break) []ast.Stmt {
	if b.currentLoop == nil {
		b.sink.Errorf(n.Pos(), diag.CodeBreakNotInLoop, "break isn't underneath a loop")
		return nil
	}
	lbl := b.findOrInsertLabel(b.currentLoop, false)
	return []ast.Stmt{ast.NewJumpGo(n.Pos(), lbl)}
}

func (b *builder) lowerContinue(n *ast.Continue) []ast.Stmt {
	if b.currentLoop == nil {
		b.sink.Errorf(n.Pos(), diag.CodeContinueNotInLoop, "continue isn't underneath a loop")
		return nil
	}
	lbl := b.findOrInsertLabel(b.currentLoop, true)
	return []ast.Stmt{ast.NewJumpGo(n.Pos(), lbl)}
}

// lowerDisable walks the block stack from innermost outward looking
// for a named block matching the target.
func (b *builder) lowerDisable(n *ast.Disable) []ast.Stmt {
	for t := b.blockStack; t != nil; t = t.tail {
		if t.block.Name() != n.Target {
			continue
		}
		switch blk := t.block.(type) {
		case *ast.Fork:
			b.sink.Warnf(n.Pos(), diag.CodeUnsupported, "Unsupported: disabling fork by name")
			return nil
		case *ast.Begin:
			if blk.ContainsFork() {
				b.sink.Warnf(n.Pos(), diag.CodeUnsupported, "Unsupported: disabling block that contains a fork")
				return nil
			}
			lbl := b.findOrInsertLabel(blk, false)
			return []ast.Stmt{ast.NewJumpGo(n.Pos(), lbl)}
		}
	}
	b.sink.Warnf(n.Pos(), diag.CodeUnsupported, "disable isn't underneath a begin with name: %s", n.Target)
	return nil
}

// lowerPragma latches unroll pragmas and validates TOOL_VERSION
// pragmas. Pragma kinds this pass consumes
// are deleted; any other kind is left in place for whichever pass
// owns it.
func (b *builder) lowerPragma(p *ast.Pragma) []ast.Stmt {
	switch p.Kind {
	case ast.PragmaUnrollFull:
		b.unrollPending = ast.UnrollOn
		return nil
	case ast.PragmaUnrollDisable:
		b.unrollPending = ast.UnrollOff
		return nil
	case ast.PragmaToolVersion:
		b.checkToolVersion(p)
		return nil
	}
	return []ast.Stmt{p}
}
