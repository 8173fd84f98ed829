package linkjump

import "github.com/vlgo-hdl/vlgo/ast"

// lowerWhile attaches any pending unroll pragma, suppresses the
// downstream UNUSEDLOOP warning inside a parameterized module, then
// traverses preconds and body normally and the increments with
// inLoopIncrement set.
func (b *builder) lowerWhile(w *ast.While) []ast.Stmt {
	// Only consume a latched pragma; an unconditional store would
	// erase the hint already carried by a While we synthesized
	// ourselves (the repeat rewrite latches before this visit runs)
	// or, on a re-run over lowered output, by any While at all.
	if b.unrollPending != ast.UnrollDefault {
		w.Unroll = b.unrollPending
		b.unrollPending = ast.UnrollDefault
	}

	if b.currentModule != nil && b.currentModule.IsParameterized() {
		w.SuppressUnusedLoop = true
	}

	b.lowerStmtList(&w.PreConds)

	saved := b.currentLoop
	b.currentLoop = w
	b.lowerStmtList(w.Body())

	savedInc := b.inLoopIncrement
	b.inLoopIncrement = true
	b.lowerStmtList(&w.Incs)
	b.inLoopIncrement = savedInc

	b.currentLoop = saved
	return []ast.Stmt{w}
}

// markLoopIndexVarsInExpr flags every variable referenced within a
// While's increment subtree as usedLoopIdx, so a later optimization
// pass does not eliminate what looks like a dead write to the loop
// counter.
func markLoopIndexVarsInExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.VarRef:
		n.Varp.SetUsedLoopIdx(true)
	case *ast.BinaryExpr:
		markLoopIndexVarsInExpr(n.Lhs)
		markLoopIndexVarsInExpr(n.Rhs)
	case *ast.ExprList:
		for _, x := range n.Exprs {
			markLoopIndexVarsInExpr(x)
		}
	}
}
