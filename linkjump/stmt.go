package linkjump

import "github.com/vlgo-hdl/vlgo/ast"

// lowerStmtList lowers every statement in *list in place. A node is
// replaced or deleted only after its own children have been lowered,
// except a Repeat, which is rewritten first (see rewriteRepeat).
// Any exit/continue label deferred against this exact list by a nested
// Return/Break/Continue/Disable is only wrapped in at the very end
// (applyPendingOwnListWrap), once every sibling, however deeply
// nested, has already reached its final, lowered form.
func (b *builder) lowerStmtList(list *[]ast.Stmt) {
	items := *list
	out := make([]ast.Stmt, 0, len(items))
	for _, s := range items {
		lowered := b.lowerStmt(s)
		lowered = b.applyPendingLoopWrap(s, lowered)
		out = append(out, lowered...)
	}
	out = b.applyPendingOwnListWrap(list, out)
	*list = out
}

// applyPendingOwnListWrap installs the deferred exit/continue JumpBlock
// (see deferOwnListWrap) around everything in out past its leading Var
// declarations, the instant the lowerStmtList call that owns list
// itself finishes, by which point every statement in out has already
// been fully lowered, including ones nested arbitrarily deep under Ifs
// and blocks that requested this very label.
func (b *builder) applyPendingOwnListWrap(list *[]ast.Stmt, out []ast.Stmt) []ast.Stmt {
	lbl, pending := b.pendingOwnListWrap[list]
	if !pending {
		return out
	}
	delete(b.pendingOwnListWrap, list)

	j := 0
	for j < len(out) {
		if _, ok := out[j].(*ast.Var); !ok {
			break
		}
		j++
	}

	jb := ast.NewJumpBlockWithLabel(lbl.Pos(), lbl)
	tail := append([]ast.Stmt{}, out[j:]...)
	*jb.Stmts() = append(tail, lbl)
	return append(append([]ast.Stmt{}, out[:j]...), ast.Stmt(jb))
}

// applyPendingLoopWrap installs the deferred break-exit JumpBlock
// (see findOrInsertLabel's Loop/endOfIter=false case) around the
// lowered form of a loop statement, the moment the statement list
// that actually owns that loop's slot finishes processing it. The
// wrap cannot happen at the point the label is requested, because the
// requester (a Break lowering deep inside the loop body) has no handle
// on the loop's own parent list.
func (b *builder) applyPendingLoopWrap(original ast.Stmt, lowered []ast.Stmt) []ast.Stmt {
	loop, ok := original.(ast.Loop)
	if !ok {
		return lowered
	}
	lbl, pending := b.pendingExitWrap[loop]
	if !pending {
		return lowered
	}
	delete(b.pendingExitWrap, loop)
	jb := ast.NewJumpBlockWithLabel(loop.Pos(), lbl)
	*jb.Stmts() = append(append([]ast.Stmt{}, lowered...), lbl)
	return []ast.Stmt{jb}
}

// lowerStmt lowers a single statement, returning its replacement (zero
// or more statements: zero for a deleted control leaf, more than one
// for a DoWhile's body-duplication rewrite).
func (b *builder) lowerStmt(s ast.Stmt) []ast.Stmt {
	switch n := s.(type) {
	case *ast.Begin:
		b.pushBlock(n)
		b.lowerStmtList(n.Stmts())
		b.popBlock()
		return []ast.Stmt{n}

	case *ast.Fork:
		b.pushBlock(n)
		b.markForkAncestors()
		savedInFork := b.inFork
		b.inFork = true
		b.lowerStmtList(n.Stmts())
		b.inFork = savedInFork
		b.popBlock()
		return []ast.Stmt{n}

	case *ast.While:
		return b.lowerWhile(n)

	case *ast.DoWhile:
		return b.lowerDoWhile(n)

	case *ast.Repeat:
		return b.lowerStmt(b.rewriteRepeat(n))

	case *ast.Foreach:
		saved := b.currentLoop
		b.currentLoop = n
		b.lowerStmtList(n.Body())
		b.currentLoop = saved
		return []ast.Stmt{n}

	case *ast.If:
		b.lowerStmtList(&n.Then)
		b.lowerStmtList(&n.Else)
		return []ast.Stmt{n}

	case *ast.Return:
		return b.lowerReturn(n)

	case *ast.Break:
		return b.lowerBreak(n)

	case *ast.Continue:
		return b.lowerContinue(n)

	case *ast.Disable:
		return b.lowerDisable(n)

	case *ast.Pragma:
		return b.lowerPragma(n)

	case *ast.Assign:
		if b.inLoopIncrement {
			markLoopIndexVarsInExpr(n.Lhs)
			markLoopIndexVarsInExpr(n.Rhs)
		}
		return []ast.Stmt{n}

	default:
		return []ast.Stmt{s}
	}
}
