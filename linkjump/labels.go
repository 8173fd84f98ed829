package linkjump

import (
	"fmt"

	"github.com/vlgo-hdl/vlgo/ast"
)

// slotFor returns (creating if absent) the memoization slot for
// anchor.
func (b *builder) slotFor(anchor ast.Node) *labelSlot {
	s := b.labels[anchor]
	if s == nil {
		s = &labelSlot{}
		b.labels[anchor] = s
	}
	return s
}

// findOrInsertLabel returns (creating if absent) the JumpLabel that
// jumping to is equivalent to the control transfer anchor/endOfIter
// describes:
//
//	Block/FunctionOrTask          -> exit past the anchor's own list
//	Loop, endOfIter=true (continue) -> end of the loop's body
//	Loop, endOfIter=false (break)    -> skip the entire loop
//
// Every branch hands the label out immediately but defers actually
// installing its owning JumpBlock: the call arrives while the
// lowerStmtList that owns the target list (often several frames up,
// as for a Return nested inside an If) is still running, and that
// owning list is
// still mid-traversal; wrapping it now would be wrapping stale,
// not-yet-lowered content. See applyPendingOwnListWrap and
// applyPendingLoopWrap in stmt.go for where the deferred wrap
// actually lands.
func (b *builder) findOrInsertLabel(anchor ast.Node, endOfIter bool) *ast.JumpLabel {
	slot := b.slotFor(anchor)
	if endOfIter && slot.endOfIter != nil {
		return slot.endOfIter
	}
	if !endOfIter && slot.exit != nil {
		return slot.exit
	}

	switch a := anchor.(type) {
	case *ast.FunctionOrTask:
		lbl := b.deferOwnListWrap(a.Pos(), a.Stmts())
		slot.exit = lbl
		b.opts.logf("linkjump: deferred exit label for function/task %s", a.Name)
		return lbl

	case *ast.Begin:
		lbl := b.deferOwnListWrap(a.Pos(), a.Stmts())
		slot.exit = lbl
		b.opts.logf("linkjump: deferred exit label for begin %q", a.Name())
		return lbl

	case ast.Loop:
		if endOfIter {
			lbl := b.deferOwnListWrap(a.Pos(), a.Body())
			slot.endOfIter = lbl
			b.opts.logf("linkjump: deferred continue label for loop at %v", a.Pos())
			return lbl
		}
		// break: the underlying node is the loop itself, a single
		// item within its parent's statement list. We have no handle
		// on that parent list here (findOrInsertLabel is called deep
		// inside the loop's own body traversal), so the label is
		// handed out now and its owning JumpBlock is installed later,
		// by applyPendingLoopWrap, once the parent list finishes
		// processing this loop statement.
		lbl := ast.NewStandaloneLabel(a.Pos())
		slot.exit = lbl
		b.pendingExitWrap[a] = lbl
		b.opts.logf("linkjump: deferred break-exit label for loop at %v", a.Pos())
		return lbl

	default:
		panic(fmt.Sprintf("linkjump: unknown jump anchor kind %T", anchor))
	}
}

// deferOwnListWrap hands out the label for an anchor that owns list
// directly (a Block's or FunctionOrTask's own body, or a Loop's own
// body for the continue case), to be wrapped in by
// applyPendingOwnListWrap once lowerStmtList finishes lowering list
// itself.
func (b *builder) deferOwnListWrap(pos ast.Pos, list *[]ast.Stmt) *ast.JumpLabel {
	if lbl, ok := b.pendingOwnListWrap[list]; ok {
		return lbl
	}
	lbl := ast.NewStandaloneLabel(pos)
	b.pendingOwnListWrap[list] = lbl
	return lbl
}
