package linkjump

import (
	"strconv"

	"github.com/vlgo-hdl/vlgo/ast"
)

// rewriteRepeat turns repeat(count) body into
//
//	begin
//	  int __VrepeatN;
//	  __VrepeatN = count;
//	  while (__VrepeatN > 0) begin
//	    body;
//	    __VrepeatN = __VrepeatN - 1;
//	  end
//	end
//
// The rewrite happens without first recursing into body's own
// children; the caller (lowerStmt) feeds the returned Begin straight
// back through lowerStmt so the outer traversal naturally continues
// into the While and its body next, with
// currentLoop now pointing at the new While rather than the Repeat
// that no longer exists.
func (b *builder) rewriteRepeat(r *ast.Repeat) *ast.Begin {
	pos := r.Pos()
	name := b.nextRepeatCounterName()

	counter := ast.NewVar(pos, name, true)
	counter.SetUsedLoopIdx(true)

	initAssign := ast.NewAssign(pos, ast.NewVarRef(pos, counter, ast.Write), r.Count)

	cond := ast.NewBinaryExpr(pos, ast.OpGreaterThan, ast.NewVarRef(pos, counter, ast.Read), ast.NewConst(pos, 0))
	decr := ast.NewAssign(pos, ast.NewVarRef(pos, counter, ast.Write),
		ast.NewBinaryExpr(pos, ast.OpSubtract, ast.NewVarRef(pos, counter, ast.Read), ast.NewConst(pos, 1)))

	body := *r.Body()
	w := ast.NewWhile(pos, cond, body, []ast.Stmt{decr})
	w.FromRepeat = true
	w.Unroll = b.unrollPending
	b.unrollPending = ast.UnrollDefault

	b.opts.logf("linkjump: rewrote repeat into counter %s", name)

	return ast.NewBegin(pos, "", []ast.Stmt{counter, initAssign, w})
}

func (b *builder) nextRepeatCounterName() string {
	n := b.repeatCounter
	b.repeatCounter++
	return repeatCounterName(n)
}

func repeatCounterName(n int) string {
	return "__Vrepeat" + strconv.Itoa(n)
}
