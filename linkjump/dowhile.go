package linkjump

import "github.com/vlgo-hdl/vlgo/ast"

// lowerDoWhile replaces a do-while with one inlined copy of its body
// followed by an equivalent while. The original body is lowered first
// (with currentLoop pointing at the DoWhile itself, so any
// break/continue inside resolves against it); only afterward is the
// body cloned to stand in for the loop's guaranteed first iteration,
// with the two copies' named blocks disambiguated by prefix.
func (b *builder) lowerDoWhile(d *ast.DoWhile) []ast.Stmt {
	saved := b.currentLoop
	b.currentLoop = d
	b.lowerStmtList(d.Body())
	b.currentLoop = saved

	pos := d.Pos()
	w := ast.NewWhile(pos, d.Cond, *d.Body(), nil)
	w.Unroll = b.unrollPending
	b.unrollPending = ast.UnrollDefault
	// The body always runs at least once, so a downstream "loop body
	// never executes" warning would be a false positive here
	// regardless of module parameterization.
	w.SuppressUnusedLoop = true

	clone := ast.Clone(*d.Body())
	ast.RenameBlocks(clone, "__Vdo_while1_")
	ast.RenameBlocks(*w.Body(), "__Vdo_while2_")

	b.opts.logf("linkjump: lowered do-while at %v into duplicated body + while", pos)

	return append(clone, w)
}
