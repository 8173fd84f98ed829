package ast

// cloneCtx carries the substitution tables a Clone call needs to keep
// a cloned subtree independent of its original: a variable declared
// inside the cloned region gets its own copy (and every VarRef to it
// is repointed), and likewise a jump label whose owning JumpBlock
// lies inside the cloned region gets its own JumpBlock/JumpLabel pair
// so a JumpGo in the clone never targets the original's label. A
// label defined outside the region stays shared: a JumpGo in the
// clone and one in the original both transfer to the same point past
// the region, which is exactly what a break lowered before the
// duplication means.
type cloneCtx struct {
	vars   map[*Var]*Var
	labels map[*JumpLabel]*JumpLabel
	inside map[*JumpLabel]bool
}

// Clone produces a deep, independent copy of a statement sequence. A
// Var declared within stmts is cloned and remapped (so VarRef nodes
// inside the copy resolve to the new declaration); a VarRef to a Var
// declared outside the cloned subtree keeps pointing at the original,
// shared variable. Any JumpBlock already present (inserted by an
// earlier pass over the same statements) is cloned with its own
// independent label, and every JumpGo inside stmts that targets such a
// label is repointed at the copy.
//
// Duplication happens after lowering has already recursed into the
// statements being cloned, so the clone must be able to duplicate
// lowered JumpBlock/JumpGo nodes too. A JumpGo whose target label
// lives outside stmts (a break label whose owning JumpBlock wraps the
// region from the outside, installed by the caller afterward) keeps
// pointing at that shared label rather than getting a private copy
// that nothing would ever own.
func Clone(stmts []Stmt) []Stmt {
	ctx := &cloneCtx{
		vars:   map[*Var]*Var{},
		labels: map[*JumpLabel]*JumpLabel{},
		inside: map[*JumpLabel]bool{},
	}
	Inspect(stmts, func(s Stmt) bool {
		if lbl, ok := s.(*JumpLabel); ok {
			ctx.inside[lbl] = true
		}
		return true
	})
	return cloneStmts(stmts, ctx)
}

func cloneStmts(stmts []Stmt, ctx *cloneCtx) []Stmt {
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = cloneStmt(s, ctx)
	}
	return out
}

func cloneStmt(s Stmt, ctx *cloneCtx) Stmt {
	switch n := s.(type) {
	case *Var:
		cp := *n
		ctx.vars[n] = &cp
		return &cp
	case *Begin:
		cp := NewBegin(n.P, n.label, cloneStmts(n.body, ctx))
		cp.containsFork = n.containsFork
		return cp
	case *Fork:
		return NewFork(n.P, n.label, cloneStmts(n.body, ctx))
	case *While:
		return &While{
			stmtBase:           n.stmtBase,
			PreConds:           cloneStmts(n.PreConds, ctx),
			Cond:               cloneExpr(n.Cond, ctx),
			body:               cloneStmts(n.body, ctx),
			Incs:               cloneStmts(n.Incs, ctx),
			Unroll:             n.Unroll,
			SuppressUnusedLoop: n.SuppressUnusedLoop,
			FromRepeat:         n.FromRepeat,
		}
	case *DoWhile:
		return &DoWhile{stmtBase: n.stmtBase, Cond: cloneExpr(n.Cond, ctx), body: cloneStmts(n.body, ctx), Unroll: n.Unroll}
	case *Repeat:
		return &Repeat{stmtBase: n.stmtBase, Count: cloneExpr(n.Count, ctx), body: cloneStmts(n.body, ctx), Unroll: n.Unroll}
	case *Foreach:
		return &Foreach{stmtBase: n.stmtBase, Container: cloneExpr(n.Container, ctx), body: cloneStmts(n.body, ctx)}
	case *If:
		return NewIf(n.P, cloneExpr(n.Cond, ctx), cloneStmts(n.Then, ctx), cloneStmts(n.Else, ctx))
	case *Return:
		return NewReturn(n.P, cloneExpr(n.Rhs, ctx))
	case *Break:
		return NewBreak(n.P)
	case *Continue:
		return NewContinue(n.P)
	case *Disable:
		return NewDisable(n.P, n.Target)
	case *Pragma:
		return NewPragma(n.P, n.Kind, n.Arg)
	case *Assign:
		return NewAssign(n.P, cloneExpr(n.Lhs, ctx), cloneExpr(n.Rhs, ctx))
	case *Opaque:
		return NewOpaque(n.P, n.Tag)
	case *JumpBlock:
		newLabel := cloneLabel(n.Labelp, ctx)
		cp := &JumpBlock{stmtBase: n.stmtBase, Labelp: newLabel}
		newLabel.Block = cp
		body := make([]Stmt, len(n.body))
		for i, bs := range n.body {
			if bs == Stmt(n.Labelp) {
				body[i] = newLabel
				continue
			}
			body[i] = cloneStmt(bs, ctx)
		}
		cp.body = body
		return cp
	case *JumpGo:
		return NewJumpGo(n.P, cloneLabel(n.Target, ctx))
	default:
		panic("ast: Clone: unhandled statement kind")
	}
}

func cloneLabel(l *JumpLabel, ctx *cloneCtx) *JumpLabel {
	if !ctx.inside[l] {
		return l
	}
	if cp, ok := ctx.labels[l]; ok {
		return cp
	}
	cp := &JumpLabel{stmtBase: l.stmtBase}
	ctx.labels[l] = cp
	return cp
}

func cloneExpr(e Expr, ctx *cloneCtx) Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *VarRef:
		v := n.Varp
		if cp, ok := ctx.vars[v]; ok {
			v = cp
		}
		return NewVarRef(n.P, v, n.Access)
	case *Const:
		return NewConst(n.P, n.Value)
	case *BinaryExpr:
		return NewBinaryExpr(n.P, n.Op, cloneExpr(n.Lhs, ctx), cloneExpr(n.Rhs, ctx))
	case *ExprList:
		exprs := make([]Expr, len(n.Exprs))
		for i, x := range n.Exprs {
			exprs[i] = cloneExpr(x, ctx)
		}
		return NewExprList(n.P, exprs...)
	default:
		panic("ast: Clone: unhandled expression kind")
	}
}

// RenameBlocks prefixes the name of every named Begin/Fork found
// within stmts with prefix. Unnamed blocks are left alone. Used by the
// do-while normalizer to keep the original and duplicated copies of a
// loop body from colliding on block names downstream.
func RenameBlocks(stmts []Stmt, prefix string) {
	for _, s := range stmts {
		renameBlocksIn(s, prefix)
	}
}

func renameBlocksIn(s Stmt, prefix string) {
	switch n := s.(type) {
	case *Begin:
		if n.label != "" {
			n.label = prefix + n.label
		}
		RenameBlocks(n.body, prefix)
	case *Fork:
		if n.label != "" {
			n.label = prefix + n.label
		}
		RenameBlocks(n.body, prefix)
	case *While:
		RenameBlocks(n.PreConds, prefix)
		RenameBlocks(n.body, prefix)
		RenameBlocks(n.Incs, prefix)
	case *DoWhile:
		RenameBlocks(n.body, prefix)
	case *Repeat:
		RenameBlocks(n.body, prefix)
	case *Foreach:
		RenameBlocks(n.body, prefix)
	case *If:
		RenameBlocks(n.Then, prefix)
		RenameBlocks(n.Else, prefix)
	case *JumpBlock:
		RenameBlocks(n.body, prefix)
	}
}
