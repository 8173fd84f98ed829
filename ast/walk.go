package ast

// Inspect walks stmts and every nested statement list depth-first,
// calling visit for each Stmt encountered (expressions are not
// visited; nothing under this pass's scope needs to inspect them
// generically). If visit returns false, Inspect does not descend into
// that statement's children.
//
// This is a read-only convenience used by sanity checking and tests;
// linkjump's own traversal (package linkjump) is hand-written because
// it must carry and mutate traversal context that a generic walker
// has no way to express.
func Inspect(stmts []Stmt, visit func(Stmt) bool) {
	for _, s := range stmts {
		if !visit(s) {
			continue
		}
		switch n := s.(type) {
		case *Begin:
			Inspect(n.body, visit)
		case *Fork:
			Inspect(n.body, visit)
		case *While:
			Inspect(n.PreConds, visit)
			Inspect(n.body, visit)
			Inspect(n.Incs, visit)
		case *DoWhile:
			Inspect(n.body, visit)
		case *Repeat:
			Inspect(n.body, visit)
		case *Foreach:
			Inspect(n.body, visit)
		case *If:
			Inspect(n.Then, visit)
			Inspect(n.Else, visit)
		case *JumpBlock:
			Inspect(n.body, visit)
		}
	}
}
