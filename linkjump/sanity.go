package linkjump

import (
	"fmt"
	"io"
	"os"

	"github.com/vlgo-hdl/vlgo/ast"
)

// checker carries sanity-checking state across one netlist walk: a
// reporter to write diagnostics to, the module and function currently
// being examined (for context in messages), and an insane flag that
// accumulates across every problem found rather than stopping at the
// first.
type checker struct {
	reporter io.Writer
	module   string
	fn       string
	insane   bool
}

func (c *checker) errorf(format string, args ...interface{}) {
	c.insane = true
	prefix := c.module
	if c.fn != "" {
		prefix += "." + c.fn
	}
	fmt.Fprintf(c.reporter, "linkjump sanity: %s: %s\n", prefix, fmt.Sprintf(format, args...))
}

// sanityCheck verifies the pass's structural invariants hold across
// every live module in net, writing diagnostics to os.Stderr. It
// returns false if any invariant is violated.
func sanityCheck(net *ast.Netlist) bool {
	return SanityCheckTo(net, os.Stderr)
}

// SanityCheckTo is sanityCheck with an explicit reporter, so tests
// can capture its output instead of writing to os.Stderr.
func SanityCheckTo(net *ast.Netlist, reporter io.Writer) bool {
	c := &checker{reporter: reporter}
	for _, m := range net.Modules {
		if m.Dead {
			continue
		}
		c.module = m.Name
		for _, fn := range m.FunctionsAndTasks {
			c.fn = fn.Name
			c.checkFunction(*fn.Stmts())
		}
	}
	c.fn = ""
	return !c.insane
}

func (c *checker) checkFunction(stmts []ast.Stmt) {
	c.checkNoControlLeaves(stmts)
	c.checkLabelOwnership(stmts)
	c.checkForwardOnly(stmts, nil)
	c.checkLoopIdxOnRepeat(stmts)
	c.checkForkMarking(stmts, false)
}

// checkNoControlLeaves verifies that Return, Break, Continue, Disable,
// Repeat, DoWhile, and latched unroll Pragma nodes have all been
// eliminated by a successful Run.
func (c *checker) checkNoControlLeaves(stmts []ast.Stmt) {
	ast.Inspect(stmts, func(s ast.Stmt) bool {
		switch n := s.(type) {
		case *ast.Return:
			c.errorf("Return survived lowering")
		case *ast.Break:
			c.errorf("Break survived lowering")
		case *ast.Continue:
			c.errorf("Continue survived lowering")
		case *ast.Disable:
			c.errorf("Disable survived lowering")
		case *ast.Repeat:
			c.errorf("Repeat survived normalization")
		case *ast.DoWhile:
			c.errorf("DoWhile survived normalization")
		case *ast.Pragma:
			if n.Kind == ast.PragmaUnrollFull || n.Kind == ast.PragmaUnrollDisable {
				c.errorf("unroll Pragma survived latching")
			}
		}
		return true
	})
}

// checkLabelOwnership verifies that every JumpBlock in the tree has a
// label, that the label names that JumpBlock as its owner, and that
// the label is the block's last statement.
func (c *checker) checkLabelOwnership(stmts []ast.Stmt) {
	ast.Inspect(stmts, func(s ast.Stmt) bool {
		jb, ok := s.(*ast.JumpBlock)
		if !ok {
			return true
		}
		body := *jb.Stmts()
		if jb.Labelp == nil {
			c.errorf("JumpBlock at %v has no label", jb.Pos())
			return true
		}
		if jb.Labelp.Block != jb {
			c.errorf("JumpLabel at %v does not point back at its owning JumpBlock", jb.Labelp.Pos())
		}
		if len(body) == 0 || body[len(body)-1] != ast.Stmt(jb.Labelp) {
			c.errorf("JumpBlock at %v does not carry its label as its last statement", jb.Pos())
		}
		return true
	})
}

// checkForwardOnly verifies that every JumpGo's target is reachable
// by walking forward from the JumpGo's position through its remaining
// siblings and, on exhausting those, its enclosing scopes' remaining
// siblings in turn. There are no parent back-pointers in this AST, so
// the search instead carries a stack of "what comes after me"
// continuations down the recursion.
type cont struct {
	tail *cont
	rest []ast.Stmt
}

func (c *checker) checkForwardOnly(stmts []ast.Stmt, tail *cont) {
	for i, s := range stmts {
		frame := &cont{tail: tail, rest: stmts[i+1:]}
		switch n := s.(type) {
		case *ast.JumpGo:
			if n.Target == nil {
				c.errorf("JumpGo at %v has a nil target", n.Pos())
				break
			}
			if !forwardReachable(n.Target, frame) {
				c.errorf("JumpGo at %v does not forward-reach its target", n.Pos())
			}
		case *ast.Begin:
			c.checkForwardOnly(*n.Stmts(), frame)
		case *ast.Fork:
			c.checkForwardOnly(*n.Stmts(), frame)
		case *ast.While:
			c.checkForwardOnly(n.PreConds, frame)
			c.checkForwardOnly(*n.Body(), frame)
			c.checkForwardOnly(n.Incs, frame)
		case *ast.Foreach:
			c.checkForwardOnly(*n.Body(), frame)
		case *ast.If:
			c.checkForwardOnly(n.Then, frame)
			c.checkForwardOnly(n.Else, frame)
		case *ast.JumpBlock:
			c.checkForwardOnly(*n.Stmts(), frame)
		}
	}
}

// forwardReachable reports whether target appears somewhere in rest,
// or in any of rest's nested statement lists, or (failing that) in an
// enclosing continuation; it never looks backward.
func forwardReachable(target *ast.JumpLabel, frame *cont) bool {
	for f := frame; f != nil; f = f.tail {
		if containsLabel(f.rest, target) {
			return true
		}
	}
	return false
}

func containsLabel(stmts []ast.Stmt, target *ast.JumpLabel) bool {
	found := false
	ast.Inspect(stmts, func(s ast.Stmt) bool {
		if found {
			return false
		}
		if lbl, ok := s.(*ast.JumpLabel); ok && lbl == target {
			found = true
			return false
		}
		return true
	})
	return found
}

// checkLoopIdxOnRepeat verifies that every While synthesized from a
// Repeat has its counter variable's UsedLoopIdx set.
func (c *checker) checkLoopIdxOnRepeat(stmts []ast.Stmt) {
	ast.Inspect(stmts, func(s ast.Stmt) bool {
		w, ok := s.(*ast.While)
		if !ok || !w.FromRepeat {
			return true
		}
		counter := repeatCounterVar(w)
		if counter == nil {
			c.errorf("repeat-derived While at %v: could not locate its counter variable", w.Pos())
			return true
		}
		if !counter.UsedLoopIdx() {
			c.errorf("repeat-derived While at %v: counter %s missing UsedLoopIdx", w.Pos(), counter.Name)
		}
		return true
	})
}

// repeatCounterVar recovers the counter from the decrement assignment
// the repeat rewrite installs as the While's sole increment statement.
func repeatCounterVar(w *ast.While) *ast.Var {
	for _, s := range w.Incs {
		if a, ok := s.(*ast.Assign); ok {
			if ref, ok := a.Lhs.(*ast.VarRef); ok {
				return ref.Varp
			}
		}
	}
	return nil
}

// checkForkMarking verifies that a Begin with a Fork anywhere in its
// subtree reports ContainsFork() true, and only then.
func (c *checker) checkForkMarking(stmts []ast.Stmt, inFork bool) bool {
	sawFork := inFork
	ast.Inspect(stmts, func(s ast.Stmt) bool {
		switch n := s.(type) {
		case *ast.Fork:
			sawFork = true
			if c.checkForkMarking(*n.Stmts(), true) {
				sawFork = true
			}
			return false
		case *ast.Begin:
			if c.checkForkMarking(*n.Stmts(), false) {
				sawFork = true
			}
			if n.ContainsFork() != containsForkBelow(*n.Stmts()) {
				c.errorf("Begin %q at %v: ContainsFork flag disagrees with its subtree", n.Name(), n.Pos())
			}
			return false
		}
		return true
	})
	return sawFork
}

func containsForkBelow(stmts []ast.Stmt) bool {
	found := false
	ast.Inspect(stmts, func(s ast.Stmt) bool {
		switch s.(type) {
		case *ast.Fork:
			found = true
			return false
		}
		return true
	})
	return found
}
