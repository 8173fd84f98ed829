package main

import (
	"github.com/vlgo-hdl/vlgo/ast"
	"github.com/vlgo-hdl/vlgo/internal/fixture"
)

// scenario is one small demonstration program lowered by a vlink
// invocation. build constructs a fresh Netlist each call so concurrent
// runs (the -j flag) never share mutable AST state.
type scenario struct {
	name  string
	build func() *ast.Netlist
}

var allScenarios = []scenario{
	{"early-return", buildEarlyReturn},
	{"loop-break", buildLoopBreak},
	{"repeat", buildRepeat},
	{"do-while", buildDoWhile},
	{"disable", buildDisable},
}

func buildEarlyReturn() *ast.Netlist {
	net, mod := fixture.Module("m_early_return")
	fn, fvar := fixture.Function(mod, "classify")
	x := fixture.Var("x")
	*fn.Stmts() = []ast.Stmt{
		x,
		ast.NewIf(ast.NoPos, ast.NewBinaryExpr(ast.NoPos, ast.OpGreaterThan, fixture.Read(x), fixture.Int(0)),
			[]ast.Stmt{fixture.RetVal(fixture.Int(1))},
			nil,
		),
		ast.NewAssign(ast.NoPos, fixture.Write(fvar), fixture.Int(0)),
	}
	return net
}

func buildLoopBreak() *ast.Netlist {
	net, mod := fixture.Module("m_loop_break")
	i := fixture.Var("i")
	w := fixture.While(ast.NewBinaryExpr(ast.NoPos, ast.OpGreaterThan, fixture.Read(i), fixture.Int(0)),
		ast.NewIf(ast.NoPos, ast.NewBinaryExpr(ast.NoPos, ast.OpGreaterThan, fixture.Read(i), fixture.Int(10)),
			[]ast.Stmt{ast.NewBreak(ast.NoPos)},
			nil,
		),
	)
	fixture.Task(mod, "scan", i, w)
	return net
}

func buildRepeat() *ast.Netlist {
	net, mod := fixture.Module("m_repeat")
	r := fixture.Repeat(4, ast.NewOpaque(ast.NoPos, "pulse"))
	fixture.Task(mod, "strobe", r)
	return net
}

func buildDoWhile() *ast.Netlist {
	net, mod := fixture.Module("m_do_while")
	i := fixture.Var("i")
	dw := fixture.DoWhile(
		ast.NewBinaryExpr(ast.NoPos, ast.OpGreaterThan, fixture.Read(i), fixture.Int(0)),
		ast.NewAssign(ast.NoPos, fixture.Write(i),
			ast.NewBinaryExpr(ast.NoPos, ast.OpSubtract, fixture.Read(i), fixture.Int(1))),
	)
	fixture.Task(mod, "drain", i, dw)
	return net
}

func buildDisable() *ast.Netlist {
	net, mod := fixture.Module("m_disable")
	blk := fixture.Named("body",
		ast.NewIf(ast.NoPos, fixture.Read(fixture.Var("ready")),
			[]ast.Stmt{ast.NewDisable(ast.NoPos, "body")},
			nil,
		),
		ast.NewOpaque(ast.NoPos, "after"),
	)
	fixture.Task(mod, "guard", blk)
	return net
}
