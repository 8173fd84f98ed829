// Package fixture builds small, hand-constructed ast.Netlist values
// for linkjump tests and the vlink demo. There is no HDL parser in
// this repo, so fixtures are assembled directly from ast's own
// constructors.
package fixture

import "github.com/vlgo-hdl/vlgo/ast"

// Module starts a one-module Netlist named name and returns both, so
// callers can keep adding functions to mod before handing net to
// linkjump.Run.
func Module(name string) (*ast.Netlist, *ast.Module) {
	net := ast.NewNetlist()
	mod := ast.NewModule(ast.NoPos, name)
	net.Modules = append(net.Modules, mod)
	return net, mod
}

// Task appends a void function (a task) named name with body to mod
// and returns it.
func Task(mod *ast.Module, name string, body ...ast.Stmt) *ast.FunctionOrTask {
	fn := ast.NewTask(ast.NoPos, name, body)
	mod.FunctionsAndTasks = append(mod.FunctionsAndTasks, fn)
	return fn
}

// Function appends a value-returning function named name to mod. The
// caller gets the implicit result Var back so it can assign to it
// directly.
func Function(mod *ast.Module, name string, body ...ast.Stmt) (*ast.FunctionOrTask, *ast.Var) {
	fvar := ast.NewVar(ast.NoPos, name, false)
	fn := ast.NewFunction(ast.NoPos, name, fvar, body)
	mod.FunctionsAndTasks = append(mod.FunctionsAndTasks, fn)
	return fn, fvar
}

// While builds a while loop with no increment: while (cond) { body }.
func While(cond ast.Expr, body ...ast.Stmt) *ast.While {
	return ast.NewWhile(ast.NoPos, cond, body, nil)
}

// Repeat builds a repeat(count) { body } loop.
func Repeat(count int64, body ...ast.Stmt) *ast.Repeat {
	return ast.NewRepeat(ast.NoPos, ast.NewConst(ast.NoPos, count), body)
}

// DoWhile builds a do { body } while (cond) loop.
func DoWhile(cond ast.Expr, body ...ast.Stmt) *ast.DoWhile {
	return ast.NewDoWhile(ast.NoPos, cond, body)
}

// Named wraps body in a named Begin block, the valid target of a
// Disable.
func Named(name string, body ...ast.Stmt) *ast.Begin {
	return ast.NewBegin(ast.NoPos, name, body)
}

// Par wraps body in a Fork block.
func Par(body ...ast.Stmt) *ast.Fork {
	return ast.NewFork(ast.NoPos, "", body)
}

// Ret builds a bare `return;`.
func Ret() *ast.Return { return ast.NewReturn(ast.NoPos, nil) }

// RetVal builds `return rhs;`.
func RetVal(rhs ast.Expr) *ast.Return { return ast.NewReturn(ast.NoPos, rhs) }

// Var declares a variable; a *Var is itself a Stmt, the way
// go/ast.DeclStmt makes a declaration usable in statement position.
func Var(name string) *ast.Var { return ast.NewVar(ast.NoPos, name, true) }

// Read and Write build a VarRef to v in the given access mode.
func Read(v *ast.Var) *ast.VarRef  { return ast.NewVarRef(ast.NoPos, v, ast.Read) }
func Write(v *ast.Var) *ast.VarRef { return ast.NewVarRef(ast.NoPos, v, ast.Write) }

// Int builds an integer literal.
func Int(v int64) *ast.Const { return ast.NewConst(ast.NoPos, v) }
