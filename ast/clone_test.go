package ast_test

import (
	"testing"

	. "github.com/vlgo-hdl/vlgo/ast"
)

func TestCloneDuplicatesVars(t *testing.T) {
	v := NewVar(NoPos, "i", true)
	orig := []Stmt{
		v,
		NewAssign(NoPos, NewVarRef(NoPos, v, Write), NewConst(NoPos, 1)),
	}
	clone := Clone(orig)

	cv, ok := clone[0].(*Var)
	if !ok {
		t.Fatalf("clone[0] is %T, want *Var", clone[0])
	}
	if cv == v {
		t.Fatal("cloned Var is the same pointer as the original")
	}
	ca, ok := clone[1].(*Assign)
	if !ok {
		t.Fatalf("clone[1] is %T, want *Assign", clone[1])
	}
	ref, ok := ca.Lhs.(*VarRef)
	if !ok {
		t.Fatalf("clone assign Lhs is %T, want *VarRef", ca.Lhs)
	}
	if ref.Varp != cv {
		t.Fatal("cloned VarRef does not point at the cloned Var")
	}
}

func TestCloneGivesJumpLabelsIndependentIdentity(t *testing.T) {
	jb := NewJumpBlock(NoPos)
	*jb.Stmts() = []Stmt{NewOpaque(NoPos, "x"), jb.Labelp}
	orig := []Stmt{
		NewJumpGo(NoPos, jb.Labelp),
		jb,
	}

	clone := Clone(orig)

	cGoto, ok := clone[0].(*JumpGo)
	if !ok {
		t.Fatalf("clone[0] is %T, want *JumpGo", clone[0])
	}
	cBlock, ok := clone[1].(*JumpBlock)
	if !ok {
		t.Fatalf("clone[1] is %T, want *JumpBlock", clone[1])
	}
	if cGoto.Target != cBlock.Labelp {
		t.Fatal("cloned JumpGo does not target the cloned JumpBlock's label")
	}
	if cGoto.Target == jb.Labelp {
		t.Fatal("cloned JumpGo aliases the original label")
	}
	if cBlock.Labelp.Block != cBlock {
		t.Fatal("cloned JumpLabel does not point back at its cloned owning JumpBlock")
	}
}

func TestCloneSharesLabelsDefinedOutsideRegion(t *testing.T) {
	outside := NewStandaloneLabel(NoPos)
	orig := []Stmt{
		NewJumpGo(NoPos, outside),
		NewOpaque(NoPos, "x"),
	}

	clone := Clone(orig)

	cGoto, ok := clone[0].(*JumpGo)
	if !ok {
		t.Fatalf("clone[0] is %T, want *JumpGo", clone[0])
	}
	if cGoto.Target != outside {
		t.Fatal("JumpGo to a label outside the cloned region must keep targeting the shared label")
	}
}

func TestCloneKeepsContainsFork(t *testing.T) {
	blk := NewBegin(NoPos, "b", []Stmt{NewFork(NoPos, "", nil)})
	blk.SetContainsFork(true)

	clone := Clone([]Stmt{blk})

	cBlk, ok := clone[0].(*Begin)
	if !ok {
		t.Fatalf("clone[0] is %T, want *Begin", clone[0])
	}
	if !cBlk.ContainsFork() {
		t.Fatal("cloned Begin lost its ContainsFork marking")
	}
}

func TestRenameBlocksPrefixesNamedBlocksOnly(t *testing.T) {
	named := NewBegin(NoPos, "loop_body", nil)
	anon := NewBegin(NoPos, "", nil)
	stmts := []Stmt{named, anon}

	RenameBlocks(stmts, "__Vdo_while1_")

	if named.Name() != "__Vdo_while1_loop_body" {
		t.Errorf("named.Name() = %q, want prefixed", named.Name())
	}
	if anon.Name() != "" {
		t.Errorf("anon.Name() = %q, want empty still", anon.Name())
	}
}
