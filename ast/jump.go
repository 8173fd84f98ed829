package ast

// JumpBlock, JumpLabel, and JumpGo are the lowered forward-only
// control-flow triple linkjump introduces. A JumpBlock owns exactly
// one JumpLabel, which is always its last statement; any number of
// JumpGo nodes may reference that label, but every reference must be
// reachable from the JumpGo by forward sibling/parent traversal.
type JumpBlock struct {
	stmtBase
	body   []Stmt
	Labelp *JumpLabel
}

func NewJumpBlock(pos Pos) *JumpBlock {
	jb := &JumpBlock{stmtBase: stmtBase{base{pos}}}
	lbl := &JumpLabel{stmtBase: stmtBase{base{pos}}, Block: jb}
	jb.Labelp = lbl
	return jb
}

func (j *JumpBlock) Stmts() *[]Stmt { return &j.body }

// NewJumpBlockWithLabel builds a JumpBlock around an already-existing
// label (created earlier by NewStandaloneLabel). Used when the label
// was handed out before its owning JumpBlock could be placed: a
// break's skip-entire-loop label is created while deep inside the
// loop body and only wired to a JumpBlock later, when the enclosing
// statement list finishes processing the loop statement itself.
func NewJumpBlockWithLabel(pos Pos, label *JumpLabel) *JumpBlock {
	jb := &JumpBlock{stmtBase: stmtBase{base{pos}}, Labelp: label}
	label.Block = jb
	return jb
}

// NewStandaloneLabel creates a JumpLabel with no owning JumpBlock yet.
func NewStandaloneLabel(pos Pos) *JumpLabel {
	return &JumpLabel{stmtBase: stmtBase{base{pos}}}
}

// JumpLabel is a marker statement; reaching it at runtime is a no-op.
// It exists purely as a JumpGo target.
type JumpLabel struct {
	stmtBase
	Block *JumpBlock
}

// JumpGo transfers control unconditionally to Target.
type JumpGo struct {
	stmtBase
	Target *JumpLabel
}

func NewJumpGo(pos Pos, target *JumpLabel) *JumpGo {
	return &JumpGo{stmtBase: stmtBase{base{pos}}, Target: target}
}
