package ast

// Var is a variable declaration. usedLoopIdx marks it as an induction
// variable consumed by later optimization passes; Auto distinguishes
// an automatic (function-local) variable from a module-level one,
// relevant because repeat-counters and do-while-duplicated locals
// must be automatic.
type Var struct {
	stmtBase
	Name        string
	Auto        bool
	usedLoopIdx bool
}

func NewVar(pos Pos, name string, auto bool) *Var {
	return &Var{stmtBase: stmtBase{base{pos}}, Name: name, Auto: auto}
}

func (v *Var) UsedLoopIdx() bool     { return v.usedLoopIdx }
func (v *Var) SetUsedLoopIdx(b bool) { v.usedLoopIdx = b }

// Access distinguishes how a VarRef is used.
type Access int

const (
	Read Access = iota
	Write
)

// VarRef is a use of a Var within an expression.
type VarRef struct {
	exprBase
	Varp   *Var
	Access Access
}

func NewVarRef(pos Pos, v *Var, acc Access) *VarRef {
	return &VarRef{exprBase: exprBase{base{pos}}, Varp: v, Access: acc}
}

// Const is an integer literal.
type Const struct {
	exprBase
	Value int64
}

func NewConst(pos Pos, v int64) *Const { return &Const{exprBase{base{pos}}, v} }

// BinOp enumerates the binary operators linkjump itself needs to
// synthesize: comparisons and arithmetic for the repeat-counter
// rewrite. The pass never evaluates expressions.
type BinOp int

const (
	OpGreaterThan BinOp = iota
	OpSubtract
)

type BinaryExpr struct {
	exprBase
	Op          BinOp
	Lhs, Rhs    Expr
}

func NewBinaryExpr(pos Pos, op BinOp, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{base{pos}}, Op: op, Lhs: lhs, Rhs: rhs}
}

// ExprList is a comma-separated expression sequence, e.g. a repeat
// count written as `a, b`: only the last value matters, but every
// expression in the sequence must still be evaluated for side
// effects, so the whole sequence is carried through rewrites.
type ExprList struct {
	exprBase
	Exprs []Expr
}

func NewExprList(pos Pos, exprs ...Expr) *ExprList {
	return &ExprList{exprBase: exprBase{base{pos}}, Exprs: exprs}
}

// Assign is `Lhs := Rhs`.
type Assign struct {
	stmtBase
	Lhs, Rhs Expr
}

func NewAssign(pos Pos, lhs, rhs Expr) *Assign {
	return &Assign{stmtBase: stmtBase{base{pos}}, Lhs: lhs, Rhs: rhs}
}
