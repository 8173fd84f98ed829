package ast

// Block is implemented by the two container-block variants, Begin and
// Fork. It gives linkjump's fork-detection and disable-resolution code
// a uniform view regardless of which variant it is looking at.
type Block interface {
	Stmt
	blockNode()
	// Name is the block's label, or "" if unnamed.
	Name() string
	SetName(string)
	// Stmts returns the block's statement sequence by reference so
	// callers can splice it in place.
	Stmts() *[]Stmt
	// ContainsFork reports whether a Fork lies anywhere in this
	// block's subtree; it is set by linkjump's fork-detection walk
	// and consumed by Disable lowering.
	ContainsFork() bool
	SetContainsFork(bool)
}

// Begin is a sequential block, optionally named. A named Begin is a
// valid target of Disable.
type Begin struct {
	stmtBase
	label        string
	body         []Stmt
	containsFork bool
}

func NewBegin(pos Pos, name string, body []Stmt) *Begin {
	return &Begin{stmtBase: stmtBase{base{pos}}, label: name, body: body}
}

func (b *Begin) blockNode()             {}
func (b *Begin) Name() string           { return b.label }
func (b *Begin) SetName(n string)       { b.label = n }
func (b *Begin) Stmts() *[]Stmt         { return &b.body }
func (b *Begin) ContainsFork() bool     { return b.containsFork }
func (b *Begin) SetContainsFork(v bool) { b.containsFork = v }

// Fork is a parallel block: every statement in its body executes
// concurrently. disable on a Fork by name is diagnosed as
// unsupported; Return underneath a Fork is illegal.
type Fork struct {
	stmtBase
	label        string
	body         []Stmt
	containsFork bool
}

func NewFork(pos Pos, name string, body []Stmt) *Fork {
	return &Fork{stmtBase: stmtBase{base{pos}}, label: name, body: body}
}

func (f *Fork) blockNode()             {}
func (f *Fork) Name() string           { return f.label }
func (f *Fork) SetName(n string)       { f.label = n }
func (f *Fork) Stmts() *[]Stmt         { return &f.body }
func (f *Fork) ContainsFork() bool     { return true } // a Fork always "contains" itself for marking purposes
func (f *Fork) SetContainsFork(bool)   {}
