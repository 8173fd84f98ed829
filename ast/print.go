package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual dump of stmts to w, one statement
// per line, in the manner of go/ast.Fprint.
func Fprint(w io.Writer, stmts []Stmt) {
	fprint(w, stmts, 0)
}

func fprint(w io.Writer, stmts []Stmt, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range stmts {
		fmt.Fprintf(w, "%s%s\n", indent, describe(s))
		switch n := s.(type) {
		case *Begin:
			fprint(w, n.body, depth+1)
		case *Fork:
			fprint(w, n.body, depth+1)
		case *While:
			fprint(w, n.PreConds, depth+1)
			fprint(w, n.body, depth+1)
			fprint(w, n.Incs, depth+1)
		case *DoWhile:
			fprint(w, n.body, depth+1)
		case *Repeat:
			fprint(w, n.body, depth+1)
		case *Foreach:
			fprint(w, n.body, depth+1)
		case *If:
			fprint(w, n.Then, depth+1)
			if len(n.Else) > 0 {
				fmt.Fprintf(w, "%selse\n", indent)
				fprint(w, n.Else, depth+1)
			}
		case *JumpBlock:
			fprint(w, n.body, depth+1)
		}
	}
}

func describe(s Stmt) string {
	switch n := s.(type) {
	case *Begin:
		if n.label != "" {
			return fmt.Sprintf("begin : %s", n.label)
		}
		return "begin"
	case *Fork:
		if n.label != "" {
			return fmt.Sprintf("fork : %s", n.label)
		}
		return "fork"
	case *While:
		return "while"
	case *DoWhile:
		return "do-while"
	case *Repeat:
		return "repeat"
	case *Foreach:
		return "foreach"
	case *If:
		return "if"
	case *Return:
		return "return"
	case *Break:
		return "break"
	case *Continue:
		return "continue"
	case *Disable:
		return fmt.Sprintf("disable %s", n.Target)
	case *Pragma:
		return "pragma"
	case *JumpBlock:
		return fmt.Sprintf("jumpblock -> %p", n.Labelp)
	case *JumpLabel:
		return fmt.Sprintf("label %p:", n)
	case *JumpGo:
		return fmt.Sprintf("goto %p", n.Target)
	case *Var:
		return fmt.Sprintf("var %s", n.Name)
	case *Assign:
		return "assign"
	case *Opaque:
		return n.Tag
	default:
		return fmt.Sprintf("%T", s)
	}
}
