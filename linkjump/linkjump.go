package linkjump

import (
	"fmt"
	"io"
	"os"

	"github.com/vlgo-hdl/vlgo/ast"
	"github.com/vlgo-hdl/vlgo/diag"
)

// Run lowers every module in net in place: it normalizes repeat and
// do-while loops into while loops and rewrites return/break/continue/
// disable into JumpBlock/JumpLabel/JumpGo, diagnosing illegal control
// flow into sink as it goes. Dead modules are skipped entirely.
//
// Run never returns an error: recoverable problems are reported as
// diagnostics and the erroneous node is deleted so the pass can
// surface every independent problem in one run; only an internal
// invariant violation (a bug in this pass, not in the input) panics.
func Run(net *ast.Netlist, sink *diag.Sink, opts Options) {
	b := newBuilder(sink, opts)
	for _, m := range net.Modules {
		if m.Dead {
			continue
		}
		b.lowerModule(m)
	}

	if opts.Mode&SanityCheck != 0 {
		if !sanityCheck(net) {
			panic("linkjump: sanity check failed after Run; see diagnostics above")
		}
	}
	if opts.Mode&DumpAST != 0 {
		w := opts.DumpWriter
		if w == nil {
			w = os.Stdout
		}
		dumpNetlist(w, net)
	}
}

func (b *builder) lowerModule(m *ast.Module) {
	b.currentModule = m
	b.repeatCounter = 0
	for _, fn := range m.FunctionsAndTasks {
		b.currentFunctionOrTask = fn
		b.currentLoop = nil
		b.lowerStmtList(fn.Stmts())
		b.currentFunctionOrTask = nil
	}
	b.currentModule = nil
}

func dumpNetlist(w io.Writer, net *ast.Netlist) {
	for _, m := range net.Modules {
		for _, fn := range m.FunctionsAndTasks {
			fmt.Fprintf(w, "-- %s.%s --\n", m.Name, fn.Name)
			ast.Fprint(w, *fn.Stmts())
		}
	}
}
