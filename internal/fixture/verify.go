package fixture

import (
	"bytes"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vlgo-hdl/vlgo/ast"
	"github.com/vlgo-hdl/vlgo/diag"
	"github.com/vlgo-hdl/vlgo/linkjump"
)

// Case is one fixture a VerifyAll caller wants lowered and checked.
type Case struct {
	Name string
	Net  *ast.Netlist
	Opts linkjump.Options
}

// Result is what came out of running one Case.
type Result struct {
	Name  string
	Sink  *diag.Sink
	Sane  bool
	Dump  string
}

// VerifyAll runs linkjump.Run and a sanity check for every case
// concurrently. Each case gets its own builder state (linkjump.Run
// takes no shared mutable input across calls), so the cases are safe
// to parallelize through one errgroup.Group.
func VerifyAll(cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))
	var g errgroup.Group
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			sink := &diag.Sink{}
			linkjump.Run(c.Net, sink, c.Opts)
			var buf bytes.Buffer
			sane := linkjump.SanityCheckTo(c.Net, &buf)
			results[i] = Result{Name: c.Name, Sink: sink, Sane: sane, Dump: buf.String()}
			if !sane {
				return fmt.Errorf("fixture %q: sanity check failed:\n%s", c.Name, buf.String())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
