// The vlink command runs the control-flow-lowering pass (package
// linkjump) over a small set of built-in demonstration netlists and
// reports the resulting diagnostics. There is no HDL parser in this
// repo's scope, so vlink's "files" are named scenarios rather than
// paths on disk; the command exists mainly to exercise the library,
// not to be a general-purpose tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/vlgo-hdl/vlgo/diag"
	"github.com/vlgo-hdl/vlgo/linkjump"
)

var (
	flagDump   = flag.Bool("dump", false, "print the lowered AST of each scenario to stdout")
	flagTrace  = flag.Bool("trace", false, "log each rewrite as it happens")
	flagSanity = flag.Bool("sanity", true, "run SanityCheck after lowering and fail on violation")
	flagJ      = flag.Int("j", runtime.NumCPU(), "run up to N scenarios concurrently")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vlink: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vlink [flags] [scenario ...]\n\nknown scenarios:\n")
		for _, s := range allScenarios {
			fmt.Fprintf(os.Stderr, "  %s\n", s.name)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		for _, s := range allScenarios {
			names = append(names, s.name)
		}
	}

	if err := run(names); err != nil {
		log.Fatal(err)
	}
}

func run(names []string) error {
	var mode linkjump.Mode
	if *flagDump {
		mode |= linkjump.DumpAST
	}
	if *flagTrace {
		mode |= linkjump.TraceRewrites
	}
	if *flagSanity {
		mode |= linkjump.SanityCheck
	}
	opts := linkjump.Options{Mode: mode, Logger: log.Default()}

	var g errgroup.Group
	sem := make(chan struct{}, *flagJ)
	sinks := make([]*diag.Sink, len(names))
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()
			scn, err := lookupScenario(name)
			if err != nil {
				return err
			}
			sink := &diag.Sink{}
			linkjump.Run(scn.build(), sink, opts)
			sinks[i] = sink
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return xerrors.Errorf("vlink: %w", err)
	}

	failed := false
	for i, name := range names {
		for _, d := range sinks[i].All() {
			fmt.Printf("%s: %s\n", name, d)
		}
		if sinks[i].HasErrors() {
			failed = true
		}
	}
	if failed {
		return xerrors.New("vlink: one or more scenarios reported errors")
	}
	return nil
}

func lookupScenario(name string) (scenario, error) {
	for _, s := range allScenarios {
		if s.name == name {
			return s, nil
		}
	}
	return scenario{}, xerrors.Errorf("vlink: unknown scenario %q", name)
}
