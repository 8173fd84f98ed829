package linkjump

import (
	"golang.org/x/mod/semver"

	"github.com/vlgo-hdl/vlgo/ast"
	"github.com/vlgo-hdl/vlgo/diag"
)

// ToolVersion is the version of this pass, compared against any
// TOOL_VERSION pragma encountered. It follows the same "v" + semver convention
// golang.org/x/mod/semver requires of its inputs.
const ToolVersion = "v1.4.0"

// checkToolVersion validates a PragmaToolVersion's recorded minimum
// version against ToolVersion using golang.org/x/mod/semver.
func (b *builder) checkToolVersion(p *ast.Pragma) {
	if !semver.IsValid(p.Arg) {
		b.sink.Warnf(p.Pos(), diag.CodeStaleToolVersionPragma,
			"TOOL_VERSION pragma %q is not a valid version", p.Arg)
		return
	}
	if semver.Compare(ToolVersion, p.Arg) < 0 {
		b.sink.Warnf(p.Pos(), diag.CodeStaleToolVersionPragma,
			"module requires tool version %s, running %s", p.Arg, ToolVersion)
	}
}
