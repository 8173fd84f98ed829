package linkjump

import (
	"github.com/vlgo-hdl/vlgo/ast"
	"github.com/vlgo-hdl/vlgo/diag"
)

// targets is a cactus-stack frame recording one enclosing block.
// Disable resolution walks the chain innermost-outward to find the
// named Begin/Fork it transfers out of, and fork detection walks it
// to mark ancestors.
type targets struct {
	tail  *targets
	block ast.Block
}

// labelSlot is the two-slot per-anchor label memoization: slot one is
// the "end of iteration" (continue) label, slot two is the "exit"
// (break/return/disable) label.
type labelSlot struct {
	endOfIter *ast.JumpLabel
	exit      *ast.JumpLabel
}

// builder carries the traversal context of the pass. currentLoop,
// inLoopIncrement, inFork and blockStack are saved by the caller and
// restored on return from the construct that changed them;
// currentModule and currentFunctionOrTask are set per module and per
// function/task and cleared afterward. unrollPending is a latch: a
// pragma sets it and the next loop consumes and clears it.
type builder struct {
	sink *diag.Sink
	opts Options

	currentModule         *ast.Module
	currentFunctionOrTask *ast.FunctionOrTask
	currentLoop           ast.Loop
	inLoopIncrement       bool
	inFork                bool
	unrollPending         ast.UnrollHint

	blockStack *targets

	repeatCounter int

	// labels is the label index, an external side table rather than
	// scratch fields on the nodes themselves, so no cleanup walk is
	// needed at pass end.
	labels map[ast.Node]*labelSlot

	// pendingExitWrap holds a "skip entire loop" (break) label that
	// has already been handed out by findOrInsertLabel but whose
	// owning JumpBlock cannot be placed until the statement list that
	// actually holds the loop's own slot finishes processing it; see
	// applyPendingLoopWrap in stmt.go.
	pendingExitWrap map[ast.Loop]*ast.JumpLabel

	// pendingOwnListWrap holds a label for a Block/FunctionOrTask exit
	// or a Loop's continue target that has been handed out by
	// findOrInsertLabel but whose owning JumpBlock cannot be installed
	// yet: the requester is usually nested one or more lowerStmtList
	// frames below the frame that owns the anchor's statement list (a
	// Return buried inside an If, say), and that owning list is still being
	// lowered left to right, so any earlier sibling hasn't been rewritten
	// yet. The wrap is deferred until lowerStmtList's own call for that
	// exact list (keyed here by the list's address) reaches its end,
	// at which point every sibling's lowered form is known. See
	// applyPendingOwnListWrap in stmt.go.
	pendingOwnListWrap map[*[]ast.Stmt]*ast.JumpLabel
}

func newBuilder(sink *diag.Sink, opts Options) *builder {
	return &builder{
		sink:               sink,
		opts:               opts,
		labels:             make(map[ast.Node]*labelSlot),
		pendingExitWrap:    make(map[ast.Loop]*ast.JumpLabel),
		pendingOwnListWrap: make(map[*[]ast.Stmt]*ast.JumpLabel),
	}
}

func (b *builder) pushBlock(blk ast.Block) {
	b.blockStack = &targets{tail: b.blockStack, block: blk}
}

func (b *builder) popBlock() {
	b.blockStack = b.blockStack.tail
}
