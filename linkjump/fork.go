package linkjump

// markForkAncestors marks every ancestor in blockStack with
// containsFork = true, stopping at the first ancestor
// already marked so the total marking cost across the whole traversal
// stays O(n) amortized. Called after the Fork itself has been pushed
// onto blockStack, so it starts from the Fork's enclosing frame (the
// Fork's own ContainsFork is defined to always report true and needs
// no marking of its own).
func (b *builder) markForkAncestors() {
	for t := b.blockStack.tail; t != nil; t = t.tail {
		if t.block.ContainsFork() {
			return
		}
		t.block.SetContainsFork(true)
	}
}
