package flex

import "github.com/grindlemire/go-flex/internal/engine"

// ownedNode pairs an engine node with its context value and is responsible
// for releasing the engine node exactly once.
//
// It is deliberately unexported and never leaves its Layout: the only
// references live in Layout.nodes and in the engine node's context slot.
// That confinement is what makes the ownership non-aliasable (the Go
// rendering of a move-only owning handle); callers only ever hold the
// non-owning Node.
type ownedNode[T any] struct {
	ref *engine.Node
	ctx T
}

// free releases the engine node. Idempotent so that teardown paths cannot
// double-release.
func (o *ownedNode[T]) free() {
	if o.ref == nil {
		return
	}
	o.ref.Free()
	o.ref = nil
}
