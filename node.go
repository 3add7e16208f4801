package flex

import (
	"iter"

	"github.com/grindlemire/go-flex/internal/engine"
)

// Node is a non-owning handle to one node in a [Layout]'s tree. It is a
// small value type: copying it duplicates the reference, never the node.
// Two Nodes compare equal with == exactly when they refer to the same
// underlying node.
//
// Every operation except Valid and comparison requires a valid handle and
// panics otherwise. A handle becomes invalid when its node is removed from
// the owning Layout or the Layout is closed.
type Node[T any] struct {
	ref    *engine.Node
	layout *Layout[T]
}

// Valid returns true iff this handle refers to a node still owned by its
// Layout. Handles to removed nodes report false, including copies other
// than the one passed to RemoveNode.
func (n Node[T]) Valid() bool {
	if n.ref == nil || n.layout == nil {
		return false
	}
	_, ok := n.layout.nodes[n.ref]
	return ok
}

// mustRef returns the engine node behind a valid handle, panicking
// otherwise. Shared precondition of every forwarding operation.
func (n Node[T]) mustRef(op string) *engine.Node {
	if !n.Valid() {
		panic("flex: " + op + " called on an invalid node handle")
	}
	return n.ref
}

// Context returns a pointer to the context value stored alongside this
// node. The context exists for exactly as long as the node does; every
// handle to the same node sees the same instance.
func (n Node[T]) Context() *T {
	ref := n.mustRef("Context")
	owned, ok := ref.Context().(*ownedNode[T])
	if !ok {
		panic("flex: node context slot does not belong to this layout")
	}
	return &owned.ctx
}

// ChildCount returns the number of children attached to this node.
func (n Node[T]) ChildCount() int {
	return n.mustRef("ChildCount").ChildCount()
}

// Child returns the child at index. If there is no such child the returned
// handle is invalid; that is a checkable result, not an error.
func (n Node[T]) Child(index int) Node[T] {
	return Node[T]{ref: n.mustRef("Child").Child(index), layout: n.layout}
}

// Parent returns this node's parent, or an invalid handle if the node is
// detached or is the tree root.
func (n Node[T]) Parent() Node[T] {
	return Node[T]{ref: n.mustRef("Parent").Parent(), layout: n.layout}
}

// InsertChild appends child to this node's child list. Both handles must be
// valid and belong to the same Layout, and the child must not already have
// a parent; detach it first with RemoveChild.
func (n Node[T]) InsertChild(child Node[T]) {
	n.InsertChildAt(child, n.ChildCount())
}

// InsertChildAt inserts child at the given index in this node's child list.
// Same preconditions as InsertChild; index must be within [0, ChildCount].
func (n Node[T]) InsertChildAt(child Node[T], index int) {
	ref := n.mustRef("InsertChildAt")
	if !child.Valid() {
		panic("flex: InsertChildAt called with an invalid child handle")
	}
	if child.layout != n.layout {
		panic("flex: InsertChildAt: child belongs to a different layout")
	}
	ref.InsertChild(child.ref, index)
}

// RemoveChild detaches child from this node. The child is not destroyed:
// it stays owned by the Layout, keeps its context, and can be reinserted
// anywhere in the tree. Detaching a node that is not a child of this node
// (or an invalid handle) is a no-op.
func (n Node[T]) RemoveChild(child Node[T]) {
	ref := n.mustRef("RemoveChild")
	if !child.Valid() {
		return
	}
	ref.RemoveChild(child.ref)
}

// Children returns a lazy sequence over this node's current children, in
// insertion order. Each step re-queries the live structure, so the
// sequence is restartable and always reflects the tree as it is now.
// Mutating the child list while iterating is unsupported.
func (n Node[T]) Children() iter.Seq[Node[T]] {
	ref := n.mustRef("Children")
	return func(yield func(Node[T]) bool) {
		for i := 0; i < ref.ChildCount(); i++ {
			child := ref.Child(i)
			if child == nil {
				return
			}
			if !yield(Node[T]{ref: child, layout: n.layout}) {
				return
			}
		}
	}
}

// CreateChild creates a new node with a zero-value context in this node's
// Layout and appends it as the last child of this node.
func (n Node[T]) CreateChild() Node[T] {
	var ctx T
	return n.CreateChildWith(ctx)
}

// CreateChildWith is CreateChild with an explicit context value.
func (n Node[T]) CreateChildWith(ctx T) Node[T] {
	n.mustRef("CreateChildWith")
	child := n.layout.CreateNodeWith(ctx)
	n.InsertChild(child)
	return child
}

// CalculateLayout computes the layout of the subtree rooted at this node
// within the given available space. Any node can be a calculation root,
// not just the Layout's root.
func (n Node[T]) CalculateLayout(width, height float32, direction Direction) {
	engine.CalculateLayout(n.mustRef("CalculateLayout"), width, height, direction)
}

// Reset returns the node to its freshly created state and zeroes its
// context. The node must be detached and childless.
func (n Node[T]) Reset() {
	ref := n.mustRef("Reset")
	ref.Reset()
	// Reset clears the engine context slot; relink it.
	owned := n.layout.nodes[ref]
	var zero T
	owned.ctx = zero
	ref.SetContext(owned)
}

// CopyStyle copies another node's style onto this node.
func (n Node[T]) CopyStyle(src Node[T]) {
	n.mustRef("CopyStyle").CopyStyle(src.mustRef("CopyStyle"))
}

// NodeType returns the node's type (default or text).
func (n Node[T]) NodeType() NodeType {
	return n.mustRef("NodeType").NodeType()
}

// SetNodeType sets the node's type (default or text).
func (n Node[T]) SetNodeType(nodeType NodeType) {
	n.mustRef("SetNodeType").SetNodeType(nodeType)
}
