package flex

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/engine"
)

// Layout owns a tree of layout nodes and their per-node context values of
// type T. It is the only owner: node and context memory is created by
// CreateNode, torn down by RemoveNode or Close, and never outlives the
// Layout.
//
// A Layout always has a root node sized to 100%x100%, the entry point for
// Calculate. The root cannot be removed individually; it lives and dies
// with the Layout.
//
// A Layout is not safe for concurrent use; callers serialize externally.
type Layout[T any] struct {
	config *Config
	nodes  map[*engine.Node]*ownedNode[T]
	root   *engine.Node
}

// NewLayout creates a Layout with a fresh default Config.
func NewLayout[T any]() *Layout[T] {
	return NewLayoutWithConfig[T](NewConfig())
}

// NewLayoutWithConfig creates a Layout whose nodes share the given config.
// A nil config is replaced with a fresh default.
func NewLayoutWithConfig[T any](config *Config) *Layout[T] {
	if config == nil {
		config = NewConfig()
	}
	l := &Layout[T]{
		config: config,
		nodes:  make(map[*engine.Node]*ownedNode[T]),
	}
	root := l.CreateNode()
	root.SetWidthPercent(100)
	root.SetHeightPercent(100)
	l.root = root.ref
	return l
}

// CreateNode creates a new node with a zero-value context, owned by this
// Layout, and returns a non-owning handle to it. The node is tracked for
// ownership immediately but is not part of the root's subtree until
// attached (see AddToRoot or Node.InsertChild).
func (l *Layout[T]) CreateNode() Node[T] {
	var ctx T
	return l.CreateNodeWith(ctx)
}

// CreateNodeWith is CreateNode with an explicit context value. The node
// and its context are created together and will be torn down together.
func (l *Layout[T]) CreateNodeWith(ctx T) Node[T] {
	if l.nodes == nil {
		panic("flex: CreateNodeWith called on a closed or uninitialized layout")
	}
	ref := engine.NewNodeWithConfig(l.config)
	owned := &ownedNode[T]{ref: ref, ctx: ctx}
	ref.SetContext(owned)
	l.nodes[ref] = owned
	return Node[T]{ref: ref, layout: l}
}

// RemoveNode destroys a node and its entire subtree: each node is detached,
// its children are destroyed first, and its engine memory and context are
// released together. The handle passed in is nulled so later use is
// detected; all other handles to the removed subtree become invalid too.
//
// The node must belong to this Layout and must not be the root; the root's
// lifetime is tied to the Layout itself.
func (l *Layout[T]) RemoveNode(node *Node[T]) {
	if node == nil || !node.Valid() || node.layout != l {
		panic("flex: RemoveNode called with a node that does not belong to this layout")
	}
	if node.ref == l.root {
		panic("flex: RemoveNode cannot remove the root node")
	}
	removed := l.removeRef(node.ref)
	l.config.Logger().Debug("removed node subtree", zap.Int("nodes", removed))
	node.ref = nil
}

// removeRef tears down ref and its subtree, children before parent, and
// returns the number of nodes released.
func (l *Layout[T]) removeRef(ref *engine.Node) int {
	if parent := ref.Parent(); parent != nil {
		parent.RemoveChild(ref)
	}
	removed := 1
	for ref.ChildCount() > 0 {
		removed += l.removeRef(ref.Child(0))
	}
	if owned := l.nodes[ref]; owned != nil {
		delete(l.nodes, ref)
		owned.free()
	}
	return removed
}

// Root returns a handle to the Layout's permanent root node.
func (l *Layout[T]) Root() Node[T] {
	return Node[T]{ref: l.root, layout: l}
}

// AddToRoot attaches node as the last child of the root. Creating a node
// does not place it in the tree; a subtree only participates in Calculate
// once it is parented (directly or transitively) to the root.
func (l *Layout[T]) AddToRoot(node Node[T]) {
	l.Root().InsertChild(node)
}

// Calculate computes the layout of the whole tree from the root within the
// given available space.
func (l *Layout[T]) Calculate(width, height float32, direction Direction) {
	l.Root().CalculateLayout(width, height, direction)
}

// WalkTree visits every node reachable from the root in pre-order: each
// node before its children, children left to right. The visitor must not
// mutate tree structure during the walk.
func (l *Layout[T]) WalkTree(visitor func(Node[T])) {
	l.walkNode(l.Root(), visitor)
}

func (l *Layout[T]) walkNode(node Node[T], visitor func(Node[T])) {
	visitor(node)
	for child := range node.Children() {
		l.walkNode(child, visitor)
	}
}

// Config returns the configuration shared by this Layout's nodes. Changes
// take effect on the next Calculate.
func (l *Layout[T]) Config() *Config {
	return l.config
}

// Len returns the number of nodes currently owned by this Layout,
// including the root.
func (l *Layout[T]) Len() int {
	return len(l.nodes)
}

// Close tears down the Layout: every owned node, the root included, is
// released along with its context. Order does not matter here since the
// whole tree is being discarded. All outstanding handles become invalid.
// Close is idempotent.
func (l *Layout[T]) Close() {
	if l.nodes == nil {
		return
	}
	released := len(l.nodes)
	for ref, owned := range l.nodes {
		delete(l.nodes, ref)
		owned.free()
	}
	l.nodes = nil
	l.root = nil
	l.config.Logger().Debug("layout closed", zap.Int("nodes", released))
}
