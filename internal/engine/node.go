package engine

import "go.uber.org/zap"

// liveNodes counts allocated-but-not-freed nodes. It backs InstanceCount,
// the leak-detection hook used by tests of the ownership layer.
var liveNodes int

// InstanceCount returns the number of live (allocated and not yet freed)
// nodes across the process.
func InstanceCount() int {
	return liveNodes
}

// Node is one element of a layout tree. Callers hold it as an opaque
// handle; all state is reached through methods.
type Node struct {
	config   *Config
	context  any
	style    Style
	layout   Layout
	children []*Node
	parent   *Node
	nodeType NodeType

	dirty        bool
	hasNewLayout bool
	freed        bool
}

// NewNode allocates a node against the process-wide default config.
func NewNode() *Node {
	return NewNodeWithConfig(defaultConfig)
}

// NewNodeWithConfig allocates a node against the given config.
func NewNodeWithConfig(config *Config) *Node {
	if config == nil {
		config = defaultConfig
	}
	style := DefaultStyle()
	if config.useWebDefaults {
		style = webDefaultStyle()
	}
	liveNodes++
	return &Node{
		config: config,
		style:  style,
		dirty:  true, // New nodes need layout
	}
}

// Free releases the node. It detaches the node from its parent, orphans any
// remaining children, and clears the context. Any further use of the node
// panics. Free must be called exactly once.
func (n *Node) Free() {
	n.must("Free")
	if n.parent != nil && !n.parent.freed {
		n.parent.RemoveChild(n)
	}
	for _, child := range n.children {
		if !child.freed {
			child.parent = nil
		}
	}
	n.children = nil
	n.context = nil
	n.freed = true
	liveNodes--
}

// must panics if the node is nil or has been freed. Every operation calls
// it; the engine trusts callers to keep handles alive rather than checking
// recoverable error conditions.
func (n *Node) must(op string) {
	if n == nil {
		panic("engine: " + op + " called on nil node")
	}
	if n.freed {
		n.config.logger.Error("use of freed node", zap.String("op", op))
		panic("engine: " + op + " called on freed node")
	}
}

// Config returns the config this node was created against.
func (n *Node) Config() *Config {
	n.must("Config")
	return n.config
}

// SetConfig reassigns the node's config. Takes effect on the next
// CalculateLayout.
func (n *Node) SetConfig(config *Config) {
	n.must("SetConfig")
	if config == nil {
		config = defaultConfig
	}
	n.config = config
}

// Context returns the opaque caller value attached to the node.
func (n *Node) Context() any {
	n.must("Context")
	return n.context
}

// SetContext attaches an opaque caller value to the node.
func (n *Node) SetContext(context any) {
	n.must("SetContext")
	n.context = context
}

// NodeType returns the node's type.
func (n *Node) NodeType() NodeType {
	n.must("NodeType")
	return n.nodeType
}

// SetNodeType sets the node's type.
func (n *Node) SetNodeType(nodeType NodeType) {
	n.must("SetNodeType")
	n.nodeType = nodeType
}

// Style returns a copy of the node's style.
func (n *Node) Style() Style {
	n.must("Style")
	return n.style
}

// SetStyle replaces the node's style and marks it dirty.
func (n *Node) SetStyle(style Style) {
	n.must("SetStyle")
	n.style = style
	n.MarkDirty()
}

// CopyStyle copies another node's style onto this node.
func (n *Node) CopyStyle(src *Node) {
	n.must("CopyStyle")
	src.must("CopyStyle source")
	n.style = src.style
	n.MarkDirty()
}

// Reset returns the node to its freshly created state: default style, no
// context, no computed layout. The node must have no children and no parent.
func (n *Node) Reset() {
	n.must("Reset")
	if len(n.children) > 0 {
		panic("engine: Reset called on a node with children")
	}
	if n.parent != nil {
		panic("engine: Reset called on a node that still has a parent")
	}
	style := DefaultStyle()
	if n.config.useWebDefaults {
		style = webDefaultStyle()
	}
	n.style = style
	n.layout = Layout{}
	n.context = nil
	n.hasNewLayout = false
	n.dirty = true
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	n.must("ChildCount")
	return len(n.children)
}

// Child returns the child at index, or nil if there is no such child.
func (n *Node) Child(index int) *Node {
	n.must("Child")
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Parent returns the node's parent, or nil if it has none.
func (n *Node) Parent() *Node {
	n.must("Parent")
	return n.parent
}

// InsertChild inserts child at index. The child must not already have a
// parent; detach it first. Index must be within [0, ChildCount].
func (n *Node) InsertChild(child *Node, index int) {
	n.must("InsertChild")
	child.must("InsertChild child")
	if child.parent != nil {
		n.config.logger.Error("cannot insert child: it already has a parent",
			zap.Int("index", index))
		panic("engine: InsertChild: child already has a parent, remove it first")
	}
	if index < 0 || index > len(n.children) {
		panic("engine: InsertChild: index out of range")
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.MarkDirty()
}

// RemoveChild detaches child from this node, preserving the order of the
// remaining children. The child keeps its own state and can be reinserted.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	n.must("RemoveChild")
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	n.must("MarkDirty")
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	n.must("IsDirty")
	return n.dirty
}

// HasNewLayout returns whether the node's geometry was recomputed by the
// last CalculateLayout and has not yet been acknowledged.
func (n *Node) HasNewLayout() bool {
	n.must("HasNewLayout")
	return n.hasNewLayout
}

// SetHasNewLayout acknowledges (or re-arms) the new-layout flag.
func (n *Node) SetHasNewLayout(hasNewLayout bool) {
	n.must("SetHasNewLayout")
	n.hasNewLayout = hasNewLayout
}

// Layout returns a copy of the node's computed geometry from the last
// CalculateLayout.
func (n *Node) Layout() Layout {
	n.must("Layout")
	return n.layout
}
