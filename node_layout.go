package flex

import "github.com/grindlemire/go-flex/internal/engine"

// Computed-layout readouts. These report the result of the last
// CalculateLayout; they never trigger a recalculation themselves.

// LayoutLeft returns the node's left offset relative to its parent.
func (n Node[T]) LayoutLeft() float32 {
	return n.mustRef("LayoutLeft").Layout().Left
}

// LayoutTop returns the node's top offset relative to its parent.
func (n Node[T]) LayoutTop() float32 {
	return n.mustRef("LayoutTop").Layout().Top
}

// LayoutRight returns the offset from the node's right edge to its
// parent's right edge.
func (n Node[T]) LayoutRight() float32 {
	return n.mustRef("LayoutRight").Layout().Right
}

// LayoutBottom returns the offset from the node's bottom edge to its
// parent's bottom edge.
func (n Node[T]) LayoutBottom() float32 {
	return n.mustRef("LayoutBottom").Layout().Bottom
}

// LayoutWidth returns the node's computed width.
func (n Node[T]) LayoutWidth() float32 {
	return n.mustRef("LayoutWidth").Layout().Width
}

// LayoutHeight returns the node's computed height.
func (n Node[T]) LayoutHeight() float32 {
	return n.mustRef("LayoutHeight").Layout().Height
}

// LayoutDirection returns the direction the node resolved to during the
// last calculation.
func (n Node[T]) LayoutDirection() Direction {
	return n.mustRef("LayoutDirection").Layout().Direction
}

// mustPhysicalEdge rejects relative edges: computed geometry is stored per
// physical edge, so Start/End and the shorthand edges have no single value
// to report.
func mustPhysicalEdge(op string, edge Edge) Edge {
	if edge > engine.EdgeBottom {
		panic("flex: " + op + " requires a physical edge (left, top, right or bottom)")
	}
	return edge
}

// LayoutMargin returns the computed margin for a physical edge.
func (n Node[T]) LayoutMargin(edge Edge) float32 {
	return n.mustRef("LayoutMargin").Layout().Margin[mustPhysicalEdge("LayoutMargin", edge)]
}

// LayoutBorder returns the computed border width for a physical edge.
func (n Node[T]) LayoutBorder(edge Edge) float32 {
	return n.mustRef("LayoutBorder").Layout().Border[mustPhysicalEdge("LayoutBorder", edge)]
}

// LayoutPadding returns the computed padding for a physical edge.
func (n Node[T]) LayoutPadding(edge Edge) float32 {
	return n.mustRef("LayoutPadding").Layout().Padding[mustPhysicalEdge("LayoutPadding", edge)]
}

// HadOverflow reports whether the last calculation could not fit this
// node's children in the available space.
func (n Node[T]) HadOverflow() bool {
	return n.mustRef("HadOverflow").Layout().HadOverflow
}

// MarkDirty marks this node and its ancestors as needing recalculation.
// Style setters and tree mutations do this automatically; MarkDirty exists
// for external inputs the engine cannot see.
func (n Node[T]) MarkDirty() {
	n.mustRef("MarkDirty").MarkDirty()
}

// IsDirty reports whether the node needs recalculation.
func (n Node[T]) IsDirty() bool {
	return n.mustRef("IsDirty").IsDirty()
}

// HasNewLayout reports whether the node's geometry changed in the last
// calculation and has not yet been acknowledged with SetHasNewLayout.
func (n Node[T]) HasNewLayout() bool {
	return n.mustRef("HasNewLayout").HasNewLayout()
}

// SetHasNewLayout acknowledges (or re-arms) the new-layout flag, typically
// after the caller has consumed the node's geometry.
func (n Node[T]) SetHasNewLayout(hasNewLayout bool) {
	n.mustRef("SetHasNewLayout").SetHasNewLayout(hasNewLayout)
}
