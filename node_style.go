package flex

import "github.com/grindlemire/go-flex/internal/engine"

// Style property forwarding. Every setter and getter is a direct forward
// to the engine with a validity precondition; no state lives in the handle.
// Setters mark the node dirty so the next CalculateLayout recomputes it.

// setStyle applies one mutation to the node's style and marks it dirty.
func (n Node[T]) setStyle(op string, mutate func(*engine.Style)) {
	ref := n.mustRef(op)
	st := ref.Style()
	mutate(&st)
	ref.SetStyle(st)
}

// SetDirection sets the reading direction of the subtree.
func (n Node[T]) SetDirection(direction Direction) {
	n.setStyle("SetDirection", func(s *engine.Style) { s.Direction = direction })
}

// Direction returns the reading direction the node is set to.
func (n Node[T]) Direction() Direction {
	return n.mustRef("Direction").Style().Direction
}

// SetFlexDirection sets the main axis for laying out children.
func (n Node[T]) SetFlexDirection(flexDirection FlexDirection) {
	n.setStyle("SetFlexDirection", func(s *engine.Style) { s.FlexDirection = flexDirection })
}

// FlexDirection returns the currently set flex direction.
func (n Node[T]) FlexDirection() FlexDirection {
	return n.mustRef("FlexDirection").Style().FlexDirection
}

// SetJustifyContent sets the alignment of children along the main axis.
func (n Node[T]) SetJustifyContent(justify Justify) {
	n.setStyle("SetJustifyContent", func(s *engine.Style) { s.JustifyContent = justify })
}

// JustifyContent returns the main-axis alignment of children.
func (n Node[T]) JustifyContent() Justify {
	return n.mustRef("JustifyContent").Style().JustifyContent
}

// SetAlignContent sets how lines of content are distributed on the cross axis.
func (n Node[T]) SetAlignContent(align Align) {
	n.setStyle("SetAlignContent", func(s *engine.Style) { s.AlignContent = align })
}

// AlignContent returns the content alignment setting.
func (n Node[T]) AlignContent() Align {
	return n.mustRef("AlignContent").Style().AlignContent
}

// SetAlignItems sets how children are aligned along the cross axis.
func (n Node[T]) SetAlignItems(align Align) {
	n.setStyle("SetAlignItems", func(s *engine.Style) { s.AlignItems = align })
}

// AlignItems returns the cross-axis alignment for children.
func (n Node[T]) AlignItems() Align {
	return n.mustRef("AlignItems").Style().AlignItems
}

// SetAlignSelf overrides the parent's align-items for this node.
func (n Node[T]) SetAlignSelf(align Align) {
	n.setStyle("SetAlignSelf", func(s *engine.Style) { s.AlignSelf = align })
}

// AlignSelf returns this node's align-self value (AlignAuto inherits).
func (n Node[T]) AlignSelf() Align {
	return n.mustRef("AlignSelf").Style().AlignSelf
}

// SetPositionType sets how the node is positioned within its parent.
func (n Node[T]) SetPositionType(positionType PositionType) {
	n.setStyle("SetPositionType", func(s *engine.Style) { s.PositionType = positionType })
}

// PositionType returns the node's position type.
func (n Node[T]) PositionType() PositionType {
	return n.mustRef("PositionType").Style().PositionType
}

// SetFlexWrap sets the node's wrap mode.
func (n Node[T]) SetFlexWrap(wrap Wrap) {
	n.setStyle("SetFlexWrap", func(s *engine.Style) { s.FlexWrap = wrap })
}

// FlexWrap returns the node's wrap mode.
func (n Node[T]) FlexWrap() Wrap {
	return n.mustRef("FlexWrap").Style().FlexWrap
}

// SetOverflow sets the node's overflow mode.
func (n Node[T]) SetOverflow(overflow Overflow) {
	n.setStyle("SetOverflow", func(s *engine.Style) { s.Overflow = overflow })
}

// Overflow returns the node's overflow mode.
func (n Node[T]) Overflow() Overflow {
	return n.mustRef("Overflow").Style().Overflow
}

// SetDisplay sets whether the node participates in layout.
func (n Node[T]) SetDisplay(display Display) {
	n.setStyle("SetDisplay", func(s *engine.Style) { s.Display = display })
}

// Display returns the node's display mode.
func (n Node[T]) Display() Display {
	return n.mustRef("Display").Style().Display
}

// SetFlex sets the flex shorthand: positive values grow, negative shrink.
func (n Node[T]) SetFlex(flex float32) {
	n.setStyle("SetFlex", func(s *engine.Style) { s.Flex = flex })
}

// Flex returns the flex shorthand value (NaN when unset).
func (n Node[T]) Flex() float32 {
	return n.mustRef("Flex").Style().Flex
}

// SetFlexGrow sets how much the node grows relative to siblings.
func (n Node[T]) SetFlexGrow(flexGrow float32) {
	n.setStyle("SetFlexGrow", func(s *engine.Style) { s.FlexGrow = flexGrow })
}

// FlexGrow returns the node's grow factor (NaN when unset).
func (n Node[T]) FlexGrow() float32 {
	return n.mustRef("FlexGrow").Style().FlexGrow
}

// SetFlexShrink sets how much the node shrinks relative to siblings.
func (n Node[T]) SetFlexShrink(flexShrink float32) {
	n.setStyle("SetFlexShrink", func(s *engine.Style) { s.FlexShrink = flexShrink })
}

// FlexShrink returns the node's shrink factor (NaN when unset).
func (n Node[T]) FlexShrink() float32 {
	return n.mustRef("FlexShrink").Style().FlexShrink
}

// SetFlexBasis sets the flex basis in points.
func (n Node[T]) SetFlexBasis(flexBasis float32) {
	n.setStyle("SetFlexBasis", func(s *engine.Style) { s.FlexBasis = engine.Point(flexBasis) })
}

// SetFlexBasisPercent sets the flex basis as a percentage of the main axis.
func (n Node[T]) SetFlexBasisPercent(flexBasis float32) {
	n.setStyle("SetFlexBasisPercent", func(s *engine.Style) { s.FlexBasis = engine.Percent(flexBasis) })
}

// SetFlexBasisAuto sets the flex basis to auto.
func (n Node[T]) SetFlexBasisAuto() {
	n.setStyle("SetFlexBasisAuto", func(s *engine.Style) { s.FlexBasis = engine.Auto() })
}

// FlexBasis returns the node's flex basis.
func (n Node[T]) FlexBasis() Value {
	return n.mustRef("FlexBasis").Style().FlexBasis
}

// SetPosition sets a position inset for an edge, in points.
func (n Node[T]) SetPosition(edge Edge, position float32) {
	n.setStyle("SetPosition", func(s *engine.Style) { s.Position[edge] = engine.Point(position) })
}

// SetPositionPercent sets a position inset for an edge as a percentage.
func (n Node[T]) SetPositionPercent(edge Edge, position float32) {
	n.setStyle("SetPositionPercent", func(s *engine.Style) { s.Position[edge] = engine.Percent(position) })
}

// SetPositionAuto sets an edge's position inset to auto.
func (n Node[T]) SetPositionAuto(edge Edge) {
	n.setStyle("SetPositionAuto", func(s *engine.Style) { s.Position[edge] = engine.Auto() })
}

// Position returns the position inset set for an edge.
func (n Node[T]) Position(edge Edge) Value {
	return n.mustRef("Position").Style().Position[edge]
}

// SetMargin sets the margin for an edge, in points.
func (n Node[T]) SetMargin(edge Edge, margin float32) {
	n.setStyle("SetMargin", func(s *engine.Style) { s.Margin[edge] = engine.Point(margin) })
}

// SetMarginPercent sets the margin for an edge as a percentage.
func (n Node[T]) SetMarginPercent(edge Edge, margin float32) {
	n.setStyle("SetMarginPercent", func(s *engine.Style) { s.Margin[edge] = engine.Percent(margin) })
}

// SetMarginAuto sets an edge's margin to auto.
func (n Node[T]) SetMarginAuto(edge Edge) {
	n.setStyle("SetMarginAuto", func(s *engine.Style) { s.Margin[edge] = engine.Auto() })
}

// Margin returns the margin set for an edge.
func (n Node[T]) Margin(edge Edge) Value {
	return n.mustRef("Margin").Style().Margin[edge]
}

// SetPadding sets the padding for an edge, in points.
func (n Node[T]) SetPadding(edge Edge, padding float32) {
	n.setStyle("SetPadding", func(s *engine.Style) { s.Padding[edge] = engine.Point(padding) })
}

// SetPaddingPercent sets the padding for an edge as a percentage.
func (n Node[T]) SetPaddingPercent(edge Edge, padding float32) {
	n.setStyle("SetPaddingPercent", func(s *engine.Style) { s.Padding[edge] = engine.Percent(padding) })
}

// Padding returns the padding set for an edge.
func (n Node[T]) Padding(edge Edge) Value {
	return n.mustRef("Padding").Style().Padding[edge]
}

// SetBorder sets the border width for an edge, in points.
func (n Node[T]) SetBorder(edge Edge, border float32) {
	n.setStyle("SetBorder", func(s *engine.Style) { s.Border[edge] = border })
}

// Border returns the border width set for an edge (NaN when unset).
func (n Node[T]) Border(edge Edge) float32 {
	return n.mustRef("Border").Style().Border[edge]
}

// SetGap sets the gap between children for a gutter, in points.
func (n Node[T]) SetGap(gutter Gutter, gap float32) {
	n.setStyle("SetGap", func(s *engine.Style) { s.Gap[gutter] = engine.Point(gap) })
}

// SetGapPercent sets the gap between children for a gutter as a percentage.
func (n Node[T]) SetGapPercent(gutter Gutter, gap float32) {
	n.setStyle("SetGapPercent", func(s *engine.Style) { s.Gap[gutter] = engine.Percent(gap) })
}

// Gap returns the gap set for a gutter.
func (n Node[T]) Gap(gutter Gutter) Value {
	return n.mustRef("Gap").Style().Gap[gutter]
}

// SetBoxSizing sets whether style dimensions include border and padding.
func (n Node[T]) SetBoxSizing(boxSizing BoxSizing) {
	n.setStyle("SetBoxSizing", func(s *engine.Style) { s.BoxSizing = boxSizing })
}

// BoxSizing returns the node's box-sizing mode.
func (n Node[T]) BoxSizing() BoxSizing {
	return n.mustRef("BoxSizing").Style().BoxSizing
}

// SetWidth sets a fixed width in points.
func (n Node[T]) SetWidth(width float32) {
	n.setStyle("SetWidth", func(s *engine.Style) { s.Width = engine.Point(width) })
}

// SetWidthPercent sets the width as a percentage of the parent's width.
func (n Node[T]) SetWidthPercent(width float32) {
	n.setStyle("SetWidthPercent", func(s *engine.Style) { s.Width = engine.Percent(width) })
}

// SetWidthAuto sets the width to auto.
func (n Node[T]) SetWidthAuto() {
	n.setStyle("SetWidthAuto", func(s *engine.Style) { s.Width = engine.Auto() })
}

// Width returns the width set on the node.
func (n Node[T]) Width() Value {
	return n.mustRef("Width").Style().Width
}

// SetHeight sets a fixed height in points.
func (n Node[T]) SetHeight(height float32) {
	n.setStyle("SetHeight", func(s *engine.Style) { s.Height = engine.Point(height) })
}

// SetHeightPercent sets the height as a percentage of the parent's height.
func (n Node[T]) SetHeightPercent(height float32) {
	n.setStyle("SetHeightPercent", func(s *engine.Style) { s.Height = engine.Percent(height) })
}

// SetHeightAuto sets the height to auto.
func (n Node[T]) SetHeightAuto() {
	n.setStyle("SetHeightAuto", func(s *engine.Style) { s.Height = engine.Auto() })
}

// Height returns the height set on the node.
func (n Node[T]) Height() Value {
	return n.mustRef("Height").Style().Height
}

// SetMinWidth sets the minimum width in points.
func (n Node[T]) SetMinWidth(minWidth float32) {
	n.setStyle("SetMinWidth", func(s *engine.Style) { s.MinWidth = engine.Point(minWidth) })
}

// SetMinWidthPercent sets the minimum width as a percentage.
func (n Node[T]) SetMinWidthPercent(minWidth float32) {
	n.setStyle("SetMinWidthPercent", func(s *engine.Style) { s.MinWidth = engine.Percent(minWidth) })
}

// MinWidth returns the minimum width set on the node.
func (n Node[T]) MinWidth() Value {
	return n.mustRef("MinWidth").Style().MinWidth
}

// SetMinHeight sets the minimum height in points.
func (n Node[T]) SetMinHeight(minHeight float32) {
	n.setStyle("SetMinHeight", func(s *engine.Style) { s.MinHeight = engine.Point(minHeight) })
}

// SetMinHeightPercent sets the minimum height as a percentage.
func (n Node[T]) SetMinHeightPercent(minHeight float32) {
	n.setStyle("SetMinHeightPercent", func(s *engine.Style) { s.MinHeight = engine.Percent(minHeight) })
}

// MinHeight returns the minimum height set on the node.
func (n Node[T]) MinHeight() Value {
	return n.mustRef("MinHeight").Style().MinHeight
}

// SetMaxWidth sets the maximum width in points.
func (n Node[T]) SetMaxWidth(maxWidth float32) {
	n.setStyle("SetMaxWidth", func(s *engine.Style) { s.MaxWidth = engine.Point(maxWidth) })
}

// SetMaxWidthPercent sets the maximum width as a percentage.
func (n Node[T]) SetMaxWidthPercent(maxWidth float32) {
	n.setStyle("SetMaxWidthPercent", func(s *engine.Style) { s.MaxWidth = engine.Percent(maxWidth) })
}

// MaxWidth returns the maximum width set on the node.
func (n Node[T]) MaxWidth() Value {
	return n.mustRef("MaxWidth").Style().MaxWidth
}

// SetMaxHeight sets the maximum height in points.
func (n Node[T]) SetMaxHeight(maxHeight float32) {
	n.setStyle("SetMaxHeight", func(s *engine.Style) { s.MaxHeight = engine.Point(maxHeight) })
}

// SetMaxHeightPercent sets the maximum height as a percentage.
func (n Node[T]) SetMaxHeightPercent(maxHeight float32) {
	n.setStyle("SetMaxHeightPercent", func(s *engine.Style) { s.MaxHeight = engine.Percent(maxHeight) })
}

// MaxHeight returns the maximum height set on the node.
func (n Node[T]) MaxHeight() Value {
	return n.mustRef("MaxHeight").Style().MaxHeight
}

// SetAspectRatio sets the width/height ratio used when one dimension is
// unconstrained.
func (n Node[T]) SetAspectRatio(aspectRatio float32) {
	n.setStyle("SetAspectRatio", func(s *engine.Style) { s.AspectRatio = aspectRatio })
}

// AspectRatio returns the node's aspect ratio (NaN when unset).
func (n Node[T]) AspectRatio() float32 {
	return n.mustRef("AspectRatio").Style().AspectRatio
}
