package engine

import "github.com/chewxy/math32"

// rect is a box in points. x/y are relative to the parent's border box.
type rect struct {
	x, y, w, h float32
}

// CalculateLayout computes the geometry of the tree rooted at root within
// the given available space and stores it on each node, readable through
// Node.Layout. Pass NaN for an available dimension only if the root has a
// definite size on that axis; the engine does not measure content.
//
// ownerDirection seeds direction resolution for roots styled with
// DirectionInherit (resolved to LTR when ownerDirection is also inherit).
func CalculateLayout(root *Node, availableWidth, availableHeight float32, ownerDirection Direction) {
	root.must("CalculateLayout")

	style := &root.style
	dir := resolveDirection(style.Direction, ownerDirection)

	// The root resolves its own size against the available space; children
	// receive theirs from the parent's flex pass.
	width := style.Width.Resolve(availableWidth)
	if math32.IsNaN(width) {
		width = availableWidth
	} else {
		width += boxSizingAdjust(style, true, availableWidth, dir)
	}
	height := style.Height.Resolve(availableHeight)
	if math32.IsNaN(height) {
		height = availableHeight
	} else {
		height += boxSizingAdjust(style, false, availableWidth, dir)
	}
	width = clampSize(width,
		style.MinWidth.Resolve(availableWidth), style.MaxWidth.Resolve(availableWidth))
	height = clampSize(height,
		style.MinHeight.Resolve(availableHeight), style.MaxHeight.Resolve(availableHeight))

	layoutNode(root, rect{x: 0, y: 0, w: width, h: height}, availableWidth, dir)

	if scale := root.config.pointScaleFactor; scale != 0 {
		roundToPointGrid(root, scale, 0, 0)
	}
	setTrailingPositions(root, availableWidth, availableHeight)
}

// layoutNode computes the geometry of n within box, its border box as
// allocated by the parent. ownerWidth is the parent's content width, the
// base for percentage margins and paddings.
func layoutNode(n *Node, box rect, ownerWidth float32, ownerDirection Direction) {
	style := &n.style
	dir := resolveDirection(style.Direction, ownerDirection)
	lay := &n.layout

	lay.Direction = dir
	lay.Left = box.x
	lay.Top = box.y
	lay.Width = box.w
	lay.Height = box.h
	lay.HadOverflow = false

	for e := EdgeLeft; e <= EdgeBottom; e++ {
		lay.Margin[e] = resolveEdgeValue(&style.Margin, e, dir).ResolveOr(ownerWidth, 0)
		lay.Border[e] = math32.Max(definedOr(resolveEdgeFloat(&style.Border, e, dir), 0), 0)
		lay.Padding[e] = math32.Max(resolveEdgeValue(&style.Padding, e, dir).ResolveOr(ownerWidth, 0), 0)
	}

	// Content rect, relative to this node's border box.
	content := rect{
		x: lay.Border[EdgeLeft] + lay.Padding[EdgeLeft],
		y: lay.Border[EdgeTop] + lay.Padding[EdgeTop],
		w: box.w - lay.Border[EdgeLeft] - lay.Padding[EdgeLeft] - lay.Border[EdgeRight] - lay.Padding[EdgeRight],
		h: box.h - lay.Border[EdgeTop] - lay.Padding[EdgeTop] - lay.Border[EdgeBottom] - lay.Padding[EdgeBottom],
	}
	content.w = math32.Max(content.w, 0)
	content.h = math32.Max(content.h, 0)

	layoutFlowChildren(n, content, dir)
	layoutAbsoluteChildren(n, box, dir)

	n.dirty = false
	n.hasNewLayout = true
}

// zeroLayoutRecursive clears the computed geometry of a display:none
// subtree so stale positions cannot leak into callers.
func zeroLayoutRecursive(n *Node, dir Direction) {
	n.layout = Layout{Direction: dir}
	n.dirty = false
	n.hasNewLayout = true
	for _, child := range n.children {
		zeroLayoutRecursive(child, dir)
	}
}

// roundToPointGrid snaps computed geometry onto a 1/scale grid. Rounding is
// done on absolute positions so adjacent edges stay contiguous, then
// converted back to parent-relative values.
func roundToPointGrid(n *Node, scale, absX, absY float32) {
	lay := &n.layout
	left := absX + lay.Left
	top := absY + lay.Top
	right := left + lay.Width
	bottom := top + lay.Height

	rLeft := roundToScale(left, scale)
	rTop := roundToScale(top, scale)
	lay.Left = rLeft - roundToScale(absX, scale)
	lay.Top = rTop - roundToScale(absY, scale)
	lay.Width = roundToScale(right, scale) - rLeft
	lay.Height = roundToScale(bottom, scale) - rTop

	for _, child := range n.children {
		roundToPointGrid(child, scale, left, top)
	}
}

func roundToScale(v, scale float32) float32 {
	if math32.IsNaN(v) {
		return v
	}
	return math32.Floor(v*scale+0.5) / scale
}

// setTrailingPositions fills in Right/Bottom as trailing offsets from the
// owner's far edges, after any rounding has settled positions.
func setTrailingPositions(n *Node, ownerWidth, ownerHeight float32) {
	n.layout.Right = ownerWidth - n.layout.Left - n.layout.Width
	n.layout.Bottom = ownerHeight - n.layout.Top - n.layout.Height
	for _, child := range n.children {
		setTrailingPositions(child, n.layout.Width, n.layout.Height)
	}
}

// clampSize restricts v to [minVal, maxVal], ignoring NaN bounds.
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clampSize(v, minVal, maxVal float32) float32 {
	if !math32.IsNaN(maxVal) && v > maxVal {
		v = maxVal
	}
	if !math32.IsNaN(minVal) && v < minVal {
		v = minVal
	}
	return math32.Max(v, 0)
}

// definedOr returns v, or fallback if v is NaN.
func definedOr(v, fallback float32) float32 {
	if math32.IsNaN(v) {
		return fallback
	}
	return v
}

// boxSizingAdjust returns the border+padding to add to a style dimension
// for content-box nodes, so the engine always works in border-box terms.
func boxSizingAdjust(style *Style, horizontal bool, ownerWidth float32, dir Direction) float32 {
	if style.BoxSizing != BoxSizingContentBox {
		return 0
	}
	var a, b Edge
	if horizontal {
		a, b = EdgeLeft, EdgeRight
	} else {
		a, b = EdgeTop, EdgeBottom
	}
	total := math32.Max(definedOr(resolveEdgeFloat(&style.Border, a, dir), 0), 0) +
		math32.Max(definedOr(resolveEdgeFloat(&style.Border, b, dir), 0), 0) +
		math32.Max(resolveEdgeValue(&style.Padding, a, dir).ResolveOr(ownerWidth, 0), 0) +
		math32.Max(resolveEdgeValue(&style.Padding, b, dir).ResolveOr(ownerWidth, 0), 0)
	return total
}
