package engine

import "github.com/chewxy/math32"

// flexItem holds intermediate calculation state for one in-flow child.
// This is stack-allocated per layout call, not stored on nodes.
// mainSize and crossSize are outer sizes: content plus margin on that axis.
type flexItem struct {
	node        *Node
	baseSize    float32
	mainSize    float32
	crossSize   float32
	mainPos     float32
	crossPos    float32
	mainMargin  float32
	crossMargin float32
	margins     [4]float32
	grow        float32
	shrink      float32
}

// layoutFlowChildren arranges the in-flow children of a node within its
// content rect. This implements the core flexbox algorithm: base sizes,
// grow/shrink distribution, min/max clamping, justify, then cross-axis
// alignment, recursing into each child with its final border box.
func layoutFlowChildren(n *Node, content rect, dir Direction) {
	flow := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		if child.style.Display == DisplayNone {
			zeroLayoutRecursive(child, dir)
			continue
		}
		if child.style.PositionType == PositionAbsolute {
			continue
		}
		flow = append(flow, child)
	}
	if len(flow) == 0 {
		return
	}

	style := &n.style
	fd := style.FlexDirection
	isRow := fd == FlexDirectionRow || fd == FlexDirectionRowReverse

	mainSize := content.w
	crossSize := content.h
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}
	widthOwner := content.w
	heightOwner := content.h
	mainOwner := widthOwner
	if !isRow {
		mainOwner = heightOwner
	}

	// Phase 1: base sizes, margins, and flex factors. Base size is the
	// child's resolved main-axis size (flex basis, else the style
	// dimension, else zero) plus its main-axis margin.
	items := make([]flexItem, len(flow))
	var totalFixed, totalGrow, totalShrink float32
	for i, child := range flow {
		item := &items[i]
		item.node = child
		cs := &child.style

		for e := EdgeLeft; e <= EdgeBottom; e++ {
			item.margins[e] = resolveEdgeValue(&cs.Margin, e, dir).ResolveOr(widthOwner, 0)
		}
		if isRow {
			item.mainMargin = item.margins[EdgeLeft] + item.margins[EdgeRight]
			item.crossMargin = item.margins[EdgeTop] + item.margins[EdgeBottom]
		} else {
			item.mainMargin = item.margins[EdgeTop] + item.margins[EdgeBottom]
			item.crossMargin = item.margins[EdgeLeft] + item.margins[EdgeRight]
		}

		base := cs.FlexBasis.Resolve(mainOwner)
		if math32.IsNaN(base) {
			mainValue := cs.Width
			if !isRow {
				mainValue = cs.Height
			}
			base = mainValue.Resolve(mainOwner)
			if !math32.IsNaN(base) {
				base += boxSizingAdjust(cs, isRow, widthOwner, dir)
			}
		}
		item.baseSize = definedOr(base, 0) + item.mainMargin

		item.grow = resolveFlexGrow(cs)
		item.shrink = resolveFlexShrink(child)

		totalFixed += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
	}

	mainGutter := GutterColumn
	if !isRow {
		mainGutter = GutterRow
	}
	gap := math32.Max(gapValue(style, mainGutter).ResolveOr(mainSize, 0), 0)
	totalGap := gap * float32(len(flow)-1)
	freeSpace := mainSize - totalFixed - totalGap

	// Phase 2: distribute free space.
	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := range items {
			items[i].mainSize = items[i].baseSize + freeSpace*items[i].grow/totalGrow
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range items {
			reduction := deficit * items[i].shrink / totalShrink
			items[i].mainSize = math32.Max(items[i].mainMargin, items[i].baseSize-reduction)
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: min/max constraints on the content portion of each item.
	for i, child := range flow {
		cs := &child.style
		minMain, maxMain := cs.MinWidth, cs.MaxWidth
		if !isRow {
			minMain, maxMain = cs.MinHeight, cs.MaxHeight
		}
		contentMain := items[i].mainSize - items[i].mainMargin
		contentMain = clampSize(contentMain, minMain.Resolve(mainOwner), maxMain.Resolve(mainOwner))
		items[i].mainSize = contentMain + items[i].mainMargin
	}

	// Recalculate free space after min/max constraints (needed for justify).
	var totalUsed float32
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap
	if freeSpace < 0 {
		n.layout.HadOverflow = true
	}

	// Phase 4: position along the main axis (justify).
	offset := justifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := justifySpacing(style.JustifyContent, freeSpace, len(items))
	pos := offset
	for i := range items {
		items[i].mainPos = pos
		pos += items[i].mainSize + gap + spacing
	}

	// Phase 5: cross-axis sizing and alignment.
	for i, child := range flow {
		cs := &child.style
		item := &items[i]
		align := resolveAlign(style.AlignItems, cs.AlignSelf)

		crossValue, crossOwner := cs.Height, heightOwner
		minCross, maxCross := cs.MinHeight, cs.MaxHeight
		if !isRow {
			crossValue, crossOwner = cs.Width, widthOwner
			minCross, maxCross = cs.MinWidth, cs.MaxWidth
		}

		availableCross := crossSize - item.crossMargin
		resolved := crossValue.Resolve(crossOwner)
		var contentCross float32
		switch {
		case !math32.IsNaN(resolved):
			contentCross = resolved + boxSizingAdjust(cs, !isRow, widthOwner, dir)
		case align == AlignStretch:
			contentCross = availableCross
		case !math32.IsNaN(cs.AspectRatio):
			contentMain := item.mainSize - item.mainMargin
			if isRow {
				contentCross = contentMain / cs.AspectRatio
			} else {
				contentCross = contentMain * cs.AspectRatio
			}
		default:
			contentCross = availableCross
		}
		contentCross = clampSize(contentCross, minCross.Resolve(crossOwner), maxCross.Resolve(crossOwner))

		item.crossSize = contentCross + item.crossMargin
		item.crossPos = alignOffset(align, crossSize, item.crossSize)
		if item.crossSize > crossSize {
			n.layout.HadOverflow = true
		}
	}

	// Phase 6: convert to border boxes and recurse. Reversed flex
	// directions mirror main positions; an RTL row mirrors once more.
	reverse := fd == FlexDirectionRowReverse || fd == FlexDirectionColumnReverse
	if isRow && dir == DirectionRTL {
		reverse = !reverse
	}
	for i := range items {
		item := &items[i]
		mainPos := item.mainPos
		if reverse {
			mainPos = mainSize - item.mainPos - item.mainSize
		}

		var slot rect
		if isRow {
			slot = rect{
				x: content.x + mainPos,
				y: content.y + item.crossPos,
				w: item.mainSize,
				h: item.crossSize,
			}
		} else {
			slot = rect{
				x: content.x + item.crossPos,
				y: content.y + mainPos,
				w: item.crossSize,
				h: item.mainSize,
			}
		}

		// Apply the child's margin: shrink the slot to get the child's
		// border box. The child does not re-apply margin.
		m := &item.margins
		box := rect{
			x: slot.x + m[EdgeLeft],
			y: slot.y + m[EdgeTop],
			w: math32.Max(slot.w-m[EdgeLeft]-m[EdgeRight], 0),
			h: math32.Max(slot.h-m[EdgeTop]-m[EdgeBottom], 0),
		}

		cs := &item.node.style
		if cs.PositionType == PositionRelative {
			box.x += relativeOffset(&cs.Position, EdgeLeft, EdgeRight, widthOwner, dir)
			box.y += relativeOffset(&cs.Position, EdgeTop, EdgeBottom, heightOwner, dir)
		}

		layoutNode(item.node, box, content.w, dir)
	}
}

// layoutAbsoluteChildren positions absolutely-positioned children against
// the node's padding box. box is the node's own border box.
func layoutAbsoluteChildren(n *Node, box rect, dir Direction) {
	lay := &n.layout
	innerW := math32.Max(box.w-lay.Border[EdgeLeft]-lay.Border[EdgeRight], 0)
	innerH := math32.Max(box.h-lay.Border[EdgeTop]-lay.Border[EdgeBottom], 0)

	for _, child := range n.children {
		cs := &child.style
		if cs.Display == DisplayNone || cs.PositionType != PositionAbsolute {
			continue
		}

		var m [4]float32
		for e := EdgeLeft; e <= EdgeBottom; e++ {
			m[e] = resolveEdgeValue(&cs.Margin, e, dir).ResolveOr(box.w, 0)
		}
		left := resolveEdgeValue(&cs.Position, EdgeLeft, dir).Resolve(innerW)
		right := resolveEdgeValue(&cs.Position, EdgeRight, dir).Resolve(innerW)
		top := resolveEdgeValue(&cs.Position, EdgeTop, dir).Resolve(innerH)
		bottom := resolveEdgeValue(&cs.Position, EdgeBottom, dir).Resolve(innerH)

		width := cs.Width.Resolve(innerW)
		if !math32.IsNaN(width) {
			width += boxSizingAdjust(cs, true, box.w, dir)
		} else if !math32.IsNaN(left) && !math32.IsNaN(right) {
			width = innerW - left - right - m[EdgeLeft] - m[EdgeRight]
		}
		height := cs.Height.Resolve(innerH)
		if !math32.IsNaN(height) {
			height += boxSizingAdjust(cs, false, box.w, dir)
		} else if !math32.IsNaN(top) && !math32.IsNaN(bottom) {
			height = innerH - top - bottom - m[EdgeTop] - m[EdgeBottom]
		}
		if math32.IsNaN(width) && !math32.IsNaN(height) && !math32.IsNaN(cs.AspectRatio) {
			width = height * cs.AspectRatio
		}
		if math32.IsNaN(height) && !math32.IsNaN(width) && !math32.IsNaN(cs.AspectRatio) {
			height = width / cs.AspectRatio
		}
		width = clampSize(definedOr(width, 0), cs.MinWidth.Resolve(innerW), cs.MaxWidth.Resolve(innerW))
		height = clampSize(definedOr(height, 0), cs.MinHeight.Resolve(innerH), cs.MaxHeight.Resolve(innerH))

		var x float32
		switch {
		case !math32.IsNaN(left):
			x = lay.Border[EdgeLeft] + left + m[EdgeLeft]
		case !math32.IsNaN(right):
			x = box.w - lay.Border[EdgeRight] - right - width - m[EdgeRight]
		default:
			x = lay.Border[EdgeLeft] + lay.Padding[EdgeLeft] + m[EdgeLeft]
		}
		var y float32
		switch {
		case !math32.IsNaN(top):
			y = lay.Border[EdgeTop] + top + m[EdgeTop]
		case !math32.IsNaN(bottom):
			y = box.h - lay.Border[EdgeBottom] - bottom - height - m[EdgeBottom]
		default:
			y = lay.Border[EdgeTop] + lay.Padding[EdgeTop] + m[EdgeTop]
		}

		layoutNode(child, rect{x: x, y: y, w: width, h: height}, innerW, dir)
	}
}

// relativeOffset returns the position shift for a relatively-positioned
// node: the leading inset if set, else the negated trailing inset.
func relativeOffset(edges *[EdgeCount]Value, leading, trailing Edge, owner float32, dir Direction) float32 {
	if v := resolveEdgeValue(edges, leading, dir).Resolve(owner); !math32.IsNaN(v) {
		return v
	}
	if v := resolveEdgeValue(edges, trailing, dir).Resolve(owner); !math32.IsNaN(v) {
		return -v
	}
	return 0
}

// resolveFlexGrow resolves the grow factor, honoring the flex shorthand.
func resolveFlexGrow(s *Style) float32 {
	if !math32.IsNaN(s.FlexGrow) {
		return s.FlexGrow
	}
	if !math32.IsNaN(s.Flex) && s.Flex > 0 {
		return s.Flex
	}
	return 0
}

// resolveFlexShrink resolves the shrink factor, honoring the flex shorthand
// and the config's web-defaults setting.
func resolveFlexShrink(n *Node) float32 {
	s := &n.style
	if !math32.IsNaN(s.FlexShrink) {
		return s.FlexShrink
	}
	if !math32.IsNaN(s.Flex) && s.Flex < 0 {
		return -s.Flex
	}
	if n.config.useWebDefaults {
		return 1
	}
	return 0
}

// justifyOffset returns the initial main-axis offset for positioning
// children based on the justify mode and available free space.
func justifyOffset(justify Justify, freeSpace float32, itemCount int) float32 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}
	switch justify {
	case JustifyFlexEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float32(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default: // JustifyFlexStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra main-axis spacing between children
// based on the justify mode and available free space.
func justifySpacing(justify Justify, freeSpace float32, itemCount int) float32 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}
	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float32(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float32(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default:
		return 0
	}
}

// alignOffset returns the cross-axis offset for a child.
func alignOffset(align Align, crossSize, itemSize float32) float32 {
	switch align {
	case AlignFlexEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignFlexStart, AlignStretch, AlignBaseline
		return 0
	}
}
