package engine

import "github.com/chewxy/math32"

// Style contains all layout properties for a node. Unset float fields are
// NaN; unset Values have UnitUndefined.
type Style struct {
	// Container properties
	Direction      Direction
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignContent   Align
	AlignItems     Align
	FlexWrap       Wrap
	Overflow       Overflow
	Gap            [GutterCount]Value

	// Item properties
	AlignSelf    Align
	PositionType PositionType
	Display      Display
	Flex         float32
	FlexGrow     float32
	FlexShrink   float32
	FlexBasis    Value
	Position     [EdgeCount]Value

	// Box properties
	Margin    [EdgeCount]Value
	Padding   [EdgeCount]Value
	Border    [EdgeCount]float32
	BoxSizing BoxSizing

	// Sizing
	Width       Value
	Height      Value
	MinWidth    Value
	MinHeight   Value
	MaxWidth    Value
	MaxHeight   Value
	AspectRatio float32
}

// DefaultStyle returns a Style with the engine's default values.
func DefaultStyle() Style {
	s := Style{
		FlexDirection:  FlexDirectionColumn,
		JustifyContent: JustifyFlexStart,
		AlignContent:   AlignFlexStart,
		AlignItems:     AlignStretch,
		AlignSelf:      AlignAuto,
		PositionType:   PositionRelative,
		Flex:           math32.NaN(),
		FlexGrow:       math32.NaN(),
		FlexShrink:     math32.NaN(),
		FlexBasis:      Auto(),
		Width:          Auto(),
		Height:         Auto(),
		MinWidth:       Undefined(),
		MinHeight:      Undefined(),
		MaxWidth:       Undefined(),
		MaxHeight:      Undefined(),
		AspectRatio:    math32.NaN(),
	}
	for i := 0; i < EdgeCount; i++ {
		s.Position[i] = Undefined()
		s.Margin[i] = Undefined()
		s.Padding[i] = Undefined()
		s.Border[i] = math32.NaN()
	}
	for i := 0; i < GutterCount; i++ {
		s.Gap[i] = Undefined()
	}
	return s
}

// webDefaultStyle returns defaults matching web browsers rather than the
// engine's classic defaults: row direction and stretched align-content.
// The web flex-shrink default of 1 is applied at resolve time from the
// node's config.
func webDefaultStyle() Style {
	s := DefaultStyle()
	s.FlexDirection = FlexDirectionRow
	s.AlignContent = AlignStretch
	return s
}

// resolveEdgeValue resolves a physical edge (left through bottom) through
// the shorthand fallback chain: the edge itself, then start/end for
// horizontal edges, then horizontal/vertical, then all.
func resolveEdgeValue(edges *[EdgeCount]Value, edge Edge, dir Direction) Value {
	if v := edges[edge]; !v.IsUndefined() {
		return v
	}
	if edge == EdgeLeft || edge == EdgeRight {
		logical := EdgeStart
		if (edge == EdgeRight) != (dir == DirectionRTL) {
			logical = EdgeEnd
		}
		if v := edges[logical]; !v.IsUndefined() {
			return v
		}
		if v := edges[EdgeHorizontal]; !v.IsUndefined() {
			return v
		}
	} else {
		if v := edges[EdgeVertical]; !v.IsUndefined() {
			return v
		}
	}
	return edges[EdgeAll]
}

// resolveEdgeFloat resolves a physical edge through the same fallback chain
// for plain float edge sets (borders). Returns NaN when nothing is set.
func resolveEdgeFloat(edges *[EdgeCount]float32, edge Edge, dir Direction) float32 {
	if v := edges[edge]; !math32.IsNaN(v) {
		return v
	}
	if edge == EdgeLeft || edge == EdgeRight {
		logical := EdgeStart
		if (edge == EdgeRight) != (dir == DirectionRTL) {
			logical = EdgeEnd
		}
		if v := edges[logical]; !math32.IsNaN(v) {
			return v
		}
		if v := edges[EdgeHorizontal]; !math32.IsNaN(v) {
			return v
		}
	} else {
		if v := edges[EdgeVertical]; !math32.IsNaN(v) {
			return v
		}
	}
	return edges[EdgeAll]
}

// gapValue resolves the gap for a specific gutter, falling back to GutterAll.
func gapValue(s *Style, gutter Gutter) Value {
	if v := s.Gap[gutter]; !v.IsUndefined() {
		return v
	}
	return s.Gap[GutterAll]
}

// resolveDirection maps an inherited direction onto the owner's, defaulting
// to LTR at the root.
func resolveDirection(d, owner Direction) Direction {
	if d != DirectionInherit {
		return d
	}
	if owner == DirectionInherit {
		return DirectionLTR
	}
	return owner
}

// resolveAlign maps align-auto onto the container's align-items.
func resolveAlign(containerItems, self Align) Align {
	if self == AlignAuto {
		return containerItems
	}
	return self
}
