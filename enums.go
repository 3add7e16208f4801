// enums.go re-exports engine types from internal/engine.
// Any changes to internal/engine types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/engine"

// Direction specifies the reading direction of a subtree.
type Direction = engine.Direction

const (
	DirectionInherit = engine.DirectionInherit
	DirectionLTR     = engine.DirectionLTR
	DirectionRTL     = engine.DirectionRTL
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection = engine.FlexDirection

const (
	FlexDirectionColumn        = engine.FlexDirectionColumn
	FlexDirectionColumnReverse = engine.FlexDirectionColumnReverse
	FlexDirectionRow           = engine.FlexDirectionRow
	FlexDirectionRowReverse    = engine.FlexDirectionRowReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = engine.Justify

const (
	JustifyFlexStart    = engine.JustifyFlexStart
	JustifyCenter       = engine.JustifyCenter
	JustifyFlexEnd      = engine.JustifyFlexEnd
	JustifySpaceBetween = engine.JustifySpaceBetween
	JustifySpaceAround  = engine.JustifySpaceAround
	JustifySpaceEvenly  = engine.JustifySpaceEvenly
)

// Align specifies how children are positioned on the cross axis.
type Align = engine.Align

const (
	AlignAuto         = engine.AlignAuto
	AlignFlexStart    = engine.AlignFlexStart
	AlignCenter       = engine.AlignCenter
	AlignFlexEnd      = engine.AlignFlexEnd
	AlignStretch      = engine.AlignStretch
	AlignBaseline     = engine.AlignBaseline
	AlignSpaceBetween = engine.AlignSpaceBetween
	AlignSpaceAround  = engine.AlignSpaceAround
	AlignSpaceEvenly  = engine.AlignSpaceEvenly
)

// PositionType specifies how a node is positioned within its parent.
type PositionType = engine.PositionType

const (
	PositionStatic   = engine.PositionStatic
	PositionRelative = engine.PositionRelative
	PositionAbsolute = engine.PositionAbsolute
)

// Wrap specifies multi-line behavior.
type Wrap = engine.Wrap

const (
	WrapNoWrap  = engine.WrapNoWrap
	WrapWrap    = engine.WrapWrap
	WrapReverse = engine.WrapReverse
)

// Overflow specifies how a node treats content that exceeds its bounds.
type Overflow = engine.Overflow

const (
	OverflowVisible = engine.OverflowVisible
	OverflowHidden  = engine.OverflowHidden
	OverflowScroll  = engine.OverflowScroll
)

// Display specifies whether a node participates in layout.
type Display = engine.Display

const (
	DisplayFlex = engine.DisplayFlex
	DisplayNone = engine.DisplayNone
)

// BoxSizing specifies whether style dimensions include border and padding.
type BoxSizing = engine.BoxSizing

const (
	BoxSizingBorderBox  = engine.BoxSizingBorderBox
	BoxSizingContentBox = engine.BoxSizingContentBox
)

// NodeType distinguishes default container nodes from text nodes.
type NodeType = engine.NodeType

const (
	NodeTypeDefault = engine.NodeTypeDefault
	NodeTypeText    = engine.NodeTypeText
)

// Edge identifies one side of a box.
type Edge = engine.Edge

const (
	EdgeLeft       = engine.EdgeLeft
	EdgeTop        = engine.EdgeTop
	EdgeRight      = engine.EdgeRight
	EdgeBottom     = engine.EdgeBottom
	EdgeStart      = engine.EdgeStart
	EdgeEnd        = engine.EdgeEnd
	EdgeHorizontal = engine.EdgeHorizontal
	EdgeVertical   = engine.EdgeVertical
	EdgeAll        = engine.EdgeAll
)

// Gutter identifies which gaps between children a gap value applies to.
type Gutter = engine.Gutter

const (
	GutterColumn = engine.GutterColumn
	GutterRow    = engine.GutterRow
	GutterAll    = engine.GutterAll
)

// Errata is a bitmask of legacy-compatibility behaviors.
type Errata = engine.Errata

const (
	ErrataNone                            = engine.ErrataNone
	ErrataStretchFlexBasis                = engine.ErrataStretchFlexBasis
	ErrataAbsolutePercentAgainstInnerSize = engine.ErrataAbsolutePercentAgainstInnerSize
	ErrataAll                             = engine.ErrataAll
)

// Unit specifies how a Value is interpreted.
type Unit = engine.Unit

const (
	UnitUndefined = engine.UnitUndefined
	UnitPoint     = engine.UnitPoint
	UnitPercent   = engine.UnitPercent
	UnitAuto      = engine.UnitAuto
)

// Value represents a dimension that can be a point value, a percentage,
// auto, or undefined.
type Value = engine.Value

// Point returns a Value of v absolute points.
func Point(v float32) Value {
	return engine.Point(v)
}

// Percent returns a Value of p percent of the owner's size (0-100 scale).
func Percent(p float32) Value {
	return engine.Percent(p)
}

// Auto returns a Value that is computed from content/flex.
func Auto() Value {
	return engine.Auto()
}

// Undefined returns an unset Value.
func Undefined() Value {
	return engine.Undefined()
}

// Config holds settings shared by all nodes of a Layout: point scale
// factor, compatibility flags, logger, and an opaque context slot.
type Config = engine.Config

// NewConfig returns a Config with a point scale factor of 1 and a no-op
// logger.
func NewConfig() *Config {
	return engine.NewConfig()
}
