package engine

// Direction specifies the reading direction of a subtree.
type Direction uint8

const (
	DirectionInherit Direction = iota // Use the parent's direction
	DirectionLTR                      // Left-to-right
	DirectionRTL                      // Right-to-left
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	FlexDirectionColumn        FlexDirection = iota // Children laid out top-to-bottom (default)
	FlexDirectionColumnReverse                      // Children laid out bottom-to-top
	FlexDirectionRow                                // Children laid out along the reading direction
	FlexDirectionRowReverse                         // Children laid out against the reading direction
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyFlexStart    Justify = iota // Pack at start
	JustifyCenter                      // Center children
	JustifyFlexEnd                     // Pack at end
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignAuto         Align = iota // Inherit the container's align-items
	AlignFlexStart                 // Align to start of cross axis
	AlignCenter                    // Center on cross axis
	AlignFlexEnd                   // Align to end of cross axis
	AlignStretch                   // Stretch to fill cross axis
	AlignBaseline                  // Stored only; laid out as flex-start
	AlignSpaceBetween              // Multi-line content distribution (stored only)
	AlignSpaceAround               // Multi-line content distribution (stored only)
	AlignSpaceEvenly               // Multi-line content distribution (stored only)
)

// PositionType specifies how a node is positioned within its parent.
type PositionType uint8

const (
	PositionStatic   PositionType = iota // In flow, position insets ignored
	PositionRelative                     // In flow, shifted by position insets
	PositionAbsolute                     // Out of flow, positioned against the parent box
)

// Wrap specifies multi-line behavior. Values round-trip but the engine
// lays out single-line.
type Wrap uint8

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapReverse
)

// Overflow specifies how a node treats content that exceeds its bounds.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Display specifies whether a node participates in layout.
type Display uint8

const (
	DisplayFlex Display = iota // Laid out normally
	DisplayNone                // Removed from layout; subtree geometry zeroed
)

// BoxSizing specifies whether style dimensions include border and padding.
type BoxSizing uint8

const (
	BoxSizingBorderBox  BoxSizing = iota // Width/height include border and padding (default)
	BoxSizingContentBox                  // Width/height are the content area only
)

// NodeType distinguishes default container nodes from text nodes.
type NodeType uint8

const (
	NodeTypeDefault NodeType = iota
	NodeTypeText
)

// Edge identifies one side of a box. Physical edges (left through bottom)
// index computed results; the remaining edges are style shorthands resolved
// through the fallback chain edge -> start/end -> horizontal/vertical -> all.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll

	// EdgeCount is the number of addressable edges.
	EdgeCount = int(EdgeAll) + 1
)

// Gutter identifies which gaps between children a gap value applies to.
type Gutter uint8

const (
	GutterColumn Gutter = iota // Gap between columns (main axis of a row)
	GutterRow                  // Gap between rows (main axis of a column)
	GutterAll                  // Both

	// GutterCount is the number of addressable gutters.
	GutterCount = int(GutterAll) + 1
)

// Errata is a bitmask of legacy-compatibility behaviors. The engine stores
// the mask on the config as an opaque compatibility flag set.
type Errata uint32

const (
	ErrataNone                            Errata = 0
	ErrataStretchFlexBasis                Errata = 1 << 0
	ErrataAbsolutePercentAgainstInnerSize Errata = 1 << 1
	ErrataAll                             Errata = ErrataStretchFlexBasis | ErrataAbsolutePercentAgainstInnerSize
)
