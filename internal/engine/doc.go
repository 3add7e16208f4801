// Package engine implements a flexbox layout engine behind an opaque-handle
// API: callers hold *Node and *Config pointers with no visible fields and
// drive the engine through their methods.
//
// It supports row/column (and reversed) flex directions, justify and align
// modes, grow/shrink distribution, flex basis, margin, border, padding, gap,
// min/max constraints, point/percent/auto values, relative and absolute
// positioning, display:none, RTL layout, and point-scale-factor rounding.
// Measure callbacks, baseline alignment, and multi-line wrapping are not
// implemented; wrap values are stored but lay out single-line.
//
// The engine is single-threaded and trusts its caller: operating on a freed
// node or violating a structural precondition panics. Node memory is managed
// explicitly through Free; the ownership layer above is responsible for
// calling it exactly once per node.
package engine
