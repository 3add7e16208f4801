package engine

// Layout holds a node's computed geometry after layout calculation.
//
// Left and Top are relative to the parent's border box (absolute for the
// calculation root). Right and Bottom are trailing offsets: the distance
// from the node's right/bottom edge to the parent's matching edge. Margin,
// Border, and Padding are the resolved per-edge actuals, indexed by the
// physical edges EdgeLeft through EdgeBottom.
type Layout struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
	Width  float32
	Height float32

	Margin  [4]float32
	Border  [4]float32
	Padding [4]float32

	Direction   Direction
	HadOverflow bool
}
