package flex

import "testing"

func TestCalculate_RowSplit(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	l.Root().SetFlexDirection(FlexDirectionRow)
	left := l.Root().CreateChildWith(testCtx{label: "left"})
	right := l.Root().CreateChildWith(testCtx{label: "right"})
	left.SetFlexGrow(1)
	right.SetFlexGrow(1)

	l.Calculate(500, 100, DirectionLTR)

	if got := l.Root().LayoutWidth(); got != 500 {
		t.Fatalf("root width = %v, want 500", got)
	}
	if got := left.LayoutWidth(); got != 250 {
		t.Errorf("left width = %v, want 250", got)
	}
	if got := right.LayoutWidth(); got != 250 {
		t.Errorf("right width = %v, want 250", got)
	}
	if got := right.LayoutLeft(); got != 250 {
		t.Errorf("right left = %v, want 250", got)
	}
	if got := left.LayoutHeight(); got != 100 {
		t.Errorf("left height = %v, want 100", got)
	}
}

func TestCalculate_PercentChild(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	child := l.Root().CreateChild()
	child.SetWidthPercent(50)
	child.SetHeightPercent(50)

	l.Calculate(100, 100, DirectionLTR)

	if got := child.LayoutWidth(); got != 50 {
		t.Errorf("child width = %v, want 50", got)
	}
	if got := child.LayoutHeight(); got != 50 {
		t.Errorf("child height = %v, want 50", got)
	}
	if got := child.LayoutLeft(); got != 0 {
		t.Errorf("child left = %v, want 0", got)
	}
}

func TestCalculate_Readouts(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	l.Root().SetFlexDirection(FlexDirectionRow)
	child := l.Root().CreateChild()
	child.SetWidth(30)
	child.SetHeight(40)
	child.SetMargin(EdgeLeft, 10)
	child.SetPadding(EdgeAll, 5)
	child.SetBorder(EdgeTop, 2)

	l.Calculate(100, 100, DirectionLTR)

	if got := child.LayoutLeft(); got != 10 {
		t.Errorf("LayoutLeft = %v, want 10", got)
	}
	if got := child.LayoutRight(); got != 60 {
		t.Errorf("LayoutRight = %v, want 60", got)
	}
	if got := child.LayoutBottom(); got != 60 {
		t.Errorf("LayoutBottom = %v, want 60", got)
	}
	if got := child.LayoutMargin(EdgeLeft); got != 10 {
		t.Errorf("LayoutMargin(left) = %v, want 10", got)
	}
	if got := child.LayoutPadding(EdgeRight); got != 5 {
		t.Errorf("LayoutPadding(right) = %v, want 5", got)
	}
	if got := child.LayoutBorder(EdgeTop); got != 2 {
		t.Errorf("LayoutBorder(top) = %v, want 2", got)
	}
	if got := child.LayoutDirection(); got != DirectionLTR {
		t.Errorf("LayoutDirection = %v, want LTR", got)
	}
	if child.HadOverflow() {
		t.Error("HadOverflow = true for a fitting child")
	}

	mustPanic(t, "LayoutMargin with shorthand edge", func() {
		child.LayoutMargin(EdgeAll)
	})
	mustPanic(t, "LayoutPadding with logical edge", func() {
		child.LayoutPadding(EdgeStart)
	})
}

func TestCalculate_SubtreeRoot(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	panel := l.CreateNode()
	panel.SetFlexDirection(FlexDirectionRow)
	a := panel.CreateChild()
	b := panel.CreateChild()
	a.SetFlexGrow(1)
	b.SetFlexGrow(1)

	// A detached subtree can be calculated on its own.
	panel.CalculateLayout(200, 50, DirectionLTR)

	if got := panel.LayoutWidth(); got != 200 {
		t.Errorf("panel width = %v, want 200", got)
	}
	if got := b.LayoutLeft(); got != 100 {
		t.Errorf("b left = %v, want 100", got)
	}
}

func TestCalculate_PointScale(t *testing.T) {
	config := NewConfig()
	config.SetPointScaleFactor(2)
	l := NewLayoutWithConfig[testCtx](config)
	defer l.Close()

	l.Root().SetFlexDirection(FlexDirectionRow)
	child := l.Root().CreateChild()
	child.SetWidth(10.3)

	l.Calculate(100, 50, DirectionLTR)

	if got := child.LayoutWidth(); got != 10.5 {
		t.Errorf("child width = %v, want 10.5 (half-point grid)", got)
	}
}

func TestCalculate_MutateAndRecalculate(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	l.Root().SetFlexDirection(FlexDirectionRow)
	a := l.Root().CreateChild()
	b := l.Root().CreateChild()
	a.SetFlexGrow(1)
	b.SetFlexGrow(1)

	l.Calculate(100, 100, DirectionLTR)
	if got := a.LayoutWidth(); got != 50 {
		t.Fatalf("a width = %v, want 50", got)
	}

	// Remove one child; the survivor takes the full axis.
	l.RemoveNode(&b)
	l.Calculate(100, 100, DirectionLTR)
	if got := a.LayoutWidth(); got != 100 {
		t.Errorf("a width after removal = %v, want 100", got)
	}

	// Detach and reattach; geometry follows the structure.
	c := l.Root().CreateChild()
	c.SetFlexGrow(1)
	l.Calculate(100, 100, DirectionLTR)
	if got := a.LayoutWidth(); got != 50 {
		t.Errorf("a width with new sibling = %v, want 50", got)
	}
	l.Root().RemoveChild(c)
	l.Calculate(100, 100, DirectionLTR)
	if got := a.LayoutWidth(); got != 100 {
		t.Errorf("a width after detach = %v, want 100", got)
	}
}

func TestWalkTree_GeometryAndContexts(t *testing.T) {
	type widget struct {
		name string
	}
	l := NewLayout[widget]()
	defer l.Close()

	l.Root().SetFlexDirection(FlexDirectionRow)
	sidebar := l.Root().CreateChildWith(widget{name: "sidebar"})
	content := l.Root().CreateChildWith(widget{name: "content"})
	sidebar.SetWidth(100)
	content.SetFlexGrow(1)

	l.Calculate(400, 300, DirectionLTR)

	widths := map[string]float32{}
	l.WalkTree(func(n Node[widget]) {
		widths[n.Context().name] = n.LayoutWidth()
	})

	want := map[string]float32{"": 400, "sidebar": 100, "content": 300}
	for name, w := range want {
		if widths[name] != w {
			t.Errorf("width[%q] = %v, want %v", name, widths[name], w)
		}
	}
}
