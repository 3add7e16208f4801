package flex

import "testing"

func TestNodeStyle_EnumProperties(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()
	n := l.CreateNode()

	type tc struct {
		set  func()
		get  func() any
		want any
	}

	tests := map[string]tc{
		"direction": {
			set:  func() { n.SetDirection(DirectionRTL) },
			get:  func() any { return n.Direction() },
			want: DirectionRTL,
		},
		"flex direction": {
			set:  func() { n.SetFlexDirection(FlexDirectionRowReverse) },
			get:  func() any { return n.FlexDirection() },
			want: FlexDirectionRowReverse,
		},
		"justify content": {
			set:  func() { n.SetJustifyContent(JustifySpaceEvenly) },
			get:  func() any { return n.JustifyContent() },
			want: JustifySpaceEvenly,
		},
		"align content": {
			set:  func() { n.SetAlignContent(AlignSpaceBetween) },
			get:  func() any { return n.AlignContent() },
			want: AlignSpaceBetween,
		},
		"align items": {
			set:  func() { n.SetAlignItems(AlignCenter) },
			get:  func() any { return n.AlignItems() },
			want: AlignCenter,
		},
		"align self": {
			set:  func() { n.SetAlignSelf(AlignFlexEnd) },
			get:  func() any { return n.AlignSelf() },
			want: AlignFlexEnd,
		},
		"position type": {
			set:  func() { n.SetPositionType(PositionAbsolute) },
			get:  func() any { return n.PositionType() },
			want: PositionAbsolute,
		},
		"flex wrap": {
			set:  func() { n.SetFlexWrap(WrapWrap) },
			get:  func() any { return n.FlexWrap() },
			want: WrapWrap,
		},
		"overflow": {
			set:  func() { n.SetOverflow(OverflowHidden) },
			get:  func() any { return n.Overflow() },
			want: OverflowHidden,
		},
		"display": {
			set:  func() { n.SetDisplay(DisplayNone) },
			get:  func() any { return n.Display() },
			want: DisplayNone,
		},
		"box sizing": {
			set:  func() { n.SetBoxSizing(BoxSizingContentBox) },
			get:  func() any { return n.BoxSizing() },
			want: BoxSizingContentBox,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.set()
			if got := tt.get(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeStyle_FloatProperties(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()
	n := l.CreateNode()

	n.SetFlex(2)
	if got := n.Flex(); got != 2 {
		t.Errorf("Flex = %v, want 2", got)
	}
	n.SetFlexGrow(1.5)
	if got := n.FlexGrow(); got != 1.5 {
		t.Errorf("FlexGrow = %v, want 1.5", got)
	}
	n.SetFlexShrink(0.5)
	if got := n.FlexShrink(); got != 0.5 {
		t.Errorf("FlexShrink = %v, want 0.5", got)
	}
	n.SetAspectRatio(1.78)
	if got := n.AspectRatio(); got != 1.78 {
		t.Errorf("AspectRatio = %v, want 1.78", got)
	}
}

func TestNodeStyle_DimensionProperties(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()
	n := l.CreateNode()

	type tc struct {
		set  func()
		get  func() Value
		want Value
	}

	tests := map[string]tc{
		"width point":          {set: func() { n.SetWidth(10) }, get: n.Width, want: Point(10)},
		"width percent":        {set: func() { n.SetWidthPercent(50) }, get: n.Width, want: Percent(50)},
		"width auto":           {set: n.SetWidthAuto, get: n.Width, want: Auto()},
		"height point":         {set: func() { n.SetHeight(20) }, get: n.Height, want: Point(20)},
		"height percent":       {set: func() { n.SetHeightPercent(25) }, get: n.Height, want: Percent(25)},
		"height auto":          {set: n.SetHeightAuto, get: n.Height, want: Auto()},
		"min width point":      {set: func() { n.SetMinWidth(5) }, get: n.MinWidth, want: Point(5)},
		"min width percent":    {set: func() { n.SetMinWidthPercent(10) }, get: n.MinWidth, want: Percent(10)},
		"min height point":     {set: func() { n.SetMinHeight(5) }, get: n.MinHeight, want: Point(5)},
		"min height percent":   {set: func() { n.SetMinHeightPercent(10) }, get: n.MinHeight, want: Percent(10)},
		"max width point":      {set: func() { n.SetMaxWidth(500) }, get: n.MaxWidth, want: Point(500)},
		"max width percent":    {set: func() { n.SetMaxWidthPercent(90) }, get: n.MaxWidth, want: Percent(90)},
		"max height point":     {set: func() { n.SetMaxHeight(500) }, get: n.MaxHeight, want: Point(500)},
		"max height percent":   {set: func() { n.SetMaxHeightPercent(90) }, get: n.MaxHeight, want: Percent(90)},
		"flex basis point":     {set: func() { n.SetFlexBasis(40) }, get: n.FlexBasis, want: Point(40)},
		"flex basis percent":   {set: func() { n.SetFlexBasisPercent(30) }, get: n.FlexBasis, want: Percent(30)},
		"flex basis auto":      {set: n.SetFlexBasisAuto, get: n.FlexBasis, want: Auto()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.set()
			if got := tt.get(); !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeStyle_EdgeProperties(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()
	n := l.CreateNode()

	n.SetPosition(EdgeLeft, 3)
	if got := n.Position(EdgeLeft); !got.Equal(Point(3)) {
		t.Errorf("Position(left) = %v, want 3pt", got)
	}
	n.SetPositionPercent(EdgeTop, 10)
	if got := n.Position(EdgeTop); !got.Equal(Percent(10)) {
		t.Errorf("Position(top) = %v, want 10%%", got)
	}
	n.SetPositionAuto(EdgeLeft)
	if got := n.Position(EdgeLeft); !got.Equal(Auto()) {
		t.Errorf("Position(left) = %v, want auto", got)
	}

	n.SetMargin(EdgeAll, 4)
	if got := n.Margin(EdgeAll); !got.Equal(Point(4)) {
		t.Errorf("Margin(all) = %v, want 4pt", got)
	}
	n.SetMarginPercent(EdgeHorizontal, 5)
	if got := n.Margin(EdgeHorizontal); !got.Equal(Percent(5)) {
		t.Errorf("Margin(horizontal) = %v, want 5%%", got)
	}
	n.SetMarginAuto(EdgeStart)
	if got := n.Margin(EdgeStart); !got.Equal(Auto()) {
		t.Errorf("Margin(start) = %v, want auto", got)
	}
	// Edges are stored independently; setting one leaves the others unset.
	if got := n.Margin(EdgeTop); !got.Equal(Undefined()) {
		t.Errorf("Margin(top) = %v, want undefined", got)
	}

	n.SetPadding(EdgeVertical, 6)
	if got := n.Padding(EdgeVertical); !got.Equal(Point(6)) {
		t.Errorf("Padding(vertical) = %v, want 6pt", got)
	}
	n.SetPaddingPercent(EdgeEnd, 12)
	if got := n.Padding(EdgeEnd); !got.Equal(Percent(12)) {
		t.Errorf("Padding(end) = %v, want 12%%", got)
	}

	n.SetBorder(EdgeBottom, 2)
	if got := n.Border(EdgeBottom); got != 2 {
		t.Errorf("Border(bottom) = %v, want 2", got)
	}

	n.SetGap(GutterColumn, 8)
	if got := n.Gap(GutterColumn); !got.Equal(Point(8)) {
		t.Errorf("Gap(column) = %v, want 8pt", got)
	}
	n.SetGapPercent(GutterAll, 2)
	if got := n.Gap(GutterAll); !got.Equal(Percent(2)) {
		t.Errorf("Gap(all) = %v, want 2%%", got)
	}
}

func TestNodeStyle_SettersMarkDirty(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	child := l.Root().CreateChild()
	l.Calculate(100, 100, DirectionLTR)
	if child.IsDirty() {
		t.Fatal("child dirty after Calculate")
	}

	child.SetFlexGrow(1)
	if !child.IsDirty() {
		t.Error("SetFlexGrow did not mark the node dirty")
	}
	if !l.Root().IsDirty() {
		t.Error("SetFlexGrow did not propagate dirtiness to the root")
	}
}
