package flex

import (
	"testing"

	"github.com/grindlemire/go-flex/internal/engine"
)

// mustPanic runs fn and fails the test if it does not panic.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

type testCtx struct {
	id    int
	label string
}

func TestNewLayout_Root(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	root := l.Root()
	if !root.Valid() {
		t.Fatal("root handle invalid on a fresh layout")
	}
	if got := l.Len(); got != 1 {
		t.Errorf("Len = %d, want 1 (just the root)", got)
	}
	if got := root.Width(); !got.Equal(Percent(100)) {
		t.Errorf("root width = %v, want 100%%", got)
	}
	if got := root.Height(); !got.Equal(Percent(100)) {
		t.Errorf("root height = %v, want 100%%", got)
	}
	if root.Parent().Valid() {
		t.Error("root reports a valid parent")
	}
}

func TestLayoutCreateNode(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	n := l.CreateNode()
	if !n.Valid() {
		t.Fatal("created node invalid")
	}
	if got := l.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	// Creation does not attach.
	if n.Parent().Valid() {
		t.Error("freshly created node has a parent")
	}
	if got := l.Root().ChildCount(); got != 0 {
		t.Errorf("root ChildCount = %d, want 0", got)
	}

	withCtx := l.CreateNodeWith(testCtx{id: 7, label: "panel"})
	if got := withCtx.Context(); got.id != 7 || got.label != "panel" {
		t.Errorf("context = %+v, want {7 panel}", got)
	}
}

func TestLayoutRemoveNode_Subtree(t *testing.T) {
	before := engine.InstanceCount()
	l := NewLayout[testCtx]()

	parent := l.CreateNode()
	l.AddToRoot(parent)
	childA := parent.CreateChild()
	childB := parent.CreateChild()
	grandchild := childA.CreateChild()

	if got := l.Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}

	alias := childA // second handle to a node in the doomed subtree
	l.RemoveNode(&parent)

	if parent.Valid() {
		t.Error("removed handle still valid")
	}
	if alias.Valid() || childB.Valid() || grandchild.Valid() {
		t.Error("handles into removed subtree still valid")
	}
	if got := l.Len(); got != 1 {
		t.Errorf("Len = %d, want 1 after subtree removal", got)
	}
	if got := l.Root().ChildCount(); got != 0 {
		t.Errorf("root ChildCount = %d, want 0", got)
	}

	l.Close()
	if got := engine.InstanceCount(); got != before {
		t.Errorf("InstanceCount = %d, want %d (no leaked nodes)", got, before)
	}
}

func TestLayoutRemoveNode_Detached(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	n := l.CreateNode()
	l.RemoveNode(&n)
	if got := l.Len(); got != 1 {
		t.Errorf("Len = %d, want 1 after removing a detached node", got)
	}
}

func TestLayoutRemoveNode_Panics(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	root := l.Root()
	mustPanic(t, "RemoveNode(root)", func() { l.RemoveNode(&root) })

	mustPanic(t, "RemoveNode(nil)", func() { l.RemoveNode(nil) })

	other := NewLayout[testCtx]()
	defer other.Close()
	foreign := other.CreateNode()
	mustPanic(t, "RemoveNode of foreign node", func() { l.RemoveNode(&foreign) })

	// The layout stays usable after rejecting bad removals.
	n := l.CreateNode()
	l.AddToRoot(n)
	l.Calculate(100, 100, DirectionLTR)
	if got := l.Root().LayoutWidth(); got != 100 {
		t.Errorf("root width = %v, want 100", got)
	}
}

func TestLayoutRemoveNode_StaleHandlePanics(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	n := l.CreateNode()
	stale := n
	l.RemoveNode(&n)

	mustPanic(t, "RemoveNode with stale handle", func() { l.RemoveNode(&stale) })
	mustPanic(t, "Width on stale handle", func() { stale.Width() })
}

func TestLayoutClose(t *testing.T) {
	before := engine.InstanceCount()
	l := NewLayout[testCtx]()

	root := l.Root()
	a := l.CreateNode()
	l.AddToRoot(a)
	b := a.CreateChild()

	l.Close()

	if root.Valid() || a.Valid() || b.Valid() {
		t.Error("handles still valid after Close")
	}
	if got := l.Len(); got != 0 {
		t.Errorf("Len = %d, want 0 after Close", got)
	}
	if got := engine.InstanceCount(); got != before {
		t.Errorf("InstanceCount = %d, want %d after Close", got, before)
	}

	l.Close() // idempotent

	mustPanic(t, "CreateNode after Close", func() { l.CreateNode() })
}

func TestLayoutWalkTree_PreOrder(t *testing.T) {
	l := NewLayout[testCtx]()
	defer l.Close()

	//       root
	//      /    \
	//     a      d
	//    / \
	//   b   c
	a := l.Root().CreateChildWith(testCtx{label: "a"})
	a.CreateChildWith(testCtx{label: "b"})
	a.CreateChildWith(testCtx{label: "c"})
	l.Root().CreateChildWith(testCtx{label: "d"})

	var visited []string
	l.WalkTree(func(n Node[testCtx]) {
		visited = append(visited, n.Context().label)
	})

	want := []string{"", "a", "b", "c", "d"}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestLayoutConfig(t *testing.T) {
	config := NewConfig()
	config.SetPointScaleFactor(2)
	l := NewLayoutWithConfig[testCtx](config)
	defer l.Close()

	if l.Config() != config {
		t.Error("Config() did not return the supplied config")
	}

	// Nil config falls back to a fresh default.
	l2 := NewLayoutWithConfig[testCtx](nil)
	defer l2.Close()
	if l2.Config() == nil {
		t.Fatal("Config() = nil for nil-config layout")
	}
	if got := l2.Config().PointScaleFactor(); got != 1 {
		t.Errorf("default PointScaleFactor = %v, want 1", got)
	}
}
