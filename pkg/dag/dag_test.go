package dag

import "testing"

func TestRemoveNode_DropsTouchingEdges(t *testing.T) {
	g := New(nil)
	g.AddNode(Node{ID: "a", Row: 1})
	g.AddNode(Node{ID: "b", Row: 0})
	g.AddNode(Node{ID: "c", Row: 0})
	g.AddEdge(Edge{From: "a", To: "b"})
	g.AddEdge(Edge{From: "a", To: "c"})

	g.RemoveNode("b")

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if children := g.Children("a"); len(children) != 1 || children[0] != "c" {
		t.Errorf("Children(a) = %v, want [c]", children)
	}
	if n, ok := g.Node("b"); ok || n != nil {
		t.Error("removed node b still present")
	}
}

func TestReindex_RebuildsRowIndex(t *testing.T) {
	g := New(nil)
	g.AddNode(Node{ID: "a", Row: 0})
	n, _ := g.Node("a")
	n.Row = 5

	g.Reindex()

	if len(g.NodesInRow(0)) != 0 {
		t.Error("stale row-0 index entry survived Reindex")
	}
	if got := g.NodesInRow(5); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("NodesInRow(5) = %v, want [a]", got)
	}
}

func TestIsolated_FindsEdgelessNodes(t *testing.T) {
	g := New(nil)
	g.AddNode(Node{ID: "a"})
	g.AddNode(Node{ID: "b"})
	g.AddNode(Node{ID: "c"})
	g.AddEdge(Edge{From: "a", To: "b"})

	isolated := g.Isolated()
	if len(isolated) != 1 || isolated[0].ID != "c" {
		t.Errorf("Isolated() = %v, want [c]", isolated)
	}
}

func TestHasCycle(t *testing.T) {
	g := New(nil)
	g.AddNode(Node{ID: "a"})
	g.AddNode(Node{ID: "b"})
	g.AddEdge(Edge{From: "a", To: "b"})

	if err := g.HasCycle(); err != nil {
		t.Errorf("HasCycle() = %v, want nil", err)
	}

	g.AddEdge(Edge{From: "b", To: "a"})
	if err := g.HasCycle(); err != ErrGraphHasCycle {
		t.Errorf("HasCycle() = %v, want ErrGraphHasCycle", err)
	}
}

func TestValidate_NonConsecutiveRows(t *testing.T) {
	g := New(nil)
	g.AddNode(Node{ID: "a", Row: 2})
	g.AddNode(Node{ID: "b", Row: 0})
	g.AddEdge(Edge{From: "a", To: "b"})

	if err := g.Validate(); err != ErrNonConsecutiveRows {
		t.Errorf("Validate() = %v, want ErrNonConsecutiveRows", err)
	}
}

func TestIsDummy(t *testing.T) {
	regular := Node{ID: "a", Kind: NodeKindRegular}
	dummy := Node{ID: "b", Kind: NodeKindDummy}

	if regular.IsDummy() {
		t.Error("regular node reported as dummy")
	}
	if !dummy.IsDummy() {
		t.Error("dummy node not reported as dummy")
	}
}
