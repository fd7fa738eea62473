// pkg/grid/path_test.go
package grid

import "testing"

func TestPathCursor(t *testing.T) {
	p := newPath([]Node{NewNode(0, 0), NewNode(1, 0), NewNode(2, 0)})

	if p.CursorIndex() != 0 {
		t.Fatalf("fresh cursor at %d, want 0", p.CursorIndex())
	}
	x, y := p.TargetPosition()
	if x != 0 || y != 0 {
		t.Fatalf("target (%v, %v), want (0, 0)", x, y)
	}

	p.AdvanceCursor()
	p.AdvanceCursor()
	if p.CursorIndex() != 2 {
		t.Fatalf("cursor at %d after two advances, want 2", p.CursorIndex())
	}

	// На последней клетке курсор стоит.
	p.AdvanceCursor()
	if p.CursorIndex() != 2 {
		t.Fatalf("cursor moved past the last node to %d", p.CursorIndex())
	}
	x, y = p.TargetPosition()
	if x != 2*SlotSize || y != 0 {
		t.Fatalf("final target (%v, %v), want (%d, 0)", x, y, 2*SlotSize)
	}
}

func TestEmptyPath(t *testing.T) {
	p := EmptyPath()
	if p.Size() != 0 {
		t.Fatalf("empty path has size %d", p.Size())
	}
	p.AdvanceCursor()
	if p.CursorIndex() != 0 {
		t.Fatal("advancing an empty path must be a no-op")
	}
}

func TestPathNodesIsACopy(t *testing.T) {
	p := newPath([]Node{NewNode(3, 3), NewNode(3, 4)})
	nodes := p.Nodes()
	nodes[0] = NewNode(9, 9)
	if p.NodeAt(0) != NewNode(3, 3) {
		t.Fatal("mutating the copy changed the route")
	}
}
