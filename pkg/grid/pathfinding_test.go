// pkg/grid/pathfinding_test.go
package grid

import (
	"testing"

	"go-grid-defense/internal/types"
)

func newTestField() *Field {
	return NewField(16, 16, NewNode(2, 0), NewNode(14, 15))
}

func TestFindPathOpenField(t *testing.T) {
	f := newTestField()
	path := FindPath(f, f.Start(), f.End())
	if path == nil {
		t.Fatal("expected a path on an open field")
	}

	// На пустом поле длина маршрута равна манхэттенскому расстоянию.
	steps := path.Size() - 1
	if want := ManhattanDistance(f.Start(), f.End()); float64(steps) != want {
		t.Fatalf("path has %d steps, want %v", steps, want)
	}
	if path.NodeAt(0) != f.Start() {
		t.Fatalf("path starts at %v, want %v", path.NodeAt(0), f.Start())
	}
	if path.NodeAt(path.Size()-1) != f.End() {
		t.Fatalf("path ends at %v, want %v", path.NodeAt(path.Size()-1), f.End())
	}

	// Каждый шаг — ровно одна клетка по 4-связности.
	nodes := path.Nodes()
	for i := 1; i < len(nodes); i++ {
		if ManhattanDistance(nodes[i-1], nodes[i]) != 1 {
			t.Fatalf("non-adjacent step %v -> %v", nodes[i-1], nodes[i])
		}
	}
}

func TestFindPathPreconditions(t *testing.T) {
	f := newTestField()

	if FindPath(f, f.Start(), f.Start()) != nil {
		t.Error("start == end must yield no path")
	}
	if FindPath(f, NewNode(-1, 0), f.End()) != nil {
		t.Error("out-of-bounds start must yield no path")
	}
	if FindPath(f, f.Start(), NewNode(16, 16)) != nil {
		t.Error("out-of-bounds end must yield no path")
	}

	f.AddStructure(1, true, f.Start())
	if FindPath(f, f.Start(), f.End()) != nil {
		t.Error("blocked start must yield no path")
	}
	f.ClearSlot(f.Start())

	start := f.Start()
	if FindPathWithBlocked(f, f.Start(), f.End(), &start) != nil {
		t.Error("hypothetical block on the start must yield no path")
	}
	end := f.End()
	if FindPathWithBlocked(f, f.Start(), f.End(), &end) != nil {
		t.Error("hypothetical block on the end must yield no path")
	}
}

func TestFindPathAvoidsBlockedCells(t *testing.T) {
	f := NewField(5, 5, NewNode(0, 2), NewNode(4, 2))
	// Стена поперёк, с единственным проходом на y=4.
	for y := 0; y < 4; y++ {
		f.AddStructure(types.EntityID(y+1), true, NewNode(2, y))
	}

	path := FindPath(f, f.Start(), f.End())
	if path == nil {
		t.Fatal("expected a detour around the wall")
	}
	for _, n := range path.Nodes() {
		if f.IsNodeBlocked(n) {
			t.Fatalf("path runs through blocked node %v", n)
		}
	}
	if steps := path.Size() - 1; steps <= 4 {
		t.Fatalf("detour has %d steps, must be longer than the direct 4", steps)
	}
}

func TestFindPathFullyBlocked(t *testing.T) {
	f := NewField(5, 5, NewNode(0, 0), NewNode(4, 4))
	for x := 0; x < 5; x++ {
		f.AddStructure(types.EntityID(x+1), true, NewNode(x, 2))
	}
	if FindPath(f, f.Start(), f.End()) != nil {
		t.Fatal("a severed field must yield no path")
	}
}

func TestFindPathWithBlockedDoesNotTouchField(t *testing.T) {
	f := NewField(5, 5, NewNode(0, 2), NewNode(4, 2))
	// Узкий коридор: перекрытие единственного прохода рвёт путь.
	for y := 0; y < 5; y++ {
		if y != 2 {
			f.AddStructure(types.EntityID(y+10), true, NewNode(2, y))
		}
	}
	gap := NewNode(2, 2)
	if FindPathWithBlocked(f, f.Start(), f.End(), &gap) != nil {
		t.Fatal("blocking the only corridor must yield no path")
	}
	if f.IsNodeBlocked(gap) {
		t.Fatal("hypothetical block leaked into the field")
	}
	if FindPath(f, f.Start(), f.End()) == nil {
		t.Fatal("field must still be passable without the hypothetical block")
	}
}

func TestFindPathDeterministic(t *testing.T) {
	f := newTestField()
	f.AddStructure(1, true, NewNode(7, 7))
	f.AddStructure(2, true, NewNode(8, 7))

	first := FindPath(f, f.Start(), f.End())
	second := FindPath(f, f.Start(), f.End())
	if first == nil || second == nil {
		t.Fatal("expected paths on a mostly open field")
	}
	a, b := first.Nodes(), second.Nodes()
	if len(a) != len(b) {
		t.Fatalf("path lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("routes diverge at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}
