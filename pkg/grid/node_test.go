// pkg/grid/node_test.go
package grid

import "testing"

func TestSuccessorsOrder(t *testing.T) {
	n := NewNode(5, 5)
	want := [4]Node{{4, 5}, {6, 5}, {5, 6}, {5, 4}}
	if Successors(n) != want {
		t.Fatalf("successor order %v, want west, east, north, south %v", Successors(n), want)
	}
}

func TestManhattanDistance(t *testing.T) {
	if d := ManhattanDistance(NewNode(2, 0), NewNode(14, 15)); d != 27 {
		t.Fatalf("distance %v, want 27", d)
	}
	if d := ManhattanDistance(NewNode(3, 3), NewNode(3, 3)); d != 0 {
		t.Fatalf("distance to self %v, want 0", d)
	}
	if d := ManhattanDistance(NewNode(-2, -2), NewNode(1, 1)); d != 6 {
		t.Fatalf("distance %v, want 6", d)
	}
}

func TestFieldBoundsSemantics(t *testing.T) {
	f := NewField(4, 4, NewNode(0, 0), NewNode(3, 3))
	if !f.IsNodeBlocked(NewNode(-1, 0)) || !f.IsNodeBlocked(NewNode(0, 4)) {
		t.Fatal("out-of-bounds nodes must read as blocked")
	}
	if !f.IsNodeOccupied(NewNode(4, 0)) {
		t.Fatal("out-of-bounds nodes must read as occupied")
	}

	n := NewNode(2, 2)
	f.AddStructure(7, true, n)
	slot, ok := f.SlotAt(n)
	if !ok || !slot.Occupied || !slot.Blocked || slot.Entity != 7 {
		t.Fatalf("slot not updated after placement: %+v", slot)
	}
	f.ClearSlot(n)
	if f.IsNodeOccupied(n) {
		t.Fatal("slot still occupied after clear")
	}
}
