// pkg/grid/node.go
package grid

import "fmt"

// Node — целочисленная клетка поля. Сравнение и хеширование по значению.
type Node struct {
	X, Y int
}

func NewNode(x, y int) Node {
	return Node{X: x, Y: y}
}

func (n Node) String() string {
	return fmt.Sprintf("Node ( %d, %d )", n.X, n.Y)
}

// Successors возвращает 4-соседей в фиксированном порядке: запад, восток,
// север, юг. Порядок определяет разрешение ничьих в A* и менять его нельзя.
func Successors(n Node) [4]Node {
	return [4]Node{
		{n.X - 1, n.Y},
		{n.X + 1, n.Y},
		{n.X, n.Y + 1},
		{n.X, n.Y - 1},
	}
}

// AllNeighbors возвращает всех 8 соседей клетки.
func AllNeighbors(n Node) [8]Node {
	return [8]Node{
		{n.X - 1, n.Y},
		{n.X + 1, n.Y},
		{n.X, n.Y + 1},
		{n.X, n.Y - 1},
		{n.X - 1, n.Y - 1},
		{n.X + 1, n.Y + 1},
		{n.X - 1, n.Y + 1},
		{n.X + 1, n.Y - 1},
	}
}

// SelfWithSuccessors возвращает клетку вместе с её 4-соседями.
func SelfWithSuccessors(n Node) [5]Node {
	return [5]Node{
		n,
		{n.X - 1, n.Y},
		{n.X + 1, n.Y},
		{n.X, n.Y + 1},
		{n.X, n.Y - 1},
	}
}

// ManhattanDistance — эвристика A*: |dx| + |dy|.
func ManhattanDistance(a, b Node) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}
