// pkg/grid/pathfinding.go
package grid

// A* по 4-связной сетке с манхэттенской эвристикой и ценой шага 1.
// Узлы поиска живут в арене и ссылаются на родителя индексом; маршрут
// восстанавливается обратным проходом по индексам.
//
// Открытый список сканируется линейно в поисках минимального f, порядок
// вставки сохраняется: вместе с фиксированным порядком наследников это
// задаёт детерминированное разрешение ничьих.

type searchNode struct {
	node   Node
	parent int32 // индекс родителя в арене, -1 у старта
	g      float64
	f      float64
}

// FindPath ищет маршрут от start к end. nil — пути нет; это штатный
// результат, а не ошибка.
func FindPath(f *Field, start, end Node) *Path {
	return FindPathWithBlocked(f, start, end, nil)
}

// FindPathWithBlocked ищет маршрут, считая клетку blocked гипотетически
// заблокированной. Используется планировщиком для проверок "что если".
func FindPathWithBlocked(f *Field, start, end Node, blocked *Node) *Path {
	if blocked != nil && (*blocked == start || *blocked == end) {
		return nil
	}
	if !f.Contains(start) || !f.Contains(end) {
		return nil
	}
	if f.IsNodeBlocked(start) || f.IsNodeBlocked(end) {
		return nil
	}
	if start == end {
		// Нулевой путь не имеет смысла: сущность уже у цели.
		return nil
	}

	arena := make([]searchNode, 0, f.Width()*f.Height())
	arena = append(arena, searchNode{node: start, parent: -1})
	open := []int32{0}
	closed := make(map[Node]bool)

	for len(open) > 0 {
		minIndex := 0
		minF := arena[open[0]].f
		for i := 1; i < len(open); i++ {
			if arena[open[i]].f < minF {
				minF = arena[open[i]].f
				minIndex = i
			}
		}
		qIdx := open[minIndex]
		open = append(open[:minIndex], open[minIndex+1:]...)
		q := arena[qIdx]

		for _, node := range Successors(q.node) {
			if node == end {
				// Проверка цели при порождении наследника, не при извлечении.
				arena = append(arena, searchNode{node: node, parent: qIdx})
				return reconstructPath(arena, int32(len(arena)-1))
			}
			if blocked != nil && *blocked == node {
				continue
			}
			if !f.Contains(node) {
				continue
			}
			if f.IsNodeBlocked(node) || closed[node] {
				continue
			}
			g := q.g + 1
			successor := searchNode{
				node:   node,
				parent: qIdx,
				g:      g,
				f:      g + ManhattanDistance(node, end),
			}
			arena = append(arena, successor)
			replaceIfBetter(arena, &open, int32(len(arena)-1))
		}
		closed[q.node] = true
	}
	return nil
}

// replaceIfBetter реализует правило открытого списка: существующая запись
// той же клетки со строго меньшим f остаётся, с равным или большим f —
// перезаписывается; иначе кандидат добавляется в конец.
func replaceIfBetter(arena []searchNode, open *[]int32, candidate int32) {
	c := arena[candidate]
	for i, idx := range *open {
		if arena[idx].node == c.node {
			if arena[idx].f < c.f {
				return
			}
			(*open)[i] = candidate
			return
		}
	}
	*open = append(*open, candidate)
}

func reconstructPath(arena []searchNode, destination int32) *Path {
	size := 0
	for i := destination; i != -1; i = arena[i].parent {
		size++
	}
	route := make([]Node, size)
	for i := destination; i != -1; i = arena[i].parent {
		size--
		route[size] = arena[i].node
	}
	return newPath(route)
}
