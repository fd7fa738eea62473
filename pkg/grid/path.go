// pkg/grid/path.go
package grid

// Path — упорядоченный маршрут из клеток с курсором обхода.
// После вычисления маршрут неизменяем, двигается только курсор.
// Пустой Path (size 0) — валидный маркер "маршрут неизвестен";
// NodeAt и TargetPosition на пустом пути — нарушение предусловия,
// вызывающий обязан сперва проверить Size() > 0.
type Path struct {
	route        []Node
	currentIndex int
}

// EmptyPath возвращает путь без маршрута.
func EmptyPath() *Path {
	return &Path{}
}

func newPath(route []Node) *Path {
	return &Path{route: route}
}

// NodeAt возвращает клетку маршрута по индексу.
func (p *Path) NodeAt(index int) Node {
	return p.route[index]
}

// Size — количество клеток маршрута.
func (p *Path) Size() int {
	return len(p.route)
}

// TargetPosition — мировые координаты клетки под курсором.
func (p *Path) TargetPosition() (float64, float64) {
	return NodeToWorld(p.route[p.currentIndex])
}

// AdvanceCursor сдвигает курсор на шаг вперёд; на последнем индексе — no-op.
func (p *Path) AdvanceCursor() {
	if p.currentIndex < len(p.route)-1 {
		p.currentIndex++
	}
}

// CursorIndex — текущий индекс курсора.
func (p *Path) CursorIndex() int {
	return p.currentIndex
}

// Nodes возвращает копию маршрута: изменение копии не трогает оригинал.
func (p *Path) Nodes() []Node {
	out := make([]Node, len(p.route))
	copy(out, p.route)
	return out
}
