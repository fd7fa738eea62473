// pkg/grid/field.go
package grid

import "go-grid-defense/internal/types"

// SlotSize — размер клетки поля в мировых координатах.
const SlotSize = 64

// Slot хранит состояние занятости одной клетки.
type Slot struct {
	Entity   types.EntityID // 0 — клетка пуста
	Blocked  bool           // мешает ли поиску пути
	Occupied bool           // стоит ли здесь любая постройка
}

// Field — прямоугольное поле из width × height клеток со стартом и финишем.
// Старт и финиш фиксируются при создании и сами по себе никогда не блокируются:
// за это отвечает планировщик, а не поле.
type Field struct {
	slots  []Slot
	width  int
	height int
	start  Node
	end    Node
}

func NewField(width, height int, start, end Node) *Field {
	return &Field{
		slots:  make([]Slot, width*height),
		width:  width,
		height: height,
		start:  start,
		end:    end,
	}
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }
func (f *Field) Start() Node { return f.start }
func (f *Field) End() Node   { return f.end }

// Contains сообщает, лежит ли клетка в границах поля.
func (f *Field) Contains(n Node) bool {
	return n.X >= 0 && n.X < f.width && n.Y >= 0 && n.Y < f.height
}

// AddStructure отражает постройку в слоте клетки.
func (f *Field) AddStructure(entity types.EntityID, blocking bool, n Node) {
	if !f.Contains(n) {
		return
	}
	f.slots[n.Y*f.width+n.X] = Slot{
		Entity:   entity,
		Blocked:  blocking,
		Occupied: true,
	}
}

// ClearSlot освобождает клетку после сноса постройки.
func (f *Field) ClearSlot(n Node) {
	if !f.Contains(n) {
		return
	}
	f.slots[n.Y*f.width+n.X] = Slot{}
}

// SlotAt возвращает состояние клетки. Для клеток вне поля — (Slot{}, false).
func (f *Field) SlotAt(n Node) (Slot, bool) {
	if !f.Contains(n) {
		return Slot{}, false
	}
	return f.slots[n.Y*f.width+n.X], true
}

// IsNodeBlocked: клетки вне поля считаются заблокированными.
func (f *Field) IsNodeBlocked(n Node) bool {
	if !f.Contains(n) {
		return true
	}
	return f.slots[n.Y*f.width+n.X].Blocked
}

// IsNodeOccupied: клетки вне поля считаются занятыми.
func (f *Field) IsNodeOccupied(n Node) bool {
	if !f.Contains(n) {
		return true
	}
	return f.slots[n.Y*f.width+n.X].Occupied
}

// NodeToWorld переводит клетку в мировые координаты её угла.
func NodeToWorld(n Node) (float64, float64) {
	return float64(n.X * SlotSize), float64(n.Y * SlotSize)
}

// WorldToNode переводит мировые координаты в клетку.
func WorldToNode(x, y float64) Node {
	return Node{X: int(x) / SlotSize, Y: int(y) / SlotSize}
}

// StartWorld возвращает мировые координаты старта.
func (f *Field) StartWorld() (float64, float64) {
	return NodeToWorld(f.start)
}

// EndWorld возвращает мировые координаты финиша.
func (f *Field) EndWorld() (float64, float64) {
	return NodeToWorld(f.end)
}
