// internal/component/structure.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/grid"
)

// Structure — постройка, занимающая ровно одну клетку поля.
type Structure struct {
	Type     defs.BuildingType
	Blocking bool
	Node     grid.Node
}

// Defender — боевое поведение постройки. Прикрепляется 1:1 к
// наступательной Structure.
type Defender struct {
	AttackTimer    float64 // накопленное время с последнего выстрела
	AttackInterval float64
	Attack         defs.AttackDef
	Range          float64
	KillCount      int
	PendingAttack  bool // кулдаун сработал, цель ещё не выбрана
}
