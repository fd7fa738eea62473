// internal/event/types.go
package event

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

const (
	FieldChanged     EventType = "FieldChanged"     // занятость поля изменилась
	StructurePlaced  EventType = "StructurePlaced"  // постройка поставлена
	StructureRemoved EventType = "StructureRemoved" // постройка снесена
	UnitDamaged      EventType = "UnitDamaged"      // юнит получил урон
	UnitKilled       EventType = "UnitKilled"       // юнит убит
	UnitReachedEnd   EventType = "UnitReachedEnd"   // юнит дошёл до финиша
	RoundStarted     EventType = "RoundStarted"
	RoundEnded       EventType = "RoundEnded"
)

// DamageInfo — полезная нагрузка UnitDamaged.
type DamageInfo struct {
	Target types.EntityID
	Amount float64
}

// KillInfo — полезная нагрузка UnitKilled.
type KillInfo struct {
	Target       types.EntityID
	Source       types.EntityID // снаряд, нанёсший смертельный удар
	Tower        types.EntityID // башня-владелец снаряда
	Bounty       int
	OriginalCost int
	GroupSize    int
	DeathX       float64
	DeathY       float64
}

// ReachedEndInfo — полезная нагрузка UnitReachedEnd.
type ReachedEndInfo struct {
	Entity types.EntityID
	Bounty int
}

// StructurePlacedInfo — полезная нагрузка StructurePlaced.
type StructurePlacedInfo struct {
	Entity types.EntityID
	Node   grid.Node
	Type   defs.BuildingType
}

// StructureRemovedInfo — полезная нагрузка StructureRemoved.
type StructureRemovedInfo struct {
	Node grid.Node
	Type defs.BuildingType
}
