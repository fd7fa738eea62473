// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// ECS хранит компоненты всех сущностей в картах по идентификатору.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*grid.Path
	Attackers   map[types.EntityID]*component.Attacker
	Structures  map[types.EntityID]*component.Structure
	Defenders   map[types.EntityID]*component.Defender
	Projectiles map[types.EntityID]*component.Projectile
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*grid.Path),
		Attackers:   make(map[types.EntityID]*component.Attacker),
		Structures:  make(map[types.EntityID]*component.Structure),
		Defenders:   make(map[types.EntityID]*component.Defender),
		Projectiles: make(map[types.EntityID]*component.Projectile),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Attackers, id)
	delete(ecs.Structures, id)
	delete(ecs.Defenders, id)
	delete(ecs.Projectiles, id)
}

// SortedAttackerIDs возвращает идентификаторы атакующих по возрастанию.
// Обход карт в Go не детерминирован, а порядок обработки влияет на
// воспроизводимость симуляции.
func (ecs *ECS) SortedAttackerIDs() []types.EntityID {
	return sortedKeys(ecs.Attackers)
}

// SortedDefenderIDs возвращает идентификаторы боевых построек по возрастанию.
func (ecs *ECS) SortedDefenderIDs() []types.EntityID {
	return sortedKeys(ecs.Defenders)
}

// SortedProjectileIDs возвращает идентификаторы снарядов по возрастанию.
func (ecs *ECS) SortedProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

func sortedKeys[T any](m map[types.EntityID]*T) []types.EntityID {
	out := make([]types.EntityID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
