// internal/app/game.go
package app

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// Game holds the main game state and logic.
type Game struct {
	Field            *grid.Field
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Roster           *system.AttackerRoster
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	RoundSystem      *system.RoundSystem
	EconomySystem    *system.EconomySystem
	PlannerSystem    *system.PlannerSystem

	speedMultiplier float64
}

// NewGame initializes a new game instance. Seed 0 means non-deterministic.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	field := grid.NewField(
		config.FieldWidth, config.FieldHeight,
		grid.NewNode(config.StartX, config.StartY),
		grid.NewNode(config.EndX, config.EndY),
	)
	roster := system.NewAttackerRoster()

	g := &Game{
		Field:           field,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Roster:          roster,
		speedMultiplier: 1.0,
	}
	g.RoundSystem = system.NewRoundSystem(ecs, field, dispatcher, rng, roster)
	g.MovementSystem = system.NewMovementSystem(ecs, field, dispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	g.EconomySystem = system.NewEconomySystem(ecs, field, dispatcher)
	g.PlannerSystem = system.NewPlannerSystem(ecs, field, g, rng, g.EconomySystem, dispatcher)
	return g
}

// Update advances the simulation by deltaTime seconds of real time.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	deltaTime *= g.speedMultiplier
	g.ECS.GameTime += deltaTime

	g.RoundSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.EconomySystem.Update(deltaTime)
	g.PlannerSystem.Update(deltaTime)
}

func (g *Game) SetSpeedMultiplier(m float64) {
	g.speedMultiplier = utils.Clamp(m, config.SpeedMultiplierMin, config.SpeedMultiplierMax)
}

func (g *Game) SpeedMultiplier() float64 { return g.speedMultiplier }

// BuyStructure списывает золото и ставит постройку в узел. Возвращает
// false, если не хватает золота, узел вне поля или занят.
func (g *Game) BuyStructure(buildingType defs.BuildingType, node grid.Node) bool {
	def, ok := defs.BuildingDefs[buildingType]
	if !ok {
		return false
	}
	if g.EconomySystem.Defender.Gold < def.Cost {
		return false
	}
	if node.X < 0 || node.Y < 0 || !g.Field.Contains(node) {
		return false
	}
	if g.Field.IsNodeOccupied(node) {
		return false
	}

	g.EconomySystem.Defender.Gold -= def.Cost

	id := g.ECS.NewEntity()
	wx, wy := grid.NodeToWorld(node)
	g.ECS.Positions[id] = &component.Position{
		X: wx + grid.SlotSize/2,
		Y: wy + grid.SlotSize/2,
	}
	g.ECS.Structures[id] = &component.Structure{
		Type:     buildingType,
		Blocking: def.Blocking,
		Node:     node,
	}
	if def.IsOffensive() {
		g.ECS.Defenders[id] = &component.Defender{
			AttackInterval: def.AttackInterval,
			Attack:         *def.Attack,
			Range:          def.Range,
		}
	}
	g.Field.AddStructure(id, def.Blocking, node)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.StructurePlaced,
		Data: event.StructurePlacedInfo{Entity: id, Node: node, Type: buildingType},
	})
	g.EventDispatcher.Dispatch(event.Event{Type: event.FieldChanged})
	return true
}

// RemoveStructure сносит постройку в узле и возвращает половину цены.
func (g *Game) RemoveStructure(node grid.Node) bool {
	slot, ok := g.Field.SlotAt(node)
	if !ok || !slot.Occupied {
		return false
	}
	id := slot.Entity
	structure, ok := g.ECS.Structures[id]
	if !ok {
		return false
	}
	buildingType := structure.Type

	g.Field.ClearSlot(node)
	g.ECS.RemoveEntity(id)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.StructureRemoved,
		Data: event.StructureRemovedInfo{Node: node, Type: buildingType},
	})
	g.EventDispatcher.Dispatch(event.Event{Type: event.FieldChanged})
	return true
}

// QueueAttacker покупает группу атакующих в очередь следующего раунда.
func (g *Game) QueueAttacker(t defs.AttackerType) bool {
	def, ok := g.Roster.Stats(t)
	if !ok {
		return false
	}
	if g.EconomySystem.Attacker.Gold < def.Cost {
		return false
	}
	g.EconomySystem.Attacker.Gold -= def.Cost
	g.RoundSystem.Queue(t)
	return true
}

// BuyUpgrade покупает апгрейд атакующей стороне.
func (g *Game) BuyUpgrade(t defs.AttackerType, u defs.UpgradeType) bool {
	cost, ok := g.Roster.UpgradeCost(t, u)
	if !ok {
		return false
	}
	if g.EconomySystem.Attacker.Gold < cost {
		return false
	}
	if !g.Roster.ApplyUpgrade(t, u) {
		return false
	}
	g.EconomySystem.Attacker.Gold -= cost
	return true
}

// StartRound переводит очередь призыва в бой.
func (g *Game) StartRound() bool {
	return g.RoundSystem.StartRound()
}
