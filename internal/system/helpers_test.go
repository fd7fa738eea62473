// internal/system/helpers_test.go
package system

import (
	"os"
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

func TestMain(m *testing.M) {
	defs.LoadDefaults()
	os.Exit(m.Run())
}

func newTestWorld() (*entity.ECS, *grid.Field, *event.Dispatcher) {
	ecs := entity.NewECS()
	field := grid.NewField(
		config.FieldWidth, config.FieldHeight,
		grid.NewNode(config.StartX, config.StartY),
		grid.NewNode(config.EndX, config.EndY),
	)
	return ecs, field, event.NewDispatcher()
}

func testRng() *utils.PRNGService {
	return utils.NewPRNGService(1)
}

// spawnAttacker добавляет атакующего с характеристиками из defs в точку (x, y).
func spawnAttacker(ecs *entity.ECS, t defs.AttackerType, x, y float64) types.EntityID {
	def := defs.AttackerDefs[t]
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Attackers[id] = &component.Attacker{
		Type:          def.Type,
		Health:        def.Health,
		MaxHealth:     def.Health,
		MovementSpeed: def.MovementSpeed,
		SizeW:         def.SizeW,
		SizeH:         def.SizeH,
		Bounty:        def.Bounty,
		OriginalCost:  def.Cost,
		GroupSize:     def.GroupSize,
	}
	return id
}

// spawnTower добавляет боевую постройку с определением из defs.
func spawnTower(ecs *entity.ECS, t defs.BuildingType, node grid.Node) types.EntityID {
	def := defs.BuildingDefs[t]
	id := ecs.NewEntity()
	wx, wy := grid.NodeToWorld(node)
	ecs.Positions[id] = &component.Position{X: wx + grid.SlotSize/2, Y: wy + grid.SlotSize/2}
	ecs.Structures[id] = &component.Structure{Type: t, Blocking: def.Blocking, Node: node}
	ecs.Defenders[id] = &component.Defender{
		AttackInterval: def.AttackInterval,
		Attack:         *def.Attack,
		Range:          def.Range,
	}
	return id
}

// eventRecorder копит все полученные события.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) byType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
