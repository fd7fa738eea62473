// internal/system/movement_test.go
package system

import (
	"testing"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

func TestMovementAcquiresPathAndMoves(t *testing.T) {
	ecs, field, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, field, dispatcher)

	sx, sy := field.StartWorld()
	id := spawnAttacker(ecs, defs.AttackerSpider, sx, sy)

	ms.Update(1.0 / 60)

	path, ok := ecs.Paths[id]
	if !ok || path.Size() == 0 {
		t.Fatal("attacker did not acquire a path")
	}
	pos := ecs.Positions[id]
	if pos.X == sx && pos.Y == sy {
		t.Fatal("attacker did not move")
	}

	// Юнит сближается с финишем на протяжении долгого прогона.
	ex, ey := field.EndWorld()
	before := utils.Distance(pos.X, pos.Y, ex, ey)
	for i := 0; i < 600; i++ {
		ms.Update(1.0 / 60)
	}
	after := utils.Distance(pos.X, pos.Y, ex, ey)
	if after >= before {
		t.Fatalf("attacker is not converging on the end: %v -> %v", before, after)
	}
}

func TestMovementReachedEndRecyclesUnit(t *testing.T) {
	ecs, field, dispatcher := newTestWorld()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.UnitReachedEnd, recorder)
	ms := NewMovementSystem(ecs, field, dispatcher)

	ex, ey := field.EndWorld()
	id := spawnAttacker(ecs, defs.AttackerOrcWarrior, ex, ey-1)
	ecs.Paths[id] = grid.FindPath(field, field.Start(), field.End())

	ms.Update(0.001)

	reached := recorder.byType(event.UnitReachedEnd)
	if len(reached) != 1 {
		t.Fatalf("got %d reached-end events, want 1", len(reached))
	}
	info := reached[0].Data.(event.ReachedEndInfo)
	if info.Entity != id || info.Bounty != 10 {
		t.Fatalf("unexpected payload %+v", info)
	}

	// Юнит не удаляется, а возвращается на старт и ждёт новый маршрут.
	if _, alive := ecs.Attackers[id]; !alive {
		t.Fatal("attacker was removed instead of recycled")
	}
	sx, sy := field.StartWorld()
	pos := ecs.Positions[id]
	if pos.X != sx || pos.Y != sy {
		t.Fatalf("attacker at (%v, %v), want start (%v, %v)", pos.X, pos.Y, sx, sy)
	}
	if _, hasPath := ecs.Paths[id]; hasPath {
		t.Fatal("stale path kept after recycling")
	}
	vel := ecs.Velocities[id]
	if vel.X != 0 || vel.Y != 0 {
		t.Fatal("velocity not cleared after recycling")
	}
}

func TestMovementRepathsOnFieldChange(t *testing.T) {
	ecs, field, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, field, dispatcher)

	sx, sy := field.StartWorld()
	id := spawnAttacker(ecs, defs.AttackerOrcWarrior, sx, sy)
	ms.Update(1.0 / 60)

	old := ecs.Paths[id]
	blocked := old.NodeAt(old.Size() / 2)
	field.AddStructure(types.EntityID(999), true, blocked)
	dispatcher.Dispatch(event.Event{Type: event.FieldChanged})

	fresh, ok := ecs.Paths[id]
	if !ok || fresh == old {
		t.Fatal("path was not replaced after a field change")
	}
	for _, n := range fresh.Nodes() {
		if n == blocked {
			t.Fatalf("new path still crosses the blocked node %v", n)
		}
	}
}

func TestMovementKeepsStalePathWhenSevered(t *testing.T) {
	ecs, field, dispatcher := newTestWorld()
	ms := NewMovementSystem(ecs, field, dispatcher)

	sx, sy := field.StartWorld()
	id := spawnAttacker(ecs, defs.AttackerOrcWarrior, sx, sy)
	ms.Update(1.0 / 60)
	old := ecs.Paths[id]

	// Глухая стена: пути нет вовсе.
	for x := 0; x < config.FieldWidth; x++ {
		field.AddStructure(types.EntityID(100+x), true, grid.NewNode(x, 8))
	}
	dispatcher.Dispatch(event.Event{Type: event.FieldChanged})

	if ecs.Paths[id] != old {
		t.Fatal("stale path must be kept when no replacement exists")
	}
}
