// internal/system/movement.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// MovementSystem ведёт атакующих по маршруту и перезапрашивает пути
// при изменении поля.
type MovementSystem struct {
	ecs        *entity.ECS
	field      *grid.Field
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, field *grid.Field, dispatcher *event.Dispatcher) *MovementSystem {
	s := &MovementSystem{ecs: ecs, field: field, dispatcher: dispatcher}
	dispatcher.Subscribe(event.FieldChanged, s)
	return s
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedAttackerIDs() {
		attacker := s.ecs.Attackers[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]

		// Юнит без маршрута стоит на месте и ждёт, пока путь появится.
		path, hasPath := s.ecs.Paths[id]
		if !hasPath {
			if p := grid.FindPath(s.field, s.field.Start(), s.field.End()); p != nil {
				s.ecs.Paths[id] = p
				path, hasPath = p, true
			}
		}

		if hasPath && path.Size() > 0 {
			tx, ty := path.TargetPosition()
			if utils.Distance(pos.X, pos.Y, tx, ty) < config.WaypointAdvanceDistance {
				path.AdvanceCursor()
			}
			tx, ty = path.TargetPosition()
			nx, ny := utils.Normalize(tx-pos.X, ty-pos.Y)
			vel.X = nx * attacker.MovementSpeed
			vel.Y = ny * attacker.MovementSpeed
		}

		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		ex, ey := s.field.EndWorld()
		if utils.Distance(pos.X, pos.Y, ex, ey) <= config.ReachedEndDistance {
			// Дошедший юнит возвращается на старт и снова ждёт маршрут.
			sx, sy := s.field.StartWorld()
			pos.X, pos.Y = sx, sy
			vel.X, vel.Y = 0, 0
			delete(s.ecs.Paths, id)
			s.dispatcher.Dispatch(event.Event{
				Type: event.UnitReachedEnd,
				Data: event.ReachedEndInfo{Entity: id, Bounty: attacker.Bounty},
			})
		}
	}
}

// OnEvent перезапрашивает маршруты после изменения поля. Новый поиск
// стартует с самой дальней точки текущего маршрута, которую не успели
// заблокировать; при неудаче юнит едет по устаревшему пути до
// следующего изменения поля.
func (s *MovementSystem) OnEvent(e event.Event) {
	if e.Type != event.FieldChanged {
		return
	}
	for _, id := range s.ecs.SortedAttackerIDs() {
		path, hasPath := s.ecs.Paths[id]
		if !hasPath || path.Size() == 0 {
			continue
		}
		index := path.CursorIndex()
		for index > 0 && s.field.IsNodeBlocked(path.NodeAt(index)) {
			index--
		}
		if p := grid.FindPath(s.field, path.NodeAt(index), s.field.End()); p != nil {
			s.ecs.Paths[id] = p
		}
	}
}
