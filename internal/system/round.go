// internal/system/round.go
package system

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// RoundSystem управляет очередями призыва и жизненным циклом раунда.
// Раунд начинается, когда ожидающая очередь становится активной, и
// заканчивается, когда активная очередь пуста и на поле не осталось
// атакующих.
type RoundSystem struct {
	ecs        *entity.ECS
	field      *grid.Field
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	roster     *AttackerRoster

	pendingQueue []defs.AttackerType
	activeQueue  []defs.AttackerType
	roundActive  bool
	spawnTimer   float64
}

func NewRoundSystem(ecs *entity.ECS, field *grid.Field, dispatcher *event.Dispatcher, rng *utils.PRNGService, roster *AttackerRoster) *RoundSystem {
	return &RoundSystem{
		ecs:        ecs,
		field:      field,
		dispatcher: dispatcher,
		rng:        rng,
		roster:     roster,
	}
}

// Queue ставит тип атакующего в ожидающую очередь следующего раунда.
func (s *RoundSystem) Queue(t defs.AttackerType) {
	s.pendingQueue = append(s.pendingQueue, t)
}

// StartRound атомарно переносит ожидающую очередь в активную. Запрос
// игнорируется, пока идёт раунд или активная очередь не опустела.
func (s *RoundSystem) StartRound() bool {
	if s.roundActive || len(s.activeQueue) > 0 {
		return false
	}
	s.roundActive = true
	s.activeQueue = s.pendingQueue
	s.pendingQueue = nil
	s.dispatcher.Dispatch(event.Event{Type: event.RoundStarted})
	return true
}

func (s *RoundSystem) RoundActive() bool { return s.roundActive }
func (s *RoundSystem) PendingCount() int { return len(s.pendingQueue) }
func (s *RoundSystem) ActiveCount() int  { return len(s.activeQueue) }

func (s *RoundSystem) Update(deltaTime float64) {
	if s.roundActive && len(s.activeQueue) > 0 {
		s.spawnTimer += deltaTime
		if s.spawnTimer >= config.SpawnInterval {
			s.spawnTimer -= config.SpawnInterval
			next := s.activeQueue[0]
			s.activeQueue = s.activeQueue[1:]
			s.spawnGroup(next)
		}
	}

	if s.roundActive && len(s.activeQueue) == 0 && len(s.ecs.Attackers) == 0 {
		s.roundActive = false
		s.dispatcher.Dispatch(event.Event{Type: event.RoundEnded})
	}
}

// spawnGroup призывает всю группу разом с небольшим разбросом от старта.
func (s *RoundSystem) spawnGroup(t defs.AttackerType) {
	def, ok := s.roster.Stats(t)
	if !ok {
		log.Printf("Error: attacker definition not found for type: %s", t)
		return
	}
	sx, sy := s.field.StartWorld()
	for i := 0; i < def.GroupSize; i++ {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{
			X: sx + s.rng.Range(-config.SpawnJitter, config.SpawnJitter),
			Y: sy + s.rng.Range(-config.SpawnJitter, config.SpawnJitter),
		}
		s.ecs.Velocities[id] = &component.Velocity{}
		s.ecs.Attackers[id] = &component.Attacker{
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
	}
}
