// internal/system/economy.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// DefenderResources — золото и жизни обороняющейся стороны.
type DefenderResources struct {
	Gold  int
	Lives int
}

// AttackerResources — золото атакующего и копилка текущего раунда.
type AttackerResources struct {
	Gold          int
	CurrentBounty int
}

// RoundStats — статистика раунда для планировщика и отображения.
type RoundStats struct {
	DamageDealt          float64
	RoundDuration        float64
	NumReachedEnd        int
	NumKilled            int
	ClosestDistanceToEnd float64
}

// EconomySystem сводит события боя в золото, жизни и статистику.
type EconomySystem struct {
	ecs   *entity.ECS
	field *grid.Field

	Defender *DefenderResources
	Attacker *AttackerResources
	Stats    *RoundStats

	roundActive   bool
	escrowKills   int
	escrowReached int
}

func NewEconomySystem(ecs *entity.ECS, field *grid.Field, dispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{
		ecs:   ecs,
		field: field,
		Defender: &DefenderResources{
			Gold:  config.DefenderInitialGold,
			Lives: config.InitialLives,
		},
		Attacker: &AttackerResources{Gold: config.AttackerInitialGold},
		Stats:    &RoundStats{},
	}
	dispatcher.Subscribe(event.UnitDamaged, s)
	dispatcher.Subscribe(event.UnitKilled, s)
	dispatcher.Subscribe(event.UnitReachedEnd, s)
	dispatcher.Subscribe(event.StructureRemoved, s)
	dispatcher.Subscribe(event.RoundStarted, s)
	dispatcher.Subscribe(event.RoundEnded, s)
	return s
}

func (s *EconomySystem) Update(deltaTime float64) {
	if !s.roundActive {
		return
	}
	s.Stats.RoundDuration += deltaTime
	ex, ey := s.field.EndWorld()
	for _, id := range s.ecs.SortedAttackerIDs() {
		pos := s.ecs.Positions[id]
		if d := utils.Distance(pos.X, pos.Y, ex, ey); d < s.Stats.ClosestDistanceToEnd {
			s.Stats.ClosestDistanceToEnd = d
		}
	}
}

func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitDamaged:
		if info, ok := e.Data.(event.DamageInfo); ok && s.roundActive {
			s.Stats.DamageDealt += info.Amount
		}

	case event.UnitKilled:
		info, ok := e.Data.(event.KillInfo)
		if !ok {
			return
		}
		s.Defender.Gold += info.Bounty
		// Возврат атакующему: доля цены призыва на каждого из группы.
		if info.GroupSize > 0 {
			s.Attacker.Gold += info.OriginalCost / info.GroupSize
		}
		s.Stats.NumKilled++
		s.escrowKills++
		s.refreshEscrow()

	case event.UnitReachedEnd:
		info, ok := e.Data.(event.ReachedEndInfo)
		if !ok {
			return
		}
		s.Defender.Lives--
		s.Attacker.Gold += info.Bounty
		s.Stats.NumReachedEnd++
		s.escrowReached++
		s.refreshEscrow()

	case event.StructureRemoved:
		info, ok := e.Data.(event.StructureRemovedInfo)
		if !ok {
			return
		}
		if def, exists := defs.BuildingDefs[info.Type]; exists {
			s.Defender.Gold += def.Cost / 2
		}

	case event.RoundStarted:
		sx, sy := s.field.StartWorld()
		ex, ey := s.field.EndWorld()
		s.Stats.DamageDealt = 0
		s.Stats.RoundDuration = 0
		s.Stats.NumReachedEnd = 0
		s.Stats.ClosestDistanceToEnd = utils.Distance(sx, sy, ex, ey)
		s.roundActive = true

	case event.RoundEnded:
		s.roundActive = false
		s.Attacker.Gold += s.Attacker.CurrentBounty
		s.Attacker.CurrentBounty = 0
		s.escrowKills = 0
		s.escrowReached = 0
	}
}

func (s *EconomySystem) refreshEscrow() {
	s.Attacker.CurrentBounty = s.escrowKills*config.KillEscrowBounty + s.escrowReached*config.ReachedEscrowBounty
}
