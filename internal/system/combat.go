// internal/system/combat.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// CombatSystem отвечает за прицеливание башен и выпуск снарядов.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CombatSystem {
	s := &CombatSystem{ecs: ecs, dispatcher: dispatcher}
	dispatcher.Subscribe(event.UnitKilled, s)
	return s
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedDefenderIDs() {
		defender := s.ecs.Defenders[id]
		pos := s.ecs.Positions[id]

		defender.AttackTimer += deltaTime
		if defender.AttackTimer >= defender.AttackInterval {
			defender.AttackTimer -= defender.AttackInterval
			defender.PendingAttack = true
		}

		if !defender.PendingAttack {
			continue
		}
		// Цель — юнит с наименьшим здоровьем в радиусе атаки. Флаг
		// pending остаётся взведённым, пока цели нет.
		targetID := s.findTarget(pos, defender.Range)
		if targetID == 0 {
			continue
		}
		defender.PendingAttack = false
		s.spawnProjectile(id, defender, pos, targetID)
	}
}

func (s *CombatSystem) findTarget(pos *component.Position, attackRange float64) types.EntityID {
	var best types.EntityID
	bestHealth := 0.0
	for _, id := range s.ecs.SortedAttackerIDs() {
		attacker := s.ecs.Attackers[id]
		targetPos := s.ecs.Positions[id]
		if utils.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y) > attackRange {
			continue
		}
		if best == 0 || attacker.Health < bestHealth {
			best = id
			bestHealth = attacker.Health
		}
	}
	return best
}

func (s *CombatSystem) spawnProjectile(towerID types.EntityID, defender *component.Defender, pos *component.Position, targetID types.EntityID) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}

	switch defender.Attack.Kind {
	case defs.AttackProjectile:
		s.ecs.Projectiles[id] = &component.Projectile{
			TargetEntity: targetID,
			Source:       towerID,
			Motion:       component.MotionVelocity,
			Speed:        defender.Attack.ProjectileSpeed,
			Damage:       defender.Attack.Damage,
			DamageType:   defender.Attack.DamageType,
			SizeW:        config.ProjectileSize,
			SizeH:        config.ProjectileSize,
		}
	case defs.AttackSplash:
		targetPos := s.ecs.Positions[targetID]
		s.ecs.Projectiles[id] = &component.Projectile{
			GroundX:      targetPos.X,
			GroundY:      targetPos.Y,
			Source:       towerID,
			Motion:       component.MotionFixedArc,
			Duration:     defender.Attack.TravelTime,
			Arc:          config.CannonArcHeight,
			StartX:       pos.X,
			StartY:       pos.Y,
			Damage:       defender.Attack.Damage,
			DamageType:   defender.Attack.DamageType,
			SplashRadius: defender.Attack.SplashRadius,
			SizeW:        config.ProjectileSize,
			SizeH:        config.ProjectileSize,
		}
	}
}

// OnEvent засчитывает убийство башне, чей снаряд добил юнита.
func (s *CombatSystem) OnEvent(e event.Event) {
	if e.Type != event.UnitKilled {
		return
	}
	info, ok := e.Data.(event.KillInfo)
	if !ok {
		return
	}
	if defender, exists := s.ecs.Defenders[info.Tower]; exists {
		defender.KillCount++
	}
}
