// internal/system/projectile.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// ProjectileSystem двигает снаряды и разрешает попадания.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ProjectileSystem {
	s := &ProjectileSystem{ecs: ecs, dispatcher: dispatcher}
	dispatcher.Subscribe(event.UnitKilled, s)
	return s
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.updateMotion(deltaTime)
	s.resolveHits()
}

func (s *ProjectileSystem) updateMotion(deltaTime float64) {
	for _, id := range s.ecs.SortedProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]

		proj.Age += deltaTime
		if proj.Age >= config.ProjectileMaxAge {
			// Таймаут, не попадание: снаряд просто снимается.
			s.ecs.RemoveEntity(id)
			continue
		}

		tx, ty, ok := s.targetPosition(proj)
		if !ok {
			continue
		}
		switch proj.Motion {
		case component.MotionVelocity:
			nx, ny := utils.Normalize(tx-pos.X, ty-pos.Y)
			pos.X += nx * proj.Speed * deltaTime
			pos.Y += ny * proj.Speed * deltaTime
		case component.MotionFixed, component.MotionFixedArc:
			// Дуга у MotionFixedArc — чисто презентационная, траектория
			// по земле одинаковая.
			factor := utils.Clamp(proj.Age/proj.Duration, 0, 1)
			pos.X = utils.Lerp(proj.StartX, tx, factor)
			pos.Y = utils.Lerp(proj.StartY, ty, factor)
		}
	}
}

func (s *ProjectileSystem) targetPosition(proj *component.Projectile) (float64, float64, bool) {
	if proj.HasEntityTarget() {
		pos, exists := s.ecs.Positions[proj.TargetEntity]
		if !exists {
			return 0, 0, false
		}
		return pos.X, pos.Y, true
	}
	return proj.GroundX, proj.GroundY, true
}

func (s *ProjectileSystem) resolveHits() {
	for _, id := range s.ecs.SortedProjectileIDs() {
		proj, exists := s.ecs.Projectiles[id]
		if !exists || proj.Dead {
			continue
		}
		pos := s.ecs.Positions[id]

		if proj.HasEntityTarget() {
			targetID := proj.TargetEntity
			target, alive := s.ecs.Attackers[targetID]
			if !alive {
				continue
			}
			targetPos := s.ecs.Positions[targetID]
			if utils.RectsIntersect(
				targetPos.X, targetPos.Y, target.SizeW, target.SizeH,
				pos.X, pos.Y, proj.SizeW, proj.SizeH,
			) {
				s.applyDamage(id, proj, targetID)
				proj.Dead = true
				s.ecs.RemoveEntity(id)
			}
			continue
		}

		if utils.Distance(pos.X, pos.Y, proj.GroundX, proj.GroundY) < config.GroundHitDistance {
			if proj.SplashRadius > 0 {
				for _, targetID := range s.ecs.SortedAttackerIDs() {
					targetPos := s.ecs.Positions[targetID]
					if utils.Distance(targetPos.X, targetPos.Y, proj.GroundX, proj.GroundY) <= proj.SplashRadius {
						s.applyDamage(id, proj, targetID)
					}
				}
			}
			proj.Dead = true
			s.ecs.RemoveEntity(id)
		}
	}
}

func (s *ProjectileSystem) applyDamage(projectileID types.EntityID, proj *component.Projectile, targetID types.EntityID) {
	target := s.ecs.Attackers[targetID]
	target.Health -= proj.Damage
	s.dispatcher.Dispatch(event.Event{
		Type: event.UnitDamaged,
		Data: event.DamageInfo{Target: targetID, Amount: proj.Damage},
	})
	if target.Health <= 0 {
		deathPos := s.ecs.Positions[targetID]
		info := event.KillInfo{
			Target:       targetID,
			Source:       projectileID,
			Tower:        proj.Source,
			Bounty:       target.Bounty,
			OriginalCost: target.OriginalCost,
			GroupSize:    target.GroupSize,
			DeathX:       deathPos.X,
			DeathY:       deathPos.Y,
		}
		s.ecs.RemoveEntity(targetID)
		s.dispatcher.Dispatch(event.Event{Type: event.UnitKilled, Data: info})
	}
}

// OnEvent перенацеливает снаряды, потерявшие живую цель, на место её
// смерти: дальше они летят как наземные.
func (s *ProjectileSystem) OnEvent(e event.Event) {
	if e.Type != event.UnitKilled {
		return
	}
	info, ok := e.Data.(event.KillInfo)
	if !ok {
		return
	}
	for _, proj := range s.ecs.Projectiles {
		if proj.HasEntityTarget() && proj.TargetEntity == info.Target {
			proj.RetargetGround(info.DeathX, info.DeathY)
		}
	}
}
