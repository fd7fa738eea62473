// internal/component/projectile.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
)

// MotionKind — модель движения снаряда.
type MotionKind int

const (
	// MotionVelocity — постоянная скорость в сторону цели.
	MotionVelocity MotionKind = iota
	// MotionFixed — линейная интерполяция за фиксированное время.
	MotionFixed
	// MotionFixedArc — интерполяция по дуге за фиксированное время.
	MotionFixedArc
)

// Projectile — летящий снаряд. Цель — либо живой юнит, либо точка на
// земле; после смерти юнита снаряд перенацеливается на место смерти.
type Projectile struct {
	TargetEntity types.EntityID // 0 — цель наземная
	GroundX      float64
	GroundY      float64
	Source       types.EntityID // башня-отправитель

	Motion   MotionKind
	Speed    float64 // для MotionVelocity
	Duration float64 // для MotionFixed и MotionFixedArc
	Arc      float64 // высота дуги для MotionFixedArc
	StartX   float64
	StartY   float64

	Damage       float64
	DamageType   defs.DamageType
	SplashRadius float64 // 0 — одиночная цель
	SizeW        float64
	SizeH        float64
	Age          float64
	Dead         bool // ожидает снятия
}

// HasEntityTarget сообщает, целится ли снаряд в конкретный юнит.
func (p *Projectile) HasEntityTarget() bool {
	return p.TargetEntity != 0
}

// RetargetGround переключает снаряд на точку на земле.
func (p *Projectile) RetargetGround(x, y float64) {
	p.TargetEntity = 0
	p.GroundX = x
	p.GroundY = y
}
