// internal/config/config.go
package config

import "image/color"

const (
	// Экран
	ScreenWidth  = 1024
	ScreenHeight = 1024

	// Поле
	FieldWidth  = 16
	FieldHeight = 16
	StartX      = 2
	StartY      = 0
	EndX        = 14
	EndY        = 15

	// Экономика
	DefenderInitialGold = 200
	AttackerInitialGold = 200
	InitialLives        = 50
	KillEscrowBounty    = 2  // в копилку атакующего за каждого убитого
	ReachedEscrowBounty = 10 // в копилку атакующего за каждого дошедшего

	// Раунды
	SpawnInterval      = 1.0 // секунд между выпусками из очереди
	SpawnJitter        = 16.0
	MaxDeltaTime       = 0.06
	SpeedMultiplierMin = 0.4
	SpeedMultiplierMax = 4.0

	// Движение и попадания
	WaypointAdvanceDistance = 64.0 / 4.0 // SlotSize / 4
	ReachedEndDistance      = 5.0
	GroundHitDistance       = 4.0
	ProjectileMaxAge        = 20.0 // секунд, затем снаряд снимается безусловно
	ProjectileSize          = 8.0
	CannonArcHeight         = 34.0

	// Планировщик обороны
	ActionCooldown       = 1.5
	WallWeight           = 1.0
	DamageWeight         = 1.4
	SellWeight           = 1.0
	InitialDamageNeeded  = 1000.0
	DamageNeededMargin   = 1.10
	AssumedEnemySpeed    = 40.0 // средняя скорость врага для грубой оценки
	AdjacencyBonusFactor = 0.4
	InfeasibleScore      = -1000.0
	WallCandidateCap     = 5
	TowerCandidateCap    = 3
	CandidateIterBudget  = 10
	CannonChanceDenom    = 7 // 1 к 7, иначе стрелковая башня
	SellValuePathPenalty = 0.1

	// Апгрейды атакующих
	UpgradeCostGrowth = 1.3
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{45, 45, 60, 255}
	StartColor      = color.RGBA{0, 255, 0, 255}
	EndColor        = color.RGBA{255, 0, 0, 255}
	PathColor       = color.RGBA{70, 100, 120, 90}
	WallColor       = color.RGBA{110, 110, 120, 255}
	ArrowTowerColor = color.RGBA{70, 130, 180, 255}
	CannonColor     = color.RGBA{194, 120, 60, 255}
	ProjectileColor = color.RGBA{255, 255, 0, 255}
	HealthBackColor = color.RGBA{60, 20, 20, 255}
	HealthFillColor = color.RGBA{50, 205, 50, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	AttackerColors = map[string]color.RGBA{
		"ORC_WARRIOR": {220, 60, 60, 255},
		"SPIDER":      {160, 80, 200, 255},
		"GOLEM":       {120, 120, 90, 255},
	}
)
