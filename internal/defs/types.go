// internal/defs/types.go
package defs

// BuildingType defines the category of a structure.
type BuildingType string

const (
	BuildingWall   BuildingType = "WALL"
	BuildingArrow  BuildingType = "ARROW"
	BuildingCannon BuildingType = "CANNON"
)

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamageMagic     DamageType = "MAGIC"
	DamagePiercing  DamageType = "PIERCING"
	DamageCrushing  DamageType = "CRUSHING"
	DamageExplosive DamageType = "EXPLOSIVE"
)

// AttackKind selects how a tower delivers its damage.
type AttackKind string

const (
	// AttackProjectile chases a single unit at constant speed.
	AttackProjectile AttackKind = "PROJECTILE"
	// AttackSplash lobs at a ground point and damages everything in a radius.
	AttackSplash AttackKind = "SPLASH"
)

// AttackerType identifies an attacker stat template.
type AttackerType string

const (
	AttackerOrcWarrior AttackerType = "ORC_WARRIOR"
	AttackerSpider     AttackerType = "SPIDER"
	AttackerGolem      AttackerType = "GOLEM"
)

// UpgradeType selects which attacker stat an upgrade improves.
type UpgradeType string

const (
	UpgradeSpeed  UpgradeType = "SPEED"
	UpgradeHealth UpgradeType = "HEALTH"
	UpgradeAmount UpgradeType = "AMOUNT"
)

// UpgradeEffectType: flat addition or multiplicative factor.
type UpgradeEffectType string

const (
	EffectFlat   UpgradeEffectType = "FLAT"
	EffectFactor UpgradeEffectType = "FACTOR"
)
