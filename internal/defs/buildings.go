// internal/defs/buildings.go
package defs

// AttackDef describes the payload a tower fires.
type AttackDef struct {
	Kind            AttackKind `json:"kind"`
	DamageType      DamageType `json:"damage_type"`
	Damage          float64    `json:"damage"`
	ProjectileSpeed float64    `json:"projectile_speed,omitempty"` // for PROJECTILE
	TravelTime      float64    `json:"travel_time,omitempty"`      // for SPLASH
	SplashRadius    float64    `json:"splash_radius,omitempty"`    // for SPLASH
}

// BuildingDefinition holds all the static data for a structure type.
type BuildingDefinition struct {
	Type           BuildingType `json:"type"`
	Cost           int          `json:"cost"`
	Blocking       bool         `json:"blocking"`
	AttackInterval float64      `json:"attack_interval,omitempty"`
	Range          float64      `json:"range,omitempty"`
	Attack         *AttackDef   `json:"attack,omitempty"`
}

// DPS returns the definition's damage per second, 0 for walls.
func (d BuildingDefinition) DPS() float64 {
	if d.Attack == nil || d.AttackInterval <= 0 {
		return 0
	}
	return d.Attack.Damage / d.AttackInterval
}

// IsOffensive reports whether the structure fights back at all.
func (d BuildingDefinition) IsOffensive() bool {
	return d.Attack != nil
}

// BuildingDefs is the library of all building definitions, keyed by type.
var BuildingDefs map[BuildingType]BuildingDefinition

// DefaultBuildingDefs returns the built-in building library.
func DefaultBuildingDefs() map[BuildingType]BuildingDefinition {
	return map[BuildingType]BuildingDefinition{
		BuildingWall: {
			Type:     BuildingWall,
			Cost:     50,
			Blocking: true,
		},
		BuildingArrow: {
			Type:           BuildingArrow,
			Cost:           80,
			Blocking:       true,
			AttackInterval: 0.8,
			Range:          140,
			Attack: &AttackDef{
				Kind:            AttackProjectile,
				DamageType:      DamagePiercing,
				Damage:          12,
				ProjectileSpeed: 200,
			},
		},
		BuildingCannon: {
			Type:           BuildingCannon,
			Cost:           120,
			Blocking:       true,
			AttackInterval: 2.0,
			Range:          180,
			Attack: &AttackDef{
				Kind:         AttackSplash,
				DamageType:   DamageExplosive,
				Damage:       30,
				TravelTime:   1.2,
				SplashRadius: 80,
			},
		},
	}
}
