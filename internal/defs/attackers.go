// internal/defs/attackers.go
package defs

// AttackerDefinition holds the base stats for an attacker type.
type AttackerDefinition struct {
	Type          AttackerType `json:"type"`
	Name          string       `json:"name"`
	Health        float64      `json:"health"`
	MovementSpeed float64      `json:"movement_speed"`
	SizeW         float64      `json:"size_w"`
	SizeH         float64      `json:"size_h"`
	Bounty        int          `json:"bounty"`
	Cost          int          `json:"cost"`
	GroupSize     int          `json:"group_size"`
}

// UpgradeInfo describes one purchasable attacker upgrade. Cost grows by a
// fixed factor every time the upgrade is bought.
type UpgradeInfo struct {
	Effect      float64           `json:"effect"`
	Cost        int               `json:"cost"`
	EffectType  UpgradeEffectType `json:"effect_type"`
	Description string            `json:"description"`
}

// ApplyValueF applies the upgrade to a floating-point stat.
func (u UpgradeInfo) ApplyValueF(current float64) float64 {
	if u.EffectType == EffectFactor {
		return current * u.Effect
	}
	return current + u.Effect
}

// ApplyValue applies the upgrade to an integer stat, rounding factors.
func (u UpgradeInfo) ApplyValue(current int) int {
	if u.EffectType == EffectFactor {
		return int(float64(current)*u.Effect + 0.5)
	}
	return current + int(u.Effect)
}

// UpgradeKey pairs an attacker type with an upgrade slot.
type UpgradeKey struct {
	Attacker AttackerType
	Upgrade  UpgradeType
}

// AttackerDefs is the library of all attacker definitions, keyed by type.
var AttackerDefs map[AttackerType]AttackerDefinition

// UpgradeDefs is the library of attacker upgrade tables.
var UpgradeDefs map[UpgradeKey]UpgradeInfo

// DefaultAttackerDefs returns the built-in attacker library.
func DefaultAttackerDefs() map[AttackerType]AttackerDefinition {
	return map[AttackerType]AttackerDefinition{
		AttackerOrcWarrior: {
			Type: AttackerOrcWarrior, Name: "Orc Warrior",
			Health: 140, MovementSpeed: 26,
			SizeW: 26, SizeH: 36,
			Bounty: 10, Cost: 20, GroupSize: 1,
		},
		AttackerSpider: {
			Type: AttackerSpider, Name: "Spider",
			Health: 56, MovementSpeed: 51,
			SizeW: 14, SizeH: 14,
			Bounty: 15, Cost: 60, GroupSize: 3,
		},
		AttackerGolem: {
			Type: AttackerGolem, Name: "Golem",
			Health: 400, MovementSpeed: 13,
			SizeW: 47, SizeH: 50,
			Bounty: 60, Cost: 160, GroupSize: 1,
		},
	}
}

// DefaultUpgradeDefs returns the built-in upgrade tables.
func DefaultUpgradeDefs() map[UpgradeKey]UpgradeInfo {
	return map[UpgradeKey]UpgradeInfo{
		{AttackerOrcWarrior, UpgradeAmount}: {Effect: 1, Cost: 200, EffectType: EffectFlat, Description: "Increase spawn amount by 1"},
		{AttackerSpider, UpgradeAmount}:     {Effect: 1, Cost: 150, EffectType: EffectFlat, Description: "Increase spawn amount by 1"},
		{AttackerGolem, UpgradeAmount}:      {Effect: 1, Cost: 300, EffectType: EffectFlat, Description: "Increase spawn amount by 1"},

		{AttackerOrcWarrior, UpgradeHealth}: {Effect: 1.2, Cost: 120, EffectType: EffectFactor, Description: "Increase health by 20%"},
		{AttackerSpider, UpgradeHealth}:     {Effect: 1.2, Cost: 150, EffectType: EffectFactor, Description: "Increase health by 20%"},
		{AttackerGolem, UpgradeHealth}:      {Effect: 1.1, Cost: 110, EffectType: EffectFactor, Description: "Increase health by 10%"},

		{AttackerOrcWarrior, UpgradeSpeed}: {Effect: 1.2, Cost: 100, EffectType: EffectFactor, Description: "Increase speed by 20%"},
		{AttackerSpider, UpgradeSpeed}:     {Effect: 1.2, Cost: 200, EffectType: EffectFactor, Description: "Increase speed by 20%"},
		{AttackerGolem, UpgradeSpeed}:      {Effect: 1.2, Cost: 100, EffectType: EffectFactor, Description: "Increase speed by 20%"},
	}
}
