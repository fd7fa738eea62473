// internal/system/roster.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
)

// AttackerRoster — изменяемые характеристики атакующих на текущую
// партию. Апгрейды правят ростер, статические определения в defs
// остаются нетронутыми.
type AttackerRoster struct {
	stats    map[defs.AttackerType]defs.AttackerDefinition
	upgrades map[defs.UpgradeKey]defs.UpgradeInfo
}

// NewAttackerRoster снимает копию библиотек определений.
func NewAttackerRoster() *AttackerRoster {
	stats := make(map[defs.AttackerType]defs.AttackerDefinition, len(defs.AttackerDefs))
	for t, def := range defs.AttackerDefs {
		stats[t] = def
	}
	upgrades := make(map[defs.UpgradeKey]defs.UpgradeInfo, len(defs.UpgradeDefs))
	for k, u := range defs.UpgradeDefs {
		upgrades[k] = u
	}
	return &AttackerRoster{stats: stats, upgrades: upgrades}
}

// Stats возвращает текущие характеристики типа атакующего.
func (r *AttackerRoster) Stats(t defs.AttackerType) (defs.AttackerDefinition, bool) {
	def, ok := r.stats[t]
	return def, ok
}

// UpgradeCost — текущая цена апгрейда.
func (r *AttackerRoster) UpgradeCost(t defs.AttackerType, u defs.UpgradeType) (int, bool) {
	info, ok := r.upgrades[defs.UpgradeKey{Attacker: t, Upgrade: u}]
	if !ok {
		return 0, false
	}
	return info.Cost, true
}

// UpgradeInfo возвращает описание апгрейда.
func (r *AttackerRoster) UpgradeInfo(t defs.AttackerType, u defs.UpgradeType) (defs.UpgradeInfo, bool) {
	info, ok := r.upgrades[defs.UpgradeKey{Attacker: t, Upgrade: u}]
	return info, ok
}

// ApplyUpgrade применяет апгрейд к ростеру и удорожает следующую покупку.
func (r *AttackerRoster) ApplyUpgrade(t defs.AttackerType, u defs.UpgradeType) bool {
	key := defs.UpgradeKey{Attacker: t, Upgrade: u}
	info, ok := r.upgrades[key]
	if !ok {
		return false
	}
	stats, ok := r.stats[t]
	if !ok {
		return false
	}

	info.Cost = int(float64(info.Cost)*config.UpgradeCostGrowth + 0.5)
	r.upgrades[key] = info

	switch u {
	case defs.UpgradeAmount:
		stats.GroupSize = info.ApplyValue(stats.GroupSize)
	case defs.UpgradeSpeed:
		stats.MovementSpeed = info.ApplyValueF(stats.MovementSpeed)
	case defs.UpgradeHealth:
		stats.Health = info.ApplyValueF(stats.Health)
	}
	r.stats[t] = stats
	return true
}
