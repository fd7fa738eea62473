// internal/component/attacker.go
package component

import "go-grid-defense/internal/defs"

// Attacker — атакующий юнит, идущий от старта к финишу.
type Attacker struct {
	Type          defs.AttackerType
	Health        float64
	MaxHealth     float64
	MovementSpeed float64
	SizeW         float64 // габариты для проверки попаданий
	SizeH         float64
	Bounty        int // награда защитнику за убийство
	OriginalCost  int // цена призыва, делится на группу при возврате
	GroupSize     int // сколько юнитов призвано вместе
}
