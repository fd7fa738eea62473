// internal/app/game_test.go
package app

import (
	"os"
	"testing"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

func TestMain(m *testing.M) {
	defs.LoadDefaults()
	os.Exit(m.Run())
}

func TestBuyStructure(t *testing.T) {
	g := NewGame(1)
	recorder := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.StructurePlaced, recorder)
	g.EventDispatcher.Subscribe(event.FieldChanged, recorder)

	node := grid.NewNode(5, 5)
	if !g.BuyStructure(defs.BuildingWall, node) {
		t.Fatal("wall purchase rejected")
	}
	if g.EconomySystem.Defender.Gold != 150 {
		t.Fatalf("defender gold %d, want 150", g.EconomySystem.Defender.Gold)
	}
	if !g.Field.IsNodeOccupied(node) || !g.Field.IsNodeBlocked(node) {
		t.Fatal("field slot not updated")
	}
	if len(recorder.byType(event.StructurePlaced)) != 1 || len(recorder.byType(event.FieldChanged)) != 1 {
		t.Fatal("placement events not announced")
	}

	// Клетка занята — повторная покупка отклоняется без списания.
	if g.BuyStructure(defs.BuildingWall, node) {
		t.Fatal("second purchase on an occupied cell accepted")
	}
	if g.EconomySystem.Defender.Gold != 150 {
		t.Fatal("gold charged for a rejected purchase")
	}

	if g.BuyStructure(defs.BuildingWall, grid.NewNode(-1, 3)) {
		t.Fatal("purchase outside the field accepted")
	}

	g.EconomySystem.Defender.Gold = 10
	if g.BuyStructure(defs.BuildingArrow, grid.NewNode(7, 7)) {
		t.Fatal("purchase accepted without enough gold")
	}
}

func TestBuyTowerSpawnsDefender(t *testing.T) {
	g := NewGame(1)
	node := grid.NewNode(6, 6)
	if !g.BuyStructure(defs.BuildingCannon, node) {
		t.Fatal("cannon purchase rejected")
	}

	slot, _ := g.Field.SlotAt(node)
	defender, ok := g.ECS.Defenders[slot.Entity]
	if !ok {
		t.Fatal("offensive structure has no defender component")
	}
	if defender.Attack.Kind != defs.AttackSplash || defender.Range != 180 {
		t.Fatalf("cannon misconfigured: %+v", defender)
	}

	// Стена — чистое препятствие, без боевого компонента.
	wallNode := grid.NewNode(8, 8)
	g.BuyStructure(defs.BuildingWall, wallNode)
	wallSlot, _ := g.Field.SlotAt(wallNode)
	if _, ok := g.ECS.Defenders[wallSlot.Entity]; ok {
		t.Fatal("wall received a defender component")
	}
}

func TestRemoveStructureRefundsHalf(t *testing.T) {
	g := NewGame(1)
	node := grid.NewNode(5, 5)
	g.BuyStructure(defs.BuildingWall, node)

	if !g.RemoveStructure(node) {
		t.Fatal("removal rejected")
	}
	if g.EconomySystem.Defender.Gold != 175 {
		t.Fatalf("defender gold %d, want 175 after the half refund", g.EconomySystem.Defender.Gold)
	}
	if g.Field.IsNodeOccupied(node) {
		t.Fatal("slot still occupied after removal")
	}
	if g.RemoveStructure(node) {
		t.Fatal("removing an empty cell accepted")
	}
}

func TestQueueAttackerChargesGold(t *testing.T) {
	g := NewGame(1)
	if !g.QueueAttacker(defs.AttackerOrcWarrior) {
		t.Fatal("queueing rejected")
	}
	if g.EconomySystem.Attacker.Gold != 180 {
		t.Fatalf("attacker gold %d, want 180", g.EconomySystem.Attacker.Gold)
	}
	if g.RoundSystem.PendingCount() != 1 {
		t.Fatalf("pending queue %d, want 1", g.RoundSystem.PendingCount())
	}

	g.EconomySystem.Attacker.Gold = 5
	if g.QueueAttacker(defs.AttackerGolem) {
		t.Fatal("queueing accepted without enough gold")
	}
}

func TestBuyUpgradeChargesGrowingCost(t *testing.T) {
	g := NewGame(1)
	if !g.BuyUpgrade(defs.AttackerOrcWarrior, defs.UpgradeSpeed) {
		t.Fatal("upgrade rejected")
	}
	if g.EconomySystem.Attacker.Gold != 100 {
		t.Fatalf("attacker gold %d, want 100", g.EconomySystem.Attacker.Gold)
	}
	// Вторая покупка дороже и уже не по карману.
	if g.BuyUpgrade(defs.AttackerOrcWarrior, defs.UpgradeSpeed) {
		t.Fatal("upgrade accepted without enough gold")
	}
	if g.EconomySystem.Attacker.Gold != 100 {
		t.Fatal("gold charged for a rejected upgrade")
	}
}

func TestSpeedMultiplierClamped(t *testing.T) {
	g := NewGame(1)
	g.SetSpeedMultiplier(100)
	if g.SpeedMultiplier() != 4.0 {
		t.Fatalf("multiplier %v, want the 4.0 ceiling", g.SpeedMultiplier())
	}
	g.SetSpeedMultiplier(0.01)
	if g.SpeedMultiplier() != 0.4 {
		t.Fatalf("multiplier %v, want the 0.4 floor", g.SpeedMultiplier())
	}
}

// Дымовой прогон: очередь, раунд, автономная оборона. Проверяются
// инварианты, не конкретный исход.
func TestGameSmokeRun(t *testing.T) {
	g := NewGame(42)
	g.QueueAttacker(defs.AttackerOrcWarrior)
	g.QueueAttacker(defs.AttackerSpider)
	if !g.StartRound() {
		t.Fatal("round did not start")
	}

	const dt = 1.0 / 60
	for i := 0; i < 60*30; i++ {
		g.Update(dt)
	}

	if len(g.ECS.Structures) == 0 {
		t.Fatal("autonomous defender built nothing in 30 seconds")
	}
	if g.EconomySystem.Defender.Gold < 0 || g.EconomySystem.Attacker.Gold < 0 {
		t.Fatal("gold went negative")
	}
	if g.EconomySystem.Defender.Lives > 50 {
		t.Fatal("lives increased")
	}
	// Построенное не рвёт путь: маршрут старт-финиш существует всегда.
	if grid.FindPath(g.Field, g.Field.Start(), g.Field.End()) == nil {
		t.Fatal("the defender severed the path")
	}
}

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) byType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
