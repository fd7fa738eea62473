// cmd/game/main.go
package main

import (
	"fmt"
	"log"
	"time"

	game "go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/system"
	"go-grid-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Игрок управляет атакующей стороной; оборона полностью автономна.
type AppGame struct {
	game           *game.Game
	render         *system.RenderSystem
	lastUpdateTime time.Time
	lastQueued     defs.AttackerType
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now

	a.handleInput()
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		a.queue(defs.AttackerOrcWarrior)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		a.queue(defs.AttackerSpider)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		a.queue(defs.AttackerGolem)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.game.StartRound()
	}

	// Апгрейды применяются к последнему поставленному в очередь типу.
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.game.BuyUpgrade(a.lastQueued, defs.UpgradeSpeed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		a.game.BuyUpgrade(a.lastQueued, defs.UpgradeHealth)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.game.BuyUpgrade(a.lastQueued, defs.UpgradeAmount)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.game.SetSpeedMultiplier(a.game.SpeedMultiplier() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.game.SetSpeedMultiplier(a.game.SpeedMultiplier() / 2)
	}

	// Ручное строительство: ЛКМ — стена, ПКМ — снос.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		a.game.BuyStructure(defs.BuildingWall, grid.WorldToNode(float64(mx), float64(my)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		a.game.RemoveStructure(grid.WorldToNode(float64(mx), float64(my)))
	}
}

func (a *AppGame) queue(t defs.AttackerType) {
	if a.game.QueueAttacker(t) {
		a.lastQueued = t
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.render.Draw(screen)

	hud := fmt.Sprintf(
		"Lives: %d  Def gold: %d | Atk gold: %d (+%d)  Queue: %d  Speed: x%.1f",
		a.game.EconomySystem.Defender.Lives,
		a.game.EconomySystem.Defender.Gold,
		a.game.EconomySystem.Attacker.Gold,
		a.game.EconomySystem.Attacker.CurrentBounty,
		a.game.RoundSystem.PendingCount()+a.game.RoundSystem.ActiveCount(),
		a.game.SpeedMultiplier(),
	)
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, config.TextLightColor)
	text.Draw(screen, "1/2/3 queue  Enter round  Q/W/E upgrade  +/- speed  LMB wall  RMB remove",
		basicfont.Face7x13, 8, 32, config.TextLightColor)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defs.LoadDefaults()
	if err := defs.LoadBuildingDefinitions("assets/building_definitions.json"); err != nil {
		log.Printf("using built-in building definitions: %v", err)
	}
	if err := defs.LoadAttackerDefinitions("assets/attacker_definitions.json"); err != nil {
		log.Printf("using built-in attacker definitions: %v", err)
	}
	if err := defs.Validate(); err != nil {
		log.Fatal(err)
	}
	g := game.NewGame(0)
	app := &AppGame{
		game:           g,
		render:         system.NewRenderSystem(g.ECS, g.Field),
		lastUpdateTime: time.Now(),
		lastQueued:     defs.AttackerOrcWarrior,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
