// internal/system/render.go
package system

import (
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует поле и сущности
type RenderSystem struct {
	ecs   *entity.ECS
	field *grid.Field
}

func NewRenderSystem(ecs *entity.ECS, field *grid.Field) *RenderSystem {
	return &RenderSystem{ecs: ecs, field: field}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawField(screen)
	s.drawPath(screen)
	s.drawStructures(screen)
	s.drawAttackers(screen)
	s.drawProjectiles(screen)
}

// drawPath подсвечивает текущий маршрут старт-финиш.
func (s *RenderSystem) drawPath(screen *ebiten.Image) {
	path := grid.FindPath(s.field, s.field.Start(), s.field.End())
	if path == nil {
		return
	}
	for _, n := range path.Nodes() {
		wx, wy := grid.NodeToWorld(n)
		vector.DrawFilledRect(screen, float32(wx), float32(wy),
			grid.SlotSize, grid.SlotSize, config.PathColor, false)
	}
}

func (s *RenderSystem) drawField(screen *ebiten.Image) {
	w := float32(s.field.Width() * grid.SlotSize)
	h := float32(s.field.Height() * grid.SlotSize)
	for x := 0; x <= s.field.Width(); x++ {
		fx := float32(x * grid.SlotSize)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, config.GridLineColor, false)
	}
	for y := 0; y <= s.field.Height(); y++ {
		fy := float32(y * grid.SlotSize)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, config.GridLineColor, false)
	}

	sx, sy := s.field.StartWorld()
	ex, ey := s.field.EndWorld()
	vector.DrawFilledRect(screen, float32(sx), float32(sy), grid.SlotSize, grid.SlotSize, config.StartColor, false)
	vector.DrawFilledRect(screen, float32(ex), float32(ey), grid.SlotSize, grid.SlotSize, config.EndColor, false)
}

func (s *RenderSystem) drawStructures(screen *ebiten.Image) {
	for id, structure := range s.ecs.Structures {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		var c = config.WallColor
		switch structure.Type {
		case defs.BuildingArrow:
			c = config.ArrowTowerColor
		case defs.BuildingCannon:
			c = config.CannonColor
		}
		const inset = 4
		vector.DrawFilledRect(screen,
			float32(pos.X)-grid.SlotSize/2+inset, float32(pos.Y)-grid.SlotSize/2+inset,
			grid.SlotSize-2*inset, grid.SlotSize-2*inset, c, false)

		if defender, ok := s.ecs.Defenders[id]; ok {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y),
				float32(defender.Range), 1, config.GridLineColor, true)
		}
	}
}

func (s *RenderSystem) drawAttackers(screen *ebiten.Image) {
	for id, attacker := range s.ecs.Attackers {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		c, ok := config.AttackerColors[string(attacker.Type)]
		if !ok {
			c = config.TextLightColor
		}
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
			float32(attacker.SizeW), float32(attacker.SizeH), c, false)

		// Полоска здоровья над юнитом
		ratio := float32(attacker.Health / attacker.MaxHealth)
		barW := float32(attacker.SizeW)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y)-6, barW, 3, config.HealthBackColor, false)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y)-6, barW*ratio, 3, config.HealthFillColor, false)
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	for id, proj := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		// Дуга ядра — чисто визуальный подъём по синусу пролёта.
		lift := 0.0
		if proj.Motion == component.MotionFixedArc && proj.Duration > 0 {
			t := math.Min(proj.Age/proj.Duration, 1)
			lift = proj.Arc * math.Sin(t*math.Pi)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y-lift),
			float32(proj.SizeW)/2, config.ProjectileColor, true)
	}
}
