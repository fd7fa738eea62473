// internal/system/planner.go
package system

import (
	"math"
	"sort"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// PlannerGameContext — интерфейс для действий планировщика над игрой,
// чтобы система не зависела от пакета app напрямую.
type PlannerGameContext interface {
	BuyStructure(buildingType defs.BuildingType, node grid.Node) bool
}

// wallCandidate — клетка-кандидат под постройку с весом: длиной пути,
// который получился бы после её перекрытия. Чем длиннее, тем лучше.
type wallCandidate struct {
	node   grid.Node
	weight int
}

// sellCandidate — башня, отсортированная по ценности: чем больше клеток
// пути в её радиусе, тем дешевле её продавать.
type sellCandidate struct {
	entity types.EntityID
	value  float64
}

// PlannerSystem — автономный защитник. Раз в полторы секунды выбирает
// одно из трёх действий (стена, башня, продажа) по взвешенным оценкам
// и исполняет его через игровой контекст.
type PlannerSystem struct {
	ecs        *entity.ECS
	field      *grid.Field
	game       PlannerGameContext
	rng        *utils.PRNGService
	economy    *EconomySystem
	dispatcher *event.Dispatcher

	cooldown float64
	dirty    bool

	path         *grid.Path
	pathSet      map[grid.Node]bool
	pathLength   int
	pathDistance float64

	// Оценки текущей обороны, пересчитываются по dirty-флагу.
	estimatedDamagePotential float64
	estimatedDamageNeeded    float64
	adjacency                map[grid.Node]int
	sellValues               []sellCandidate

	numWalls     int
	numDefenders int

	// Односторонние защёлки: однажды не найдя кандидатов, планировщик
	// больше не пытается строить соответствующий тип.
	canBuildWall  bool
	canBuildTower bool

	pendingTower *defs.BuildingType
}

func NewPlannerSystem(ecs *entity.ECS, field *grid.Field, game PlannerGameContext, rng *utils.PRNGService, economy *EconomySystem, dispatcher *event.Dispatcher) *PlannerSystem {
	s := &PlannerSystem{
		ecs:                   ecs,
		field:                 field,
		game:                  game,
		rng:                   rng,
		economy:               economy,
		dispatcher:            dispatcher,
		dirty:                 true,
		cooldown:              config.ActionCooldown,
		path:                  grid.EmptyPath(),
		pathSet:               make(map[grid.Node]bool),
		estimatedDamageNeeded: config.InitialDamageNeeded,
		canBuildWall:          true,
		canBuildTower:         true,
	}
	dispatcher.Subscribe(event.FieldChanged, s)
	dispatcher.Subscribe(event.RoundEnded, s)
	return s
}

func (s *PlannerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.FieldChanged:
		s.dirty = true
	case event.RoundEnded:
		// Планка урона на следующий раунд: нанесённый урон с запасом.
		s.estimatedDamageNeeded = s.economy.Stats.DamageDealt * config.DamageNeededMargin
		s.dirty = true
	}
}

func (s *PlannerSystem) Update(deltaTime float64) {
	if s.dirty {
		s.recompute()
		s.dirty = false
	}
	s.cooldown -= deltaTime
	if s.cooldown > 0 {
		return
	}
	s.cooldown = config.ActionCooldown
	s.decide()
}

// recompute перестраивает представление планировщика о поле: главный
// путь, смежность свободных клеток с ним, суммарный потенциал урона
// обороны и ценность продажи каждой башни.
func (s *PlannerSystem) recompute() {
	// При неудаче поиска старый путь остаётся: поле в таком состоянии
	// всё равно недостижимо для построек, рвущих маршрут.
	if path := grid.FindPath(s.field, s.field.Start(), s.field.End()); path != nil {
		s.path = path
		s.pathSet = make(map[grid.Node]bool, path.Size())
		for _, n := range path.Nodes() {
			s.pathSet[n] = true
		}
		s.pathLength = path.Size()
	}

	sx, sy := s.field.StartWorld()
	ex, ey := s.field.EndWorld()
	s.pathDistance = utils.Distance(sx, sy, ex, ey)
	s.economy.Stats.ClosestDistanceToEnd = s.pathDistance

	s.adjacency = make(map[grid.Node]int)
	for _, n := range s.path.Nodes() {
		for _, nb := range grid.AllNeighbors(n) {
			if !s.field.Contains(nb) || s.pathSet[nb] {
				continue
			}
			s.adjacency[nb]++
		}
	}

	s.estimatedDamagePotential = 0
	s.sellValues = s.sellValues[:0]
	for _, id := range s.ecs.SortedDefenderIDs() {
		defender := s.ecs.Defenders[id]
		structure := s.ecs.Structures[id]

		// Грубая оценка: dps × время пролёта юнита через радиус ×
		// бонус за клетки пути вплотную к башне.
		adjacent := math.Max(1, float64(s.adjacency[structure.Node])*config.AdjacencyBonusFactor)
		timeToTravel := defender.Range / config.AssumedEnemySpeed
		dps := defender.Attack.Damage / defender.AttackInterval
		s.estimatedDamagePotential += dps * timeToTravel * adjacent

		s.sellValues = append(s.sellValues, sellCandidate{
			entity: id,
			value:  s.sellValue(structure.Node, defender.Range),
		})
	}
	sort.SliceStable(s.sellValues, func(i, j int) bool {
		return s.sellValues[i].value < s.sellValues[j].value
	})
}

// sellValue оценивает, насколько безболезненно снести башню: за каждую
// клетку пути в квадрате её радиуса вычитается штраф.
func (s *PlannerSystem) sellValue(node grid.Node, attackRange float64) float64 {
	cells := attackRange / grid.SlotSize
	minX := int(math.Floor(float64(node.X) - cells))
	maxX := int(math.Ceil(float64(node.X) + cells))
	minY := int(math.Floor(float64(node.Y) - cells))
	maxY := int(math.Ceil(float64(node.Y) + cells))

	value := 1.0
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if s.pathSet[grid.NewNode(x, y)] {
				value -= config.SellValuePathPenalty
			}
		}
	}
	return value
}

func (s *PlannerSystem) decide() {
	if s.pendingTower == nil {
		t := defs.BuildingArrow
		if s.rng.Ratio(1, config.CannonChanceDenom) {
			t = defs.BuildingCannon
		}
		s.pendingTower = &t
	}

	distanceFactor := 1.0
	if s.pathDistance != 0 {
		distanceFactor = s.economy.Stats.ClosestDistanceToEnd / s.pathDistance
	}
	distanceFactor += 1

	wallFactor := 1.0
	if s.numWalls != 0 {
		wallFactor = 1 + float64(s.numWalls)/float64(s.numDefenders)
	}

	damageRatio := s.estimatedDamagePotential / s.estimatedDamageNeeded

	// Насколько оборона выше (или ниже) требуемого урона.
	wallScore := damageRatio * s.feasibility(s.canBuildWall) *
		(distanceFactor * 0.5) / math.Max(1, wallFactor*0.2) * config.WallWeight
	// Обратная оценка: насколько урона не хватает.
	towerScore := math.Max(1, 1-damageRatio) * s.feasibility(s.canBuildTower) *
		distanceFactor * math.Max(1, wallFactor*0.2) * config.DamageWeight
	sellScore := 0.0
	if len(s.sellValues) > 0 {
		sellScore = s.sellValues[len(s.sellValues)-1].value * config.SellWeight
	}

	switch argmax3(wallScore, towerScore, sellScore) {
	case 0:
		s.tryBuildWall()
	case 1:
		s.tryBuildTower()
	case 2:
		// Продажа пока не реализована: sellValues уже отсортированы по
		// возрастанию ценности, кандидат на снос — первый.
	}
}

func (s *PlannerSystem) feasibility(can bool) float64 {
	if can {
		return 1
	}
	return config.InfeasibleScore
}

// argmax3 возвращает индекс наибольшего значения; при равенстве
// выигрывает меньший индекс.
func argmax3(a, b, c float64) int {
	best, idx := a, 0
	if b > best {
		best, idx = b, 1
	}
	if c > best {
		idx = 2
	}
	return idx
}

func (s *PlannerSystem) tryBuildWall() {
	candidates := s.wallCandidates(config.WallCandidateCap)
	if len(candidates) == 0 {
		s.canBuildWall = false
		return
	}
	pick := candidates[s.rng.Intn(len(candidates))]
	if s.game.BuyStructure(defs.BuildingWall, pick.node) {
		s.numWalls++
	}
}

func (s *PlannerSystem) tryBuildTower() {
	candidates := s.wallCandidates(config.TowerCandidateCap)
	if len(candidates) == 0 {
		s.canBuildTower = false
		return
	}
	pick := candidates[s.rng.Intn(len(candidates))]
	if s.game.BuyStructure(*s.pendingTower, pick.node) {
		s.numDefenders++
		s.pendingTower = nil
	}
}

// wallCandidates собирает клетки рядом с путём, перекрытие которых не
// рвёт путь, взвешенные длиной объездного маршрута. После заполнения
// пула слабейший кандидат вытесняется более тяжёлым, но общее число
// рассмотренных клеток ограничено бюджетом.
func (s *PlannerSystem) wallCandidates(limit int) []wallCandidate {
	var candidates []wallCandidate
	seen := make(map[grid.Node]bool)
	considered := 0

	for _, pathNode := range s.path.Nodes() {
		for _, node := range grid.SelfWithSuccessors(pathNode) {
			considered++
			if seen[node] {
				continue
			}
			seen[node] = true

			if !s.validCandidate(node) {
				continue
			}
			weight := s.candidateWeight(node)
			if weight <= 0 {
				continue
			}

			if len(candidates) < limit {
				candidates = append(candidates, wallCandidate{node: node, weight: weight})
			} else if considered < config.CandidateIterBudget {
				minIdx := 0
				for i := 1; i < len(candidates); i++ {
					if candidates[i].weight < candidates[minIdx].weight {
						minIdx = i
					}
				}
				if weight > candidates[minIdx].weight {
					candidates[minIdx] = wallCandidate{node: node, weight: weight}
				}
			} else {
				return candidates
			}
		}
	}
	return candidates
}

// validCandidate: клетка годится, если она на пути или в 8-соседстве с
// ним и не занята. Старт и финиш отсеиваются уже по весу: их
// перекрытие рвёт путь.
func (s *PlannerSystem) validCandidate(node grid.Node) bool {
	if s.field.IsNodeOccupied(node) {
		return false
	}
	if s.pathSet[node] {
		return true
	}
	for _, nb := range grid.AllNeighbors(node) {
		if s.pathSet[nb] {
			return true
		}
	}
	return false
}

// candidateWeight — длина пути при гипотетически перекрытой клетке.
func (s *PlannerSystem) candidateWeight(node grid.Node) int {
	detour := grid.FindPathWithBlocked(s.field, s.field.Start(), s.field.End(), &node)
	if detour == nil {
		return 0
	}
	return detour.Size()
}
