// cmd/simulate/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	game "go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
)

// Headless-прогон: раунды из YAML-сценария с фиксированным шагом,
// без отрисовки. Используется для балансировки и регрессий.
func main() {
	scenarioPath := flag.String("scenario", "assets/scenario.yaml", "path to a scenario file")
	seed := flag.Int64("seed", 0, "override the scenario seed (0 keeps it)")
	step := flag.Float64("step", 1.0/60.0, "fixed simulation step in seconds")
	flag.Parse()

	defs.LoadDefaults()
	if err := defs.Validate(); err != nil {
		log.Fatal(err)
	}

	sc, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		sc.Seed = *seed
	}

	g := game.NewGame(sc.Seed)
	fmt.Printf("Scenario %q, seed %d, %d rounds\n", sc.Name, sc.Seed, len(sc.Rounds))

	for i, round := range sc.Rounds {
		for _, up := range round.Upgrades {
			if !g.BuyUpgrade(defs.AttackerType(up.Attacker), defs.UpgradeType(up.Upgrade)) {
				log.Printf("round %d: upgrade %s/%s rejected", i+1, up.Attacker, up.Upgrade)
			}
		}
		for _, t := range round.Queue {
			if !g.QueueAttacker(defs.AttackerType(t)) {
				log.Printf("round %d: queue %s rejected", i+1, t)
			}
		}
		if !g.StartRound() {
			log.Fatalf("round %d: could not start", i+1)
		}

		elapsed := 0.0
		for g.RoundSystem.RoundActive() {
			g.Update(*step)
			elapsed += *step
			if sc.MaxTime > 0 && elapsed > sc.MaxTime {
				log.Fatalf("round %d: exceeded %g seconds", i+1, sc.MaxTime)
			}
		}

		stats := g.EconomySystem.Stats
		fmt.Printf("Round %d: %.1fs, killed %d, reached %d, damage %.0f, lives %d, def gold %d, atk gold %d\n",
			i+1, stats.RoundDuration, stats.NumKilled, stats.NumReachedEnd,
			stats.DamageDealt, g.EconomySystem.Defender.Lives,
			g.EconomySystem.Defender.Gold, g.EconomySystem.Attacker.Gold)

		if g.EconomySystem.Defender.Lives <= 0 {
			fmt.Println("Defender is out of lives, attacker wins")
			return
		}
	}
	fmt.Println("Scenario complete, defender survived")
}
