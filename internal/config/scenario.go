// internal/config/scenario.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioRound — один раунд сценария: что поставить в очередь и какие
// апгрейды купить перед стартом.
type ScenarioRound struct {
	Queue    []string          `yaml:"queue"`
	Upgrades []ScenarioUpgrade `yaml:"upgrades"`
}

type ScenarioUpgrade struct {
	Attacker string `yaml:"attacker"`
	Upgrade  string `yaml:"upgrade"`
}

// Scenario описывает прогон headless-симуляции.
type Scenario struct {
	Name    string          `yaml:"name"`
	Seed    int64           `yaml:"seed"`
	Rounds  []ScenarioRound `yaml:"rounds"`
	MaxTime float64         `yaml:"max_time"` // секунд на раунд, 0 — без лимита
}

// LoadScenario читает сценарий из YAML-файла.
func LoadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if len(sc.Rounds) == 0 {
		return nil, fmt.Errorf("scenario %q has no rounds", sc.Name)
	}
	return &sc, nil
}
