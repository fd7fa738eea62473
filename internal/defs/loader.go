// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDefaults populates every library with the built-in definitions.
func LoadDefaults() {
	BuildingDefs = DefaultBuildingDefs()
	AttackerDefs = DefaultAttackerDefs()
	UpgradeDefs = DefaultUpgradeDefs()
}

// LoadBuildingDefinitions reads the building configuration file and
// populates the BuildingDefs library.
func LoadBuildingDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read building definitions file: %w", err)
	}

	var buildingDefs []BuildingDefinition
	if err := json.Unmarshal(file, &buildingDefs); err != nil {
		return fmt.Errorf("failed to unmarshal building definitions: %w", err)
	}

	BuildingDefs = make(map[BuildingType]BuildingDefinition)
	for _, def := range buildingDefs {
		BuildingDefs[def.Type] = def
	}

	fmt.Printf("Loaded %d building definitions\n", len(BuildingDefs))
	return nil
}

// LoadAttackerDefinitions reads the attacker configuration file and
// populates the AttackerDefs library.
func LoadAttackerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read attacker definitions file: %w", err)
	}

	var attackerDefs []AttackerDefinition
	if err := json.Unmarshal(file, &attackerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal attacker definitions: %w", err)
	}

	AttackerDefs = make(map[AttackerType]AttackerDefinition)
	for _, def := range attackerDefs {
		AttackerDefs[def.Type] = def
	}

	fmt.Printf("Loaded %d attacker definitions\n", len(AttackerDefs))
	return nil
}

// Validate checks that every type the simulation can reference has a
// definition. A gap here is corrupt static data: callers should abort
// startup instead of handling it per tick.
func Validate() error {
	for _, bt := range []BuildingType{BuildingWall, BuildingArrow, BuildingCannon} {
		def, ok := BuildingDefs[bt]
		if !ok {
			return fmt.Errorf("missing building definition: %s", bt)
		}
		if bt != BuildingWall && def.Attack == nil {
			return fmt.Errorf("building definition %s has no attack payload", bt)
		}
	}
	for _, at := range []AttackerType{AttackerOrcWarrior, AttackerSpider, AttackerGolem} {
		def, ok := AttackerDefs[at]
		if !ok {
			return fmt.Errorf("missing attacker definition: %s", at)
		}
		if def.GroupSize < 1 {
			return fmt.Errorf("attacker definition %s has group size %d", at, def.GroupSize)
		}
	}
	return nil
}
