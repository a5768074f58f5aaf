// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/spells.json
var embeddedSpells []byte

//go:embed data/enemies.json
var embeddedEnemies []byte

// SpellLibrary holds all spell definitions, keyed by ID.
var SpellLibrary map[string]SpellDefinition

// EnemyLibrary holds all enemy definitions, keyed by ID.
var EnemyLibrary map[string]EnemyDefinition

// LoadDefaults populates both libraries from the embedded definition files.
func LoadDefaults() error {
	if err := loadSpells(embeddedSpells); err != nil {
		return err
	}
	return loadEnemies(embeddedEnemies)
}

// LoadSpellDefinitions reads a spell definitions file, replacing the
// embedded library.
func LoadSpellDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("defs: read spell definitions: %w", err)
	}
	return loadSpells(data)
}

// LoadEnemyDefinitions reads an enemy definitions file, replacing the
// embedded library.
func LoadEnemyDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("defs: read enemy definitions: %w", err)
	}
	return loadEnemies(data)
}

func loadSpells(data []byte) error {
	var spellDefs []SpellDefinition
	if err := json.Unmarshal(data, &spellDefs); err != nil {
		return fmt.Errorf("defs: unmarshal spell definitions: %w", err)
	}
	SpellLibrary = make(map[string]SpellDefinition, len(spellDefs))
	for _, def := range spellDefs {
		SpellLibrary[def.ID] = def
	}
	return nil
}

func loadEnemies(data []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("defs: unmarshal enemy definitions: %w", err)
	}
	EnemyLibrary = make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}
