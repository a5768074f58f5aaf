// internal/defs/schema.go
package defs

import (
	"github.com/invopop/jsonschema"
)

// SpellFile models the canonical array format of data/spells.json, shared
// with the schema generator so editors can validate authored definitions.
type SpellFile []SpellDefinition

// EnemyFile models the canonical array format of data/enemies.json.
type EnemyFile []EnemyDefinition

// SpellSchema reflects a JSON schema for the spell definitions file.
func SpellSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := reflector.Reflect(new(SpellFile))
	schema.Title = "Spell definitions"
	schema.Description = "Validates entries in internal/defs/data/spells.json"
	return schema
}

// EnemySchema reflects a JSON schema for the enemy definitions file.
func EnemySchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := reflector.Reflect(new(EnemyFile))
	schema.Title = "Enemy definitions"
	schema.Description = "Validates entries in internal/defs/data/enemies.json"
	return schema
}
