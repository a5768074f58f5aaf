// cmd/game/schema.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-survivors/internal/defs"
)

var schemaCmd = &cobra.Command{
	Use:       "schema <spells|enemies>",
	Short:     "Print the JSON Schema for a definitions file",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"spells", "enemies"},
	RunE:      runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	var schema any
	switch args[0] {
	case "spells":
		schema = defs.SpellSchema()
	case "enemies":
		schema = defs.EnemySchema()
	default:
		return fmt.Errorf("unknown definitions file %q (want spells or enemies)", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}
