// Command teambuilder assembles a six-Pokémon team from PokeAPI lookups.
package main

import (
	"os"

	"github.com/Iron-Ham/teambuilder/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
