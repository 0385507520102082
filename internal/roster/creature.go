package roster

import "slices"

// Creature is a resolved lookup result. Values handed out by this package
// are copies; mutating one never changes roster state.
type Creature struct {
	Name      string   `json:"name"`
	SpriteURL string   `json:"sprite_url"`
	Types     []string `json:"types"`
}

// clone returns a deep copy of c.
func (c Creature) clone() Creature {
	c.Types = slices.Clone(c.Types)
	return c
}
