package roster

// Badge is a colored type label on a filled slot.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Slot is one display position. Index is the slot's visual position and
// doubles as the argument to Controller.Remove for filled slots.
type Slot struct {
	Index    int      `json:"index"`
	Filled   bool     `json:"filled"`
	Creature Creature `json:"creature,omitzero"`
	Badges   []Badge  `json:"badges,omitempty"`
}

// Render maps roster contents to exactly MaxSize slots: one filled slot per
// creature in order, then empty placeholders. Creatures beyond MaxSize are
// not shown.
func Render(members []Creature) []Slot {
	slots := make([]Slot, MaxSize)
	for i := range slots {
		slots[i].Index = i
		if i >= len(members) {
			continue
		}

		c := members[i].clone()
		badges := make([]Badge, len(c.Types))
		for j, t := range c.Types {
			badges[j] = Badge{Label: t, Color: TypeColor(t)}
		}
		slots[i].Filled = true
		slots[i].Creature = c
		slots[i].Badges = badges
	}
	return slots
}

// FilledCount returns the number of filled slots.
func FilledCount(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.Filled {
			n++
		}
	}
	return n
}
