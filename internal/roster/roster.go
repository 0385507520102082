package roster

import (
	"slices"

	"github.com/Iron-Ham/teambuilder/internal/errors"
)

// MaxSize is the number of slots in a team.
const MaxSize = 6

// Roster is an ordered list of creatures; insertion order is display order.
// The zero value is an empty roster. Roster is not safe for concurrent use;
// Controller provides the locking.
type Roster struct {
	members []Creature
}

// Len returns the number of creatures on the roster.
func (r *Roster) Len() int {
	return len(r.members)
}

// Full reports whether every slot is taken.
func (r *Roster) Full() bool {
	return len(r.members) >= MaxSize
}

// Append adds c to the end of the roster. It fails with ErrRosterFull
// when no slot is free.
func (r *Roster) Append(c Creature) error {
	if r.Full() {
		return errors.NewRosterError("add", errors.ErrRosterFull).WithSize(len(r.members)).WithName(c.Name)
	}
	r.members = append(r.members, c.clone())
	return nil
}

// RemoveAt deletes the creature at index, shifting later creatures left.
// An out-of-range index leaves the roster unchanged and returns false.
func (r *Roster) RemoveAt(index int) bool {
	if index < 0 || index >= len(r.members) {
		return false
	}
	r.members = slices.Delete(r.members, index, index+1)
	return true
}

// Clear empties the roster.
func (r *Roster) Clear() {
	r.members = nil
}

// Members returns a copy of the roster contents in display order.
func (r *Roster) Members() []Creature {
	out := make([]Creature, len(r.members))
	for i, c := range r.members {
		out[i] = c.clone()
	}
	return out
}
