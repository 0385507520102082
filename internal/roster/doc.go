// Package roster holds the team builder's core: the creature record, the
// six-slot roster, the controller that applies add/remove/clear, and the
// pure render step that turns roster state into slot descriptors.
//
// # Main Types
//
//   - [Creature]: a resolved creature (name, sprite URL, type labels)
//   - [Roster]: ordered creatures, never more than [MaxSize]
//   - [Controller]: owns a Roster and a [Lookup]; records the status line
//   - [Slot]: one of exactly [MaxSize] display positions, filled or empty
//
// # Rendering
//
// [Render] is a pure function of roster contents. It always returns
// [MaxSize] slots: filled slots first, in roster order, then empty
// placeholders. Painting the slots is left to the UI layer.
//
// # Concurrency
//
// [Controller] is safe for concurrent use. The lock is released while a
// lookup is in flight and capacity is re-checked before appending, so the
// roster never exceeds [MaxSize] even when adds race.
package roster
