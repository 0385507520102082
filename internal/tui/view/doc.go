// Package view provides stateless view components for the team builder TUI.
//
// Each component takes a small state struct and returns a rendered string,
// so the main model stays free of layout code and views can be tested
// without a running program.
//
// # Main Types
//
//   - [RosterView]: the six roster slots as cards, two rows of three
//   - [StatusView]: the single status line (error message or pending spinner)
//   - [HelpBarView]: key hints for the focused area
//
// # Basic Usage
//
//	rv := view.NewRosterView(24)
//	out := rv.Render(view.RosterState{
//	    Slots:    controller.Slots(),
//	    Selected: 0,
//	}, width)
package view
