// Package mode provides the top-level interaction modes of dial.
//
// Exactly one mode is active at a time:
//   - Command: the initial mode; single keys switch to the other modes or quit
//   - Select: browse the snippet list
//   - Search: edit the query that filters the list
//   - Edit: edit the selected snippet
//   - Popup: fill in the create form
//
// # Architecture
//
// Every mode implements the Mode interface. The Manager owns the registered
// modes, runs the Exit and Enter hooks on each transition and notifies
// OnChange callbacks afterwards.
//
// Modes do not edit text themselves. HandleKey returns a Result that either
// requests a transition, asks the caller to quit, or asks the caller to route
// the key to the component that belongs to the mode. Command-mode bindings
// are therefore inert in every other mode.
//
// # Mode Lifecycle
//
//	┌─────────┐    Enter()    ┌─────────┐
//	│ Mode A  │ ───────────▶ │ Mode B  │
//	└─────────┘              └─────────┘
//	     │                        │
//	     │  Exit()                │
//	     ◀────────────────────────┘
//
// When switching modes:
// 1. Current mode's Exit() is called
// 2. New mode's Enter() is called
// 3. Mode change callbacks are notified
//
// Enter and Exit hooks own the focus side effects: Search, Edit and Popup
// focus their input on entry and Command blurs everything.
//
// Escape is not bound by any mode. The application handles it before
// dispatch because leaving a mode also syncs and saves the records.
package mode
