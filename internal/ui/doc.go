// Package ui provides the components drawn inside dial's frame.
//
// The screen is an outer rounded box split into a left column (search box
// above the snippet list) and the editor on the right. The create form is
// drawn as a popup over everything else while popup mode is active.
//
// Components share a single State owned by the run loop. Each component
// renders into the rectangle it is given and interprets the keys the
// active mode routes to it:
//
//	┌──────────────────────── Dial ─────────────────────────┐
//	│┌ Search ──────┐┌ Editor ─────────────────────────────┐│
//	│└──────────────┘│                                     ││
//	│┌ Snippets ────┐│                                     ││
//	││ > Title      ││                                     ││
//	││   go         ││                                     ││
//	│└──────────────┘└─────────────────────────────────────┘│
//	╰ Mode: Select ─ [q] Quit │ [s] Select │ ... ───────────╯
package ui
