// Package key defines the key events that modes and components consume.
//
// Terminal events from the backend are converted into Event values once, at
// the edge of the run loop, so the rest of the input system never depends
// on the terminal library.
package key
