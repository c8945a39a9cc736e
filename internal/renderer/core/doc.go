// Package core provides the screen primitives shared by the renderer
// packages and the UI: colors, styles, cells and screen geometry.
// It has no dependency on a terminal library so that the backend, the
// highlighter and the components can all use it without import cycles.
package core
