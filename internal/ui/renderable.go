// Package ui holds interfaces shared by the terminal rendering layers.
package ui

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}
