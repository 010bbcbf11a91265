// Package tui renders sorting runs directly on a terminal screen with tcell.
// It backs the "run --live" command, where no menu is needed.
package tui
