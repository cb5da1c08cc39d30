// Package tui holds the in-process terminal renderers and CLI decorations.
package tui
