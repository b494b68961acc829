// Package report renders descriptions and test results for terminals.
// Colour follows github.com/fatih/color, so it is disabled when stdout is
// not a terminal or NO_COLOR is set.
package report
