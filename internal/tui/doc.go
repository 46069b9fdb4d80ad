// Package tui provides the terminal side of qit.
//
// It handles:
//   - Structured logging to the console and an optional rotating log file (Splog)
//   - Terminal detection and colour profile selection
//   - Colours (using lipgloss)
//   - Interactive prompts (using survey)
package tui
