// Package git provides the git operations qit needs.
//
// Mutating operations are executed by spawning the git binary through a
// Runner, which keeps them identical to what a user would type and lets
// tests substitute a recording fake. Read-only status queries go through
// go-git so they never spawn a process.
//
// This package should be the only place where git commands are executed.
package git
