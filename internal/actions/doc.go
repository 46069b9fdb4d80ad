// Package actions provides the business logic behind each qit command.
//
// Each action corresponds to a qit command (commit, push, undo, log, switch,
// status) and turns its options into one or more git invocations.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the git client, the
//     status source, configuration and Splog
//   - Actions are stateless; git and the working tree are the only source of truth
//   - Every git process is awaited before the next step starts, and the
//     first failure is returned without retry or rollback
package actions
