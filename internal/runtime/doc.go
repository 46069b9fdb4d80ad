// Package runtime provides the execution context for qit commands.
//
// It bundles the dependencies an action needs for one invocation: the git
// client, the status source, the resolved configuration, logging and the
// output stream.
package runtime
