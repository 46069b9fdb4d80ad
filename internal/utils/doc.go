// Package utils provides small helpers shared by the CLI.
package utils
