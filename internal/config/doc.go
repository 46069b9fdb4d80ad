// Package config manages qit configuration.
//
// Settings are read, in increasing order of precedence, from:
//   - built-in defaults
//   - an optional YAML file (QIT_CONFIG, or <user config dir>/qit/config.yaml)
//   - QIT_* environment variables
package config
