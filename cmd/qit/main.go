package main

import (
	"os"

	"qit.dev/qit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	os.Exit(cli.Execute(rootCmd))
}
