// logscan counts the IPv4 addresses and user=<name> tokens of a log file.
package main

import (
	"os"

	"github.com/Jranae/RegularExpressions-JRB/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteLogScan())
}
