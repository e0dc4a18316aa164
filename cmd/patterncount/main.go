// patterncount counts the matches of each line of a pattern file in a
// document and writes the counts next to the document.
package main

import (
	"os"

	"github.com/Jranae/RegularExpressions-JRB/internal/cli"
)

func main() {
	os.Exit(cli.ExecutePatternCount())
}
