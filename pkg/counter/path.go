package counter

import "strings"

// Output file naming.
const (
	documentSuffix = ".txt"
	outputSuffix   = "_wc.txt"
)

// OutputPath derives the report path from the document path by replacing the
// first occurrence of ".txt" with "_wc.txt". The replacement is a plain
// substring substitution: "archive.v2.txt" becomes "archive.v2_wc.txt",
// "a.txt.txt" becomes "a_wc.txt.txt", and a path without ".txt" is returned
// unchanged.
func OutputPath(documentPath string) string {
	return strings.Replace(documentPath, documentSuffix, outputSuffix, 1)
}
