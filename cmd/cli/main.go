// tracediff - Execution Trace Comparison Tool
//
// tracediff compares an expected execution trace with an actual one and
// prints the first record where they diverge, with the preceding record
// for context.
package main

import (
	"os"

	"github.com/ccollicutt/tracediff/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
