// Command ccfront is the command-line front end to the C99 lexer, type
// system, and parser/semantic analyzer: a debugging and inspection tool,
// not a code generator.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/ccfront/cmd/ccfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
