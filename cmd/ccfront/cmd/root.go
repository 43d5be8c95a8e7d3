package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ccfront [file]",
	Short: "A C99 lexer, type checker, and parser front end",
	Long: `ccfront is a Go implementation of a C99 compiler front end: lexing,
the type system, and a parser/semantic analyzer that produces a typed AST.

It stops at the typed AST — there is no code generator here. Running it
with a bare file argument is shorthand for "ccfront check file.c".`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
