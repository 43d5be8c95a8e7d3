package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/ccfront/internal/lexer"
	"github.com/cwbudde/ccfront/internal/parser"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and type-check a C source file, reporting diagnostics",
	Long: `Parse a C99 translation unit and run it through the parser's semantic
analysis, reporting every diagnostic. Produces no output besides
diagnostics and a final summary line. Reads from stdin when no file is
given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	stream, bag, err := openStream(args)
	if err != nil {
		return err
	}

	l := lexer.New(stream, bag, uchar.NewInterner())
	p := parser.New(l, bag)
	prog, ok := p.Parse()

	if bag.HasErrors() {
		fmt.Fprintln(os.Stderr, bag.RenderAll())
		return fmt.Errorf("check failed with %d error(s)", bag.ErrorCount())
	}
	if !ok {
		return fmt.Errorf("check failed")
	}

	fmt.Printf("ok: %d top-level declaration(s)\n", len(prog.Decls))
	return nil
}
