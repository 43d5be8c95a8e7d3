package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/ccfront/internal/ir"
	"github.com/cwbudde/ccfront/internal/lexer"
	"github.com/cwbudde/ccfront/internal/parser"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a C source file and print its typed AST",
	Long: `Parse a C99 translation unit and print the resulting typed AST as an
indented tree, one node per line annotated with the type the semantic
analysis assigned it. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	stream, bag, err := openStream(args)
	if err != nil {
		return err
	}

	l := lexer.New(stream, bag, uchar.NewInterner())
	p := parser.New(l, bag)
	prog, ok := p.Parse()

	if ok && !bag.HasErrors() {
		ir.NewPrinter(os.Stdout).Print(prog)
	}

	if bag.HasErrors() {
		fmt.Fprintln(os.Stderr, bag.RenderAll())
		return fmt.Errorf("parse failed with %d error(s)", bag.ErrorCount())
	}
	if !ok {
		return fmt.Errorf("parse failed")
	}
	return nil
}
