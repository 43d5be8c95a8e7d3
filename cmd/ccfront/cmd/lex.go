package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/lexer"
	"github.com/cwbudde/ccfront/internal/source"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/cwbudde/ccfront/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a C source file and print the resulting tokens",
	Long: `Tokenize (lex) a C99 translation unit and print the resulting tokens,
one per line. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", true, "show each token's line:column")
}

func runLex(cmd *cobra.Command, args []string) error {
	stream, bag, err := openStream(args)
	if err != nil {
		return err
	}

	l := lexer.New(stream, bag, uchar.NewInterner())
	count := 0
	func() {
		defer bag.Recover()
		for {
			tok := l.Next()
			if tok.Type == token.EOF {
				break
			}
			count++
			if lexShowPos {
				fmt.Printf("%-12s %-20q @%s\n", tok.Type, tok.Literal, tok.Pos)
			} else {
				fmt.Printf("%-12s %q\n", tok.Type, tok.Literal)
			}
		}
	}()

	if bag.HasErrors() {
		fmt.Fprintln(os.Stderr, bag.RenderAll())
		return fmt.Errorf("lexing failed with errors")
	}
	return nil
}

// openStream reads the named file (or stdin when args is empty) into a
// source.Stream and its paired diagnostic bag.
func openStream(args []string) (*source.Stream, *diag.Bag, error) {
	if len(args) == 1 {
		stream, err := source.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("error reading file: %w", err)
		}
		return stream, diag.NewBag(args[0], stream.Source()), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return source.New("<stdin>", string(data)), diag.NewBag("<stdin>", string(data)), nil
}
