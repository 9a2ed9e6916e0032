// Command glox is the CLI entry point: a REPL by default, a script
// runner via `glox run <file>`, and a multi-file syntax checker via
// `glox check <files...>`. Generalized from the teacher's main.go
// (bufio.Reader REPL + runFile) into a cobra command tree, grounded on
// the rami3l/golox and sam-decook-lox manifests in the retrieval pack
// for which libraries a Lox-in-Go CLI reaches for.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	formatter "github.com/t-tomalak/logrus-easy-formatter"
	"github.com/xyproto/env/v2"

	"github.com/loxscript/glox/internal/ast"
	"github.com/loxscript/glox/internal/driver"
	"github.com/loxscript/glox/internal/parser"
	"github.com/loxscript/glox/internal/scanner"
	"github.com/loxscript/glox/internal/token"
)

const version = "v0.1.0"

var printAST bool

func main() {
	configureLogging()

	root := &cobra.Command{
		Use:     "glox",
		Short:   "glox is a tree-walking interpreter for the Lox language",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl()
		},
	}
	root.PersistentFlags().BoolVar(&printAST, "print-ast", false, "with check, print the expression tree of each parsed expression statement (run and the REPL ignore it)")

	root.AddCommand(runCmd(), checkCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogging() {
	logrus.SetFormatter(&formatter.Formatter{
		LogFormat:       "%time% [%lvl%] %msg%\n",
		TimestampFormat: "15:04:05",
	})
	level := env.StrOr("GLOX_LOG_LEVEL", "info")
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "execute a Lox script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			d := driver.New(driverPrinter())
			if err := d.Run(string(src)); err != nil {
				printError(err)
				os.Exit(65)
			}
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <files...>",
		Short: "scan and parse each file without executing it, reporting every failing file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *multierror.Error
			for _, path := range args {
				if err := checkFile(path); err != nil {
					result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
				}
			}
			if result != nil {
				return result.ErrorOrNil()
			}
			return nil
		},
	}
}

func checkFile(path string) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	toks, err := scanner.Scan(string(src))
	if err != nil {
		return err
	}
	pos := 0
	for toks[pos].Type != token.EOF {
		stmt, consumed, err := parser.ParseStatement(toks, pos)
		if err != nil {
			return err
		}
		if printAST {
			printStmtAST(stmt)
		}
		pos += consumed
	}
	return nil
}

func repl() error {
	prompt := env.StrOr("GLOX_PROMPT", "> ")
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Printf("glox %s (type '.q' to exit)\n", version)
	d := driver.New(driverPrinter())
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == ".q" || trimmed == "exit" {
			break
		}
		if trimmed == "" {
			continue
		}
		if err := d.RunInteractiveLine(line); err != nil {
			printError(err)
		}
	}
	return nil
}

func printError(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
}

func printStmtAST(s ast.Stmt) {
	if es, ok := s.(*ast.ExprStmt); ok {
		p := &ast.Printer{}
		fmt.Fprintln(os.Stderr, p.Print(es.Expression))
	}
}

func driverPrinter() *stdoutAdapter {
	return &stdoutAdapter{}
}

// stdoutAdapter satisfies interp.Printer by writing directly to stdout,
// one line per call, with no internal buffering -- the REPL and `run`
// need output interleaved with prompts/errors as it happens.
type stdoutAdapter struct{}

func (stdoutAdapter) Println(s string) { fmt.Println(s) }
