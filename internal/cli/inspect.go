package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nfaregex/regexlib"
)

func (a *app) testCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test PATTERN SUBJECT",
		Short: "Print true if the pattern accepts the subject, false otherwise.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := a.compile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), re.Test(args[1]))
			return nil
		},
	}
}

func (a *app) postfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix PATTERN",
		Short: "Show the pattern with explicit concatenation and in postfix order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infix, err := regexlib.InsertConcat(args[0])
			if err != nil {
				return err
			}
			re, err := a.compile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "infix:   %s\n", infix)
			fmt.Fprintf(out, "postfix: %s\n", re.Postfix())
			fmt.Fprintf(out, "states:  %d\n", re.NFA().Len())
			return nil
		},
	}
}

func (a *app) dotCommand() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "dot PATTERN",
		Short: "Export the pattern's NFA as a Graphviz digraph.",
		Example: `  nfagrep dot '(a|b)*abb' | dot -Tpng -o nfa.png
  nfagrep dot -o nfa.dot 'x?y+'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := a.compile(args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outFile != "-" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("cannot create %s: %w", outFile, err)
				}
				defer f.Close()
				w = f
			}
			if err := regexlib.ExportDOT(w, re.NFA()); err != nil {
				return fmt.Errorf("write dot: %w", err)
			}
			if outFile != "-" {
				a.log.Info("DOT written", "file", outFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "-", "output file, - for stdout")
	return cmd
}
