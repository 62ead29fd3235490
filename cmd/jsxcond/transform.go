package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/jsxcond/jsxcond/internal/config"
	"github.com/jsxcond/jsxcond/pkg/jsxcond"
)

var (
	ErrOutputWithManyFiles = errors.New("-o requires exactly one input file")
	ErrDiffWithOutput      = errors.New("--diff and -o are mutually exclusive")
)

func transformCmd() *cobra.Command {
	var write, showDiff bool
	var output string

	cmd := &cobra.Command{
		Use:   "transform [files...]",
		Short: "Rewrite pseudo-elements in source files",
		Long: `Rewrite <Condition> and <Switch>/<Switch.Case> pseudo-elements into
plain conditional expressions.

Examples:
  jsxcond transform app.jsx             # Transform one file to stdout
  jsxcond transform -w src/*.jsx        # Rewrite files in place
  jsxcond transform --diff app.jsx      # Preview the rewrite as a diff
  cat app.jsx | jsxcond transform -     # Transform from stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			opts := cfg.Options()

			if len(args) == 0 {
				args = []string{"-"}
			}
			if output != "" && len(args) != 1 {
				return ErrOutputWithManyFiles
			}
			if showDiff && output != "" {
				return ErrDiffWithOutput
			}

			for _, file := range args {
				if err := transformFile(file, opts, write, showDiff, output, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a colored diff instead of the result")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// transformFile runs one independent single-file pass. A fatal
// transform error aborts the file and never emits partial output.
func transformFile(path string, opts jsxcond.Options, write, showDiff bool, output string, stdout io.Writer) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}

	// Fast path: files that never mention the vocabulary are passed
	// through untouched, without a parse.
	if !jsxcond.ContainsPseudo(src, opts) {
		if write || showDiff {
			return nil
		}
		return emit(src, path, output, false, stdout)
	}

	result, err := jsxcond.Transform(src, opts)
	if err != nil {
		return err
	}

	if showDiff {
		printDiff(stdout, src, result)
		return nil
	}
	return emit(result, path, output, write, stdout)
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func emit(result, path, output string, write bool, stdout io.Writer) error {
	switch {
	case output != "":
		return os.WriteFile(output, []byte(result), 0o644)
	case write && path != "-":
		return os.WriteFile(path, []byte(result), 0o644)
	default:
		_, err := io.WriteString(stdout, result)
		return err
	}
}

func printDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Fprint(w, color.GreenString("%s", d.Text))
		case diffmatchpatch.DiffDelete:
			fmt.Fprint(w, color.RedString("%s", d.Text))
		default:
			fmt.Fprint(w, d.Text)
		}
	}
	fmt.Fprintln(w)
}
