package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/tinge-dev/tinge"
)

func newStripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip [glob...]",
		Short: "Remove ANSI escape sequences from files or stdin",
		Long: `Remove ANSI escape sequences from the named files, or from stdin
when no globs are given.

Globs use doublestar patterns, so "logs/**/*.txt" matches recursively.
By default the cleaned text is written to stdout. Use --write to rewrite
each matched file in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			verbosity, _ := cmd.Flags().GetCount("verbose")
			log := createLogger(cmd.ErrOrStderr(), verbosity)

			if len(args) == 0 {
				if write {
					return fmt.Errorf("--write requires file arguments")
				}
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				_, err = io.WriteString(cmd.OutOrStdout(), tinge.Strip(string(data)))
				return err
			}

			var paths []string
			for _, pattern := range args {
				matches, err := doublestar.FilepathGlob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %q: %w", pattern, err)
				}
				log.Debug("glob expanded", "pattern", pattern, "matches", len(matches))
				paths = append(paths, matches...)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no files matched")
			}

			for _, path := range paths {
				if err := stripFile(cmd.OutOrStdout(), path, write); err != nil {
					return err
				}
				log.Info("stripped", "path", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Rewrite matched files in place")
	return cmd
}

func stripFile(out io.Writer, path string, write bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	stripped := tinge.Strip(string(data))

	if !write {
		_, err := io.WriteString(out, stripped)
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(stripped), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
