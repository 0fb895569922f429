package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinge-dev/tinge"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <file>",
		Short: "Render every style defined in a TOML theme file",
		Long: `Load a TOML theme file and print each named style applied to its
own name, so the theme can be previewed in the terminal:

  [styles.heading]
  fg = "bright-blue"
  attrs = ["bold"]

  [styles.warn]
  fg = "yellow"
  bg = "#333333"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := tinge.LoadTheme(args[0])
			if err != nil {
				return fmt.Errorf("failed to load theme: %w", err)
			}
			if theme == nil {
				return fmt.Errorf("no such theme file: %s", args[0])
			}

			for _, name := range theme.Names() {
				style, _ := theme.Style(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s  %q\n",
					name, tinge.Styled(name, style), style.Prefix())
			}
			return nil
		},
	}
}
