package main

import (
	"github.com/Veraticus/salestax/internal/tui"
	"github.com/Veraticus/salestax/internal/tui/themes"
	"github.com/spf13/cobra"
)

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Build a basket line by line and watch the receipt update",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			final, err := tui.Run(cmd.Context(), tui.WithTheme(themes.ByName(loadedConfig().TUI.Theme)))
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), final)
		},
	}
}
