package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/iconic/internal/ui/style"
)

func (c *CLI) newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List installed icon themes",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			current := c.app.Config().Theme
			for _, name := range c.app.InstalledThemes() {
				if name == current {
					_, _ = fmt.Fprintf(out, "%s %s\n", style.ThemeName.Render(style.Dot), style.ThemeName.Render(name))
					continue
				}
				_, _ = fmt.Fprintf(out, "  %s\n", name)
			}
		},
	}
}
