package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/iconic/internal/app"
	"go.trai.ch/iconic/internal/core/domain"
	"go.trai.ch/iconic/internal/ui/style"
)

func (c *CLI) newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [icons...]",
		Short: "Resolve icon names to file paths",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			size, _ := cmd.Flags().GetInt("size")
			scale, _ := cmd.Flags().GetInt("scale")
			exts, _ := cmd.Flags().GetStringSlice("ext")
			theme, _ := cmd.Flags().GetString("theme")
			fallback, _ := cmd.Flags().GetString("fallback")

			results, err := c.app.Lookup(cmd.Context(), args, app.LookupOptions{
				Size:          size,
				Scale:         scale,
				Extensions:    exts,
				Theme:         theme,
				FallbackTheme: fallback,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			missing := false
			for _, name := range args {
				path := results[name]
				if path == "" {
					missing = true
					_, _ = fmt.Fprintf(out, "%s %s\n", style.Muted.Render(style.Cross), style.Muted.Render(name))
					continue
				}
				if len(args) == 1 {
					_, _ = fmt.Fprintln(out, style.Path.Render(path))
					continue
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Muted.Render(name+":"), style.Path.Render(path))
			}
			if missing {
				return domain.ErrIconNotFound
			}
			return nil
		},
	}
	cmd.Flags().IntP("size", "s", 48, "Icon size in pixels")
	cmd.Flags().Int("scale", 1, "Display scale factor")
	cmd.Flags().StringSliceP("ext", "e", []string{"png", "svg", "xpm"}, "File extensions in priority order")
	cmd.Flags().StringP("theme", "t", "", "Theme to search (defaults to the configured theme)")
	cmd.Flags().String("fallback", "", "Theme to try when the selected theme is not installed")
	return cmd
}
