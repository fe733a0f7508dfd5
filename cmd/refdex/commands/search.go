package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/refdex/internal/ui/output"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <node>",
		Short: "Show what references a node and what it depends on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := filepath.ToSlash(args[0])

			progress := output.New(os.Stderr)
			res, err := c.app.Search(cmd.Context(), target, progressPrinter(progress))
			if err != nil {
				return err
			}

			out := output.New(os.Stdout)
			renderResult(os.Stdout, out, target, res)
			return nil
		},
	}
}
