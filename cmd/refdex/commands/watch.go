package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/refdex/internal/ui/output"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the index whenever the corpus changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(os.Stderr)
			return c.app.Watch(cmd.Context(), progressPrinter(out))
		},
	}
}
