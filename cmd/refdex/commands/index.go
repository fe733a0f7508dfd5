package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/refdex/internal/ui/output"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Build the reference index for the configured corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(os.Stderr)
			if err := c.app.Index(cmd.Context(), progressPrinter(out)); err != nil {
				return err
			}
			fmt.Fprintln(out, out.String("index complete").Bold())
			return nil
		},
	}
}
