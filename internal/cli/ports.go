package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List available MIDI input ports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, closeSrc := newSource(newLogger(false, cmd.ErrOrStderr()))
			defer closeSrc()

			ports := src.ListInPorts()
			if len(ports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no MIDI input ports found")
				return nil
			}
			for _, name := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
