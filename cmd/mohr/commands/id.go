package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hossein1376/mohr/internal/keyfile"
)

func idCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print the session ID of a saved key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keyfile.Load(keyPath)
			if err != nil {
				return err
			}
			if short {
				fmt.Println(kp.ID().Short())
			} else {
				fmt.Println(kp.ID())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print the truncated log form")

	return cmd
}
