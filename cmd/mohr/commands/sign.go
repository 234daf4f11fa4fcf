package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hossein1376/mohr/internal/keyfile"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign MESSAGE...",
		Short: "Sign one or more messages with a saved key pair",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keyfile.Load(keyPath)
			if err != nil {
				return err
			}
			sig, err := kp.Sign(toMessages(args)...)
			if err != nil {
				return err
			}
			fmt.Println(sig)
			return nil
		},
	}
}
