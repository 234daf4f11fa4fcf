package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hossein1376/mohr"
	"github.com/hossein1376/mohr/internal/keyfile"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print its session ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := mohr.NewKeyPair()
			if err != nil {
				return err
			}
			if err := keyfile.Save(keyPath, kp); err != nil {
				return err
			}
			fmt.Println(kp.ID())
			return nil
		},
	}
}
