package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hossein1376/mohr"
)

func verifyCmd() *cobra.Command {
	var idText, sigText string
	cmd := &cobra.Command{
		Use:   "verify MESSAGE...",
		Short: "Check a signature against a session ID and messages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := mohr.ParseSessionID(idText)
			if err != nil {
				return fmt.Errorf("session id: %w", err)
			}
			sig, err := mohr.ParseSignatureSet(sigText)
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			if err := id.Verify(sig, toMessages(args)...); err != nil {
				return err
			}
			fmt.Println("verified")
			return nil
		},
	}
	cmd.Flags().StringVar(&idText, "id", "", "session ID of the claimed signer")
	cmd.Flags().StringVar(&sigText, "sig", "", "signature text")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("sig")

	return cmd
}
