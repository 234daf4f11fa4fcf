package commands

import (
	"github.com/spf13/cobra"
)

var keyPath string

func Execute() error {
	root := &cobra.Command{
		Use:          "mohr",
		Short:        "Session identity and signature tool",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(
		&keyPath, "key", "k", "mohr.key", "key pair file",
	)

	root.AddCommand(keygenCmd(), idCmd(), signCmd(), verifyCmd())
	return root.Execute()
}

func toMessages(args []string) [][]byte {
	msgs := make([][]byte, len(args))
	for i, arg := range args {
		msgs[i] = []byte(arg)
	}
	return msgs
}
