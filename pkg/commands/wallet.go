package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCreateWalletCmd generates a random wallet and prints its secrets
func NewCreateWalletCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:                "create-wallet",
		Short:              "Generate a new random wallet",
		Args:               requireArgs(),
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := deps.NewWallet()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Address:     %s\n", w.Address.Hex())
			fmt.Fprintf(out, "Private key: %s\n", w.PrivateKeyHex())
			fmt.Fprintf(out, "Public key:  %s\n", w.PublicKeyHex())
			fmt.Fprintf(out, "Mnemonic:    %s\n", w.Mnemonic)
			fmt.Fprintf(out, "Path:        %s\n", w.Path)

			deps.logger(cmd).Warn("Store the private key and mnemonic securely; they are not saved")
			return nil
		},
	}
}
