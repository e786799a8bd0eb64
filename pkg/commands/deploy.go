package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/ballot-cli/pkg/encoding"
	"github.com/yourusername/ballot-cli/pkg/storage"
)

// NewDeployCmd deploys a ballot with the environment's wallet as chairperson
func NewDeployCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:                "deploy <proposal1> <proposal2> [proposal...]",
		Short:              "Deploy a Ballot contract with the given proposals",
		Args:               requireProposals,
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := deps.logger(cmd)
			out := cmd.OutOrStdout()

			names, err := encoding.StringsToBytes32(args)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}

			net, err := deps.connect(ctx, true)
			if err != nil {
				return err
			}
			defer net.Close()

			log.Info("Deploying Ballot contract", zap.Int("proposals", len(args)))
			for i, name := range args {
				fmt.Fprintf(out, "Proposal N. %d: %s\n", i+1, name)
			}

			predicted, tx, err := net.Deploy(ctx, names)
			if err != nil {
				return err
			}

			sub := submission{
				command:  "deploy",
				contract: predicted,
				sender:   net.Caller(),
				argument: strings.Join(args, ","),
				tx:       tx,
			}
			if _, err := deps.awaitReceipt(ctx, log, net, sub); err != nil {
				return err
			}

			address, err := net.WaitDeployed(ctx, tx)
			if err != nil {
				return err
			}
			log.Info("Completed", zap.String("address", address.Hex()))

			if deps.Journal != nil {
				if err := deps.Journal.SetMeta(storage.MetaLastContract, address.Hex()); err != nil {
					log.Warn("failed to remember deployed contract", zap.Error(err))
				}
			}

			fmt.Fprintf(out, "Contract deployed at %s\n", address.Hex())
			fmt.Fprintf(out, "Transaction completed. Hash: %s\n", tx.Hash().Hex())
			return nil
		},
	}
}
