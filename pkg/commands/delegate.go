package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewDelegateVoteCmd delegates the wallet's vote to another address
func NewDelegateVoteCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:                "delegate-vote <ballot-address> <delegate-address>",
		Short:              "Delegate your vote to another wallet",
		Args:               requireArgs("Ballot address", "Delegate address"),
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ballotAddr, err := parseAddress("ballot address", args[0])
			if err != nil {
				return err
			}
			to, err := parseAddress("delegate address", args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			log := deps.logger(cmd)

			net, err := deps.connect(ctx, true)
			if err != nil {
				return err
			}
			defer net.Close()

			contract, err := net.Attach(ballotAddr)
			if err != nil {
				return err
			}

			log.Info("Processing delegation",
				zap.String("wallet", net.Caller().Hex()),
				zap.String("delegate", to.Hex()),
				zap.String("ballot", ballotAddr.Hex()))

			tx, err := contract.Delegate(ctx, to)
			if err != nil {
				return err
			}

			return deps.confirm(ctx, log, cmd.OutOrStdout(), net, submission{
				command:  "delegate-vote",
				contract: ballotAddr,
				sender:   net.Caller(),
				argument: to.Hex(),
				tx:       tx,
			})
		},
	}
}
