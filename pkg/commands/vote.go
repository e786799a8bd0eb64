package commands

import (
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCastVoteCmd casts a vote on behalf of the environment's wallet
func NewCastVoteCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:                "cast-vote <ballot-address> <proposal-index>",
		Short:              "Cast a vote for a proposal",
		Args:               requireArgs("Ballot address", "Proposal index"),
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ballotAddr, err := parseAddress("ballot address", args[0])
			if err != nil {
				return err
			}
			index, err := parseIndex(args[1])
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

			log.Info("Processing vote",
				zap.String("proposal", index.String()),
				zap.String("wallet", net.Caller().Hex()),
				zap.String("ballot", ballotAddr.Hex()))

			proposals, err := contract.Proposals(ctx)
			if err != nil {
				return err
			}
			if index.Sign() < 0 || index.Cmp(big.NewInt(int64(len(proposals)))) >= 0 {
				return outOfBounds(index, len(proposals))
			}

			tx, err := contract.Vote(ctx, index)
			if err != nil {
				return err
			}

			return deps.confirm(ctx, log, cmd.OutOrStdout(), net, submission{
				command:  "cast-vote",
				contract: ballotAddr,
				sender:   net.Caller(),
				argument: index.String(),
				tx:       tx,
			})
		},
	}
}
