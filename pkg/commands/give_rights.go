package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewGiveVotingRightsCmd lets the chairperson give an address the right to vote
func NewGiveVotingRightsCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:                "give-voting-rights <ballot-address> <voter-address>",
		Short:              "Give voting rights to a wallet address",
		Args:               requireArgs("Ballot address", "Voter address"),
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ballotAddr, err := parseAddress("ballot address", args[0])
			if err != nil {
				return err
			}
			voter, err := parseAddress("voter address", args[1])
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

			chairperson, err := contract.Chairperson(ctx)
			if err != nil {
				return err
			}
			if chairperson != net.Caller() {
				return fmt.Errorf("%w: chairperson is %s, caller is %s", ErrNotChairperson, chairperson.Hex(), net.Caller().Hex())
			}

			log.Info("Giving right to vote", zap.String("voter", voter.Hex()))
			tx, err := contract.GiveRightToVote(ctx, voter)
			if err != nil {
				return err
			}

			return deps.confirm(ctx, log, cmd.OutOrStdout(), net, submission{
				command:  "give-voting-rights",
				contract: ballotAddr,
				sender:   net.Caller(),
				argument: voter.Hex(),
				tx:       tx,
			})
		},
	}
}
