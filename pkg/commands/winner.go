package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewQueryWinningProposalCmd prints the current winning proposal and its votes
func NewQueryWinningProposalCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:                "query-winning-proposal <ballot-address>",
		Short:              "Display the current winning proposal and its vote count",
		Args:               requireArgs("Ballot address"),
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ballotAddr, err := parseAddress("ballot address", args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			// Reads need no signer
			net, err := deps.connect(ctx, false)
			if err != nil {
				return err
			}
			defer net.Close()

			contract, err := net.Attach(ballotAddr)
			if err != nil {
				return err
			}

			proposals, err := contract.Proposals(ctx)
			if err != nil {
				return err
			}
			winning, err := contract.WinningProposal(ctx)
			if err != nil {
				return err
			}
			if !winning.IsInt64() || winning.Int64() < 0 || winning.Int64() >= int64(len(proposals)) {
				return outOfBounds(winning, len(proposals))
			}

			proposal := proposals[winning.Int64()]
			name, err := proposal.Name()
			if err != nil {
				return fmt.Errorf("failed to decode proposal %s name: %w", winning, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Proposal %s is winning with %s votes\n", name, proposal.VoteCount)
			return nil
		},
	}
}
