package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd groups every script under a single "ballot" binary
func NewRootCmd(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "ballot",
		Short: "Deploy and interact with a Ballot voting contract",
		Long: `ballot - scripts for the Ballot voting contract

Configuration comes from the environment (or a .env file):
  RPC_URL          node endpoint
  PRIVATE_KEY      signer key, or
  MNEMONIC         BIP39 phrase (DERIVATION_PATH, default m/44'/60'/0'/0/0)
  BALLOT_ARTIFACT  compiled Ballot JSON used by deploy`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewDeployCmd(deps),
		NewGiveVotingRightsCmd(deps),
		NewCastVoteCmd(deps),
		NewDelegateVoteCmd(deps),
		NewQueryWinningProposalCmd(deps),
		NewCreateWalletCmd(deps),
		NewHistoryCmd(deps),
	)
	return root
}

// Execute runs cmd and returns the process exit code
func Execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	cmd.SilenceErrors = true
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Run is the body of every script's main
func Run(build func(*Deps) *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := NewDeps(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	return Execute(ctx, build(deps), os.Stderr)
}
