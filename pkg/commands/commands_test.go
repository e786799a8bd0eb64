package commands

import (
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/ballot-cli/pkg/ballot"
	"github.com/yourusername/ballot-cli/pkg/encoding"
	"github.com/yourusername/ballot-cli/pkg/keys"
	"github.com/yourusername/ballot-cli/pkg/storage"
)

func TestMissingArgumentsFailBeforeNetwork(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*Deps) *cobra.Command
		args    []string
		wantMsg string
	}{
		{name: "deploy no proposals", build: NewDeployCmd, wantMsg: "not enough proposals provided"},
		{name: "deploy one proposal", build: NewDeployCmd, args: []string{"only"}, wantMsg: "not enough proposals provided"},
		{name: "give rights no args", build: NewGiveVotingRightsCmd, wantMsg: "Ballot address missing"},
		{name: "give rights no voter", build: NewGiveVotingRightsCmd, args: []string{ballotAddr.Hex()}, wantMsg: "Voter address missing"},
		{name: "vote no args", build: NewCastVoteCmd, wantMsg: "Ballot address missing"},
		{name: "vote no index", build: NewCastVoteCmd, args: []string{ballotAddr.Hex()}, wantMsg: "Proposal index missing"},
		{name: "delegate no delegate", build: NewDelegateVoteCmd, args: []string{ballotAddr.Hex()}, wantMsg: "Delegate address missing"},
		{name: "winner no args", build: NewQueryWinningProposalCmd, wantMsg: "Ballot address missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			code, stdout, stderr := h.run(tt.build, tt.args...)

			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, tt.wantMsg)
			require.Zero(t, h.connects, "no network activity expected")
		})
	}
}

func TestMalformedArgumentsFailBeforeNetwork(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Deps) *cobra.Command
		args  []string
	}{
		{name: "bad ballot address", build: NewCastVoteCmd, args: []string{"0x1234", "0"}},
		{name: "bad index", build: NewCastVoteCmd, args: []string{ballotAddr.Hex(), "first"}},
		{name: "bad voter", build: NewGiveVotingRightsCmd, args: []string{ballotAddr.Hex(), "alice"}},
		{name: "bad delegate", build: NewDelegateVoteCmd, args: []string{ballotAddr.Hex(), "bob"}},
		{name: "too many args", build: NewQueryWinningProposalCmd, args: []string{ballotAddr.Hex(), "extra"}},
		{name: "proposal name too long", build: NewDeployCmd, args: []string{"ok", strings.Repeat("n", 40)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			code, _, stderr := h.run(tt.build, tt.args...)

			require.Equal(t, 1, code)
			require.Contains(t, stderr, "invalid argument")
			require.Zero(t, h.connects)
		})
	}
}

func TestCastVoteSuccess(t *testing.T) {
	h := newHarness(t)

	code, stdout, stderr := h.run(NewCastVoteCmd, ballotAddr.Hex(), "1")

	require.Equal(t, 0, code, stderr)
	require.Equal(t, []string{"vote"}, h.net.contract.submitted)
	require.Regexp(t, `^Transaction completed\. Hash: 0x[0-9a-f]{64}\n$`, stdout)
	require.Equal(t, ballotAddr, h.net.contract.address)
	require.Equal(t, []bool{true}, h.auths)
	require.True(t, h.net.closed)
}

func TestCastVoteOutOfBounds(t *testing.T) {
	for _, index := range []string{"3", "100", "-1", "-100", "99999999999999999999"} {
		t.Run(index, func(t *testing.T) {
			h := newHarness(t)

			code, stdout, stderr := h.run(NewCastVoteCmd, ballotAddr.Hex(), index)

			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, ErrOutOfBounds.Error())
			require.Empty(t, h.net.contract.submitted, "no transaction expected")
		})
	}
}

func TestCastVoteNegativeIndexThroughRoot(t *testing.T) {
	h := newHarness(t)

	code, _, stderr := h.run(NewRootCmd, "cast-vote", ballotAddr.Hex(), "-1")

	require.Equal(t, 1, code)
	require.Contains(t, stderr, ErrOutOfBounds.Error())
	require.NotContains(t, stderr, "unknown shorthand flag")
	require.Empty(t, h.net.contract.submitted)
}

func TestDeployDashPrefixedProposal(t *testing.T) {
	h := newHarness(t)

	code, stdout, stderr := h.run(NewDeployCmd, "-yes", "-no")

	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "Proposal N. 1: -yes\n")
	require.Len(t, h.net.names, 2)
}

func TestGiveVotingRightsNotChairperson(t *testing.T) {
	h := newHarness(t)
	h.net.caller = voterAddr

	code, stdout, stderr := h.run(NewGiveVotingRightsCmd, ballotAddr.Hex(), voterAddr.Hex())

	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, ErrNotChairperson.Error())
	require.Empty(t, h.net.contract.submitted)
}

func TestGiveVotingRightsSuccess(t *testing.T) {
	h := newHarness(t)

	code, stdout, _ := h.run(NewGiveVotingRightsCmd, ballotAddr.Hex(), voterAddr.Hex())

	require.Equal(t, 0, code)
	require.Equal(t, []string{"giveRightToVote"}, h.net.contract.submitted)
	require.Contains(t, stdout, "Transaction completed. Hash: 0x")
}

func TestRevertReasonSurfacedVerbatim(t *testing.T) {
	tests := []struct {
		name   string
		build  func(*Deps) *cobra.Command
		args   []string
		reason string
	}{
		{name: "vote", build: NewCastVoteCmd, args: []string{ballotAddr.Hex(), "0"}, reason: "Already voted."},
		{name: "delegate", build: NewDelegateVoteCmd, args: []string{ballotAddr.Hex(), voterAddr.Hex()}, reason: "Self-delegation is disallowed."},
		{name: "give rights", build: NewGiveVotingRightsCmd, args: []string{ballotAddr.Hex(), voterAddr.Hex()}, reason: "The voter already voted."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.net.contract.submitErr = &ballot.RevertError{Reason: tt.reason}

			code, stdout, stderr := h.run(tt.build, tt.args...)

			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Equal(t, "Error: "+tt.reason+"\n", stderr)
		})
	}
}

func TestConnectivityErrorExitsNonZero(t *testing.T) {
	h := newHarness(t)
	h.net.contract.readErr = errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")

	code, _, stderr := h.run(NewQueryWinningProposalCmd, ballotAddr.Hex())

	require.Equal(t, 1, code)
	require.Contains(t, stderr, "connection refused")
}

func TestFailedReceiptExitsNonZero(t *testing.T) {
	h := newHarness(t)
	h.net.mineErr = fmt.Errorf("wait: %w", ballot.ErrTxFailed)

	code, stdout, stderr := h.run(NewDelegateVoteCmd, ballotAddr.Hex(), voterAddr.Hex())

	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "transaction failed")
}

func TestDelegateVoteSuccess(t *testing.T) {
	h := newHarness(t)

	code, stdout, _ := h.run(NewDelegateVoteCmd, ballotAddr.Hex(), voterAddr.Hex())

	require.Equal(t, 0, code)
	require.Equal(t, []string{"delegate"}, h.net.contract.submitted)
	require.Contains(t, stdout, "Transaction completed. Hash: 0x")
}

func TestQueryWinningProposal(t *testing.T) {
	h := newHarness(t)

	code, stdout, _ := h.run(NewQueryWinningProposalCmd, ballotAddr.Hex())

	require.Equal(t, 0, code)
	require.Equal(t, "Proposal Proposal 3 is winning with 2 votes\n", stdout)
	require.Equal(t, []bool{false}, h.auths, "query must not load a signer")
	require.Empty(t, h.net.contract.submitted)
}

func TestQueryWinningProposalBadIndex(t *testing.T) {
	h := newHarness(t)
	h.net.contract.winning = big.NewInt(7)

	code, _, stderr := h.run(NewQueryWinningProposalCmd, ballotAddr.Hex())

	require.Equal(t, 1, code)
	require.Contains(t, stderr, ErrOutOfBounds.Error())
}

func TestDeploySuccess(t *testing.T) {
	h := newHarness(t)

	code, stdout, stderr := h.run(NewDeployCmd, "Chocolate", "Vanilla", "Strawberry")

	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "Proposal N. 1: Chocolate\n")
	require.Contains(t, stdout, "Proposal N. 3: Strawberry\n")
	require.Contains(t, stdout, "Contract deployed at "+ballotAddr.Hex()+"\n")
	require.Contains(t, stdout, "Transaction completed. Hash: 0x")

	require.Len(t, h.net.names, 3)
	name, err := encoding.ParseBytes32String(h.net.names[1])
	require.NoError(t, err)
	require.Equal(t, "Vanilla", name)
}

func TestDeployRevert(t *testing.T) {
	h := newHarness(t)
	h.net.deployErr = &ballot.RevertError{Reason: "out of gas"}

	code, _, stderr := h.run(NewDeployCmd, "a", "b")

	require.Equal(t, 1, code)
	require.Contains(t, stderr, "Error: out of gas\n")
}

func TestConnectErrorIsFatal(t *testing.T) {
	h := newHarness(t)
	h.deps.Connect = nil

	code, _, stderr := h.run(NewDelegateVoteCmd, ballotAddr.Hex(), voterAddr.Hex())

	require.Equal(t, 1, code)
	require.Contains(t, stderr, "no network connector configured")
}

func TestCreateWallet(t *testing.T) {
	h := newHarness(t)
	h.deps.NewWallet = func() (*keys.Wallet, error) {
		return keys.FromMnemonic("test test test test test test test test test test test junk", "", "m/44'/60'/0'/0/0")
	}

	code, stdout, _ := h.run(NewCreateWalletCmd)

	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Address:     0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266\n")
	require.Contains(t, stdout, "Private key: 0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80\n")
	require.Contains(t, stdout, "Mnemonic:    test test test")
	require.Zero(t, h.connects)
}

func TestJournalAndHistory(t *testing.T) {
	h := newHarness(t)
	store, err := storage.NewStore(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	h.deps.Journal = store

	code, _, _ := h.run(NewDeployCmd, "Yes", "No")
	require.Equal(t, 0, code)
	code, _, _ = h.run(NewCastVoteCmd, ballotAddr.Hex(), "0")
	require.Equal(t, 0, code)

	h.net.mineErr = ballot.ErrTxFailed
	code, _, _ = h.run(NewDelegateVoteCmd, ballotAddr.Hex(), voterAddr.Hex())
	require.Equal(t, 1, code)

	records, err := store.List(ballotAddr.Hex(), 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "delegate-vote", records[0].Command)
	require.Equal(t, storage.StatusFailed, records[0].Status)
	require.Equal(t, "cast-vote", records[1].Command)
	require.Equal(t, "0", records[1].Argument)
	require.Equal(t, "test-run", records[1].RunID)
	require.Equal(t, uint64(5), records[1].BlockNumber)

	code, stdout, _ := h.run(NewHistoryCmd, ballotAddr.Hex())
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Last deployed ballot: "+ballotAddr.Hex())
	require.Contains(t, stdout, "cast-vote")
	require.Contains(t, stdout, "deploy")
	require.Contains(t, stdout, storage.StatusFailed)

	voteHash := records[1].TxHash
	code, stdout, _ = h.run(NewHistoryCmd, "0x"+strings.ToUpper(voteHash[2:]))
	require.Equal(t, 0, code)
	require.Contains(t, stdout, voteHash)
	require.Contains(t, stdout, "cast-vote")
	require.NotContains(t, stdout, "delegate-vote")
	require.NotContains(t, stdout, "Last deployed ballot")

	unknown := "0x" + strings.Repeat("ab", 32)
	code, _, stderr := h.run(NewHistoryCmd, unknown)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, ErrNotRecorded.Error())
	require.Contains(t, stderr, unknown)
}

func TestHistoryWithoutJournal(t *testing.T) {
	h := newHarness(t)

	code, _, stderr := h.run(NewHistoryCmd)

	require.Equal(t, 1, code)
	require.Contains(t, stderr, ErrJournalDisabled.Error())
}

func TestRootCmdListsScripts(t *testing.T) {
	root := NewRootCmd(newHarness(t).deps)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{
		"deploy", "give-voting-rights", "cast-vote", "delegate-vote",
		"query-winning-proposal", "create-wallet", "history",
	} {
		require.Contains(t, names, want)
	}
}

func TestRootCmdDispatches(t *testing.T) {
	h := newHarness(t)

	code, stdout, _ := h.run(NewRootCmd, "cast-vote", ballotAddr.Hex(), "2")

	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Transaction completed")
	require.Equal(t, ballotAddr, h.net.contract.address)
}
