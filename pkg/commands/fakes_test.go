package commands

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/yourusername/ballot-cli/pkg/ballot"
	"github.com/yourusername/ballot-cli/pkg/config"
	"github.com/yourusername/ballot-cli/pkg/encoding"
)

var (
	chairAddr  = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	voterAddr  = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	ballotAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

type fakeContract struct {
	address     common.Address
	chairperson common.Address
	proposals   []ballot.Proposal
	winning     *big.Int

	readErr   error
	submitErr error

	submitted []string
	nonce     uint64
}

func (c *fakeContract) tx(method string) (*types.Transaction, error) {
	if c.submitErr != nil {
		return nil, c.submitErr
	}
	c.submitted = append(c.submitted, method)
	c.nonce++
	return types.NewTx(&types.LegacyTx{Nonce: c.nonce, To: &c.address}), nil
}

func (c *fakeContract) Address() common.Address { return c.address }

func (c *fakeContract) Chairperson(ctx context.Context) (common.Address, error) {
	return c.chairperson, c.readErr
}

func (c *fakeContract) Proposals(ctx context.Context) ([]ballot.Proposal, error) {
	return c.proposals, c.readErr
}

func (c *fakeContract) Voter(ctx context.Context, addr common.Address) (*ballot.Voter, error) {
	return &ballot.Voter{Weight: big.NewInt(1)}, c.readErr
}

func (c *fakeContract) WinningProposal(ctx context.Context) (*big.Int, error) {
	return c.winning, c.readErr
}

func (c *fakeContract) WinnerName(ctx context.Context) (string, error) {
	return c.proposals[c.winning.Int64()].Name()
}

func (c *fakeContract) GiveRightToVote(ctx context.Context, voter common.Address) (*types.Transaction, error) {
	return c.tx("giveRightToVote")
}

func (c *fakeContract) Vote(ctx context.Context, proposal *big.Int) (*types.Transaction, error) {
	return c.tx("vote")
}

func (c *fakeContract) Delegate(ctx context.Context, to common.Address) (*types.Transaction, error) {
	return c.tx("delegate")
}

type fakeNetwork struct {
	caller   common.Address
	contract *fakeContract

	deployed  common.Address
	deployErr error
	mineErr   error
	names     [][32]byte

	closed bool
}

func (n *fakeNetwork) Caller() common.Address { return n.caller }

func (n *fakeNetwork) Attach(address common.Address) (ballot.Contract, error) {
	n.contract.address = address
	return n.contract, nil
}

func (n *fakeNetwork) Deploy(ctx context.Context, names [][32]byte) (common.Address, *types.Transaction, error) {
	if n.deployErr != nil {
		return common.Address{}, nil, n.deployErr
	}
	n.names = names
	return n.deployed, types.NewTx(&types.LegacyTx{Nonce: 0, Data: []byte{0x60}}), nil
}

func (n *fakeNetwork) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if n.mineErr != nil {
		return &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(5)}, n.mineErr
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(5), TxHash: tx.Hash()}, nil
}

func (n *fakeNetwork) WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, error) {
	return n.deployed, nil
}

func (n *fakeNetwork) Close() { n.closed = true }

func proposalsNamed(t *testing.T, names ...string) []ballot.Proposal {
	t.Helper()
	out := make([]ballot.Proposal, len(names))
	for i, name := range names {
		raw, err := encoding.FormatBytes32String(name)
		require.NoError(t, err)
		out[i] = ballot.Proposal{RawName: raw, VoteCount: big.NewInt(int64(i))}
	}
	return out
}

// harness wires a fake network into Deps and counts connections
type harness struct {
	t        *testing.T
	deps     *Deps
	net      *fakeNetwork
	connects int
	auths    []bool
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		t: t,
		net: &fakeNetwork{
			caller: chairAddr,
			contract: &fakeContract{
				chairperson: chairAddr,
				proposals:   proposalsNamed(t, "Proposal 1", "Proposal 2", "Proposal 3"),
				winning:     big.NewInt(2),
			},
			deployed: ballotAddr,
		},
	}
	h.deps = &Deps{
		Config: config.DefaultConfig(),
		Log:    zaptest.NewLogger(t),
		RunID:  "test-run",
		Connect: func(ctx context.Context, cfg *config.Config, auth bool) (ballot.Network, error) {
			h.connects++
			h.auths = append(h.auths, auth)
			return h.net, nil
		},
	}
	return h
}

// run executes the command built by build and returns exit code, stdout and stderr
func (h *harness) run(build func(*Deps) *cobra.Command, args ...string) (int, string, string) {
	cmd := build(h.deps)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args[1:] (the go test flags) when args is nil
		args = []string{}
	}
	cmd.SetArgs(args)
	code := Execute(context.Background(), cmd, &stderr)
	return code, stdout.String(), stderr.String()
}
