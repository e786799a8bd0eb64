package ballot

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/yourusername/ballot-cli/pkg/encoding"
	"github.com/yourusername/ballot-cli/pkg/signing"
)

// Contract is the set of Ballot operations the scripts use.
// Writes return a pending transaction that must be awaited.
type Contract interface {
	Address() common.Address
	Chairperson(ctx context.Context) (common.Address, error)
	Proposals(ctx context.Context) ([]Proposal, error)
	Voter(ctx context.Context, addr common.Address) (*Voter, error)
	WinningProposal(ctx context.Context) (*big.Int, error)
	WinnerName(ctx context.Context) (string, error)
	GiveRightToVote(ctx context.Context, voter common.Address) (*types.Transaction, error)
	Vote(ctx context.Context, proposal *big.Int) (*types.Transaction, error)
	Delegate(ctx context.Context, to common.Address) (*types.Transaction, error)
}

// Network is a connection to a node, optionally with a signer
type Network interface {
	// Caller returns the signer's address, or the zero address when read-only
	Caller() common.Address
	Attach(address common.Address) (Contract, error)
	Deploy(ctx context.Context, proposalNames [][32]byte) (common.Address, *types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, error)
	Close()
}

// Session binds a Ballot to a signer so calls only need a context
type Session struct {
	ballot *Ballot
	signer signing.Signer // nil for read-only sessions
}

// NewSession wraps a bound Ballot. signer may be nil.
func NewSession(b *Ballot, signer signing.Signer) *Session {
	return &Session{ballot: b, signer: signer}
}

func (s *Session) callOpts(ctx context.Context) *bind.CallOpts {
	opts := &bind.CallOpts{Context: ctx}
	if s.signer != nil {
		opts.From = s.signer.Address()
	}
	return opts
}

func (s *Session) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if s.signer == nil {
		return nil, ErrReadOnly
	}
	return s.signer.TransactOpts(ctx), nil
}

// Address returns the contract address
func (s *Session) Address() common.Address {
	return s.ballot.Address()
}

// Chairperson returns the address allowed to grant voting rights
func (s *Session) Chairperson(ctx context.Context) (common.Address, error) {
	addr, err := s.ballot.Chairperson(s.callOpts(ctx))
	return addr, wrapRevert(err)
}

// Proposals returns every proposal in index order
func (s *Session) Proposals(ctx context.Context) ([]Proposal, error) {
	raw, err := s.ballot.GetProposals(s.callOpts(ctx))
	if err != nil {
		return nil, wrapRevert(err)
	}
	proposals := make([]Proposal, len(raw))
	for i, p := range raw {
		proposals[i] = proposalFromBinding(p)
	}
	return proposals, nil
}

// Voter returns the contract's record for addr
func (s *Session) Voter(ctx context.Context, addr common.Address) (*Voter, error) {
	v, err := s.ballot.Voters(s.callOpts(ctx), addr)
	if err != nil {
		return nil, wrapRevert(err)
	}
	return &Voter{Weight: v.Weight, Voted: v.Voted, Delegate: v.Delegate, Vote: v.Vote}, nil
}

// WinningProposal returns the index the contract reports as winning
func (s *Session) WinningProposal(ctx context.Context) (*big.Int, error) {
	idx, err := s.ballot.WinningProposal(s.callOpts(ctx))
	return idx, wrapRevert(err)
}

// WinnerName returns the decoded name of the winning proposal
func (s *Session) WinnerName(ctx context.Context) (string, error) {
	raw, err := s.ballot.WinnerName(s.callOpts(ctx))
	if err != nil {
		return "", wrapRevert(err)
	}
	name, err := encoding.ParseBytes32String(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode winner name: %w", err)
	}
	return name, nil
}

// GiveRightToVote submits giveRightToVote
func (s *Session) GiveRightToVote(ctx context.Context, voter common.Address) (*types.Transaction, error) {
	opts, err := s.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := s.ballot.GiveRightToVote(opts, voter)
	return tx, wrapRevert(err)
}

// Vote submits vote
func (s *Session) Vote(ctx context.Context, proposal *big.Int) (*types.Transaction, error) {
	opts, err := s.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := s.ballot.Vote(opts, proposal)
	return tx, wrapRevert(err)
}

// Delegate submits delegate
func (s *Session) Delegate(ctx context.Context, to common.Address) (*types.Transaction, error) {
	opts, err := s.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := s.ballot.Delegate(opts, to)
	return tx, wrapRevert(err)
}
