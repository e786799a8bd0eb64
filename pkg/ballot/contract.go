package ballot

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BallotProposal mirrors the contract's Proposal struct
type BallotProposal struct {
	Name      [32]byte
	VoteCount *big.Int
}

// BallotVoter mirrors the contract's Voter struct
type BallotVoter struct {
	Weight   *big.Int
	Voted    bool
	Delegate common.Address
	Vote     *big.Int
}

// Ballot is a typed binding of the Ballot contract at one address
type Ballot struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewBallot binds the Ballot interface to a deployed contract
func NewBallot(address common.Address, backend bind.ContractBackend) (*Ballot, error) {
	parsed, err := BallotMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse ballot abi: %w", err)
	}
	return &Ballot{
		address:  address,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// DeployBallot creates a new Ballot contract with the given proposal names
func DeployBallot(opts *bind.TransactOpts, backend bind.ContractBackend, artifact *Artifact, proposalNames [][32]byte) (common.Address, *types.Transaction, *Ballot, error) {
	if len(artifact.Bytecode) == 0 {
		return common.Address{}, nil, nil, ErrNoBytecode
	}
	address, tx, contract, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, backend, proposalNames)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return address, tx, &Ballot{address: address, contract: contract}, nil
}

// Address returns the bound contract address
func (b *Ballot) Address() common.Address {
	return b.address
}

// Chairperson calls chairperson()
func (b *Ballot) Chairperson(opts *bind.CallOpts) (common.Address, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "chairperson"); err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// GetProposals calls getProposals()
func (b *Ballot) GetProposals(opts *bind.CallOpts) ([]BallotProposal, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "getProposals"); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]BallotProposal)).(*[]BallotProposal), nil
}

// Proposals calls proposals(uint256)
func (b *Ballot) Proposals(opts *bind.CallOpts, index *big.Int) (BallotProposal, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "proposals", index); err != nil {
		return BallotProposal{}, err
	}
	return BallotProposal{
		Name:      *abi.ConvertType(out[0], new([32]byte)).(*[32]byte),
		VoteCount: *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
	}, nil
}

// Voters calls voters(address)
func (b *Ballot) Voters(opts *bind.CallOpts, voter common.Address) (BallotVoter, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "voters", voter); err != nil {
		return BallotVoter{}, err
	}
	return BallotVoter{
		Weight:   *abi.ConvertType(out[0], new(*big.Int)).(**big.Int),
		Voted:    *abi.ConvertType(out[1], new(bool)).(*bool),
		Delegate: *abi.ConvertType(out[2], new(common.Address)).(*common.Address),
		Vote:     *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
	}, nil
}

// WinningProposal calls winningProposal()
func (b *Ballot) WinningProposal(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "winningProposal"); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// WinnerName calls winnerName()
func (b *Ballot) WinnerName(opts *bind.CallOpts) ([32]byte, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, "winnerName"); err != nil {
		return [32]byte{}, err
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

// GiveRightToVote sends giveRightToVote(address)
func (b *Ballot) GiveRightToVote(opts *bind.TransactOpts, voter common.Address) (*types.Transaction, error) {
	return b.contract.Transact(opts, "giveRightToVote", voter)
}

// Vote sends vote(uint256)
func (b *Ballot) Vote(opts *bind.TransactOpts, proposal *big.Int) (*types.Transaction, error) {
	return b.contract.Transact(opts, "vote", proposal)
}

// Delegate sends delegate(address)
func (b *Ballot) Delegate(opts *bind.TransactOpts, to common.Address) (*types.Transaction, error) {
	return b.contract.Transact(opts, "delegate", to)
}
