package ballot

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/yourusername/ballot-cli/pkg/encoding"
)

// Proposal is one entry of the ballot's proposal list
type Proposal struct {
	RawName   [32]byte
	VoteCount *big.Int
}

// Name decodes the proposal's bytes32 name
func (p Proposal) Name() (string, error) {
	return encoding.ParseBytes32String(p.RawName)
}

// Voter is the contract's record for one address
type Voter struct {
	Weight   *big.Int
	Voted    bool
	Delegate common.Address // Zero address when not delegated
	Vote     *big.Int       // Proposal index, meaningful only when Voted
}

func proposalFromBinding(p BallotProposal) Proposal {
	count := p.VoteCount
	if count == nil {
		count = new(big.Int)
	}
	return Proposal{RawName: p.Name, VoteCount: count}
}
