package signing

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// ErrNoChainID is returned when a signer is built without a chain id
var ErrNoChainID = errors.New("chain id is required")

// Signer authorizes transactions on behalf of one address
type Signer interface {
	// Address returns the account that signs
	Address() common.Address
	// TransactOpts returns fresh transaction options bound to ctx
	TransactOpts(ctx context.Context) *bind.TransactOpts
	// ChainID returns the chain the signer produces signatures for
	ChainID() *big.Int
}

// KeyedSigner implements Signer with an in-memory secp256k1 key
type KeyedSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

// NewKeyedSigner creates an EIP-155 signer for the given chain
func NewKeyedSigner(key *ecdsa.PrivateKey, chainID *big.Int) (*KeyedSigner, error) {
	if key == nil {
		return nil, fmt.Errorf("private key is required")
	}
	if chainID == nil || chainID.Sign() <= 0 {
		return nil, ErrNoChainID
	}
	return &KeyedSigner{
		key:     key,
		address: ethcrypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).Set(chainID),
	}, nil
}

// Address returns the signer's address
func (s *KeyedSigner) Address() common.Address {
	return s.address
}

// ChainID returns a copy of the signer's chain id
func (s *KeyedSigner) ChainID() *big.Int {
	return new(big.Int).Set(s.chainID)
}

// TransactOpts returns options that sign with the held key.
// Nonce, gas price and gas limit are left for the binding to fill in.
func (s *KeyedSigner) TransactOpts(ctx context.Context) *bind.TransactOpts {
	// Error only occurs for a nil chain id, which the constructor rules out
	opts, _ := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	opts.Context = ctx
	return opts
}
