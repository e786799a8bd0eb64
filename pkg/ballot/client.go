package ballot

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/yourusername/ballot-cli/pkg/config"
	"github.com/yourusername/ballot-cli/pkg/keys"
	"github.com/yourusername/ballot-cli/pkg/signing"
)

// Client is a Network backed by an Ethereum JSON-RPC node
type Client struct {
	backend      bind.DeployBackend
	contracts    bind.ContractBackend
	closer       func()
	signer       signing.Signer
	artifactPath string
	log          *zap.Logger
}

// Connect validates configuration, loads the wallet when auth is set and dials the node.
// Configuration problems are reported before any network activity.
func Connect(ctx context.Context, cfg *config.Config, auth bool, log *zap.Logger) (*Client, error) {
	if err := cfg.RequireNetwork(); err != nil {
		return nil, err
	}

	var wallet *keys.Wallet
	if auth {
		if err := cfg.RequireKey(); err != nil {
			return nil, err
		}
		w, err := keys.LoadWallet(&cfg.Wallet)
		if err != nil {
			return nil, fmt.Errorf("failed to load wallet: %w", err)
		}
		wallet = w
	}

	if log == nil {
		log = zap.NewNop()
	}

	eth, err := ethclient.DialContext(ctx, cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Network.RPCURL, err)
	}

	client := &Client{
		backend:      eth,
		contracts:    eth,
		closer:       eth.Close,
		artifactPath: cfg.Contract.ArtifactPath,
		log:          log,
	}

	if wallet != nil {
		chainID, err := eth.ChainID(ctx)
		if err != nil {
			eth.Close()
			return nil, fmt.Errorf("failed to get chain id: %w", err)
		}
		signer, err := signing.NewKeyedSigner(wallet.PrivateKey, chainID)
		if err != nil {
			eth.Close()
			return nil, err
		}
		client.signer = signer
		log.Debug("wallet loaded",
			zap.String("address", signer.Address().Hex()),
			zap.String("chain_id", chainID.String()))
	}

	return client, nil
}

// NewClient builds a Client over an existing backend, e.g. a simulated chain.
// A nil log discards output.
func NewClient(backend interface {
	bind.ContractBackend
	bind.DeployBackend
}, signer signing.Signer, artifactPath string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		backend:      backend,
		contracts:    backend,
		closer:       func() {},
		signer:       signer,
		artifactPath: artifactPath,
		log:          log,
	}
}

// Caller returns the signer address or the zero address
func (c *Client) Caller() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.Address()
}

// Attach binds the Ballot interface at address
func (c *Client) Attach(address common.Address) (Contract, error) {
	b, err := NewBallot(address, c.contracts)
	if err != nil {
		return nil, err
	}
	c.log.Debug("attached ballot", zap.String("address", address.Hex()))
	return NewSession(b, c.signer), nil
}

// Deploy submits the Ballot creation transaction
func (c *Client) Deploy(ctx context.Context, proposalNames [][32]byte) (common.Address, *types.Transaction, error) {
	if c.signer == nil {
		return common.Address{}, nil, ErrReadOnly
	}
	artifact, err := LoadArtifact(c.artifactPath)
	if err != nil {
		return common.Address{}, nil, err
	}
	address, tx, _, err := DeployBallot(c.signer.TransactOpts(ctx), c.contracts, artifact, proposalNames)
	if err != nil {
		return common.Address{}, nil, wrapRevert(err)
	}
	return address, tx, nil
}

// WaitMined blocks until tx is included and checks its status
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, &TxFailedError{Hash: tx.Hash()}
	}
	return receipt, nil
}

// WaitDeployed blocks until the creation tx is mined and code exists at the new address
func (c *Client) WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, error) {
	address, err := bind.WaitDeployed(ctx, c.backend, tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed waiting for deployment %s: %w", tx.Hash().Hex(), err)
	}
	return address, nil
}

// Close releases the node connection
func (c *Client) Close() {
	c.closer()
}
