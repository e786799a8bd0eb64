package keys

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"

	"github.com/yourusername/ballot-cli/pkg/config"
)

// MnemonicEntropyBits yields a 12 word mnemonic
const MnemonicEntropyBits = 128

var (
	// ErrInvalidKey is returned for malformed private keys
	ErrInvalidKey = errors.New("invalid private key")
	// ErrInvalidMnemonic is returned for mnemonics failing the BIP39 checksum
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// Wallet is an Ethereum account together with the material it came from
type Wallet struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
	Mnemonic   string // Empty when loaded from a raw private key
	Path       string
}

// PrivateKeyHex returns the 0x-prefixed private key
func (w *Wallet) PrivateKeyHex() string {
	return hexutil.Encode(ethcrypto.FromECDSA(w.PrivateKey))
}

// PublicKeyHex returns the 0x-prefixed uncompressed public key
func (w *Wallet) PublicKeyHex() string {
	return hexutil.Encode(ethcrypto.FromECDSAPub(&w.PrivateKey.PublicKey))
}

// LoadWallet builds the wallet described by the configuration.
// A private key takes precedence over a mnemonic.
func LoadWallet(cfg *config.WalletConfig) (*Wallet, error) {
	switch {
	case cfg.PrivateKey != "":
		key, err := ParsePrivateKey(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		return &Wallet{
			Address:    ethcrypto.PubkeyToAddress(key.PublicKey),
			PrivateKey: key,
		}, nil
	case cfg.Mnemonic != "":
		path := cfg.DerivationPath
		if path == "" {
			path = config.DefaultDerivationPath
		}
		return FromMnemonic(cfg.Mnemonic, "", path)
	default:
		return nil, config.ErrMissingKey
	}
}

// ParsePrivateKey parses a hex secp256k1 key with or without 0x prefix
func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	key, err := ethcrypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return key, nil
}

// FromMnemonic derives the key at path from a BIP39 mnemonic
func FromMnemonic(mnemonic, passphrase, path string) (*Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	key, err := deriveKey(bip39.NewSeed(mnemonic, passphrase), path)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		Address:    ethcrypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
		Mnemonic:   mnemonic,
		Path:       path,
	}, nil
}

// NewRandomWallet creates a wallet from a freshly generated mnemonic
func NewRandomWallet() (*Wallet, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return FromMnemonic(mnemonic, "", config.DefaultDerivationPath)
}

// deriveKey walks a BIP32 path from the seed's master key
func deriveKey(seed []byte, path string) (*ecdsa.PrivateKey, error) {
	dp, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %q: %w", path, err)
	}

	// Network params only affect serialization, not derivation
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	for _, index := range dp {
		key, err = key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", path, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}

	return ethcrypto.ToECDSA(priv.Serialize())
}
