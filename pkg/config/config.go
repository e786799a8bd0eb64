package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

var (
	// ErrMissingEndpoint is returned when no RPC endpoint is configured
	ErrMissingEndpoint = errors.New("RPC_URL is not set")
	// ErrMissingKey is returned when neither PRIVATE_KEY nor MNEMONIC is configured
	ErrMissingKey = errors.New("neither PRIVATE_KEY nor MNEMONIC is set")
)

// DefaultDerivationPath is the first Ethereum account of a BIP44 wallet
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// Config holds all configuration for the ballot scripts
type Config struct {
	Network  NetworkConfig
	Wallet   WalletConfig
	Contract ContractConfig
	DataDir  DataDirConfig
	Log      LogConfig
}

// NetworkConfig contains node connection settings
type NetworkConfig struct {
	RPCURL string
}

// WalletConfig contains key material read from the environment
type WalletConfig struct {
	PrivateKey     string
	Mnemonic       string
	DerivationPath string
}

// ContractConfig points at the compiled Ballot artifact
type ContractConfig struct {
	ArtifactPath string
}

// DataDirConfig contains data directory settings
type DataDirConfig struct {
	Path           string // Base data directory
	JournalPath    string // Transaction journal database
	JournalEnabled bool
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string
	File  string // Optional rotated log file, empty for stderr only
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".ballot-cli")

	return &Config{
		Wallet: WalletConfig{
			DerivationPath: DefaultDerivationPath,
		},
		Contract: ContractConfig{
			ArtifactPath: filepath.Join("artifacts", "contracts", "Ballot.sol", "Ballot.json"),
		},
		DataDir: DataDirConfig{
			Path:           dataDir,
			JournalPath:    filepath.Join(dataDir, "journal.db"),
			JournalEnabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from an optional .env file and the environment.
// Variables already present in the environment take precedence over the file.
func LoadConfig(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := DefaultConfig()
	cfg.applyEnv()

	if cfg.DataDir.JournalEnabled {
		if err := os.MkdirAll(filepath.Dir(cfg.DataDir.JournalPath), 0700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if val := os.Getenv("RPC_URL"); val != "" {
		c.Network.RPCURL = strings.TrimSpace(val)
	}
	if val := os.Getenv("PRIVATE_KEY"); val != "" {
		c.Wallet.PrivateKey = strings.TrimSpace(val)
	}
	if val := os.Getenv("MNEMONIC"); val != "" {
		c.Wallet.Mnemonic = strings.Join(strings.Fields(val), " ")
	}
	if val := os.Getenv("DERIVATION_PATH"); val != "" {
		c.Wallet.DerivationPath = val
	}
	if val := os.Getenv("BALLOT_ARTIFACT"); val != "" {
		c.Contract.ArtifactPath = val
	}
	if val := os.Getenv("BALLOT_DATA_DIR"); val != "" {
		c.DataDir.Path = val
		c.DataDir.JournalPath = filepath.Join(val, "journal.db")
	}
	if val := os.Getenv("BALLOT_JOURNAL"); val != "" {
		switch strings.ToLower(val) {
		case "off", "false", "0", "no":
			c.DataDir.JournalEnabled = false
		case "on", "true", "1", "yes":
			c.DataDir.JournalEnabled = true
		default:
			c.DataDir.JournalPath = val
		}
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FILE"); val != "" {
		c.Log.File = val
	}
}

// RequireNetwork checks that a node endpoint is configured
func (c *Config) RequireNetwork() error {
	if c.Network.RPCURL == "" {
		return ErrMissingEndpoint
	}
	return nil
}

// RequireKey checks that some key material is configured
func (c *Config) RequireKey() error {
	if c.Wallet.PrivateKey == "" && c.Wallet.Mnemonic == "" {
		return ErrMissingKey
	}
	return nil
}
