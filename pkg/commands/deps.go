package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/ballot-cli/pkg/ballot"
	"github.com/yourusername/ballot-cli/pkg/config"
	"github.com/yourusername/ballot-cli/pkg/keys"
	"github.com/yourusername/ballot-cli/pkg/logging"
	"github.com/yourusername/ballot-cli/pkg/storage"
)

// Connector opens a node connection. With auth set it also loads the signer.
type Connector func(ctx context.Context, cfg *config.Config, auth bool) (ballot.Network, error)

// Journal stores the transactions the scripts submit
type Journal interface {
	Record(record *storage.TxRecord) error
	GetByHash(txHash string) (*storage.TxRecord, error)
	List(contract string, limit int) ([]*storage.TxRecord, error)
	SetMeta(key, value string) error
	GetMeta(key string) (string, error)
}

// Deps carries everything a script needs besides its arguments
type Deps struct {
	Config    *config.Config
	Log       *zap.Logger
	Connect   Connector
	Journal   Journal // nil when the journal is disabled
	RunID     string
	NewWallet func() (*keys.Wallet, error)
}

// NewDeps loads configuration and builds the production dependencies.
// The returned cleanup closes the journal and flushes the logger.
func NewDeps(logOut io.Writer) (*Deps, func(), error) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return nil, nil, err
	}

	deps := &Deps{
		Config: cfg,
		Log:    log,
		RunID:  uuid.NewString(),
		Connect: func(ctx context.Context, cfg *config.Config, auth bool) (ballot.Network, error) {
			client, err := ballot.Connect(ctx, cfg, auth, log)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
		NewWallet: keys.NewRandomWallet,
	}

	var store *storage.Store
	if cfg.DataDir.JournalEnabled {
		store, err = storage.NewStore(cfg.DataDir.JournalPath)
		if err != nil {
			log.Warn("transaction journal unavailable", zap.String("path", cfg.DataDir.JournalPath), zap.Error(err))
		} else {
			deps.Journal = store
		}
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		_ = log.Sync()
	}

	return deps, cleanup, nil
}

// logger returns the deps logger tagged for cmd
func (d *Deps) logger(cmd *cobra.Command) *zap.Logger {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return logging.WithRun(log, d.RunID, cmd.Name())
}

// connect opens the node connection for one script run
func (d *Deps) connect(ctx context.Context, auth bool) (ballot.Network, error) {
	if d.Connect == nil {
		return nil, fmt.Errorf("no network connector configured")
	}
	return d.Connect(ctx, d.Config, auth)
}
