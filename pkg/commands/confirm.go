package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/yourusername/ballot-cli/pkg/ballot"
	"github.com/yourusername/ballot-cli/pkg/storage"
)

// submission describes one state-changing call awaiting confirmation
type submission struct {
	command  string
	contract common.Address
	sender   common.Address
	argument string
	tx       *types.Transaction
}

// awaitReceipt waits for the transaction, journals the outcome and returns the receipt
func (d *Deps) awaitReceipt(ctx context.Context, log *zap.Logger, net ballot.Network, sub submission) (*types.Receipt, error) {
	log.Info("Awaiting confirmations", zap.String("tx", sub.tx.Hash().Hex()))

	receipt, err := net.WaitMined(ctx, sub.tx)
	switch {
	case err == nil:
		d.journal(log, sub, storage.StatusConfirmed, receipt)
	case errors.Is(err, ballot.ErrTxFailed):
		d.journal(log, sub, storage.StatusFailed, receipt)
		return nil, err
	default:
		return nil, err
	}
	return receipt, nil
}

// confirm waits for the transaction and prints its hash
func (d *Deps) confirm(ctx context.Context, log *zap.Logger, out io.Writer, net ballot.Network, sub submission) error {
	if _, err := d.awaitReceipt(ctx, log, net, sub); err != nil {
		return err
	}
	fmt.Fprintf(out, "Transaction completed. Hash: %s\n", sub.tx.Hash().Hex())
	return nil
}

// journal records a submission. Journal failures never fail the script.
func (d *Deps) journal(log *zap.Logger, sub submission, status string, receipt *types.Receipt) {
	if d.Journal == nil {
		return
	}
	record := &storage.TxRecord{
		RunID:    d.RunID,
		Command:  sub.command,
		Contract: sub.contract.Hex(),
		TxHash:   sub.tx.Hash().Hex(),
		Sender:   sub.sender.Hex(),
		Argument: sub.argument,
		Status:   status,
	}
	if receipt != nil && receipt.BlockNumber != nil {
		record.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if err := d.Journal.Record(record); err != nil {
		log.Warn("failed to journal transaction", zap.Error(err))
	}
}
