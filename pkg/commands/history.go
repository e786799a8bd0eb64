package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/yourusername/ballot-cli/pkg/storage"
)

var (
	// ErrJournalDisabled is returned by history when no journal is open
	ErrJournalDisabled = errors.New("transaction journal is disabled")
	// ErrNotRecorded is returned when a looked-up transaction is not in the journal
	ErrNotRecorded = errors.New("transaction not recorded")
)

// NewHistoryCmd lists transactions recorded in the local journal.
// The optional argument is a ballot address to filter by or a transaction hash to look up.
func NewHistoryCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:                "history [ballot-address | tx-hash]",
		Short:              "List transactions submitted from this machine",
		Args:               cobra.MaximumNArgs(1),
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.Journal == nil {
				return ErrJournalDisabled
			}

			out := cmd.OutOrStdout()

			if len(args) == 1 && isTxHash(args[0]) {
				hash := common.HexToHash(args[0]).Hex()
				record, err := deps.Journal.GetByHash(hash)
				if err != nil {
					return fmt.Errorf("failed to read journal: %w", err)
				}
				if record == nil {
					return fmt.Errorf("%w: %s", ErrNotRecorded, hash)
				}
				return renderRecords(out, []*storage.TxRecord{record})
			}

			contract := ""
			if len(args) == 1 {
				addr, err := parseAddress("ballot address", args[0])
				if err != nil {
					return err
				}
				contract = addr.Hex()
			}

			last, err := deps.Journal.GetMeta(storage.MetaLastContract)
			if err != nil {
				return fmt.Errorf("failed to read journal: %w", err)
			}
			if last != "" {
				fmt.Fprintf(out, "Last deployed ballot: %s\n", last)
			}

			records, err := deps.Journal.List(contract, 0)
			if err != nil {
				return fmt.Errorf("failed to read journal: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No transactions recorded")
				return nil
			}
			return renderRecords(out, records)
		},
	}
}

func isTxHash(s string) bool {
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == common.HashLength
}

func renderRecords(out io.Writer, records []*storage.TxRecord) error {
	data := pterm.TableData{{"COMMAND", "CONTRACT", "ARGUMENT", "STATUS", "BLOCK", "TX"}}
	for _, r := range records {
		data = append(data, []string{
			r.Command, r.Contract, r.Argument, r.Status,
			strconv.FormatUint(r.BlockNumber, 10), r.TxHash,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)
	return nil
}
