package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Transaction statuses
const (
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// MetaLastContract holds the address of the most recently deployed ballot
const MetaLastContract = "last_contract"

// TxRecord is one state-changing call submitted by the scripts
type TxRecord struct {
	ID          int
	RunID       string
	Command     string
	Contract    string
	TxHash      string
	Sender      string
	Argument    string // Voter, delegate or proposal index, depending on Command
	Status      string
	BlockNumber uint64
	CreatedAt   time.Time
}

// Record saves a transaction record
func (s *Store) Record(record *TxRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO transactions (
			run_id, command, contract, tx_hash, sender, argument, status, block_number
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tx_hash) DO UPDATE SET
			status = excluded.status,
			block_number = excluded.block_number
	`, record.RunID, record.Command, strings.ToLower(record.Contract), record.TxHash,
		record.Sender, record.Argument, record.Status, record.BlockNumber)
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", record.TxHash, err)
	}
	return nil
}

// GetByHash retrieves a record by transaction hash
func (s *Store) GetByHash(txHash string) (*TxRecord, error) {
	record := &TxRecord{}
	err := s.db.QueryRow(`
		SELECT id, run_id, command, contract, tx_hash, sender, argument, status, block_number, created_at
		FROM transactions WHERE tx_hash = ?
	`, txHash).Scan(
		&record.ID, &record.RunID, &record.Command, &record.Contract, &record.TxHash,
		&record.Sender, &record.Argument, &record.Status, &record.BlockNumber, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return record, err
}

// List returns records newest first. An empty contract lists every contract.
// limit <= 0 means no limit.
func (s *Store) List(contract string, limit int) ([]*TxRecord, error) {
	query := `
		SELECT id, run_id, command, contract, tx_hash, sender, argument, status, block_number, created_at
		FROM transactions`
	var args []interface{}
	if contract != "" {
		query += " WHERE contract = ?"
		args = append(args, strings.ToLower(contract))
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*TxRecord
	for rows.Next() {
		record := &TxRecord{}
		if err := rows.Scan(
			&record.ID, &record.RunID, &record.Command, &record.Contract, &record.TxHash,
			&record.Sender, &record.Argument, &record.Status, &record.BlockNumber, &record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
