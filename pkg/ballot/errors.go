package ballot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const revertedPrefix = "execution reverted"

var (
	// ErrReadOnly is returned when a state-changing call has no signer
	ErrReadOnly = errors.New("connection has no signer")
	// ErrTxFailed is returned when a mined transaction has a failed status
	ErrTxFailed = errors.New("transaction failed")
)

// RevertError is a remote rejection of a contract call.
// Error returns the contract's reason string unchanged.
type RevertError struct {
	Reason string
	Data   []byte
	err    error
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return revertedPrefix
	}
	return e.Reason
}

func (e *RevertError) Unwrap() error {
	return e.err
}

// TxFailedError reports a transaction that was mined but not successful
type TxFailedError struct {
	Hash common.Hash
}

func (e *TxFailedError) Error() string {
	return fmt.Sprintf("transaction %s failed", e.Hash.Hex())
}

func (e *TxFailedError) Is(target error) bool {
	return target == ErrTxFailed
}

// AsRevert returns the revert carried by err, if any
func AsRevert(err error) (*RevertError, bool) {
	var revert *RevertError
	if errors.As(err, &revert) {
		return revert, true
	}
	return nil, false
}

// wrapRevert converts node errors describing a revert into *RevertError
func wrapRevert(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsRevert(err); ok {
		return err
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data := revertData(dataErr.ErrorData()); len(data) > 0 {
			if reason, uerr := abi.UnpackRevert(data); uerr == nil {
				return &RevertError{Reason: reason, Data: data, err: err}
			}
		}
	}

	msg := err.Error()
	if i := strings.Index(msg, revertedPrefix); i >= 0 {
		reason := strings.TrimSpace(strings.TrimPrefix(msg[i+len(revertedPrefix):], ":"))
		return &RevertError{Reason: reason, err: err}
	}
	return err
}

func revertData(v interface{}) []byte {
	switch data := v.(type) {
	case string:
		decoded, err := hexutil.Decode(data)
		if err != nil {
			return nil
		}
		return decoded
	case []byte:
		return data
	default:
		return nil
	}
}
