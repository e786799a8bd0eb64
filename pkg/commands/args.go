package commands

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	// ErrMissingArgument is returned when a positional argument is absent
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidArgument is returned when a positional argument is malformed
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotChairperson is returned when the caller may not grant voting rights
	ErrNotChairperson = errors.New("caller is not the chairperson for this contract")
	// ErrOutOfBounds is returned for a proposal index outside the proposal list
	ErrOutOfBounds = errors.New("proposal index is out of bounds")
)

// MinProposals is the fewest proposals a ballot can be deployed with
const MinProposals = 2

type missingArgError struct {
	name string
}

func (e *missingArgError) Error() string {
	return e.name + " missing"
}

func (e *missingArgError) Is(target error) bool {
	return target == ErrMissingArgument
}

// requireArgs checks that exactly the named positional arguments are present
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return &missingArgError{name: names[len(args)]}
		}
		if len(args) > len(names) {
			return fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidArgument, len(names), len(args))
		}
		return nil
	}
}

// requireProposals checks that enough proposal names were given
func requireProposals(cmd *cobra.Command, args []string) error {
	if len(args) < MinProposals {
		return fmt.Errorf("%w: not enough proposals provided, need at least %d, got %d", ErrMissingArgument, MinProposals, len(args))
	}
	return nil
}

func parseAddress(name, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s %q is not an address", ErrInvalidArgument, name, value)
	}
	return common.HexToAddress(value), nil
}

// parseIndex accepts any decimal integer. Range is checked against the live proposal count.
func parseIndex(value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("%w: proposal index %q is not an integer", ErrInvalidArgument, value)
	}
	return n, nil
}

func outOfBounds(index *big.Int, count int) error {
	return fmt.Errorf("%w: index %s, ballot has %d proposals", ErrOutOfBounds, index, count)
}
