package ballot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrNoBytecode is returned when an artifact cannot be deployed
var ErrNoBytecode = errors.New("artifact has no bytecode")

// Artifact is a compiled contract: interface plus creation bytecode
type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Bytecode     []byte
}

// artifactFile covers both hardhat ("bytecode": "0x...") and
// foundry ("bytecode": {"object": "0x..."}) output layouts
type artifactFile struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

// LoadArtifact reads a compiled contract JSON file
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found: %s (set BALLOT_ARTIFACT)", path)
		}
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return ParseArtifact(data)
}

// ParseArtifact decodes a compiled contract JSON document.
// The embedded Ballot interface is used when the document carries none.
func ParseArtifact(data []byte) (*Artifact, error) {
	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse artifact: %w", err)
	}

	artifact := &Artifact{ContractName: file.ContractName}

	if len(file.ABI) > 0 && string(file.ABI) != "null" {
		parsed, err := abi.JSON(bytes.NewReader(file.ABI))
		if err != nil {
			return nil, fmt.Errorf("failed to parse artifact abi: %w", err)
		}
		artifact.ABI = parsed
	} else {
		parsed, err := BallotMetaData.GetAbi()
		if err != nil {
			return nil, err
		}
		artifact.ABI = *parsed
	}

	code, err := decodeBytecode(file.Bytecode)
	if err != nil {
		return nil, err
	}
	artifact.Bytecode = code

	return artifact, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrNoBytecode
	}

	var hexCode string
	if err := json.Unmarshal(raw, &hexCode); err != nil {
		var nested struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse artifact bytecode: %w", err)
		}
		hexCode = nested.Object
	}

	if !strings.HasPrefix(hexCode, "0x") {
		hexCode = "0x" + hexCode
	}
	if hexCode == "0x" {
		return nil, ErrNoBytecode
	}

	code, err := hexutil.Decode(hexCode)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artifact bytecode: %w", err)
	}
	return code, nil
}
