package util

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const tokenABI = `[{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"agent","type":"address"},{"indexed":true,"internalType":"address","name":"user","type":"address"},{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"}],"name":"TokensMinted","type":"event"}]`

var (
	tokenContractABI = mustParseABI(tokenABI)

	TokensMintedTopic = tokenContractABI.Events["TokensMinted"].ID
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}

// TokensMintedEvent is a decoded TokensMinted(agent, user, amount) log.
type TokensMintedEvent struct {
	Agent           common.Address
	User            common.Address
	Amount          *big.Int
	TransactionHash string
	LogIndex        uint
	BlockNumber     uint64
}

// DecodeTokensMinted decodes a raw log emitted by the token contract.
func DecodeTokensMinted(log types.Log) (*TokensMintedEvent, error) {
	if len(log.Topics) != 3 || log.Topics[0] != TokensMintedTopic {
		return nil, fmt.Errorf("log %s:%d is not a TokensMinted event", log.TxHash.Hex(), log.Index)
	}

	values, err := tokenContractABI.Unpack("TokensMinted", log.Data)
	if err != nil {
		return nil, fmt.Errorf("unpack TokensMinted data: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected TokensMinted data length %d", len(values))
	}
	amount, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected TokensMinted amount type %T", values[0])
	}

	return &TokensMintedEvent{
		Agent:           common.BytesToAddress(log.Topics[1].Bytes()),
		User:            common.BytesToAddress(log.Topics[2].Bytes()),
		Amount:          amount,
		TransactionHash: log.TxHash.Hex(),
		LogIndex:        log.Index,
		BlockNumber:     log.BlockNumber,
	}, nil
}
