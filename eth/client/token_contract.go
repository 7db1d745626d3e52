package client

import (
	"math/big"

	"github.com/dan13ram/clpd-settlement/eth/util"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TokenContract reads the settlement token's event logs.
type TokenContract interface {
	FilterTokensMinted(fromBlock uint64, toBlock uint64) ([]types.Log, error)
}

type TokenContractImpl struct {
	client  EthereumClient
	address common.Address
}

func (x *TokenContractImpl) FilterTokensMinted(fromBlock uint64, toBlock uint64) ([]types.Log, error) {
	return x.client.FilterLogs(ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{x.address},
		Topics:    [][]common.Hash{{util.TokensMintedTopic}},
	})
}

func NewTokenContract(client EthereumClient, address string) TokenContract {
	return &TokenContractImpl{client: client, address: common.HexToAddress(address)}
}
