package client

import (
	"context"
	"time"

	"math/big"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	log "github.com/sirupsen/logrus"
)

type EthereumClient interface {
	ValidateNetwork()
	GetBlockNumber() (uint64, error)
	GetChainID() (*big.Int, error)
	FilterLogs(query ethereum.FilterQuery) ([]types.Log, error)
}

type ethereumClient struct {
	client *ethclient.Client
}

func (c *ethereumClient) timeout() time.Duration {
	return time.Duration(app.Config.Ethereum.RPCTimeoutMillis) * time.Millisecond
}

func (c *ethereumClient) GetBlockNumber() (uint64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()

	blockNumber, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	return blockNumber, nil
}

func (c *ethereumClient) GetChainID() (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return chainID, nil
}

func (c *ethereumClient) FilterLogs(query ethereum.FilterQuery) ([]types.Log, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()

	return c.client.FilterLogs(ctx, query)
}

func (c *ethereumClient) ValidateNetwork() {
	log.Debugln("[ETH]", "Validating network")
	log.Debugln("[ETH]", "uri", app.Config.Ethereum.RPCURL)

	chainID, err := c.GetChainID()
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get chain ID:", err)
	}
	blockNumber, err := c.GetBlockNumber()
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get block number:", err)
	}

	log.Debugln("[ETH]", "chainID", chainID.Uint64())

	if chainID.String() != app.Config.Ethereum.ChainID {
		log.Fatalln("[ETH]", "Chain ID Mismatch", "expected", app.Config.Ethereum.ChainID, "got", chainID.Uint64())
	}

	log.Debugln("[ETH]", "blockNumber", blockNumber)

	log.Infoln("[ETH]", "Validated network")
}

func NewClient() (EthereumClient, error) {
	client, err := ethclient.Dial(app.Config.Ethereum.RPCURL)
	if err != nil {
		return nil, err
	}
	return &ethereumClient{
		client: client,
	}, nil
}
