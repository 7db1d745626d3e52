package eth

import (
	"errors"
	"io"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	appMocks "github.com/dan13ram/clpd-settlement/app/mocks"
	"github.com/dan13ram/clpd-settlement/approval"
	"github.com/dan13ram/clpd-settlement/common"
	ethMocks "github.com/dan13ram/clpd-settlement/eth/client/mocks"
	"github.com/dan13ram/clpd-settlement/eth/util"
	"github.com/dan13ram/clpd-settlement/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

const (
	userAddress  = "0x1111111111111111111111111111111111111111"
	agentAddress = "0x000000000000000000000000000000000000a9e7"
)

func NewTestMintReconciler(t *testing.T, mockClient *ethMocks.MockEthereumClient, mockToken *ethMocks.MockTokenContract) *MintReconcilerRunner {
	settler := approval.NewController(nil, 24*time.Hour, "https://settlement.example.com")
	return &MintReconcilerRunner{
		client:           mockClient,
		token:            mockToken,
		settler:          settler,
		startBlockNumber: 100,
		confirmations:    0,
		maxQueryBlocks:   5000,
		decimals:         18,
	}
}

func wholeTokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func mintLog(user string, amount *big.Int, txHash string, index uint, block uint64) types.Log {
	return types.Log{
		Topics: []ethcommon.Hash{
			util.TokensMintedTopic,
			ethcommon.BytesToHash(ethcommon.HexToAddress(agentAddress).Bytes()),
			ethcommon.BytesToHash(ethcommon.HexToAddress(user).Bytes()),
		},
		Data:        ethcommon.LeftPadBytes(amount.Bytes(), 32),
		TxHash:      ethcommon.HexToHash(txHash),
		Index:       index,
		BlockNumber: block,
	}
}

func acceptedDeposit(id string, address string, amount string) models.Deposit {
	return models.Deposit{
		Id:      id,
		Email:   "user@example.com",
		Address: address,
		Amount:  amount,
		Status:  models.DepositStatusAcceptedNotMinted,
	}
}

func expectCursor(mockDB *appMocks.MockDatabase, block int64) {
	mockDB.EXPECT().FindOne(models.CollectionBlockCursors, bson.M{"_id": models.CursorTokensMinted}, mock.Anything).
		Run(func(_ string, _ interface{}, result interface{}) {
			result.(*models.BlockCursor).LastProcessedBlock = block
		}).
		Return(nil)
}

func recordCursorSaves(mockDB *appMocks.MockDatabase) *[]int64 {
	saved := []int64{}
	mockDB.EXPECT().UpsertOne(models.CollectionBlockCursors, mock.Anything, mock.Anything).
		Run(func(_ string, _ interface{}, update interface{}) {
			saved = append(saved, update.(bson.M)["$set"].(bson.M)["last_processed_block"].(int64))
		}).
		Return(nil)
	return &saved
}

func expectCandidates(mockDB *appMocks.MockDatabase, deposits ...models.Deposit) {
	mockDB.EXPECT().FindManySorted(models.CollectionDeposits, bson.M{"status": bson.M{"$in": []string{models.DepositStatusAcceptedNotMinted}}}, mock.Anything, mock.Anything).
		Run(func(_ string, _ interface{}, _ interface{}, result interface{}) {
			*result.(*[]models.Deposit) = deposits
		}).
		Return(nil)
}

func expectUnsettled(mockDB *appMocks.MockDatabase) {
	mockDB.EXPECT().FindOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)
}

func expectTransaction(mockDB *appMocks.MockDatabase) {
	mockDB.EXPECT().WithTransaction(mock.Anything).RunAndReturn(func(fn func(app.Database) error) error {
		return fn(mockDB)
	})
}

func collectNotifications(mockDB *appMocks.MockDatabase) *[]models.Notification {
	var mu sync.Mutex
	notifications := []models.Notification{}
	mockDB.EXPECT().InsertOne(models.CollectionNotifications, mock.Anything).
		Run(func(_ string, data interface{}) {
			mu.Lock()
			defer mu.Unlock()
			notifications = append(notifications, data.(models.Notification))
		}).
		Return(nil).Maybe()
	return &notifications
}

func TestWindows(t *testing.T) {
	t.Run("Splits Range", func(t *testing.T) {
		windows := Windows(1, 12001, 5000)

		assert.Equal(t, []Window{
			{Start: 1, End: 5000},
			{Start: 5001, End: 10000},
			{Start: 10001, End: 12001},
		}, windows)
	})

	t.Run("Exact Multiple", func(t *testing.T) {
		assert.Equal(t, []Window{{Start: 1, End: 5000}}, Windows(1, 5000, 5000))
	})

	t.Run("Single Block", func(t *testing.T) {
		assert.Equal(t, []Window{{Start: 7, End: 7}}, Windows(7, 7, 5000))
	})

	t.Run("Empty Range", func(t *testing.T) {
		assert.Empty(t, Windows(10, 5, 5000))
		assert.Empty(t, Windows(1, 5, 0))
	})
}

func TestMintReconcilerStatus(t *testing.T) {
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)
	x.currentBlockNumber = 200
	x.cursor = 150

	status := x.Status()

	assert.Equal(t, "200", status.EthBlockNumber)
	assert.Equal(t, "150", status.Cursor)
}

func TestReconcileWindows(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 0)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(12001), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(1), uint64(5000)).Return([]types.Log{}, nil).Once()
	mockToken.EXPECT().FilterTokensMinted(uint64(5001), uint64(10000)).Return([]types.Log{}, nil).Once()
	mockToken.EXPECT().FilterTokensMinted(uint64(10001), uint64(12001)).Return([]types.Log{}, nil).Once()
	saved := recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Equal(t, []int64{5000, 10000, 12001}, *saved)
	assert.Equal(t, int64(12001), x.cursor)
}

func TestReconcileInitializesCursor(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	mockDB.EXPECT().FindOne(models.CollectionBlockCursors, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)
	mockDB.EXPECT().InsertOne(models.CollectionBlockCursors, mock.Anything).
		Run(func(_ string, data interface{}) {
			assert.Equal(t, int64(100), data.(models.BlockCursor).LastProcessedBlock)
		}).
		Return(nil)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(100), nil)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Equal(t, int64(100), x.cursor)
}

func TestReconcileWaitsForConfirmations(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)
	x.confirmations = 5

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(105), nil)

	err := x.Reconcile()

	assert.Nil(t, err)
	mockToken.AssertNotCalled(t, "FilterTokensMinted", mock.Anything, mock.Anything)
}

func TestReconcileSettlesMatchingDeposit(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		mintLog(userAddress, wholeTokens(1000), "0xaa", 0, 105),
	}, nil)
	expectUnsettled(mockDB)
	expectCandidates(mockDB,
		acceptedDeposit("d0", userAddress, "999"),
		acceptedDeposit("d1", "0x1111111111111111111111111111111111111111", "1000.0"),
	)
	expectTransaction(mockDB)
	mockDB.EXPECT().UpdateOne(models.CollectionDeposits, bson.M{"_id": "d1", "status": models.DepositStatusAcceptedNotMinted}, mock.Anything).
		Run(func(_ string, _ interface{}, update interface{}) {
			set := update.(bson.M)["$set"].(bson.M)
			assert.Equal(t, models.DepositStatusAcceptedMinted, set["status"])
			assert.Equal(t, ethcommon.HexToHash("0xaa").Hex(), set["mint_transaction_hash"])
		}).
		Return(int64(1), nil)
	notifications := collectNotifications(mockDB)
	saved := recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Equal(t, []int64{110}, *saved)
	assert.Len(t, *notifications, 1)
	assert.Equal(t, models.SeveritySuccess, (*notifications)[0].Severity)
	assert.Contains(t, (*notifications)[0].Message, "d1")
}

func TestReconcileIsIdempotent(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	event := mintLog(userAddress, wholeTokens(1000), "0xaa", 0, 105)
	deposit := acceptedDeposit("d1", userAddress, "1000")

	// both runs start from the same cursor, as after a crash before the save
	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{event}, nil)
	expectCandidates(mockDB, deposit)

	mintFilter := bson.M{"mint_transaction_hash": ethcommon.HexToHash("0xaa").Hex(), "mint_log_index": uint(0)}
	mockDB.EXPECT().FindOne(models.CollectionDeposits, mintFilter, mock.Anything).Return(mongo.ErrNoDocuments).Once()
	mockDB.EXPECT().FindOne(models.CollectionDeposits, mintFilter, mock.Anything).
		Run(func(_ string, _ interface{}, result interface{}) {
			*result.(*models.Deposit) = deposit
		}).
		Return(nil).Once()

	expectTransaction(mockDB)
	mockDB.EXPECT().UpdateOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	notifications := collectNotifications(mockDB)
	saved := recordCursorSaves(mockDB)

	assert.Nil(t, x.Reconcile())
	assert.Nil(t, x.Reconcile())

	assert.Equal(t, []int64{110, 110}, *saved)
	assert.Len(t, *notifications, 1)
}

func TestReconcileUnmatchedEvent(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		mintLog(userAddress, wholeTokens(5), "0xbb", 1, 106),
	}, nil)
	expectUnsettled(mockDB)
	expectCandidates(mockDB, acceptedDeposit("d1", userAddress, "1000"))
	mockDB.EXPECT().InsertOne(models.CollectionUnmatchedMints, mock.Anything).
		Run(func(_ string, data interface{}) {
			doc := data.(models.UnmatchedMint)
			assert.Equal(t, models.UnmatchedReasonNoMatch, doc.Reason)
			assert.Equal(t, userAddress, doc.RecipientAddress)
			assert.Equal(t, wholeTokens(5).String(), doc.Amount)
		}).
		Return(nil)
	notifications := collectNotifications(mockDB)
	saved := recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Equal(t, []int64{110}, *saved)
	assert.Len(t, *notifications, 1)
	assert.Equal(t, models.SeverityWarning, (*notifications)[0].Severity)
	mockDB.AssertNotCalled(t, "WithTransaction", mock.Anything)
}

func TestReconcileUnmatchedEventAlreadyFlagged(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		mintLog(userAddress, wholeTokens(5), "0xbb", 1, 106),
	}, nil)
	expectUnsettled(mockDB)
	expectCandidates(mockDB)
	mockDB.EXPECT().InsertOne(models.CollectionUnmatchedMints, mock.Anything).Return(mongo.CommandError{Code: 11000})
	notifications := collectNotifications(mockDB)
	recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Empty(t, *notifications)
}

func TestReconcileAmbiguousEvent(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		mintLog(userAddress, wholeTokens(1000), "0xaa", 0, 105),
	}, nil)
	expectUnsettled(mockDB)
	expectCandidates(mockDB,
		acceptedDeposit("d1", userAddress, "1000"),
		acceptedDeposit("d2", userAddress, "1000"),
	)
	mockDB.EXPECT().InsertOne(models.CollectionUnmatchedMints, mock.Anything).
		Run(func(_ string, data interface{}) {
			doc := data.(models.UnmatchedMint)
			assert.Equal(t, models.UnmatchedReasonAmbiguous, doc.Reason)
			assert.Equal(t, []string{"d1", "d2"}, doc.CandidateIds)
		}).
		Return(nil)
	expectTransaction(mockDB)
	mockDB.EXPECT().UpdateOne(models.CollectionDeposits, bson.M{"_id": "d1", "status": models.DepositStatusAcceptedNotMinted}, mock.Anything).Return(int64(1), nil)
	notifications := collectNotifications(mockDB)
	recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Len(t, *notifications, 2)
	assert.Equal(t, "TokensMinted Event Matched Multiple Deposits", (*notifications)[0].Title)
	assert.Equal(t, models.SeveritySuccess, (*notifications)[1].Severity)
}

func TestReconcileTwoEventsForEqualDeposits(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		mintLog(userAddress, wholeTokens(1000), "0xaa", 0, 105),
		mintLog(userAddress, wholeTokens(1000), "0xab", 0, 106),
	}, nil)
	expectUnsettled(mockDB)
	expectCandidates(mockDB,
		acceptedDeposit("d1", userAddress, "1000"),
		acceptedDeposit("d2", userAddress, "1000"),
	)
	// the first event sees two candidates, the second only the unclaimed one
	mockDB.EXPECT().InsertOne(models.CollectionUnmatchedMints, mock.Anything).Return(nil).Once()
	expectTransaction(mockDB)
	mockDB.EXPECT().UpdateOne(models.CollectionDeposits, bson.M{"_id": "d1", "status": models.DepositStatusAcceptedNotMinted}, mock.Anything).Return(int64(1), nil).Once()
	mockDB.EXPECT().UpdateOne(models.CollectionDeposits, bson.M{"_id": "d2", "status": models.DepositStatusAcceptedNotMinted}, mock.Anything).Return(int64(1), nil).Once()
	collectNotifications(mockDB)
	recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
}

func TestReconcileSkipsUndecodableEvent(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	broken := mintLog(userAddress, wholeTokens(1000), "0xa0", 0, 104)
	broken.Data = []byte{0x01}

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		broken,
		mintLog(userAddress, wholeTokens(1000), "0xaa", 0, 105),
	}, nil)
	expectUnsettled(mockDB)
	expectCandidates(mockDB, acceptedDeposit("d1", userAddress, "1000"))
	expectTransaction(mockDB)
	mockDB.EXPECT().UpdateOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(int64(1), nil)
	notifications := collectNotifications(mockDB)
	saved := recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Equal(t, []int64{110}, *saved)
	assert.Len(t, *notifications, 2)
	assert.Equal(t, models.SeverityError, (*notifications)[0].Severity)
	assert.Equal(t, models.SeveritySuccess, (*notifications)[1].Severity)
}

func TestReconcileBatchConflictFallsBack(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		mintLog(userAddress, wholeTokens(1000), "0xaa", 0, 105),
	}, nil)
	expectUnsettled(mockDB)
	expectCandidates(mockDB, acceptedDeposit("d1", userAddress, "1000"))
	expectTransaction(mockDB)
	// the deposit was settled elsewhere after the candidates were read
	mockDB.EXPECT().UpdateOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(int64(0), nil).Twice()
	notifications := collectNotifications(mockDB)
	saved := recordCursorSaves(mockDB)

	err := x.Reconcile()

	assert.Nil(t, err)
	assert.Equal(t, []int64{110}, *saved)
	assert.Empty(t, *notifications)
}

func TestReconcileRPCFailure(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(0), errors.New("connection refused"))
	notifications := collectNotifications(mockDB)

	err := x.Reconcile()

	assert.ErrorIs(t, err, common.ErrTransientIO)
	assert.Len(t, *notifications, 1)
	assert.Equal(t, models.SeverityError, (*notifications)[0].Severity)
	mockDB.AssertNotCalled(t, "UpsertOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileKeepsProgressOnFailure(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 0)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(12001), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(1), uint64(5000)).Return([]types.Log{}, nil).Once()
	mockToken.EXPECT().FilterTokensMinted(uint64(5001), uint64(10000)).Return(nil, errors.New("range too large")).Once()
	saved := recordCursorSaves(mockDB)
	collectNotifications(mockDB)

	err := x.Reconcile()

	assert.ErrorIs(t, err, common.ErrTransientIO)
	assert.Equal(t, []int64{5000}, *saved)
	assert.Equal(t, int64(5000), x.cursor)
}

func TestReconcileStorageFailureAborts(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(110), nil)
	mockToken.EXPECT().FilterTokensMinted(uint64(101), uint64(110)).Return([]types.Log{
		mintLog(userAddress, wholeTokens(1000), "0xaa", 0, 105),
	}, nil)
	expectCandidates(mockDB, acceptedDeposit("d1", userAddress, "1000"))
	mockDB.EXPECT().FindOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(errors.New("timeout"))
	collectNotifications(mockDB)

	err := x.Reconcile()

	assert.ErrorIs(t, err, common.ErrTransientIO)
	mockDB.AssertNotCalled(t, "UpsertOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileWithoutWindowSize(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)
	x.maxQueryBlocks = -1

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(200), nil)
	notifications := collectNotifications(mockDB)

	err := x.Reconcile()

	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, int64(100), x.cursor)
	assert.Len(t, *notifications, 1)
	assert.Equal(t, models.SeverityError, (*notifications)[0].Severity)
	mockToken.AssertNotCalled(t, "FilterTokensMinted", mock.Anything, mock.Anything)
	mockDB.AssertNotCalled(t, "UpsertOne", models.CollectionBlockCursors, mock.Anything, mock.Anything)
}

func TestMintReconcilerRunRecordsFailure(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	mockClient := ethMocks.NewMockEthereumClient(t)
	mockToken := ethMocks.NewMockTokenContract(t)
	x := NewTestMintReconciler(t, mockClient, mockToken)

	expectCursor(mockDB, 100)
	mockClient.EXPECT().GetBlockNumber().Return(uint64(0), errors.New("rpc unreachable")).Once()
	collectNotifications(mockDB)

	x.Run()

	assert.Contains(t, x.Status().LastError, "rpc unreachable")

	mockClient.EXPECT().GetBlockNumber().Return(uint64(100), nil).Once()

	x.Run()

	assert.Equal(t, "", x.Status().LastError)
}
