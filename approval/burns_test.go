package approval

import (
	"testing"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/app/mocks"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const testBurnHash = "0x6a9c8d7f6e5d4c3b2a1908f7e6d5c4b3a29180f7e6d5c4b3a29180f7e6d5c4b3"

func testBankInfo() models.BankInfo {
	return models.BankInfo{
		HolderName:    "Jane Doe",
		NationalId:    "12.345.678-9",
		BankName:      "Banco Estado",
		AccountType:   "checking",
		AccountNumber: "000123456",
		Email:         "jane@example.com",
	}
}

func expectBurn(mockDB *mocks.MockDatabase, burn models.BurnRequest) {
	mockDB.EXPECT().FindOne(models.CollectionBurnRequests, bson.M{"_id": burn.Id}, mock.Anything).
		Run(func(_ string, _ interface{}, result interface{}) {
			*result.(*models.BurnRequest) = burn
		}).
		Return(nil)
}

func TestRequestBurn(t *testing.T) {
	t.Run("Records Request", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		mockDB.EXPECT().InsertOne(models.CollectionBurnRequests, mock.Anything).
			Run(func(_ string, data interface{}) {
				burn := data.(models.BurnRequest)
				assert.Equal(t, models.BurnStatusReceivedNotBurned, burn.Status)
				assert.Equal(t, "Banco Estado", burn.Bank.BankName)
			}).
			Return(nil)
		notifications := collectNotifications(mockDB)

		burn, err := x.RequestBurn("user@example.com", testAddress, "250.5", testBankInfo())

		assert.Nil(t, err)
		assert.NotEmpty(t, burn.Id)
		assert.Len(t, *notifications, 2)
		assert.Equal(t, models.TemplateBurnReceived, (*notifications)[1].Template)
	})

	t.Run("Incomplete Bank Info", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		bank := testBankInfo()
		bank.AccountNumber = ""

		_, err := x.RequestBurn("user@example.com", testAddress, "250", bank)

		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestMarkBurned(t *testing.T) {
	member := testMember()

	t.Run("Marks Burned", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		expectMembers(mockDB, member)
		mockDB.EXPECT().UpdateOne(models.CollectionBurnRequests, bson.M{"_id": "b1", "status": models.BurnStatusReceivedNotBurned}, mock.Anything).
			Run(func(_ string, _ interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.BurnStatusBurned, set["status"])
				assert.Equal(t, testBurnHash, set["burn_transaction_hash"])
				assert.Equal(t, "alice", set["processed_by"])
			}).
			Return(int64(1), nil)
		expectBurn(mockDB, models.BurnRequest{Id: "b1", Email: "user@example.com", Status: models.BurnStatusBurned, BurnTransactionHash: testBurnHash})
		notifications := collectNotifications(mockDB)

		burn, err := x.MarkBurned("b1", testBurnHash, testPassword)

		assert.Nil(t, err)
		assert.Equal(t, models.BurnStatusBurned, burn.Status)
		assert.Equal(t, testBurnHash, (*notifications)[0].TemplateData["transaction_hash"])
	})

	t.Run("Invalid Hash", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		_, err := x.MarkBurned("b1", "0x1234", testPassword)

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Already Processed", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		expectMembers(mockDB, member)
		mockDB.EXPECT().UpdateOne(models.CollectionBurnRequests, mock.Anything, mock.Anything).Return(int64(0), nil)
		expectBurn(mockDB, models.BurnRequest{Id: "b1", Status: models.BurnStatusRejected})

		_, err := x.MarkBurned("b1", testBurnHash, testPassword)

		assert.ErrorIs(t, err, common.ErrConflict)
	})

	t.Run("Unknown Request", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		expectMembers(mockDB, member)
		mockDB.EXPECT().UpdateOne(models.CollectionBurnRequests, mock.Anything, mock.Anything).Return(int64(0), nil)
		mockDB.EXPECT().FindOne(models.CollectionBurnRequests, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		_, err := x.MarkBurned("b404", testBurnHash, testPassword)

		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestRejectBurn(t *testing.T) {
	member := testMember()

	t.Run("Rejects", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		expectMembers(mockDB, member)
		mockDB.EXPECT().UpdateOne(models.CollectionBurnRequests, mock.Anything, mock.Anything).Return(int64(1), nil)
		expectBurn(mockDB, models.BurnRequest{Id: "b1", Email: "user@example.com", Status: models.BurnStatusRejected})
		collectNotifications(mockDB)

		burn, err := x.RejectBurn("b1", "tokens never arrived", testPassword)

		assert.Nil(t, err)
		assert.Equal(t, models.BurnStatusRejected, burn.Status)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		expectMembers(mockDB, member)

		_, err := x.RejectBurn("b1", "tokens never arrived", "guess-password")

		assert.ErrorIs(t, err, common.ErrUnauthorized)
	})
}

func TestListBurnRequests(t *testing.T) {
	mockDB := mocks.NewMockDatabase(t)
	app.DB = mockDB
	x := NewTestController(nil)

	_, err := x.ListBurnRequests("pending")
	assert.ErrorIs(t, err, common.ErrValidation)

	mockDB.EXPECT().FindManySorted(models.CollectionBurnRequests, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err = x.ListBurnRequests(models.BurnStatusBurned)
	assert.Nil(t, err)
}

func TestAddBank(t *testing.T) {
	t.Run("Adds", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		mockDB.EXPECT().InsertOne(models.CollectionBanks, mock.Anything).Return(nil)

		bank, err := x.AddBank("user@example.com", testBankInfo())

		assert.Nil(t, err)
		assert.Equal(t, "user@example.com", bank.Owner)
	})

	t.Run("Duplicate Account", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		mockDB.EXPECT().InsertOne(models.CollectionBanks, mock.Anything).Return(mongo.CommandError{Code: 11000})

		_, err := x.AddBank("user@example.com", testBankInfo())

		assert.ErrorIs(t, err, common.ErrConflict)
	})

	t.Run("Bad Owner", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestController(nil)

		_, err := x.ListBanks("nobody")

		assert.ErrorIs(t, err, common.ErrValidation)
	})
}
