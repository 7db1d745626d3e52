package app

import (
	"errors"
	"testing"

	"github.com/dan13ram/clpd-settlement/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIndexSetups(t *testing.T) {
	unique := map[string]bool{}
	for _, setup := range indexSetups() {
		if setup.model.Options != nil && setup.model.Options.Unique != nil && *setup.model.Options.Unique {
			unique[setup.collection] = true
		}
	}

	assert.True(t, unique[models.CollectionDeposits])
	assert.True(t, unique[models.CollectionUnmatchedMints])
	assert.True(t, unique[models.CollectionApprovalMembers])
	assert.True(t, unique[models.CollectionBanks])
	assert.True(t, unique[models.CollectionHealthChecks])
}

func TestApprovalTokensExpireByIndex(t *testing.T) {
	for _, setup := range indexSetups() {
		if setup.collection != models.CollectionApprovalTokens {
			continue
		}
		assert.NotNil(t, setup.model.Options.ExpireAfterSeconds)
		assert.Equal(t, int32(0), *setup.model.Options.ExpireAfterSeconds)
		return
	}
	t.Fatal("no index for approval tokens")
}

func TestIsNamespaceExistsError(t *testing.T) {
	assert.True(t, isNamespaceExistsError(mongo.CommandError{Code: 48, Name: "NamespaceExists"}))
	assert.False(t, isNamespaceExistsError(mongo.CommandError{Code: 11000}))
	assert.False(t, isNamespaceExistsError(errors.New("error")))
}

func TestRandomString(t *testing.T) {
	a := randomString(32)
	b := randomString(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
