// Package store persists the settlement records: deposits, burn requests,
// approval tokens and members, banks, the block cursor, balance samples and
// the notification outbox. Every function goes through app.DB.
package store

import (
	"fmt"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// ioError marks a failed store call as transient. The driver error stays in
// the chain so transaction labels still reach the driver's retry loop.
type ioError struct {
	op  string
	err error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.op, common.ErrTransientIO, e.err)
}

func (e *ioError) Unwrap() []error {
	return []error{common.ErrTransientIO, e.err}
}

func (e *ioError) Cause() error {
	return e.err
}

func wrapIO(err error, op string) error {
	return &ioError{op: op, err: err}
}

func categorized(err error) bool {
	for _, target := range []error{
		common.ErrValidation,
		common.ErrUnauthorized,
		common.ErrForbidden,
		common.ErrConflict,
		common.ErrNotFound,
		common.ErrTransientIO,
		common.ErrExternalSource,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// InTransaction runs fn as one transaction. Errors that do not already carry
// a category are reported as transient, except unique index violations which
// mean a concurrent writer got there first.
func InTransaction(op string, fn func(tx app.Database) error) error {
	err := app.DB.WithTransaction(fn)
	if err == nil {
		return nil
	}
	if categorized(err) {
		return err
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrapf(common.ErrConflict, "%s: %v", op, err)
	}
	return wrapIO(err, op)
}
