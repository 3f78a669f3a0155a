package services

import (
	"errors"

	"freshcart/pkg/apperrors"

	"gorm.io/gorm"
)

// TxRunner wraps gorm's transaction entry point so orchestrating services
// can be exercised against mocks.
type TxRunner interface {
	InTx(fn func(tx *gorm.DB) error) error
}

type txRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) TxRunner {
	return &txRunner{db: db}
}

func (r *txRunner) InTx(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// asNotFound converts gorm's record-not-found into the NotFound kind with a
// caller-supplied description; other errors pass through untouched.
func asNotFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(format, args...)
	}
	return err
}
