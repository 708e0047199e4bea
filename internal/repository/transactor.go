package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs a unit of work against repositories that share one
// database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, users UserRepository, photos PhotoRepository) error) error
}

type transactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor over db.
func NewTransactor(db *gorm.DB) Transactor {
	return &transactor{db: db}
}

// WithTransaction executes fn within a database transaction. Returning an
// error from fn rolls the transaction back.
func (t *transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context, users UserRepository, photos PhotoRepository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &userRepository{db: tx}, &photoRepository{db: tx})
	})
}
