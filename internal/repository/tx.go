package repository

import (
	"gorm.io/gorm"
)

// TxManager runs a function inside a single database transaction. Every
// write the function performs through tx commits or rolls back atomically.
type TxManager interface {
	InTransaction(fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) InTransaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
