package repositories

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxRunner abstracts gorm's Transaction entry point so services can run
// multi-repository transactions without binding to a concrete *gorm.DB.
// *gorm.DB satisfies it directly.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
