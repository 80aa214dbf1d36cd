package postgres

import (
	"laundry/internal/adapters/out/postgres/distributionrepo"
	"laundry/internal/adapters/out/postgres/expenserepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/salaryrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO, parents before children.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&expenserepo.ExpenseDTO{},
		&salaryrepo.PaymentDTO{},
		&distributionrepo.RecordDTO{},
	}
}

// Migrate creates or updates the schema of every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
