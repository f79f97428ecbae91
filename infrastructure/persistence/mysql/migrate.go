package mysql

import (
	"fmt"

	"comedor/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persistence object.
// Run at startup; safe to call repeatedly.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&po.UserPO{},
		&po.AddressPO{},
		&po.CategoryPO{},
		&po.ProductPO{},
		&po.OrderPO{},
		&po.OrderLinePO{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
