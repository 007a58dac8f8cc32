package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"lagerapp/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20240518_create_locator_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Item{}, &models.Order{}, &models.OrderItem{})
			},
		},
		{
			ID: "20240601_add_info_board",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Info{})
			},
		},
		{
			ID: "20240612_enforce_item_code_uniqueness",
			Migrate: func(tx *gorm.DB) error {
				// Older databases were created before the composite index
				// existed and may rely on ad-hoc checks only.
				return tx.Exec(
					"CREATE UNIQUE INDEX IF NOT EXISTS idx_items_code ON items (model_prefix, number)",
				).Error
			},
		},
	})
	return m.Migrate()
}
