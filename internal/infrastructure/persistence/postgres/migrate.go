package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate sincroniza el esquema de todas las tablas de la aplicación.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&RoleModel{},
		&UserModel{},
		&ModuleModel{},
		&UserPermissionModel{},
		&PasswordResetTokenModel{},
		&TaskModel{},
		&CatalogItemModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
