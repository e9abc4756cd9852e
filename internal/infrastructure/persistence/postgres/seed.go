package postgres

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
)

const seedAdminEmail = "admin@sistema.com"

func strPtr(s string) *string { return &s }

// Seed carga los datos iniciales si la base está vacía: roles del sistema,
// módulos de navegación y el usuario administrador. Es idempotente.
func Seed(db *gorm.DB, adminPassword string, log ports.Logger) error {
	var roleCount int64
	if err := db.Model(&RoleModel{}).Count(&roleCount).Error; err != nil {
		return fmt.Errorf("failed to count roles: %w", err)
	}
	if roleCount > 0 {
		log.Debug("seed skipped, roles already present", "count", roleCount)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		roles := []*RoleModel{
			{
				Name:                 "Administrador",
				Description:          strPtr("Acceso total al sistema"),
				IsSystemRole:         true,
				GrantsAllPermissions: true,
			},
			{
				Name:         "Sin asignar",
				Description:  strPtr("Rol por defecto para usuarios nuevos"),
				IsSystemRole: true,
			},
			{Name: "Analista", Description: strPtr("Análisis de información")},
			{Name: "Reportes", Description: strPtr("Consulta de reportes")},
			{Name: "Soporte", Description: strPtr("Atención a usuarios")},
		}
		for _, role := range roles {
			if err := tx.Create(role).Error; err != nil {
				return fmt.Errorf("failed to seed role %q: %w", role.Name, err)
			}
		}

		modules := []*ModuleModel{
			{Name: "Inicio", Code: "HOME", Path: "/home", Icon: "home", Order: 1, IsActive: true},
			{Name: "Tareas", Code: "TASKS", Path: "/tasks", Icon: "check-square", Order: 2, IsActive: true},
			{Name: "Usuarios", Code: "USERS", Path: "/users", Icon: "users", Order: 3, IsActive: true},
			{Name: "Roles", Code: "ROLES", Path: "/roles", Icon: "shield", Order: 4, IsActive: true},
			{Name: "Catálogo", Code: "CATALOGS", Path: "/catalogs", Icon: "book-open", Order: 5, IsActive: true},
			{Name: "Permisos", Code: "PERMISSIONS", Path: "/permissions", Icon: "key", Order: 6, IsActive: true},
			{Name: "Utilidades", Code: "ADMIN_UTILS", Path: "/admin/utils", Icon: "tool", Order: 7, IsActive: true},
		}
		for _, module := range modules {
			if err := tx.Create(module).Error; err != nil {
				return fmt.Errorf("failed to seed module %q: %w", module.Code, err)
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := &UserModel{
			FirstName:    "Administrador",
			LastName:     "Sistema",
			Email:        seedAdminEmail,
			PasswordHash: string(hash),
			RoleID:       roles[0].ID,
			Status:       string(entities.UserStatusActive),
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}

		log.Info("seed data created",
			"roles", len(roles),
			"modules", len(modules),
			"admin_email", admin.Email,
		)
		return nil
	})
}
