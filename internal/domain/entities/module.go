package entities

import "time"

// Module representa un área funcional de la aplicación sobre la que se
// otorgan permisos. Code es el identificador estable para máquina
// (p. ej. "TASKS", "USERS"); Name, Path, Icon y Order alimentan el menú
// del frontend.
type Module struct {
	ID          uint
	Name        string
	Code        string
	Description *string
	Path        string
	Icon        string
	Order       int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// IsDeleted indica si el módulo fue borrado lógicamente.
func (m *Module) IsDeleted() bool {
	return m.DeletedAt != nil
}
