package entities

import "time"

// Role representa el rol de un usuario en el sistema.
// IsSystemRole protege los roles sembrados contra edición y borrado.
// GrantsAllPermissions es una capacidad explícita: el rol pasa cualquier
// verificación de permisos sin consultar registros por módulo. Solo el rol
// "Administrador" sembrado la tiene activa.
type Role struct {
	ID                   uint
	Name                 string
	Description          *string
	IsSystemRole         bool
	GrantsAllPermissions bool
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	DeletedAt            *time.Time
}

// IsDeleted indica si el rol fue borrado lógicamente.
func (r *Role) IsDeleted() bool {
	return r.DeletedAt != nil
}
