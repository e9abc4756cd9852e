package entities

import (
	"fmt"
	"time"
)

// PermissionType representa el nivel de acceso de un usuario sobre un módulo.
// Los valores dejan huecos de 10 en 10 para poder insertar niveles intermedios
// sin renumerar los datos existentes. La comparación es siempre numérica:
// un nivel mayor incluye a todos los menores.
type PermissionType int

const (
	PermissionNone  PermissionType = 0
	PermissionRead  PermissionType = 10
	PermissionWrite PermissionType = 20
	PermissionEdit  PermissionType = 30
	PermissionAdmin PermissionType = 40
)

// Includes indica si este nivel cubre el nivel requerido.
func (p PermissionType) Includes(required PermissionType) bool {
	return p >= required
}

// IsValid indica si el valor corresponde a un nivel conocido.
func (p PermissionType) IsValid() bool {
	switch p {
	case PermissionNone, PermissionRead, PermissionWrite, PermissionEdit, PermissionAdmin:
		return true
	}
	return false
}

// String devuelve la codificación histórica en texto del nivel.
func (p PermissionType) String() string {
	switch p {
	case PermissionNone:
		return "None"
	case PermissionRead:
		return "Read"
	case PermissionWrite:
		return "Write"
	case PermissionEdit:
		return "Edit"
	case PermissionAdmin:
		return "Admin"
	}
	return fmt.Sprintf("PermissionType(%d)", int(p))
}

// ParsePermissionType reconcilia la codificación histórica en texto
// ("None", "Read", ...) con los valores enteros canónicos. Los datos
// antiguos existen en ambas codificaciones; el modelo canónico usa enteros.
func ParsePermissionType(s string) (PermissionType, error) {
	switch s {
	case "None":
		return PermissionNone, nil
	case "Read":
		return PermissionRead, nil
	case "Write":
		return PermissionWrite, nil
	case "Edit":
		return PermissionEdit, nil
	case "Admin":
		return PermissionAdmin, nil
	}
	return PermissionNone, fmt.Errorf("unknown permission type %q", s)
}

// UserPermission asocia un usuario con un módulo y su nivel de acceso.
// Invariante: existe a lo más un registro por par (UserID, ModuleID).
type UserPermission struct {
	ID             uint
	UserID         uint
	ModuleID       uint
	PermissionType PermissionType
	CreatedAt      time.Time
	UpdatedAt      *time.Time

	Module *Module
}
