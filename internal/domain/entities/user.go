package entities

import (
	"errors"
	"strings"
	"time"
)

// UserStatus representa el estado de la cuenta de un usuario.
type UserStatus string

const (
	UserStatusActive    UserStatus = "Active"
	UserStatusInactive  UserStatus = "Inactive"
	UserStatusSuspended UserStatus = "Suspended"
)

// User representa un usuario del sistema. Cada usuario pertenece a
// exactamente un rol y posee sus permisos por módulo y sus tokens de reset.
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	RoleID       uint
	Status       UserStatus
	Avatar       *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LastLoginAt  *time.Time
	DeletedAt    *time.Time

	Role *Role
}

// FullName devuelve el nombre completo del usuario.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsActive indica si la cuenta está activa.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsDeleted indica si el usuario fue borrado lógicamente.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca el usuario como borrado.
func (u *User) SoftDelete() {
	now := time.Now().UTC()
	u.DeletedAt = &now
}

// Validate valida reglas de negocio de la entidad User.
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.FirstName == "" {
		return errors.New("first name is required")
	}
	if u.RoleID == 0 {
		return errors.New("role is required")
	}
	switch u.Status {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
	default:
		return errors.New("invalid status")
	}
	return nil
}
