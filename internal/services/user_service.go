package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// bcryptCost es el costo de hashing para todas las contraseñas.
const bcryptCost = 12

// UserService contiene la lógica de negocio para usuarios.
type UserService struct {
	userRepo       repositories.UserRepository
	roleRepo       repositories.RoleRepository
	permissionRepo repositories.PermissionRepository
	uow            ports.UnitOfWork
	tokenIssuer    ports.TokenIssuer
	security       ports.SecurityLogger
	logger         ports.Logger
}

// NewUserService crea un nuevo UserService.
func NewUserService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	permissionRepo repositories.PermissionRepository,
	uow ports.UnitOfWork,
	tokenIssuer ports.TokenIssuer,
	security ports.SecurityLogger,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		uow:            uow,
		tokenIssuer:    tokenIssuer,
		security:       security,
		logger:         logger,
	}
}

// CreateUserInput son los datos para crear un usuario.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleID    uint
	Status    entities.UserStatus
	Avatar    *string
}

// CreateUser crea un nuevo usuario con la contraseña hasheada.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	role, err := s.roleRepo.FindByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.ErrRoleNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entities.UserStatusActive
	}

	user := &entities.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		RoleID:       input.RoleID,
		Status:       status,
		Avatar:       input.Avatar,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"email", user.Email,
		"role_id", user.RoleID,
	)
	return user, nil
}

// GetUser busca un usuario por ID con su rol cargado.
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByIDWithRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateUserInput son los datos para actualizar un usuario. Los campos
// nil no se tocan.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	RoleID    *uint
	Status    *entities.UserStatus
	Avatar    *string
}

// UpdateUser actualiza los campos presentes del usuario.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, errors.ErrEmailAlreadyExists
		}
		user.Email = *input.Email
	}

	if input.RoleID != nil && *input.RoleID != user.RoleID {
		role, err := s.roleRepo.FindByID(ctx, *input.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, errors.ErrRoleNotFound
		}
		user.RoleID = *input.RoleID
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// DeleteUser aplica borrado lógico al usuario y elimina sus permisos.
// Ambos pasos ocurren en la misma transacción.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.permissionRepo.DeleteAllForUser(txCtx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// ListUsers lista usuarios con filtros y devuelve el total sin paginar.
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	return s.userRepo.List(ctx, filters)
}

// LoginResult es el resultado de una autenticación exitosa.
type LoginResult struct {
	User      *entities.User
	Token     string
	ExpiresAt time.Time
}

// Login autentica por correo y contraseña y emite un token. Las causas de
// rechazo (correo inexistente, contraseña incorrecta) comparten el mismo
// error para no revelar cuál falló.
func (s *UserService) Login(ctx context.Context, email, password, ip string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.security.LogFailedLogin(email, ip)
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.security.LogFailedLogin(email, ip)
		return nil, errors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.security.LogSuspiciousActivity(email, "login attempt on inactive account", ip)
		return nil, errors.ErrUserInactive
	}

	// Cargar el rol para los claims del token
	userWithRole, err := s.userRepo.FindByIDWithRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if userWithRole != nil {
		user = userWithRole
	}

	token, expiresAt, err := s.tokenIssuer.Issue(user)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("failed to record last login", "user_id", user.ID, "error", err)
	}

	s.security.LogSuccessfulLogin(email, ip)

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ChangePassword cambia la contraseña verificando primero la actual.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	now := time.Now().UTC()
	user.UpdatedAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}
