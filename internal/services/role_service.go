package services

import (
	"context"
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// RoleService contiene la lógica de negocio para roles.
type RoleService struct {
	roleRepo repositories.RoleRepository
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewRoleService crea un nuevo RoleService.
func NewRoleService(
	roleRepo repositories.RoleRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateRoleInput son los datos para crear un rol.
type CreateRoleInput struct {
	Name        string
	Description *string
}

// CreateRole crea un rol nuevo. Los roles creados por la API nunca son
// de sistema ni otorgan acceso total.
func (s *RoleService) CreateRole(ctx context.Context, input CreateRoleInput) (*entities.Role, error) {
	existing, err := s.roleRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrRoleNameAlreadyExists
	}

	role := &entities.Role{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("role created", "role_id", role.ID, "name", role.Name)
	return role, nil
}

// GetRole busca un rol por ID.
func (s *RoleService) GetRole(ctx context.Context, id uint) (*entities.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.ErrRoleNotFound
	}
	return role, nil
}

// UpdateRoleInput son los datos para actualizar un rol.
type UpdateRoleInput struct {
	Name        *string
	Description *string
}

// UpdateRole actualiza nombre o descripción. Los roles de sistema no se
// pueden modificar.
func (s *RoleService) UpdateRole(ctx context.Context, id uint, input UpdateRoleInput) (*entities.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.ErrRoleNotFound
	}
	if role.IsSystemRole {
		return nil, errors.ErrSystemRoleProtected
	}

	if input.Name != nil && *input.Name != role.Name {
		existing, err := s.roleRepo.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != role.ID {
			return nil, errors.ErrRoleNameAlreadyExists
		}
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = input.Description
	}

	now := time.Now().UTC()
	role.UpdatedAt = &now
	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("role updated", "role_id", role.ID)
	return role, nil
}

// DeleteRole aplica borrado lógico. Los roles de sistema y los roles con
// usuarios asignados no se pueden borrar.
func (s *RoleService) DeleteRole(ctx context.Context, id uint) error {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return errors.ErrRoleNotFound
	}
	if role.IsSystemRole {
		return errors.ErrSystemRoleProtected
	}

	inUse, err := s.userRepo.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return errors.ErrRoleInUse
	}

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("role deleted", "role_id", id)
	return nil
}

// ListRoles lista roles con filtros y devuelve el total sin paginar.
func (s *RoleService) ListRoles(ctx context.Context, filters repositories.RoleFilters) ([]*entities.Role, int64, error) {
	return s.roleRepo.List(ctx, filters)
}
