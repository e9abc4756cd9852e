package services

import (
	"context"
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// ModuleService contiene la lógica de negocio para módulos.
type ModuleService struct {
	moduleRepo     repositories.ModuleRepository
	permissionRepo repositories.PermissionRepository
	logger         ports.Logger
}

// NewModuleService crea un nuevo ModuleService.
func NewModuleService(
	moduleRepo repositories.ModuleRepository,
	permissionRepo repositories.PermissionRepository,
	logger ports.Logger,
) *ModuleService {
	return &ModuleService{
		moduleRepo:     moduleRepo,
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

// CreateModuleInput son los datos para crear un módulo.
type CreateModuleInput struct {
	Name        string
	Code        string
	Description *string
	Path        string
	Icon        string
	Order       int
	IsActive    bool
}

// CreateModule crea un módulo nuevo. El código debe ser único.
func (s *ModuleService) CreateModule(ctx context.Context, input CreateModuleInput) (*entities.Module, error) {
	existing, err := s.moduleRepo.FindByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrModuleCodeAlreadyExists
	}

	module := &entities.Module{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		Path:        input.Path,
		Icon:        input.Icon,
		Order:       input.Order,
		IsActive:    input.IsActive,
	}
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, err
	}

	s.logger.Info("module created", "module_id", module.ID, "code", module.Code)
	return module, nil
}

// GetModule busca un módulo por ID.
func (s *ModuleService) GetModule(ctx context.Context, id uint) (*entities.Module, error) {
	module, err := s.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.ErrModuleNotFound
	}
	return module, nil
}

// UpdateModuleInput son los datos para actualizar un módulo. El código
// estable no se puede cambiar.
type UpdateModuleInput struct {
	Name        *string
	Description *string
	Path        *string
	Icon        *string
	Order       *int
	IsActive    *bool
}

// UpdateModule actualiza los campos presentes del módulo.
func (s *ModuleService) UpdateModule(ctx context.Context, id uint, input UpdateModuleInput) (*entities.Module, error) {
	module, err := s.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.ErrModuleNotFound
	}

	if input.Name != nil {
		module.Name = *input.Name
	}
	if input.Description != nil {
		module.Description = input.Description
	}
	if input.Path != nil {
		module.Path = *input.Path
	}
	if input.Icon != nil {
		module.Icon = *input.Icon
	}
	if input.Order != nil {
		module.Order = *input.Order
	}
	if input.IsActive != nil {
		module.IsActive = *input.IsActive
	}

	now := time.Now().UTC()
	module.UpdatedAt = &now
	if err := s.moduleRepo.Update(ctx, module); err != nil {
		return nil, err
	}

	s.logger.Info("module updated", "module_id", module.ID)
	return module, nil
}

// DeleteModule aplica borrado lógico. Los módulos con permisos asignados
// no se pueden borrar.
func (s *ModuleService) DeleteModule(ctx context.Context, id uint) error {
	module, err := s.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if module == nil {
		return errors.ErrModuleNotFound
	}

	assigned, err := s.permissionRepo.CountByModule(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return errors.ErrModuleHasPermissions
	}

	if err := s.moduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("module deleted", "module_id", id)
	return nil
}

// ListModules lista módulos ordenados por Order y devuelve el total.
func (s *ModuleService) ListModules(ctx context.Context, filters repositories.ModuleFilters) ([]*entities.Module, int64, error) {
	return s.moduleRepo.List(ctx, filters)
}
