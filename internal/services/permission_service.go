package services

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// PermissionService contiene la lógica de negocio de permisos por
// usuario y módulo.
type PermissionService struct {
	permissionRepo repositories.PermissionRepository
	userRepo       repositories.UserRepository
	moduleRepo     repositories.ModuleRepository
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewPermissionService crea un nuevo PermissionService.
func NewPermissionService(
	permissionRepo repositories.PermissionRepository,
	userRepo repositories.UserRepository,
	moduleRepo repositories.ModuleRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PermissionService {
	return &PermissionService{
		permissionRepo: permissionRepo,
		userRepo:       userRepo,
		moduleRepo:     moduleRepo,
		uow:            uow,
		logger:         logger,
	}
}

// HasPermission evalúa si el usuario alcanza el nivel requerido sobre el
// módulo identificado por su código. El orden importa: primero el rol con
// acceso total, después el registro por módulo. La ausencia de registro
// equivale a nivel None; un usuario o módulo inexistente es un error, no
// una negación.
func (s *PermissionService) HasPermission(ctx context.Context, userID uint, moduleCode string, required entities.PermissionType) (bool, error) {
	user, err := s.userRepo.FindByIDWithRole(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, errors.ErrUserNotFound
	}

	if user.Role != nil && user.Role.GrantsAllPermissions {
		return true, nil
	}

	module, err := s.moduleRepo.FindByCode(ctx, moduleCode)
	if err != nil {
		return false, err
	}
	if module == nil {
		return false, errors.ErrModuleNotFound
	}

	permission, err := s.permissionRepo.FindByUserAndModule(ctx, userID, module.ID)
	if err != nil {
		return false, err
	}

	level := entities.PermissionNone
	if permission != nil {
		level = permission.PermissionType
	}

	return level.Includes(required), nil
}

// GetUserModulePermission devuelve el nivel efectivo del usuario sobre un
// módulo: Admin si su rol otorga acceso total, None si no hay registro.
func (s *PermissionService) GetUserModulePermission(ctx context.Context, userID uint, moduleCode string) (entities.PermissionType, error) {
	user, err := s.userRepo.FindByIDWithRole(ctx, userID)
	if err != nil {
		return entities.PermissionNone, err
	}
	if user == nil {
		return entities.PermissionNone, errors.ErrUserNotFound
	}

	if user.Role != nil && user.Role.GrantsAllPermissions {
		return entities.PermissionAdmin, nil
	}

	module, err := s.moduleRepo.FindByCode(ctx, moduleCode)
	if err != nil {
		return entities.PermissionNone, err
	}
	if module == nil {
		return entities.PermissionNone, errors.ErrModuleNotFound
	}

	permission, err := s.permissionRepo.FindByUserAndModule(ctx, userID, module.ID)
	if err != nil {
		return entities.PermissionNone, err
	}
	if permission == nil {
		return entities.PermissionNone, nil
	}

	return permission.PermissionType, nil
}

// GetUserPermissions lista los permisos del usuario con su módulo cargado.
func (s *PermissionService) GetUserPermissions(ctx context.Context, userID uint) ([]*entities.UserPermission, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.permissionRepo.ListByUser(ctx, userID)
}

// GetUserModulePermissions devuelve el nivel del usuario por código de
// módulo. Solo incluye los módulos con registro explícito: la ausencia de
// clave equivale a None y el consumidor debe tratarla así.
func (s *PermissionService) GetUserModulePermissions(ctx context.Context, userID uint) (map[string]entities.PermissionType, error) {
	permissions, err := s.GetUserPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	levels := make(map[string]entities.PermissionType, len(permissions))
	for _, permission := range permissions {
		if permission.Module == nil {
			continue
		}
		levels[permission.Module.Code] = permission.PermissionType
	}
	return levels, nil
}

// AssignPermissionInput son los datos para asignar un permiso.
type AssignPermissionInput struct {
	UserID         uint
	ModuleID       uint
	PermissionType entities.PermissionType
}

// AssignPermission crea un permiso nuevo para el par (usuario, módulo).
// Falla si ya existe un registro para ese par.
func (s *PermissionService) AssignPermission(ctx context.Context, input AssignPermissionInput) (*entities.UserPermission, error) {
	if !input.PermissionType.IsValid() {
		return nil, errors.ErrInvalidPermissionType
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	module, err := s.moduleRepo.FindByID(ctx, input.ModuleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.ErrModuleNotFound
	}

	existing, err := s.permissionRepo.FindByUserAndModule(ctx, input.UserID, input.ModuleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrPermissionAlreadyExists
	}

	permission := &entities.UserPermission{
		UserID:         input.UserID,
		ModuleID:       input.ModuleID,
		PermissionType: input.PermissionType,
	}

	if err := s.permissionRepo.Create(ctx, permission); err != nil {
		return nil, err
	}

	s.logger.Info("permission assigned",
		"user_id", input.UserID,
		"module_id", input.ModuleID,
		"level", input.PermissionType.String(),
	)

	return permission, nil
}

// UpdatePermission cambia el nivel de un permiso existente.
func (s *PermissionService) UpdatePermission(ctx context.Context, id uint, level entities.PermissionType) (*entities.UserPermission, error) {
	if !level.IsValid() {
		return nil, errors.ErrInvalidPermissionType
	}

	permission, err := s.permissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		return nil, errors.ErrPermissionNotFound
	}

	permission.PermissionType = level
	if err := s.permissionRepo.Update(ctx, permission); err != nil {
		return nil, err
	}

	s.logger.Info("permission updated",
		"permission_id", id,
		"level", level.String(),
	)

	return permission, nil
}

// PermissionEntry es un elemento del lote de UpdateUserPermissions. Con
// ID cero el elemento opera sobre el par (usuario, módulo); con ID el
// elemento actualiza ese registro, incluso para reasignarle el módulo.
type PermissionEntry struct {
	ID             uint
	ModuleID       uint
	PermissionType entities.PermissionType
}

// UpdateUserPermissions aplica un lote de permisos para un usuario dentro
// de una transacción: crea el registro si no existe y actualiza el nivel
// si existe. Los módulos ausentes del lote no se tocan. Todo el lote se
// aplica o nada.
func (s *PermissionService) UpdateUserPermissions(ctx context.Context, userID uint, entries []PermissionEntry) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	for _, entry := range entries {
		if !entry.PermissionType.IsValid() {
			return errors.ErrInvalidPermissionType
		}
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, entry := range entries {
			module, err := s.moduleRepo.FindByID(txCtx, entry.ModuleID)
			if err != nil {
				return err
			}
			if module == nil {
				return errors.ErrModuleNotFound
			}

			if entry.ID != 0 {
				permission, err := s.permissionRepo.FindByID(txCtx, entry.ID)
				if err != nil {
					return err
				}
				if permission == nil || permission.UserID != userID {
					return errors.ErrPermissionNotFound
				}

				permission.ModuleID = entry.ModuleID
				permission.PermissionType = entry.PermissionType
				if err := s.permissionRepo.Update(txCtx, permission); err != nil {
					return err
				}
				continue
			}

			existing, err := s.permissionRepo.FindByUserAndModule(txCtx, userID, entry.ModuleID)
			if err != nil {
				return err
			}

			if existing == nil {
				permission := &entities.UserPermission{
					UserID:         userID,
					ModuleID:       entry.ModuleID,
					PermissionType: entry.PermissionType,
				}
				if err := s.permissionRepo.Create(txCtx, permission); err != nil {
					return err
				}
				continue
			}

			existing.PermissionType = entry.PermissionType
			if err := s.permissionRepo.Update(txCtx, existing); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user permissions updated",
		"user_id", userID,
		"entries", len(entries),
	)
	return nil
}

// RemovePermission elimina el permiso del par (usuario, módulo).
func (s *PermissionService) RemovePermission(ctx context.Context, userID, moduleID uint) error {
	existing, err := s.permissionRepo.FindByUserAndModule(ctx, userID, moduleID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.ErrPermissionNotFound
	}

	if err := s.permissionRepo.DeleteByUserAndModule(ctx, userID, moduleID); err != nil {
		return err
	}

	s.logger.Info("permission removed",
		"user_id", userID,
		"module_id", moduleID,
	)
	return nil
}

// RemoveAllUserPermissions elimina todos los permisos del usuario y
// devuelve cuántos registros se borraron.
func (s *PermissionService) RemoveAllUserPermissions(ctx context.Context, userID uint) (int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, errors.ErrUserNotFound
	}

	deleted, err := s.permissionRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("all user permissions removed",
		"user_id", userID,
		"deleted", deleted,
	)
	return deleted, nil
}
