package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	domainerrors "github.com/dmirandam/backoffice-backend/internal/domain/errors"
)

func newModuleService(e *testEnv) *ModuleService {
	return NewModuleService(e.moduleRepo, e.permissionRepo, noopLogger{})
}

func TestCreateModule(t *testing.T) {
	ctx := context.Background()

	t.Run("rechaza un código duplicado", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newModuleService(env)

		input := CreateModuleInput{Name: "Tareas", Code: "TASKS", Path: "/tasks", IsActive: true}
		if _, err := svc.CreateModule(ctx, input); err != nil {
			t.Fatalf("fallo al crear módulo: %v", err)
		}

		input.Name = "Otro nombre"
		_, err := svc.CreateModule(ctx, input)
		if !errors.Is(err, domainerrors.ErrModuleCodeAlreadyExists) {
			t.Errorf("error = %v, se esperaba ErrModuleCodeAlreadyExists", err)
		}
	})
}

func TestUpdateModule(t *testing.T) {
	ctx := context.Background()

	t.Run("el código no cambia al actualizar", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newModuleService(env)

		module, err := svc.CreateModule(ctx, CreateModuleInput{
			Name: "Tareas", Code: "TASKS", Path: "/tasks", IsActive: true,
		})
		if err != nil {
			t.Fatalf("fallo al crear módulo: %v", err)
		}

		name := "Gestión de tareas"
		active := false
		updated, err := svc.UpdateModule(ctx, module.ID, UpdateModuleInput{Name: &name, IsActive: &active})
		if err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if updated.Code != "TASKS" {
			t.Errorf("código = %q, debía seguir siendo TASKS", updated.Code)
		}
		if updated.Name != name {
			t.Errorf("nombre = %q, se esperaba %q", updated.Name, name)
		}
		if updated.IsActive {
			t.Error("el módulo debía quedar inactivo")
		}
	})

	t.Run("módulo inexistente reporta error", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newModuleService(env)

		name := "Nada"
		if _, err := svc.UpdateModule(ctx, 999, UpdateModuleInput{Name: &name}); !errors.Is(err, domainerrors.ErrModuleNotFound) {
			t.Errorf("error = %v, se esperaba ErrModuleNotFound", err)
		}
	})
}

func TestDeleteModule(t *testing.T) {
	ctx := context.Background()

	t.Run("un módulo con permisos no se borra", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newModuleService(env)

		role := env.createRole(t, "Analista", false)
		user := env.createUser(t, "ana@test.com", "Secreta123", role.ID)
		module := env.createModule(t, "Tareas", "TASKS")

		perm := &entities.UserPermission{
			UserID:         user.ID,
			ModuleID:       module.ID,
			PermissionType: entities.PermissionRead,
		}
		if err := env.permissionRepo.Create(ctx, perm); err != nil {
			t.Fatalf("fallo al sembrar permiso: %v", err)
		}

		if err := svc.DeleteModule(ctx, module.ID); !errors.Is(err, domainerrors.ErrModuleHasPermissions) {
			t.Errorf("error = %v, se esperaba ErrModuleHasPermissions", err)
		}
	})

	t.Run("un módulo sin permisos se borra", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newModuleService(env)

		module := env.createModule(t, "Inicio", "HOME")
		if err := svc.DeleteModule(ctx, module.ID); err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if _, err := svc.GetModule(ctx, module.ID); !errors.Is(err, domainerrors.ErrModuleNotFound) {
			t.Errorf("error = %v, el módulo borrado no debía encontrarse", err)
		}
	})
}
