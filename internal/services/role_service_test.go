package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	domainerrors "github.com/dmirandam/backoffice-backend/internal/domain/errors"
)

func newRoleService(e *testEnv) *RoleService {
	return NewRoleService(e.roleRepo, e.userRepo, noopLogger{})
}

func TestCreateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("los roles de la API nunca son de sistema", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newRoleService(env)

		role, err := svc.CreateRole(ctx, CreateRoleInput{Name: "Reportes"})
		if err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if role.IsSystemRole {
			t.Error("el rol creado por la API no debía ser de sistema")
		}
		if role.GrantsAllPermissions {
			t.Error("el rol creado por la API no debía otorgar acceso total")
		}
	})

	t.Run("rechaza un nombre duplicado", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newRoleService(env)

		if _, err := svc.CreateRole(ctx, CreateRoleInput{Name: "Reportes"}); err != nil {
			t.Fatalf("fallo al crear rol: %v", err)
		}
		_, err := svc.CreateRole(ctx, CreateRoleInput{Name: "Reportes"})
		if !errors.Is(err, domainerrors.ErrRoleNameAlreadyExists) {
			t.Errorf("error = %v, se esperaba ErrRoleNameAlreadyExists", err)
		}
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("los roles de sistema no se modifican", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newRoleService(env)

		system := &entities.Role{Name: "Administrador", IsSystemRole: true, GrantsAllPermissions: true}
		if err := env.roleRepo.Create(ctx, system); err != nil {
			t.Fatalf("fallo al sembrar rol de sistema: %v", err)
		}

		name := "Renombrado"
		_, err := svc.UpdateRole(ctx, system.ID, UpdateRoleInput{Name: &name})
		if !errors.Is(err, domainerrors.ErrSystemRoleProtected) {
			t.Errorf("error = %v, se esperaba ErrSystemRoleProtected", err)
		}
	})

	t.Run("actualiza solo los campos presentes", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newRoleService(env)

		desc := "Acceso de solo lectura"
		role, err := svc.CreateRole(ctx, CreateRoleInput{Name: "Reportes", Description: &desc})
		if err != nil {
			t.Fatalf("fallo al crear rol: %v", err)
		}

		fresh, err := env.roleRepo.FindByID(ctx, role.ID)
		if err != nil || fresh == nil {
			t.Fatalf("fallo al recargar rol: %v", err)
		}
		if fresh.UpdatedAt != nil {
			t.Error("un rol recién creado no debía tener estampa de actualización")
		}

		name := "Reportes avanzados"
		updated, err := svc.UpdateRole(ctx, role.ID, UpdateRoleInput{Name: &name})
		if err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if updated.Name != name {
			t.Errorf("nombre = %q, se esperaba %q", updated.Name, name)
		}
		if updated.Description == nil || *updated.Description != desc {
			t.Error("la descripción debía quedar intacta")
		}

		fresh, err = env.roleRepo.FindByID(ctx, role.ID)
		if err != nil || fresh == nil {
			t.Fatalf("fallo al recargar rol: %v", err)
		}
		if fresh.UpdatedAt == nil {
			t.Error("la actualización debía persistir la estampa")
		}
	})
}

func TestDeleteRole(t *testing.T) {
	ctx := context.Background()

	t.Run("los roles de sistema no se borran", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newRoleService(env)

		system := &entities.Role{Name: "Sin asignar", IsSystemRole: true}
		if err := env.roleRepo.Create(ctx, system); err != nil {
			t.Fatalf("fallo al sembrar rol de sistema: %v", err)
		}

		if err := svc.DeleteRole(ctx, system.ID); !errors.Is(err, domainerrors.ErrSystemRoleProtected) {
			t.Errorf("error = %v, se esperaba ErrSystemRoleProtected", err)
		}
	})

	t.Run("un rol con usuarios no se borra", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newRoleService(env)

		role := env.createRole(t, "Analista", false)
		env.createUser(t, "ana@test.com", "Secreta123", role.ID)

		if err := svc.DeleteRole(ctx, role.ID); !errors.Is(err, domainerrors.ErrRoleInUse) {
			t.Errorf("error = %v, se esperaba ErrRoleInUse", err)
		}
	})

	t.Run("un rol sin usuarios se borra", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newRoleService(env)

		role := env.createRole(t, "Huérfano", false)
		if err := svc.DeleteRole(ctx, role.ID); err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if _, err := svc.GetRole(ctx, role.ID); !errors.Is(err, domainerrors.ErrRoleNotFound) {
			t.Errorf("error = %v, el rol borrado no debía encontrarse", err)
		}
	})
}
