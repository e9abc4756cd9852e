package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	domainerrors "github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
)

// fakeTokenIssuer emite un token fijo sin firmar nada.
type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(user *entities.User) (string, time.Time, error) {
	return "token-de-prueba", time.Now().Add(time.Hour), nil
}

func newUserService(e *testEnv, security *recordingSecurityLogger) *UserService {
	return NewUserService(e.userRepo, e.roleRepo, e.permissionRepo, e.uow,
		fakeTokenIssuer{}, security, noopLogger{})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("hashea la contraseña y activa por omisión", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newUserService(env, &recordingSecurityLogger{})

		role := env.createRole(t, "Analista", false)
		user, err := svc.CreateUser(ctx, CreateUserInput{
			FirstName: "Ana",
			LastName:  "García",
			Email:     "ana@test.com",
			Password:  "Secreta123",
			RoleID:    role.ID,
		})
		if err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if user.Status != entities.UserStatusActive {
			t.Errorf("estado = %s, se esperaba Active", user.Status)
		}
		if user.PasswordHash == "Secreta123" {
			t.Error("la contraseña quedó en claro")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secreta123")) != nil {
			t.Error("el hash no corresponde a la contraseña")
		}
	})

	t.Run("rechaza un correo duplicado", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newUserService(env, &recordingSecurityLogger{})

		role := env.createRole(t, "Analista", false)
		env.createUser(t, "ana@test.com", "Secreta123", role.ID)

		_, err := svc.CreateUser(ctx, CreateUserInput{
			FirstName: "Ana",
			LastName:  "Duplicada",
			Email:     "ana@test.com",
			Password:  "Secreta123",
			RoleID:    role.ID,
		})
		if !errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, se esperaba ErrEmailAlreadyExists", err)
		}
	})

	t.Run("rechaza un rol inexistente", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newUserService(env, &recordingSecurityLogger{})

		_, err := svc.CreateUser(ctx, CreateUserInput{
			FirstName: "Ana",
			LastName:  "García",
			Email:     "ana@test.com",
			Password:  "Secreta123",
			RoleID:    999,
		})
		if !errors.Is(err, domainerrors.ErrRoleNotFound) {
			t.Errorf("error = %v, se esperaba ErrRoleNotFound", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("emite token y estampa el último acceso", func(t *testing.T) {
		env := setupTestEnv(t)
		security := &recordingSecurityLogger{}
		svc := newUserService(env, security)

		role := env.createRole(t, "Analista", false)
		user := env.createUser(t, "ana@test.com", "Secreta123", role.ID)

		result, err := svc.Login(ctx, "ana@test.com", "Secreta123", "10.0.0.1")
		if err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if result.Token != "token-de-prueba" {
			t.Errorf("token = %q", result.Token)
		}
		if result.User.Role == nil || result.User.Role.Name != "Analista" {
			t.Error("el usuario debía volver con su rol cargado")
		}
		if !security.has(ports.EventLoginSuccess) {
			t.Error("faltó el evento de login exitoso")
		}

		reloaded, err := env.userRepo.FindByID(ctx, user.ID)
		if err != nil || reloaded == nil {
			t.Fatalf("fallo al recargar usuario: %v", err)
		}
		if reloaded.LastLoginAt == nil {
			t.Error("faltó la estampa de último acceso")
		}
	})

	t.Run("contraseña incorrecta da credenciales inválidas", func(t *testing.T) {
		env := setupTestEnv(t)
		security := &recordingSecurityLogger{}
		svc := newUserService(env, security)

		role := env.createRole(t, "Analista", false)
		env.createUser(t, "ana@test.com", "Secreta123", role.ID)

		_, err := svc.Login(ctx, "ana@test.com", "Equivocada", "10.0.0.1")
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Fatalf("error = %v, se esperaba ErrInvalidCredentials", err)
		}
		if !security.has(ports.EventLoginFailed) {
			t.Error("faltó el evento de login fallido")
		}
	})

	t.Run("correo desconocido da el mismo error", func(t *testing.T) {
		env := setupTestEnv(t)
		security := &recordingSecurityLogger{}
		svc := newUserService(env, security)

		_, err := svc.Login(ctx, "nadie@test.com", "Secreta123", "10.0.0.1")
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Errorf("error = %v, se esperaba ErrInvalidCredentials", err)
		}
	})

	t.Run("cuenta inactiva no inicia sesión", func(t *testing.T) {
		env := setupTestEnv(t)
		security := &recordingSecurityLogger{}
		svc := newUserService(env, security)

		role := env.createRole(t, "Analista", false)
		user := env.createUser(t, "baja@test.com", "Secreta123", role.ID)
		user.Status = entities.UserStatusInactive
		if err := env.userRepo.Update(ctx, user); err != nil {
			t.Fatalf("fallo al desactivar usuario: %v", err)
		}

		_, err := svc.Login(ctx, "baja@test.com", "Secreta123", "10.0.0.1")
		if !errors.Is(err, domainerrors.ErrUserInactive) {
			t.Fatalf("error = %v, se esperaba ErrUserInactive", err)
		}
		if !security.has(ports.EventSuspiciousActivity) {
			t.Error("faltó el evento de actividad sospechosa")
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("requiere la contraseña actual correcta", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newUserService(env, &recordingSecurityLogger{})

		role := env.createRole(t, "Analista", false)
		user := env.createUser(t, "ana@test.com", "Secreta123", role.ID)

		err := svc.ChangePassword(ctx, user.ID, "Equivocada", "NuevaClave456")
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Fatalf("error = %v, se esperaba ErrInvalidCredentials", err)
		}

		if err := svc.ChangePassword(ctx, user.ID, "Secreta123", "NuevaClave456"); err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		reloaded, err := env.userRepo.FindByID(ctx, user.ID)
		if err != nil || reloaded == nil {
			t.Fatalf("fallo al recargar usuario: %v", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(reloaded.PasswordHash), []byte("NuevaClave456")) != nil {
			t.Error("la contraseña nueva no quedó registrada")
		}
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("borra al usuario junto con sus permisos", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := newUserService(env, &recordingSecurityLogger{})

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

		if err := svc.DeleteUser(ctx, user.ID); err != nil {
			t.Fatalf("error inesperado: %v", err)
		}

		gone, err := env.userRepo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("fallo al buscar usuario: %v", err)
		}
		if gone != nil {
			t.Error("el usuario borrado no debía encontrarse")
		}

		perms, err := env.permissionRepo.ListByUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("fallo al listar permisos: %v", err)
		}
		if len(perms) != 0 {
			t.Errorf("permisos restantes = %d, se esperaban 0", len(perms))
		}
	})
}
