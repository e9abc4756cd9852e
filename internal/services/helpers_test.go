package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/persistence/postgres"
)

// noopLogger descarta todo; los tests no verifican el log de aplicación.
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) With(args ...any) ports.Logger { return noopLogger{} }

// recordingSecurityLogger captura los eventos de seguridad emitidos.
type recordingSecurityLogger struct {
	events []string
}

func (r *recordingSecurityLogger) LogFailedLogin(email, ip string) {
	r.events = append(r.events, ports.EventLoginFailed)
}

func (r *recordingSecurityLogger) LogSuccessfulLogin(email, ip string) {
	r.events = append(r.events, ports.EventLoginSuccess)
}

func (r *recordingSecurityLogger) LogUnauthorizedAccess(endpoint, ip string) {
	r.events = append(r.events, ports.EventUnauthorizedAccess)
}

func (r *recordingSecurityLogger) LogSuspiciousActivity(email, activity, ip string) {
	r.events = append(r.events, ports.EventSuspiciousActivity)
}

func (r *recordingSecurityLogger) LogSecurityEvent(eventType, description, ip string) {
	r.events = append(r.events, eventType)
}

func (r *recordingSecurityLogger) has(eventType string) bool {
	for _, e := range r.events {
		if e == eventType {
			return true
		}
	}
	return false
}

// fakeMailer registra los envíos y puede simular fallos.
type fakeMailer struct {
	sent []string
	fail bool
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

// testEnv agrupa la base en memoria y los repositorios reales.
type testEnv struct {
	db             *gorm.DB
	userRepo       repositories.UserRepository
	roleRepo       repositories.RoleRepository
	moduleRepo     repositories.ModuleRepository
	permissionRepo repositories.PermissionRepository
	tokenRepo      repositories.ResetTokenRepository
	taskRepo       repositories.TaskRepository
	catalogRepo    repositories.CatalogRepository
	uow            ports.UnitOfWork
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("fallo al abrir sqlite en memoria: %v", err)
	}

	// La base en memoria vive por conexión; una sola conexión evita que
	// el pool reparta las consultas entre bases vacías
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("fallo al obtener la conexión: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("fallo al migrar esquema: %v", err)
	}

	return &testEnv{
		db:             db,
		userRepo:       postgres.NewUserRepository(db),
		roleRepo:       postgres.NewRoleRepository(db),
		moduleRepo:     postgres.NewModuleRepository(db),
		permissionRepo: postgres.NewPermissionRepository(db),
		tokenRepo:      postgres.NewResetTokenRepository(db),
		taskRepo:       postgres.NewTaskRepository(db),
		catalogRepo:    postgres.NewCatalogRepository(db),
		uow:            postgres.NewUnitOfWork(db),
	}
}

func (e *testEnv) createRole(t *testing.T, name string, grantsAll bool) *entities.Role {
	t.Helper()

	role := &entities.Role{
		Name:                 name,
		GrantsAllPermissions: grantsAll,
	}
	if err := e.roleRepo.Create(context.Background(), role); err != nil {
		t.Fatalf("fallo al crear rol %q: %v", name, err)
	}
	return role
}

func (e *testEnv) createUser(t *testing.T, email, password string, roleID uint) *entities.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fallo al hashear contraseña: %v", err)
	}

	user := &entities.User{
		FirstName:    "Usuario",
		LastName:     "Prueba",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		Status:       entities.UserStatusActive,
	}
	if err := e.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("fallo al crear usuario %q: %v", email, err)
	}
	return user
}

func (e *testEnv) createModule(t *testing.T, name, code string) *entities.Module {
	t.Helper()

	module := &entities.Module{
		Name:     name,
		Code:     code,
		Path:     "/" + code,
		IsActive: true,
	}
	if err := e.moduleRepo.Create(context.Background(), module); err != nil {
		t.Fatalf("fallo al crear módulo %q: %v", code, err)
	}
	return module
}
