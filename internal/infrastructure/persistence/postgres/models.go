package postgres

// Los models GORM viven separados de las entidades de dominio; cada
// repositorio convierte en ambos sentidos. Los timestamps se guardan como
// epoch en segundos; DeletedAt en NULL significa registro vivo. Los
// UpdatedAt nullables llevan autoUpdateTime:false: el estampado lo hace
// la capa de servicio, no GORM.

// RoleModel es el model GORM para roles.
type RoleModel struct {
	ID                   uint    `gorm:"primaryKey;autoIncrement"`
	Name                 string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description          *string `gorm:"type:varchar(255)"`
	IsSystemRole         bool    `gorm:"not null;default:false"`
	GrantsAllPermissions bool    `gorm:"not null;default:false"`
	CreatedAt            int64   `gorm:"autoCreateTime"`
	UpdatedAt            *int64 `gorm:"autoUpdateTime:false"`
	DeletedAt            *int64 `gorm:"index"`
}

func (RoleModel) TableName() string {
	return "roles"
}

// UserModel es el model GORM para usuarios.
type UserModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	FirstName    string  `gorm:"type:varchar(100);not null"`
	LastName     string  `gorm:"type:varchar(100);not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	RoleID       uint    `gorm:"not null;index"`
	Status       string  `gorm:"type:varchar(20);not null"`
	Avatar       *string `gorm:"type:varchar(255)"`
	CreatedAt    int64   `gorm:"autoCreateTime;index"`
	UpdatedAt    *int64 `gorm:"autoUpdateTime:false"`
	LastLoginAt  *int64
	DeletedAt    *int64 `gorm:"index"`

	Role *RoleModel `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

func (UserModel) TableName() string {
	return "users"
}

// ModuleModel es el model GORM para módulos.
type ModuleModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Code        string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string `gorm:"type:varchar(255)"`
	Path        string  `gorm:"type:varchar(100);not null"`
	Icon        string  `gorm:"type:varchar(100)"`
	Order       int     `gorm:"column:sort_order;not null;default:0"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   int64   `gorm:"autoCreateTime"`
	UpdatedAt   *int64 `gorm:"autoUpdateTime:false"`
	DeletedAt   *int64 `gorm:"index"`
}

func (ModuleModel) TableName() string {
	return "modules"
}

// UserPermissionModel es el model GORM para permisos por usuario y módulo.
// El índice compuesto único respalda el invariante (UserID, ModuleID).
type UserPermissionModel struct {
	ID             uint  `gorm:"primaryKey;autoIncrement"`
	UserID         uint  `gorm:"not null;uniqueIndex:idx_user_module"`
	ModuleID       uint  `gorm:"not null;uniqueIndex:idx_user_module"`
	PermissionType int   `gorm:"not null"`
	CreatedAt      int64 `gorm:"autoCreateTime"`
	UpdatedAt      *int64 `gorm:"autoUpdateTime:false"`

	User   *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Module *ModuleModel `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

func (UserPermissionModel) TableName() string {
	return "user_permissions"
}

// PasswordResetTokenModel es el model GORM para tokens de reset.
type PasswordResetTokenModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Token     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
	ExpiresAt int64  `gorm:"not null;index"`
	UsedAt    *int64

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

// TaskModel es el model GORM para tareas.
type TaskModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:varchar(1000)"`
	Completed   bool   `gorm:"not null;default:false"`
	Priority    string `gorm:"type:varchar(10);not null;default:'medium'"`
	UserID      uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// CatalogItemModel es el model GORM para el catálogo.
type CatalogItemModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description string  `gorm:"type:varchar(1000)"`
	Category    string  `gorm:"type:varchar(100);not null;index"`
	Image       *string `gorm:"type:varchar(255)"`
	Rating      float64 `gorm:"not null;default:0"`
	Price       float64 `gorm:"not null;default:0"`
	InStock     bool    `gorm:"not null;default:true"`
	CreatedAt   int64   `gorm:"autoCreateTime"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (CatalogItemModel) TableName() string {
	return "catalog_items"
}
