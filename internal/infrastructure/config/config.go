package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config contiene toda la configuración de la aplicación.
type Config struct {
	Env           string
	Server        ServerConfig
	Database      DatabaseConfig
	JWT           JWTConfig
	SMTP          SMTPConfig
	PasswordReset PasswordResetConfig
	Logging       LoggingConfig
	CORS          CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base de la API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type JWTConfig struct {
	Secret          string
	Issuer          string
	Audience        string
	ExpirationHours int
}

type SMTPConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	FromEmail    string
	FromName     string
	SimulateMode bool // en true solo registra el correo en el log
}

// PasswordResetConfig gobierna el ciclo de vida de los tokens de reset.
type PasswordResetConfig struct {
	MaxRequestsPerDay      int    // tope por usuario en ventana de 24h
	TokenExpirationMinutes int    // vigencia del token
	FrontendBaseURL        string // base para construir la URL de reset
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// TokenExpiration devuelve la vigencia del token como duración.
func (p *PasswordResetConfig) TokenExpiration() time.Duration {
	return time.Duration(p.TokenExpirationMinutes) * time.Minute
}

// Load carga la configuración desde variables de entorno.
// El archivo .env lo carga main con godotenv antes de llamar aquí.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	setDefaults()

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		JWT: JWTConfig{
			Secret:          viper.GetString("JWT_SECRET"),
			Issuer:          viper.GetString("JWT_ISSUER"),
			Audience:        viper.GetString("JWT_AUDIENCE"),
			ExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		SMTP: SMTPConfig{
			Host:         viper.GetString("SMTP_HOST"),
			Port:         viper.GetInt("SMTP_PORT"),
			User:         viper.GetString("SMTP_USER"),
			Password:     viper.GetString("SMTP_PASS"),
			FromEmail:    viper.GetString("SMTP_FROM_EMAIL"),
			FromName:     viper.GetString("SMTP_FROM_NAME"),
			SimulateMode: viper.GetBool("SMTP_SIMULATE_MODE"),
		},
		PasswordReset: PasswordResetConfig{
			MaxRequestsPerDay:      viper.GetInt("MAX_RESET_REQUESTS_PER_DAY"),
			TokenExpirationMinutes: viper.GetInt("TOKEN_EXPIRATION_MINUTES"),
			FrontendBaseURL:        viper.GetString("FRONTEND_BASE_URL"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)

	viper.SetDefault("JWT_ISSUER", "backoffice")
	viper.SetDefault("JWT_AUDIENCE", "backoffice")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)

	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM_NAME", "Sistema")
	viper.SetDefault("SMTP_SIMULATE_MODE", true)

	viper.SetDefault("MAX_RESET_REQUESTS_PER_DAY", 3)
	viper.SetDefault("TOKEN_EXPIRATION_MINUTES", 60)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// DSN devuelve la connection string de PostgreSQL.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
