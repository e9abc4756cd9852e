package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/infrastructure/config"
)

// Claims son los datos de identidad que viajan dentro del JWT.
type Claims struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

// JWTIssuer emite y verifica tokens firmados con HS256.
type JWTIssuer struct {
	cfg *config.JWTConfig
}

// NewJWTIssuer crea un nuevo JWTIssuer.
func NewJWTIssuer(cfg *config.JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// Issue firma un token para el usuario autenticado.
func (j *JWTIssuer) Issue(user *entities.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(j.cfg.ExpirationHours) * time.Hour)

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"email": user.Email,
		"name":  user.FullName(),
		"role":  roleName,
		"jti":   uuid.NewString(),
		"iss":   j.cfg.Issuer,
		"aud":   j.cfg.Audience,
		"exp":   expiresAt.Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify valida firma, emisor, audiencia y vigencia del token y
// devuelve los claims de identidad.
func (j *JWTIssuer) Verify(raw string) (*Claims, error) {
	token, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(j.cfg.Secret), nil
		},
		jwt.WithIssuer(j.cfg.Issuer),
		jwt.WithAudience(j.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	email, _ := mapClaims["email"].(string)
	name, _ := mapClaims["name"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserID: uint(userID),
		Email:  email,
		Name:   name,
		Role:   role,
	}, nil
}
