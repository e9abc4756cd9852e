package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
	"github.com/dmirandam/backoffice-backend/internal/handlers/middleware"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// AuthHandler atiende autenticación y restablecimiento de contraseña.
type AuthHandler struct {
	userService       *services.UserService
	resetService      *services.PasswordResetService
	permissionService *services.PermissionService
}

// NewAuthHandler crea un nuevo AuthHandler.
func NewAuthHandler(
	userService *services.UserService,
	resetService *services.PasswordResetService,
	permissionService *services.PermissionService,
) *AuthHandler {
	return &AuthHandler{
		userService:       userService,
		resetService:      resetService,
		permissionService: permissionService,
	}
}

// Login autentica por correo y contraseña y devuelve un token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result.User, result.Token, result.ExpiresAt))
}

// ForgotPassword inicia el flujo de restablecimiento. La respuesta es la
// misma exista o no la cuenta; solo el exceso del límite difiere (429).
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetService.Initiate(c.Request.Context(), req.Email, c.ClientIP()); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "reset.generic_response")})
}

// ValidateResetToken verifica un token sin consumirlo.
func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	var req dto.ValidateResetTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetService.Validate(c.Request.Context(), req.Token, c.ClientIP()); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// ResetPassword consume un token válido y cambia la contraseña.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetService.Complete(c.Request.Context(), req.Token, req.NewPassword, c.ClientIP()); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "reset.success")})
}

// MyPermissions devuelve el nivel del usuario autenticado por código de
// módulo. Los módulos sin registro se omiten: el cliente debe tratar la
// clave ausente como None.
func (h *AuthHandler) MyPermissions(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	levels, err := h.permissionService.GetUserModulePermissions(c.Request.Context(), userID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	permissions := make(map[string]int, len(levels))
	for code, level := range levels {
		permissions[code] = int(level)
	}
	c.JSON(http.StatusOK, gin.H{"permissions": permissions})
}

// ChangePassword cambia la contraseña del usuario autenticado.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "password_changed")})
}
