package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
)

// entityPermission convierte el valor numérico del DTO al tipo de dominio.
func entityPermission(v int) entities.PermissionType {
	return entities.PermissionType(v)
}

// parseIDParam extrae un parámetro de ruta numérico. Responde 400 y
// devuelve false si no es un entero positivo.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		dto.RespondProblem(c, errors.ProblemTypeBadRequest, http.StatusBadRequest, "error.validation_failed")
		return 0, false
	}
	return uint(id), true
}

// bindJSON liga el cuerpo JSON a req. Responde 400 con los errores de
// campo y devuelve false si la validación falla.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		dto.RespondValidationProblem(c, validationErrors(err))
		return false
	}
	return true
}

// validationErrors traduce los errores del validator a errores de campo.
func validationErrors(err error) []dto.ValidationError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}

	fields := make([]dto.ValidationError, len(verrs))
	for i, fe := range verrs {
		fields[i] = dto.ValidationError{
			Field:   fe.Field(),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		}
	}
	return fields
}
