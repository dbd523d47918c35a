package controllers

import (
	"errors"
	"net/http"

	"github.com/ardiansyahpr/warungku-app/services"
	"github.com/ardiansyahpr/warungku-app/utils"
	"github.com/gin-gonic/gin"
)

// respondServiceError memetakan taksonomi error engine ke status HTTP.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var cycleErr *services.CyclicCompositionError
	var refErr *services.ReferentialIntegrityError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &cycleErr):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.As(err, &refErr):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &conflictErr):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
