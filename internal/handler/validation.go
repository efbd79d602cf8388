package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kioskpoint/backend/internal/interview"
	"github.com/kioskpoint/backend/pkg/model"
)

// ValidateField answers real-time per-field validation for frontend forms.
func (h *Handler) ValidateField(c *gin.Context) {
	var req model.FieldValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid, errs := interview.ValidateField(req.Field, req.Value)

	c.JSON(http.StatusOK, model.FieldValidationResult{
		Field:   req.Field,
		Value:   req.Value,
		IsValid: valid,
		Errors:  errs,
	})
}
