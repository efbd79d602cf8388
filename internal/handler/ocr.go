package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// demo payload served when no OCR backend is reachable; lets the kiosk flow
// be exercised end to end without one
var fallbackOCRFields = map[string]string{
	"full_name": "Demo Person",
	"id_number": "ID123456789",
	"dob":       "1990-01-01",
}

// UploadID accepts an ID card/passport image and returns extracted fields,
// falling back to demo fields when the provider is unavailable or fails.
func (h *Handler) UploadID(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	res, err := h.OCR.ExtractIDFields(c.Request.Context(), image)
	if err != nil {
		h.Logger.Sugar().Warnw("ocr failed, serving fallback fields", "filename", fileHeader.Filename, "err", err)
		c.JSON(http.StatusOK, gin.H{
			"status":     "fallback",
			"ocr_fields": fallbackOCRFields,
			"filename":   fileHeader.Filename,
			"message":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"ocr_fields": res.Fields,
		"filename":   fileHeader.Filename,
	})
}
