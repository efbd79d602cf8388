package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kioskpoint/backend/pkg/model"
)

// NotifyHost queues a notification to the host that their visitor arrived.
// Dispatch is best effort; the endpoint answers sent as long as the request
// was well-formed.
func (h *Handler) NotifyHost(c *gin.Context) {
	var req model.NotifyHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.HostEmail == "" || req.VisitorName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "host_email and visitor_name required"})
		return
	}

	if err := h.Notifier.NotifyHost(c.Request.Context(), req.HostEmail, req.VisitorName); err != nil {
		h.Logger.Sugar().Errorw("notify host failed", "host_email", req.HostEmail, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "sent",
		"host_email":   req.HostEmail,
		"visitor_name": req.VisitorName,
	})
}
