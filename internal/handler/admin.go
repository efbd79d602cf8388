package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListVisitors returns all visitors (paginated).
func (h *Handler) ListVisitors(c *gin.Context) {
	limit, offset := pagination(c)

	visitors, err := h.Visitors.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.Logger.Sugar().Errorw("list visitors failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, visitors)
}

// ListVisitLogs returns visit logs, most recent check-in first (paginated).
func (h *Handler) ListVisitLogs(c *gin.Context) {
	limit, offset := pagination(c)

	logs, err := h.Visits.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.Logger.Sugar().Errorw("list visit logs failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ListHosts returns all hosts (paginated).
func (h *Handler) ListHosts(c *gin.Context) {
	limit, offset := pagination(c)

	hosts, err := h.Hosts.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.Logger.Sugar().Errorw("list hosts failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, hosts)
}

// ListAdminUsers returns admin users for the dashboard (paginated).
func (h *Handler) ListAdminUsers(c *gin.Context) {
	limit, offset := pagination(c)

	users, err := h.AdminUsers.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.Logger.Sugar().Errorw("list admin users failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, users)
}
