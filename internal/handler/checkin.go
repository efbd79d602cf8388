package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/kioskpoint/backend/internal/interview"
	"github.com/kioskpoint/backend/pkg/model"
)

// CheckinStep runs one turn of the conversational check-in. The engine is
// stateless; the updated conversation state is echoed back for the caller to
// resend on the next step.
func (h *Handler) CheckinStep(c *gin.Context) {
	var req model.CheckinStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("checkin step bad request", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := req.ConversationState
	if state == nil {
		state = map[string]string{}
	}

	res := interview.Step(state, req.UserInput)

	resp := model.CheckinStepResponse{
		NextPrompt:        res.NextPrompt,
		ConversationState: res.State,
		IsComplete:        res.IsComplete,
		Errors:            res.Errors,
	}
	if res.NextField != "" {
		resp.NextField = &res.NextField
	}

	c.JSON(http.StatusOK, resp)
}

// CheckinFinalize converts completed interview state into persisted rows:
// visitor and host via get-or-create, plus one fresh visit log.
func (h *Handler) CheckinFinalize(c *gin.Context) {
	var req model.CheckinFinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required check-in fields."})
		return
	}
	req.HostEmail = strings.TrimSpace(req.HostEmail)
	if req.HostEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "host_email is required to finalize check-in"})
		return
	}

	ctx := c.Request.Context()

	visitor, err := h.Visitors.GetOrCreate(ctx, model.Visitor{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IDNumber: req.IDNumber,
	})
	if err != nil {
		h.Logger.Sugar().Errorw("visitor get-or-create failed", "full_name", req.FullName, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	host, err := h.Hosts.GetOrCreateByEmail(ctx, req.HostEmail)
	if err != nil {
		h.Logger.Sugar().Errorw("host get-or-create failed", "host_email", req.HostEmail, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	visit, err := h.Visits.Create(ctx, visitor.ID, host.ID, req.Purpose)
	if err != nil {
		h.Logger.Sugar().Errorw("visit log create failed", "visitor_id", visitor.ID, "host_id", host.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	visit.Visitor = visitor
	visit.Host = host

	c.JSON(http.StatusOK, visit)
}

// Checkout marks a checked-in visit as checked out.
func (h *Handler) Checkout(c *gin.Context) {
	idStr := c.Param("visit_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visit id"})
		return
	}

	visit, err := h.Visits.Checkout(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "visit not found or already checked out"})
			return
		}
		h.Logger.Sugar().Errorw("visit checkout failed", "visit_id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, visit)
}
