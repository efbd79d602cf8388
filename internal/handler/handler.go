package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kioskpoint/backend/internal/ai"
	"github.com/kioskpoint/backend/internal/notify"
	"github.com/kioskpoint/backend/pkg/model"
	"go.uber.org/zap"
)

// Store interfaces cover exactly what the handlers need from persistence;
// the pgx repositories satisfy them.

type VisitorStore interface {
	GetOrCreate(ctx context.Context, v model.Visitor) (model.Visitor, error)
	List(ctx context.Context, limit, offset int) ([]model.Visitor, error)
}

type HostStore interface {
	GetOrCreateByEmail(ctx context.Context, email string) (model.Host, error)
	List(ctx context.Context, limit, offset int) ([]model.Host, error)
}

type VisitStore interface {
	Create(ctx context.Context, visitorID, hostID int64, purpose *string) (model.VisitLog, error)
	Checkout(ctx context.Context, id int64) (model.VisitLog, error)
	List(ctx context.Context, limit, offset int) ([]model.VisitLog, error)
}

type AdminUserStore interface {
	List(ctx context.Context, limit, offset int) ([]model.AdminUser, error)
}

type Handler struct {
	Logger     *zap.Logger
	Visitors   VisitorStore
	Hosts      HostStore
	Visits     VisitStore
	AdminUsers AdminUserStore
	OCR        ai.OCRProvider
	STT        ai.SpeechToText
	TTS        ai.TextToSpeech
	Notifier   notify.Notifier
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
}

// WebsocketUsage documents that real-time features are HTTP-only. Kept for
// frontend discoverability.
func (h *Handler) WebsocketUsage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"websocket_url": "/ws/{purpose}",
		"note":          "This backend delivers real-time validation/query via HTTP endpoints, not by WebSocket.",
	})
}

const defaultPageSize = 25

// pagination reads skip/limit query params, falling back to sane defaults.
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	offset, err = strconv.Atoi(c.Query("skip"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
