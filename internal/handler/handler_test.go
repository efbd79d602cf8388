package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/kioskpoint/backend/internal/ai"
	"github.com/kioskpoint/backend/pkg/model"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---- fakes ----

type fakeVisitorStore struct {
	visitors   []model.Visitor
	lastLimit  int
	lastOffset int
}

func (f *fakeVisitorStore) GetOrCreate(ctx context.Context, v model.Visitor) (model.Visitor, error) {
	for _, existing := range f.visitors {
		if existing.FullName == v.FullName && strPtrEq(existing.Email, v.Email) {
			return existing, nil
		}
	}
	v.ID = int64(len(f.visitors) + 1)
	v.CreatedAt = time.Now()
	f.visitors = append(f.visitors, v)
	return v, nil
}

func (f *fakeVisitorStore) List(ctx context.Context, limit, offset int) ([]model.Visitor, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return f.visitors, nil
}

type fakeHostStore struct {
	hosts []model.Host
}

func (f *fakeHostStore) GetOrCreateByEmail(ctx context.Context, email string) (model.Host, error) {
	for _, h := range f.hosts {
		if h.Email == email {
			return h, nil
		}
	}
	h := model.Host{ID: int64(len(f.hosts) + 1), FullName: email, Email: email}
	f.hosts = append(f.hosts, h)
	return h, nil
}

func (f *fakeHostStore) List(ctx context.Context, limit, offset int) ([]model.Host, error) {
	return f.hosts, nil
}

type fakeVisitStore struct {
	visits []model.VisitLog
}

func (f *fakeVisitStore) Create(ctx context.Context, visitorID, hostID int64, purpose *string) (model.VisitLog, error) {
	v := model.VisitLog{
		ID:          int64(len(f.visits) + 1),
		Purpose:     purpose,
		BadgeCode:   "badge",
		CheckInTime: time.Now(),
		Status:      model.VisitStatusCheckedIn,
	}
	f.visits = append(f.visits, v)
	return v, nil
}

func (f *fakeVisitStore) Checkout(ctx context.Context, id int64) (model.VisitLog, error) {
	for i, v := range f.visits {
		if v.ID == id && v.Status == model.VisitStatusCheckedIn {
			now := time.Now()
			f.visits[i].Status = model.VisitStatusCheckedOut
			f.visits[i].CheckOutTime = &now
			return f.visits[i], nil
		}
	}
	return model.VisitLog{}, pgx.ErrNoRows
}

func (f *fakeVisitStore) List(ctx context.Context, limit, offset int) ([]model.VisitLog, error) {
	return f.visits, nil
}

type fakeAdminUserStore struct {
	users []model.AdminUser
}

func (f *fakeAdminUserStore) List(ctx context.Context, limit, offset int) ([]model.AdminUser, error) {
	return f.users, nil
}

type fakeNotifier struct {
	calls int
}

func (f *fakeNotifier) NotifyHost(ctx context.Context, hostEmail, visitorName string) error {
	f.calls++
	return nil
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ---- harness ----

func newTestHandler() (*Handler, *fakeVisitorStore, *fakeVisitStore) {
	visitors := &fakeVisitorStore{}
	visits := &fakeVisitStore{}
	h := &Handler{
		Logger:     zap.NewNop(),
		Visitors:   visitors,
		Hosts:      &fakeHostStore{},
		Visits:     visits,
		AdminUsers: &fakeAdminUserStore{},
		OCR:        &ai.StubProvider{},
		STT:        &ai.StubProvider{},
		TTS:        &ai.StubProvider{},
		Notifier:   &fakeNotifier{},
	}
	return h, visitors, visits
}

func newTestRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/", h.Health)
	r.POST("/api/visitor/checkin-step", h.CheckinStep)
	r.POST("/api/visitor/checkin-finalize", h.CheckinFinalize)
	r.POST("/api/visitor/checkout/:visit_id", h.Checkout)
	r.POST("/api/ocr/upload-id", h.UploadID)
	r.POST("/api/speech/stt", h.SpeechToText)
	r.POST("/api/speech/tts", h.TextToSpeech)
	r.POST("/api/notifications/notify-host", h.NotifyHost)
	r.GET("/api/admin/visitors", h.ListVisitors)
	r.GET("/api/admin/visitlogs", h.ListVisitLogs)
	r.GET("/api/admin/hosts", h.ListHosts)
	r.GET("/api/admin/users", h.ListAdminUsers)
	r.POST("/api/validation/validate-field", h.ValidateField)
	return r
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newTestRouter(h)

	w := doRequest(r, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"message":"Healthy"}` {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
