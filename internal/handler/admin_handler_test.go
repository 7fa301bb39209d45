package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeAdmins struct {
	emails []string
	err    error
}

func (f *fakeAdmins) ListAdminEmails(context.Context) ([]string, error) {
	return f.emails, f.err
}

type fakeDigest struct {
	runs int
	err  error
}

func (f *fakeDigest) Run(context.Context) error {
	f.runs++
	return f.err
}

type fakeNotices struct {
	stored map[int64]string
	popErr error
}

func newFakeNotices() *fakeNotices {
	return &fakeNotices{stored: make(map[int64]string)}
}

func (f *fakeNotices) Set(_ context.Context, userID int64, message string) {
	f.stored[userID] = message
}

func (f *fakeNotices) Pop(_ context.Context, userID int64) (string, error) {
	if f.popErr != nil {
		return "", f.popErr
	}
	msg := f.stored[userID]
	delete(f.stored, userID)
	return msg, nil
}

func setupRouter(h *AdminHandler, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.GET("/administrators", h.GetAdministrators)
	r.POST("/digest/run", h.TriggerDigest)
	r.GET("/notices", h.GetNotice)
	return r
}

func TestGetAdministrators(t *testing.T) {
	t.Parallel()

	admins := &fakeAdmins{emails: []string{"a@example.com", "b@example.com"}}
	h := NewAdminHandler(admins, &fakeDigest{}, newFakeNotices(), zap.NewNop())
	r := setupRouter(h, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/administrators", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool     `json:"success"`
		Emails  []string `json:"emails"`
		Total   int      `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || resp.Total != 2 || len(resp.Emails) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetAdministratorsFailure(t *testing.T) {
	t.Parallel()

	admins := &fakeAdmins{err: errors.New("db down")}
	h := NewAdminHandler(admins, &fakeDigest{}, newFakeNotices(), zap.NewNop())
	r := setupRouter(h, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/administrators", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestTriggerDigest(t *testing.T) {
	t.Parallel()

	digest := &fakeDigest{}
	notices := newFakeNotices()
	h := NewAdminHandler(&fakeAdmins{}, digest, notices, zap.NewNop())
	r := setupRouter(h, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/digest/run", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if digest.runs != 1 {
		t.Fatalf("digest ran %d times, want 1", digest.runs)
	}
	if !strings.Contains(notices.stored[7], "triggered manually") {
		t.Fatalf("missing confirmation notice, got %q", notices.stored[7])
	}
}

func TestTriggerDigestFailure(t *testing.T) {
	t.Parallel()

	digest := &fakeDigest{err: errors.New("smtp down")}
	notices := newFakeNotices()
	h := NewAdminHandler(&fakeAdmins{}, digest, notices, zap.NewNop())
	r := setupRouter(h, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/digest/run", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if _, ok := notices.stored[7]; ok {
		t.Fatal("failed run must not leave a success notice")
	}
}

func TestGetNotice(t *testing.T) {
	t.Parallel()

	notices := newFakeNotices()
	notices.stored[7] = "✅ Mixed order alert email sent successfully for Order #100 to 1 recipient(s)"
	h := NewAdminHandler(&fakeAdmins{}, &fakeDigest{}, notices, zap.NewNop())
	r := setupRouter(h, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notices", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Notice  string `json:"notice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !strings.Contains(resp.Notice, "Order #100") {
		t.Fatalf("notice = %q", resp.Notice)
	}

	// Reading pops: a second call comes back empty.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notices", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Notice != "" {
		t.Fatalf("expected empty notice on second read, got %q", resp.Notice)
	}
}
