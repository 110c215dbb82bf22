package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

type stubAssist struct {
	lastSession string
	reply       entity.Reply
}

func (s *stubAssist) Advance(_ context.Context, sessionID, _ string, _ entity.SlotSet) (entity.Reply, error) {
	s.lastSession = sessionID
	return s.reply, nil
}

func (s *stubAssist) Ask(_ context.Context, _ string) (entity.Reply, error) {
	return s.reply, nil
}

type stubCatalog struct{ n int }

func (s *stubCatalog) Replace(_ context.Context, _ []entity.CatalogEntry) error { return nil }
func (s *stubCatalog) Search(_ context.Context, _ string) ([]entity.ScoredEntry, error) {
	return nil, nil
}
func (s *stubCatalog) Suggest(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}
func (s *stubCatalog) Count(_ context.Context) int { return s.n }

func newTestRouter(assist *stubAssist, catalog *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(assist, catalog, zap.NewNop()), "")
}

func TestAssistRequiresText(t *testing.T) {
	r := newTestRouter(&stubAssist{}, &stubCatalog{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assist", bytes.NewBufferString(`{"sessionId":"s1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAssistGeneratesSessionID(t *testing.T) {
	assist := &stubAssist{reply: entity.Reply{Kind: entity.ReplyFollowUp, Text: "كم حجم الشاشة بالبوصة؟"}}
	r := newTestRouter(assist, &stubCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assist", bytes.NewBufferString(`{"text":"شاشات"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp struct {
		SessionID string `json:"sessionId"`
		Reply     string `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("no sessionId generated")
	}
	if resp.SessionID != assist.lastSession {
		t.Fatalf("handler passed session %q, returned %q", assist.lastSession, resp.SessionID)
	}
	if resp.Reply == "" {
		t.Fatal("reply text missing from response")
	}
}

func TestAskRequiresQuery(t *testing.T) {
	r := newTestRouter(&stubAssist{}, &stubCatalog{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ask", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPingReportsItems(t *testing.T) {
	r := newTestRouter(&stubAssist{}, &stubCatalog{n: 42})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		OK    bool `json:"ok"`
		Items int  `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.OK || resp.Items != 42 {
		t.Fatalf("ping = %+v, want ok with 42 items", resp)
	}
}
