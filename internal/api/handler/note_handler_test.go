package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

type stubNoteService struct {
	listFn   func(ctx context.Context, username string) ([]*domain.Note, error)
	createFn func(ctx context.Context, in ports.CreateNoteInput) (*domain.Note, error)
	updateFn func(ctx context.Context, username string, noteID int64, title, content string) error
	deleteFn func(ctx context.Context, username string, noteID int64) error
}

func (s *stubNoteService) List(ctx context.Context, username string) ([]*domain.Note, error) {
	return s.listFn(ctx, username)
}

func (s *stubNoteService) Create(ctx context.Context, in ports.CreateNoteInput) (*domain.Note, error) {
	return s.createFn(ctx, in)
}

func (s *stubNoteService) Update(ctx context.Context, username string, noteID int64, title, content string) error {
	return s.updateFn(ctx, username, noteID, title, content)
}

func (s *stubNoteService) Delete(ctx context.Context, username string, noteID int64) error {
	return s.deleteFn(ctx, username, noteID)
}

// newNoteContext builds an echo context with the username already injected,
// as the auth middleware would after verification.
func newNoteContext(t *testing.T, method, path, body, username string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if username != "" {
		c.Set("username", username)
	}
	return c, rec
}

func TestNoteHandler_List(t *testing.T) {
	stub := &stubNoteService{
		listFn: func(ctx context.Context, username string) ([]*domain.Note, error) {
			if username != "alice" {
				t.Fatalf("unexpected username %q", username)
			}
			return []*domain.Note{
				{ID: 1, Title: "T", Content: "C", OwnerID: 7},
			}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "/notes", "", "alice")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Notes []map[string]any `json:"notes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Notes) != 1 {
		t.Fatalf("expected one note, got %d", len(resp.Notes))
	}
	n := resp.Notes[0]
	if n["title"] != "T" || n["content"] != "C" || n["userId"] != float64(7) {
		t.Fatalf("unexpected note payload: %+v", n)
	}
}

func TestNoteHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubNoteService{
		listFn: func(ctx context.Context, username string) ([]*domain.Note, error) {
			return nil, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "/notes", "", "alice")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := strings.TrimSpace(rec.Body.String())
	if !strings.Contains(body, `"notes":[]`) {
		t.Fatalf("expected empty notes array, got %s", body)
	}
}

func TestNoteHandler_MissingIdentity(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{})

	c, _ := newNoteContext(t, http.MethodGet, "/notes", "", "")
	err := h.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestNoteHandler_Create(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(ctx context.Context, in ports.CreateNoteInput) (*domain.Note, error) {
			if in.Username != "alice" || in.Title != "T" || in.Content != "C" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.IdempotencyKey != "key-1" {
				t.Fatalf("idempotency key not forwarded: %q", in.IdempotencyKey)
			}
			return &domain.Note{ID: 1, Title: in.Title, Content: in.Content}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodPost, "/notes", `{"title":"T","content":"C"}`, "alice")
	c.Request().Header.Set("Idempotency-Key", "key-1")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestNoteHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(ctx context.Context, in ports.CreateNoteInput) (*domain.Note, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPost, "/notes", `{"content":"C"}`, "alice")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestNoteHandler_Update_ForeignNote(t *testing.T) {
	stub := &stubNoteService{
		updateFn: func(ctx context.Context, username string, noteID int64, title, content string) error {
			return domain.ErrNoteNotFound
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPut, "/notes/9", `{"title":"x","content":"y"}`, "alice")
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.Update(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestNoteHandler_Update_NonNumericID(t *testing.T) {
	stub := &stubNoteService{
		updateFn: func(ctx context.Context, username string, noteID int64, title, content string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPut, "/notes/abc", `{"title":"x"}`, "alice")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestNoteHandler_Delete(t *testing.T) {
	stub := &stubNoteService{
		deleteFn: func(ctx context.Context, username string, noteID int64) error {
			if username != "alice" || noteID != 4 {
				t.Fatalf("unexpected args: %s %d", username, noteID)
			}
			return nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodDelete, "/notes/4", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNoteHandler_Delete_ForeignNote(t *testing.T) {
	stub := &stubNoteService{
		deleteFn: func(ctx context.Context, username string, noteID int64) error {
			return domain.ErrNoteNotFound
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodDelete, "/notes/4", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Delete(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
