package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/onyxlab/onyx/internal/domain/errors"
	"github.com/onyxlab/onyx/internal/domain/model"
	"github.com/onyxlab/onyx/internal/server/http/dto"
	"github.com/onyxlab/onyx/internal/server/http/middleware"
	"github.com/onyxlab/onyx/internal/usecase"
	testhelpers "github.com/onyxlab/onyx/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authas(userID int64, email string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, userID)
		c.Set(middleware.UserEmailContextKey, email)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCurrentUserEmail(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserEmail(c); got != "" {
		t.Fatalf("expected empty email when not set, got %q", got)
	}

	c.Set(middleware.UserEmailContextKey, "user@example.com")
	if got := CurrentUserEmail(c); got != "user@example.com" {
		t.Fatalf("unexpected email %q", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Email: email, Password: password})

	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotEmail, gotPassword string) (*model.User, error) {
		if gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotEmail, gotPassword)
		}
		return &model.User{ID: 7, Email: gotEmail, CreatedAt: time.Now()}, nil
	}}, discardLogger())

	resp := performRequest(t, http.MethodPost, "/auth/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var created dto.RegisterResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID != 7 || created.Email != email {
		t.Fatalf("unexpected response %+v", created)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("password")) {
		t.Fatalf("response leaks password data: %s", resp.Body.String())
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.AuthRequest{Email: "user@example.com", Password: "pass"})

	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
		errMsg string
	}{
		{
			name:   "malformed body",
			facade: testhelpers.AuthFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
			errMsg: "invalid request body",
		},
		{
			name: "validation error",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, error) {
				return nil, domainErrors.ErrValidation
			}},
			body:   validBody,
			status: http.StatusBadRequest,
			errMsg: "email and password are required",
		},
		{
			name: "duplicate email",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, error) {
				return nil, domainErrors.ErrAlreadyExists
			}},
			body:   validBody,
			status: http.StatusBadRequest,
			errMsg: "user already exists",
		},
		{
			name: "internal error",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, error) {
				return nil, errors.New("db down")
			}},
			body:   validBody,
			status: http.StatusInternalServerError,
			errMsg: "registration failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAuthHandler(tc.facade, discardLogger())
			resp := performRequest(t, http.MethodPost, "/auth/register", handler.Register, nil, tc.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
			var payload dto.ErrorResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode error payload: %v", err)
			}
			if payload.Error != tc.errMsg {
				t.Fatalf("expected error %q, got %q", tc.errMsg, payload.Error)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Email: "user@example.com", Password: "pass"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "session-token", nil
	}}, discardLogger())

	resp := performRequest(t, http.MethodPost, "/auth/login", handler.Login, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var token dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &token); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if token.Token != "session-token" {
		t.Fatalf("unexpected token %q", token.Token)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.AuthRequest{Email: "user@example.com", Password: "pass"})

	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
		errMsg string
	}{
		{
			name:   "malformed body",
			facade: testhelpers.AuthFacadeStub{},
			body:   []byte("not json"),
			status: http.StatusBadRequest,
			errMsg: "invalid request body",
		},
		{
			name: "invalid credentials",
			facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			}},
			body:   validBody,
			status: http.StatusUnauthorized,
			errMsg: "invalid email or password",
		},
		{
			name: "internal error",
			facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
				return "", errors.New("db down")
			}},
			body:   validBody,
			status: http.StatusInternalServerError,
			errMsg: "login failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAuthHandler(tc.facade, discardLogger())
			resp := performRequest(t, http.MethodPost, "/auth/login", handler.Login, nil, tc.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
			var payload dto.ErrorResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode error payload: %v", err)
			}
			if payload.Error != tc.errMsg {
				t.Fatalf("expected error %q, got %q", tc.errMsg, payload.Error)
			}
		})
	}
}

func TestMaterialHandlerList(t *testing.T) {
	now := time.Now()
	handler := NewMaterialHandler(testhelpers.MaterialFacadeStub{ListFn: func(ctx context.Context, userID int64) ([]model.Material, error) {
		if userID != 42 {
			t.Fatalf("unexpected user id %d", userID)
		}
		return []model.Material{
			{ID: 2, UserID: 42, PublicID: "pub-2", Title: "second", CreatedAt: now, UpdatedAt: now},
			{ID: 1, UserID: 42, PublicID: "pub-1", Title: "first", CreatedAt: now, UpdatedAt: now},
		}, nil
	}}, discardLogger())

	resp := performRequest(t, http.MethodGet, "/materials", handler.List, authas(42, "user@example.com"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var list []dto.MaterialResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list) != 2 || list[0].PublicID != "pub-2" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestMaterialHandlerListEmpty(t *testing.T) {
	handler := NewMaterialHandler(testhelpers.MaterialFacadeStub{ListFn: func(context.Context, int64) ([]model.Material, error) {
		return nil, nil
	}}, discardLogger())

	resp := performRequest(t, http.MethodGet, "/materials", handler.List, authas(42, "user@example.com"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestMaterialHandlerListError(t *testing.T) {
	handler := NewMaterialHandler(testhelpers.MaterialFacadeStub{ListFn: func(context.Context, int64) ([]model.Material, error) {
		return nil, errors.New("db down")
	}}, discardLogger())

	resp := performRequest(t, http.MethodGet, "/materials", handler.List, authas(42, "user@example.com"), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestMaterialHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.MaterialRequest{Title: "notes", Content: "body", Tags: []string{"go"}})
	handler := NewMaterialHandler(testhelpers.MaterialFacadeStub{CreateFn: func(ctx context.Context, userID int64, in usecase.MaterialInput) (*model.Material, error) {
		if userID != 42 || in.Title != "notes" {
			t.Fatalf("unexpected input: user=%d in=%+v", userID, in)
		}
		return &model.Material{ID: 1, UserID: userID, PublicID: "pub-1", Title: in.Title, Content: in.Content, Tags: in.Tags}, nil
	}}, discardLogger())

	resp := performRequest(t, http.MethodPost, "/materials", handler.Create, authas(42, "user@example.com"), body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created dto.MaterialResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.PublicID != "pub-1" || created.Title != "notes" {
		t.Fatalf("unexpected response %+v", created)
	}
}

func TestMaterialHandlerCreateFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.MaterialRequest{Title: "notes"})

	tests := []struct {
		name   string
		facade testhelpers.MaterialFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed body",
			facade: testhelpers.MaterialFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "missing title",
			facade: testhelpers.MaterialFacadeStub{CreateFn: func(context.Context, int64, usecase.MaterialInput) (*model.Material, error) {
				return nil, domainErrors.ErrValidation
			}},
			body:   validBody,
			status: http.StatusBadRequest,
		},
		{
			name: "internal error",
			facade: testhelpers.MaterialFacadeStub{CreateFn: func(context.Context, int64, usecase.MaterialInput) (*model.Material, error) {
				return nil, errors.New("db down")
			}},
			body:   validBody,
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewMaterialHandler(tc.facade, discardLogger())
			resp := performRequest(t, http.MethodPost, "/materials", handler.Create, authas(42, "user@example.com"), tc.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestMaterialHandlerUpdate(t *testing.T) {
	body, _ := json.Marshal(dto.MaterialRequest{Title: "renamed", Content: "body"})
	handler := NewMaterialHandler(testhelpers.MaterialFacadeStub{UpdateFn: func(ctx context.Context, userID, id int64, in usecase.MaterialInput) (*model.Material, error) {
		if userID != 42 || id != 5 {
			t.Fatalf("unexpected identifiers: user=%d id=%d", userID, id)
		}
		return &model.Material{ID: id, UserID: userID, PublicID: "pub-5", Title: in.Title, Content: in.Content}, nil
	}}, discardLogger())

	resp := performPathRequest(t, http.MethodPut, "/materials/:id", "/materials/5", handler.Update, authas(42, "user@example.com"), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var updated dto.MaterialResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.Title != "renamed" {
		t.Fatalf("unexpected response %+v", updated)
	}
}

func TestMaterialHandlerUpdateFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.MaterialRequest{Title: "renamed"})

	tests := []struct {
		name   string
		path   string
		facade testhelpers.MaterialFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "invalid id",
			path:   "/materials/abc",
			facade: testhelpers.MaterialFacadeStub{},
			body:   validBody,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed body",
			path:   "/materials/5",
			facade: testhelpers.MaterialFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "not owned",
			path: "/materials/5",
			facade: testhelpers.MaterialFacadeStub{UpdateFn: func(context.Context, int64, int64, usecase.MaterialInput) (*model.Material, error) {
				return nil, domainErrors.ErrNotFound
			}},
			body:   validBody,
			status: http.StatusNotFound,
		},
		{
			name: "internal error",
			path: "/materials/5",
			facade: testhelpers.MaterialFacadeStub{UpdateFn: func(context.Context, int64, int64, usecase.MaterialInput) (*model.Material, error) {
				return nil, errors.New("db down")
			}},
			body:   validBody,
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewMaterialHandler(tc.facade, discardLogger())
			w := performPathRequest(t, http.MethodPut, "/materials/:id", tc.path, handler.Update, authas(42, "user@example.com"), tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func performPathRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMaterialHandlerDelete(t *testing.T) {
	handler := NewMaterialHandler(testhelpers.MaterialFacadeStub{DeleteFn: func(ctx context.Context, userID, id int64) (*model.Material, error) {
		if userID != 42 || id != 5 {
			t.Fatalf("unexpected identifiers: user=%d id=%d", userID, id)
		}
		return &model.Material{ID: id, UserID: userID, PublicID: "pub-5", Title: "gone"}, nil
	}}, discardLogger())

	w := performPathRequest(t, http.MethodDelete, "/materials/:id", "/materials/5", handler.Delete, authas(42, "user@example.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var deleted dto.DeleteMaterialResponse
	if err := json.Unmarshal(w.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if deleted.Message != "deleted" || deleted.Material.Title != "gone" {
		t.Fatalf("unexpected response %+v", deleted)
	}
}

func TestMaterialHandlerDeleteFailures(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		facade testhelpers.MaterialFacadeStub
		status int
	}{
		{
			name:   "invalid id",
			path:   "/materials/abc",
			facade: testhelpers.MaterialFacadeStub{},
			status: http.StatusBadRequest,
		},
		{
			name: "not owned",
			path: "/materials/5",
			facade: testhelpers.MaterialFacadeStub{DeleteFn: func(context.Context, int64, int64) (*model.Material, error) {
				return nil, domainErrors.ErrNotFound
			}},
			status: http.StatusNotFound,
		},
		{
			name: "internal error",
			path: "/materials/5",
			facade: testhelpers.MaterialFacadeStub{DeleteFn: func(context.Context, int64, int64) (*model.Material, error) {
				return nil, errors.New("db down")
			}},
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewMaterialHandler(tc.facade, discardLogger())
			w := performPathRequest(t, http.MethodDelete, "/materials/:id", tc.path, handler.Delete, authas(42, "user@example.com"), nil)
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestMaterialHandlerPublic(t *testing.T) {
	handler := NewMaterialHandler(testhelpers.MaterialFacadeStub{PublicFn: func(ctx context.Context, publicID string) (*model.Material, error) {
		if publicID != "pub-1" {
			t.Fatalf("unexpected public id %q", publicID)
		}
		return &model.Material{ID: 1, UserID: 42, PublicID: publicID, Title: "shared", Content: "body", Tags: []string{"go"}}, nil
	}}, discardLogger())

	w := performPathRequest(t, http.MethodGet, "/materials/public/:public_id", "/materials/public/pub-1", handler.Public, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var public dto.PublicMaterialResponse
	if err := json.Unmarshal(w.Body.Bytes(), &public); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if public.Title != "shared" || len(public.Tags) != 1 {
		t.Fatalf("unexpected response %+v", public)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("user_id")) {
		t.Fatalf("public response leaks owner: %s", w.Body.String())
	}
}

func TestMaterialHandlerPublicFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.MaterialFacadeStub
		status int
	}{
		{
			name: "not found",
			facade: testhelpers.MaterialFacadeStub{PublicFn: func(context.Context, string) (*model.Material, error) {
				return nil, domainErrors.ErrNotFound
			}},
			status: http.StatusNotFound,
		},
		{
			name: "internal error",
			facade: testhelpers.MaterialFacadeStub{PublicFn: func(context.Context, string) (*model.Material, error) {
				return nil, errors.New("db down")
			}},
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewMaterialHandler(tc.facade, discardLogger())
			w := performPathRequest(t, http.MethodGet, "/materials/public/:public_id", "/materials/public/missing", handler.Public, nil, nil)
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestSystemHandlerHealth(t *testing.T) {
	handler := NewSystemHandler(testhelpers.SystemFacadeStub{}, discardLogger())
	resp := performRequest(t, http.MethodGet, "/", handler.Health, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var health dto.HealthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "ok" {
		t.Fatalf("unexpected status %q", health.Status)
	}

	failing := NewSystemHandler(testhelpers.SystemFacadeStub{HealthFn: func(context.Context) error {
		return errors.New("no db")
	}}, discardLogger())
	resp = performRequest(t, http.MethodGet, "/", failing.Health, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestSystemHandlerProtected(t *testing.T) {
	handler := NewSystemHandler(testhelpers.SystemFacadeStub{}, discardLogger())
	resp := performRequest(t, http.MethodGet, "/protected", handler.Protected, authas(42, "user@example.com"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.ProtectedResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Message != "authorized" || payload.User.UserID != 42 || payload.User.Email != "user@example.com" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}
