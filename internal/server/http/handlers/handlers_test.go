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

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	"github.com/polkiloo/authgate/internal/domain/model"
	"github.com/polkiloo/authgate/internal/server/http/dto"
	testhelpers "github.com/polkiloo/authgate/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Error
}

func TestAuthHandlerRegister(t *testing.T) {
	name := testhelpers.RandomASCIIString(5, 12)
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)

	handler := NewAuthHandler(testhelpers.AccountFacadeStub{RegisterFn: func(ctx context.Context, gotName, gotEmail, gotPassword, gotConfirm string) error {
		if gotName != name || gotEmail != email || gotPassword != password || gotConfirm != password {
			t.Fatalf("unexpected fields passed to facade: %q %q %q %q", gotName, gotEmail, gotPassword, gotConfirm)
		}
		return nil
	}}, testLogger())

	body, _ := json.Marshal(dto.RegisterRequest{Name: name, Email: email, Password: password, ConfirmPassword: password})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var msg dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &msg); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if msg.Message != "user registered successfully" {
		t.Fatalf("unexpected message %q", msg.Message)
	}
}

func TestAuthHandlerRegisterInvalidBody(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AccountFacadeStub{}, testLogger())
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, []byte("{not json"))
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
	if got := decodeError(t, resp); got != "invalid request body" {
		t.Fatalf("unexpected error body %q", got)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid name", domainErrors.ErrInvalidName, http.StatusUnprocessableEntity, "name is not valid"},
		{"invalid email", domainErrors.ErrInvalidEmail, http.StatusUnprocessableEntity, "email is not valid"},
		{"password mismatch", domainErrors.ErrPasswordMismatch, http.StatusUnprocessableEntity, "passwords don't match or don't exist"},
		{"duplicate email", domainErrors.ErrAlreadyExists, http.StatusUnprocessableEntity, "email already registered"},
		{"storage failure", errors.New("boom"), http.StatusInternalServerError, "error on register"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAuthHandler(testhelpers.AccountFacadeStub{RegisterFn: func(context.Context, string, string, string, string) error {
				return tc.err
			}}, testLogger())
			body, _ := json.Marshal(dto.RegisterRequest{Name: "a", Email: "a@b.c", Password: "p", ConfirmPassword: "p"})
			resp := performRequest(t, http.MethodPost, "/register", handler.Register, body)
			if resp.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, resp.Code)
			}
			if got := decodeError(t, resp); got != tc.wantBody {
				t.Fatalf("expected error %q, got %q", tc.wantBody, got)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AccountFacadeStub{AuthenticateFn: func(ctx context.Context, email, password string) (string, error) {
		return "issued-token", nil
	}}, testLogger())
	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var token dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &token); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if token.Message != "authenticated successfully" {
		t.Fatalf("unexpected message %q", token.Message)
	}
	if token.Token != "issued-token" {
		t.Fatalf("unexpected token %q", token.Token)
	}
}

func TestAuthHandlerLoginInvalidBody(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AccountFacadeStub{}, testLogger())
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, []byte("{"))
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
	if got := decodeError(t, resp); got != "invalid request body" {
		t.Fatalf("unexpected error body %q", got)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"missing email", domainErrors.ErrInvalidEmail, http.StatusUnprocessableEntity, "email is not valid"},
		{"missing password", domainErrors.ErrMissingPassword, http.StatusUnprocessableEntity, "missing password"},
		{"wrong password", domainErrors.ErrInvalidPassword, http.StatusUnprocessableEntity, "invalid password"},
		{"unknown user", domainErrors.ErrNotFound, http.StatusNotFound, "user not found"},
		{"token failure", errors.New("boom"), http.StatusInternalServerError, "error on login"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAuthHandler(testhelpers.AccountFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
				return "", tc.err
			}}, testLogger())
			body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "pass"})
			resp := performRequest(t, http.MethodPost, "/login", handler.Login, body)
			if resp.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, resp.Code)
			}
			if got := decodeError(t, resp); got != tc.wantBody {
				t.Fatalf("expected error %q, got %q", tc.wantBody, got)
			}
		})
	}
}

func TestUserHandlerProfile(t *testing.T) {
	created := time.Unix(1700000000, 0).UTC()
	user := &model.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: created}
	handler := NewUserHandler(testhelpers.AccountFacadeStub{ProfileFn: func(ctx context.Context, id string) (*model.User, error) {
		if id != "user-1" {
			t.Fatalf("unexpected id %q", id)
		}
		return user, nil
	}}, testLogger())

	router := gin.New()
	router.GET("/user/:id", handler.Profile)
	req := httptest.NewRequest(http.MethodGet, "/user/user-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body dto.ProfileResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.User.ID != "user-1" || body.User.Name != "Alice" || body.User.Email != "alice@example.com" {
		t.Fatalf("unexpected profile %+v", body.User)
	}
	if !body.User.CreatedAt.Equal(created) {
		t.Fatalf("unexpected createdAt %v", body.User.CreatedAt)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("hash")) {
		t.Fatalf("password hash leaked into response: %s", resp.Body.String())
	}
}

func TestUserHandlerProfileFailures(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", domainErrors.ErrNotFound, http.StatusNotFound, "user not found"},
		{"storage failure", errors.New("boom"), http.StatusInternalServerError, "error on fetch user"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewUserHandler(testhelpers.AccountFacadeStub{ProfileFn: func(context.Context, string) (*model.User, error) {
				return nil, tc.err
			}}, testLogger())
			router := gin.New()
			router.GET("/user/:id", handler.Profile)
			req := httptest.NewRequest(http.MethodGet, "/user/missing", nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, resp.Code)
			}
			if got := decodeError(t, resp); got != tc.wantBody {
				t.Fatalf("expected error %q, got %q", tc.wantBody, got)
			}
		})
	}
}

func TestHome(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/", Home, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var msg dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &msg); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if msg.Message != "Hello World" {
		t.Fatalf("unexpected message %q", msg.Message)
	}
}

var _ AccountFacade = testhelpers.AccountFacadeStub{}
