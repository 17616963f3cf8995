package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syp-project/authd/internal/common"
	"github.com/syp-project/authd/internal/logging"
	"github.com/syp-project/authd/internal/server/auth"
	"github.com/syp-project/authd/internal/server/services"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUser struct {
	regErr error

	loginResp *services.LoginResult
	loginErr  error

	verifyResp *auth.Claims
	verifyErr  error
}

func (f *fakeUser) Register(ctx context.Context, fullName, email, password string) error {
	return f.regErr
}
func (f *fakeUser) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) VerifyToken(tokenString string) (*auth.Claims, error) {
	return f.verifyResp, f.verifyErr
}

// ---- helpers ----

func newServer(t *testing.T, u userSvc) *HTTPServer {
	t.Helper()
	s, err := NewHTTPServer("127.0.0.1:0", nopLogger{}, u)
	if err != nil {
		t.Fatalf("NewHTTPServer error: %v", err)
	}
	return s
}

func doJSON(t *testing.T, h http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a JSON error object: %v (%s)", err, rec.Body.String())
	}
	return resp.Error
}

// ---- register ----

func TestHandleRegister_OK(t *testing.T) {
	s := newServer(t, &fakeUser{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/register",
		`{"fullName":"Ada Lovelace","email":"ada@example.com","password":"secret123"}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true, got %s", rec.Body.String())
	}
}

func TestHandleRegister_MissingField(t *testing.T) {
	s := newServer(t, &fakeUser{regErr: &common.MissingFieldError{Field: "fullName"}})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/register",
		`{"email":"ada@example.com","password":"secret123"}`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeError(t, rec); got != "fullName is required" {
		t.Fatalf("error = %q, want %q", got, "fullName is required")
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	s := newServer(t, &fakeUser{regErr: common.ErrorEmailTaken})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/register",
		`{"fullName":"A","email":"a@example.com","password":"p"}`, nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if got := decodeError(t, rec); got != "email already registered" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandleRegister_BadJSONBody(t *testing.T) {
	s := newServer(t, &fakeUser{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/register", `{not json`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRegister_InternalOnUnknownError(t *testing.T) {
	s := newServer(t, &fakeUser{regErr: errors.New("store exploded")})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/register",
		`{"fullName":"A","email":"a@example.com","password":"p"}`, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := decodeError(t, rec); got != "internal error" {
		t.Fatalf("internal details leaked: %q", got)
	}
}

// ---- login ----

func TestHandleLogin_OK(t *testing.T) {
	s := newServer(t, &fakeUser{
		loginResp: &services.LoginResult{
			Token: "tok-123",
			User:  services.IdentityView{Email: "ada@example.com", FullName: "Ada Lovelace"},
		},
	})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/login",
		`{"email":"ada@example.com","password":"secret123"}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email    string `json:"email"`
			FullName string `json:"fullName"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok-123" {
		t.Fatalf("token = %q", resp.Token)
	}
	if resp.User.Email != "ada@example.com" || resp.User.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	s := newServer(t, &fakeUser{loginErr: common.ErrorInvalidCredentials})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/login",
		`{"email":"ada@example.com","password":"wrong"}`, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := decodeError(t, rec); got != "invalid email or password" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandleLogin_BadJSONBody(t *testing.T) {
	s := newServer(t, &fakeUser{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/login", `]`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// ---- profile ----

func TestHandleProfile_OK(t *testing.T) {
	s := newServer(t, &fakeUser{
		verifyResp: &auth.Claims{Email: "ada@example.com", FullName: "Ada Lovelace"},
	})

	header := http.Header{}
	header.Set("Authorization", "Bearer some-token")
	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/profile", "", header)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		User struct {
			Email    string `json:"email"`
			FullName string `json:"fullName"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Email != "ada@example.com" || resp.User.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestHandleProfile_MissingHeader(t *testing.T) {
	s := newServer(t, &fakeUser{})

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/profile", "", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestHandleProfile_NonBearerHeader(t *testing.T) {
	s := newServer(t, &fakeUser{})

	header := http.Header{}
	header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/profile", "", header)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

// Every verification failure looks identical from outside.
func TestHandleProfile_TokenErrorsUniform(t *testing.T) {
	for _, tokenErr := range []error{
		common.ErrTokenMalformed,
		common.ErrTokenSignatureInvalid,
		common.ErrTokenExpired,
	} {
		s := newServer(t, &fakeUser{verifyErr: tokenErr})

		header := http.Header{}
		header.Set("Authorization", "Bearer bad-token")
		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/profile", "", header)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: status = %d, want 401", tokenErr, rec.Code)
		}
		if got := decodeError(t, rec); got != "invalid session" {
			t.Fatalf("%v: error = %q, want %q", tokenErr, got, "invalid session")
		}
	}
}
