package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/veridianlabs/identity-api/internal/core/domain"
	"github.com/veridianlabs/identity-api/internal/core/ports"
)

type stubRegistrationService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
}

func (s *stubRegistrationService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func registerContext(t *testing.T, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler_Register_Success(t *testing.T) {
	stub := &stubRegistrationService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.EmailAddress != "alice@example.com" || in.Nickname != "alice" || in.Password != "s3cret" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u1", Identity: "mailto:alice@example.com"}, nil
		},
	}
	handler := NewRegisterHandler(stub)

	form := url.Values{}
	form.Set("emailaddress", "alice@example.com")
	form.Set("nickname", "alice")
	form.Set("password", "s3cret")

	c, rec := registerContext(t, form)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("expected 308, got %d", rec.Code)
	}
	loc := rec.Header().Get(echo.HeaderLocation)
	if !strings.HasPrefix(loc, "/login?msg=") || !strings.Contains(loc, "Registration+successful") {
		t.Fatalf("unexpected location: %s", loc)
	}
}

func TestRegisterHandler_Register_IdentityCollision(t *testing.T) {
	stub := &stubRegistrationService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewRegisterHandler(stub)

	form := url.Values{}
	form.Set("emailaddress", "bob@example.com")
	form.Set("nickname", "bob")
	form.Set("password", "pw")

	c, _ := registerContext(t, form)
	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestRegisterHandler_Register_InvalidEmail(t *testing.T) {
	stub := &stubRegistrationService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewRegisterHandler(stub)

	form := url.Values{}
	form.Set("emailaddress", "not-an-email")
	form.Set("nickname", "x")
	form.Set("password", "pw")

	c, _ := registerContext(t, form)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestRegisterHandler_Register_MissingFields(t *testing.T) {
	stub := &stubRegistrationService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewRegisterHandler(stub)

	c, _ := registerContext(t, url.Values{})
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestRegisterHandler_Form(t *testing.T) {
	handler := NewRegisterHandler(&stubRegistrationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/register?msg=hello", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Form(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "hello") || !strings.Contains(body, "emailaddress") {
		t.Fatalf("unexpected body: %s", body)
	}
}
