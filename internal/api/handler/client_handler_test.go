package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/veridianlabs/identity-api/internal/api/middleware"
	"github.com/veridianlabs/identity-api/internal/core/domain"
	"github.com/veridianlabs/identity-api/internal/core/ports"
)

type stubClientService struct {
	getFn  func(ctx context.Context, in ports.ViewClientInput) (*ports.ClientConfig, error)
	editFn func(ctx context.Context, in ports.EditClientInput) (*domain.OAuth2Client, error)
}

func (s *stubClientService) GetForEdit(ctx context.Context, in ports.ViewClientInput) (*ports.ClientConfig, error) {
	return s.getFn(ctx, in)
}

func (s *stubClientService) Edit(ctx context.Context, in ports.EditClientInput) (*domain.OAuth2Client, error) {
	return s.editFn(ctx, in)
}

func editContext(t *testing.T, form url.Values, withActor bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var body string
	if form != nil {
		body = form.Encode()
	}
	req := httptest.NewRequest(http.MethodPost, "/app/my-app/client/client-1/edit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/app/:id/client/:clientId/edit")
	c.SetParamNames("id", "clientId")
	c.SetParamValues("my-app", "client-1")
	if withActor {
		c.Set(middleware.ActorKey, &domain.Principal{ID: "admin-1", Kind: domain.KindUser})
	}
	return c, rec
}

func TestClientHandler_Edit_Success(t *testing.T) {
	var got ports.EditClientInput
	stub := &stubClientService{
		editFn: func(_ context.Context, in ports.EditClientInput) (*domain.OAuth2Client, error) {
			got = in
			return &domain.OAuth2Client{
				ClientID:    in.ClientID,
				RequirePkce: in.RequirePkce,
				Href:        "/app/my-app/client/client-1",
			}, nil
		},
	}
	handler := NewClientHandler(stub)

	form := url.Values{}
	form.Set("allowClientCredentials", "on")
	form.Set("allowAuthorizationCode", "true")
	form.Set("requirePkce", "1")
	form.Set("redirectUris", "https://a.example/cb\r\n\r\nhttps://b.example/cb\n")

	c, rec := editContext(t, form, true)
	if err := handler.Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/app/my-app/client/client-1" {
		t.Fatalf("unexpected location: %s", loc)
	}

	wantFlags := domain.GrantTypeFlags{ClientCredentials: true, AuthorizationCode: true}
	if got.GrantFlags != wantFlags {
		t.Fatalf("unexpected flags: %+v", got.GrantFlags)
	}
	if !got.RequirePkce {
		t.Fatalf("expected requirePkce to parse true")
	}
	wantURIs := []string{"https://a.example/cb", "https://b.example/cb"}
	if !reflect.DeepEqual(got.RedirectURIs, wantURIs) {
		t.Fatalf("unexpected uris: %v", got.RedirectURIs)
	}
}

func TestClientHandler_Edit_RequirePkceDefaultsFalse(t *testing.T) {
	stub := &stubClientService{
		editFn: func(_ context.Context, in ports.EditClientInput) (*domain.OAuth2Client, error) {
			if in.RequirePkce {
				t.Fatalf("absent requirePkce must default to false")
			}
			return &domain.OAuth2Client{Href: "/x"}, nil
		},
	}
	handler := NewClientHandler(stub)

	form := url.Values{}
	form.Set("allowImplicit", "true")
	form.Set("redirectUris", "")

	c, _ := editContext(t, form, true)
	if err := handler.Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestClientHandler_Edit_MissingRedirectUrisField(t *testing.T) {
	stub := &stubClientService{
		editFn: func(_ context.Context, _ ports.EditClientInput) (*domain.OAuth2Client, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewClientHandler(stub)

	form := url.Values{}
	form.Set("allowPassword", "true")

	c, _ := editContext(t, form, true)
	err := handler.Edit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "redirectUris") {
		t.Fatalf("error must name the missing field: %v", he.Message)
	}
}

func TestClientHandler_Edit_EmptyGrantSelection(t *testing.T) {
	stub := &stubClientService{
		editFn: func(_ context.Context, in ports.EditClientInput) (*domain.OAuth2Client, error) {
			if len(in.GrantFlags.Selected()) != 0 {
				t.Fatalf("expected no grant flags, got %+v", in.GrantFlags)
			}
			return nil, domain.ErrNoGrantTypes
		},
	}
	handler := NewClientHandler(stub)

	form := url.Values{}
	form.Set("redirectUris", "https://a.example/cb")

	c, _ := editContext(t, form, true)
	if err := handler.Edit(c); !errors.Is(err, domain.ErrNoGrantTypes) {
		t.Fatalf("expected ErrNoGrantTypes to propagate, got %v", err)
	}
}

func TestClientHandler_Edit_MissingActor(t *testing.T) {
	stub := &stubClientService{
		editFn: func(_ context.Context, _ ports.EditClientInput) (*domain.OAuth2Client, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewClientHandler(stub)

	form := url.Values{}
	form.Set("redirectUris", "")

	c, _ := editContext(t, form, false)
	err := handler.Edit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestClientHandler_EditForm_Success(t *testing.T) {
	stub := &stubClientService{
		getFn: func(_ context.Context, in ports.ViewClientInput) (*ports.ClientConfig, error) {
			if in.AppExternalID != "my-app" || in.ClientID != "client-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ClientConfig{
				Client: &domain.OAuth2Client{
					ClientID:          "client-1",
					AllowedGrantTypes: []domain.GrantType{domain.GrantAuthorizationCode},
					RequirePkce:       true,
					Href:              "/app/my-app/client/client-1",
				},
				RedirectURIs: []string{"https://a.example/cb"},
			}, nil
		},
	}
	handler := NewClientHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/app/my-app/client/client-1/edit", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "clientId")
	c.SetParamValues("my-app", "client-1")
	c.Set(middleware.ActorKey, &domain.Principal{ID: "admin-1", Kind: domain.KindUser})

	if err := handler.EditForm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"client-1", "authorization_code", "https://a.example/cb", "require_pkce"} {
		if !strings.Contains(body, want) {
			t.Fatalf("response missing %q: %s", want, body)
		}
	}
}

func TestClientHandler_EditForm_NotFoundPropagates(t *testing.T) {
	stub := &stubClientService{
		getFn: func(_ context.Context, _ ports.ViewClientInput) (*ports.ClientConfig, error) {
			return nil, domain.ErrClientNotFound
		},
	}
	handler := NewClientHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/app/my-app/client/nope/edit", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "clientId")
	c.SetParamValues("my-app", "nope")
	c.Set(middleware.ActorKey, &domain.Principal{ID: "admin-1", Kind: domain.KindUser})

	if err := handler.EditForm(c); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestParseFormBool(t *testing.T) {
	truthy := []string{"true", "TRUE", "1", "on", "On", "yes"}
	for _, v := range truthy {
		if !parseFormBool(v) {
			t.Fatalf("expected %q to parse true", v)
		}
	}
	falsy := []string{"", "false", "0", "off", "nope"}
	for _, v := range falsy {
		if parseFormBool(v) {
			t.Fatalf("expected %q to parse false", v)
		}
	}
}
