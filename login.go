package saleorauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shurcooL/graphql"
	"golang.org/x/oauth2"

	"github.com/queryshift/saleorauth/internal"
)

// User identifies the authenticated principal.
type User struct {
	ID    string
	Email string
}

// Session is the credential issued by a successful login. It is held by the
// caller that created it and is never persisted, refreshed, or invalidated.
type Session struct {
	Token        string
	RefreshToken string
	CSRFToken    string
	User         User

	endpoint string
	base     *http.Client
}

// Client returns a new client bound to the login endpoint. Every request the
// client sends carries an "Authorization: bearer <token>" header; the header
// value is fixed when the session is created.
func (s *Session) Client() *Client {
	return NewClient(s.endpoint, internal.NewTokenClient(s.base, s.Token))
}

// TokenSource exposes the session token to libraries that authenticate
// through the oauth2 package. The source is static: it never refreshes.
func (s *Session) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: s.Token,
		TokenType:   "bearer",
	})
}

// Login authenticates the account in cfg with a single tokenCreate mutation
// against the endpoint in cfg. There is no retry: a transport failure is
// returned as-is. If the API rejects the credentials, Login returns a
// *LoginError carrying the field-level errors; a response with neither a
// token nor errors returns ErrNoToken. In both cases no client is produced.
func Login(ctx context.Context, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()
	client := NewClient(cfg.Endpoint, cfg.HTTPClient)

	var m struct {
		TokenCreate struct {
			Token        *string
			RefreshToken *string
			CSRFToken    *string `graphql:"csrfToken"`
			Errors       []struct {
				Code    string
				Field   *string
				Message *string
			}
			User *struct {
				ID    string
				Email string
			}
		} `graphql:"tokenCreate(email: $email, password: $password)"`
	}
	vars := map[string]interface{}{
		"email":    graphql.String(cfg.Email),
		"password": graphql.String(cfg.Password),
	}

	if err := client.Mutate(ctx, &m, vars); err != nil {
		return nil, fmt.Errorf("token create failed: %w", err)
	}

	result := m.TokenCreate
	if len(result.Errors) > 0 {
		lerr := &LoginError{Errors: make([]AccountError, 0, len(result.Errors))}
		for _, e := range result.Errors {
			lerr.Errors = append(lerr.Errors, AccountError{
				Code:    e.Code,
				Field:   strv(e.Field),
				Message: strv(e.Message),
			})
		}
		return nil, lerr
	}
	if result.Token == nil || *result.Token == "" {
		return nil, ErrNoToken
	}

	s := &Session{
		Token:        *result.Token,
		RefreshToken: strv(result.RefreshToken),
		CSRFToken:    strv(result.CSRFToken),
		endpoint:     cfg.Endpoint,
		base:         cfg.HTTPClient,
	}
	if result.User != nil {
		s.User = User{ID: result.User.ID, Email: result.User.Email}
	}
	return s, nil
}

// Authorize runs Login and returns only the authorized client. Use Login if
// you need the refresh token, the CSRF token, or the user identity.
func Authorize(ctx context.Context, cfg Config) (*Client, error) {
	session, err := Login(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return session.Client(), nil
}

func strv(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
