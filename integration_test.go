package saleorauth

import (
	"context"
	"os"
	"testing"
)

const (
	EnvEndpoint = "SALEORAUTH_TEST_ENDPOINT"
	EnvEmail    = "SALEORAUTH_TEST_EMAIL"
	EnvPassword = "SALEORAUTH_TEST_PASSWORD"
)

// TestLoginIntegration logs in to a live API and checks that the authorized
// client can answer a query about the authenticated user. It only runs when
// an endpoint is set in the environment.
func TestLoginIntegration(t *testing.T) {
	endpoint, ok := os.LookupEnv(EnvEndpoint)
	if !ok || endpoint == "" {
		t.Skipf("%s must be set in the environment", EnvEndpoint)
	}

	cfg := Config{
		Endpoint: endpoint,
		Email:    os.Getenv(EnvEmail),
		Password: os.Getenv(EnvPassword),
	}

	ctx := context.Background()
	session, err := Login(ctx, cfg)
	if err != nil {
		t.Fatalf("error logging in: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}

	var q struct {
		Me *struct {
			ID    string
			Email string
		}
	}
	if err := session.Client().Query(ctx, &q, nil); err != nil {
		t.Fatalf("error querying authenticated user: %v", err)
	}
	if q.Me == nil {
		t.Fatal("me query returned no user; the token was not accepted")
	}
	if q.Me.ID != session.User.ID {
		t.Errorf("incorrect user: expected %q, actual %q", session.User.ID, q.Me.ID)
	}
}
