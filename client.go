package saleorauth

import (
	"context"
	"net/http"

	"github.com/shurcooL/graphql"
)

// Defaults used when a Config field is empty. The endpoint and the account
// are the staging instance and shared test user that the dashboard test
// suites run against.
const (
	DefaultEndpoint = "https://automation-dashboard.staging.saleor.cloud/graphql/"
	DefaultEmail    = "testers+dashboard@saleor.io"
	DefaultPassword = "test1234"
)

// Config controls how Login reaches the API. The zero value logs the shared
// test user in to the default staging endpoint.
type Config struct {
	// Endpoint is the GraphQL API URL. If empty, use DefaultEndpoint.
	Endpoint string

	// Email and Password identify the account to authenticate. If empty,
	// use the shared test user.
	Email    string
	Password string

	// HTTPClient is the base client for all requests. If nil, use
	// http.DefaultClient.
	HTTPClient *http.Client
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Email == "" {
		c.Email = DefaultEmail
	}
	if c.Password == "" {
		c.Password = DefaultPassword
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	return c
}

// Client sends GraphQL requests to a single fixed endpoint. Clients returned
// by NewClient carry no credentials; clients returned by Session.Client send
// the session token with every request.
type Client struct {
	gql      *graphql.Client
	endpoint string
}

// NewClient creates a client for the API at endpoint. If endpoint is empty,
// the client uses DefaultEndpoint; if httpClient is nil, it uses
// http.DefaultClient. Construction performs no I/O.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		gql:      graphql.NewClient(endpoint, httpClient),
		endpoint: endpoint,
	}
}

// Endpoint returns the URL the client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Query executes a single GraphQL query defined by q, populating it with the
// response. See the graphql package for how queries map to structs.
func (c *Client) Query(ctx context.Context, q interface{}, variables map[string]interface{}) error {
	return c.gql.Query(ctx, q, variables)
}

// Mutate executes a single GraphQL mutation defined by m, populating it with
// the response.
func (c *Client) Mutate(ctx context.Context, m interface{}, variables map[string]interface{}) error {
	return c.gql.Mutate(ctx, m, variables)
}
