package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/queryshift/saleorauth"
)

const (
	EnvEndpoint = "SALEOR_API_URL"
	EnvEmail    = "SALEOR_USER_EMAIL"
	EnvPassword = "SALEOR_USER_PASSWORD"
)

func main() {
	var endpoint, email, password string
	var outputJSON bool

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVar(&email, "email", "", "email")
	fs.StringVar(&endpoint, "endpoint", "", "endpoint")
	fs.BoolVar(&outputJSON, "json", false, "json")
	fs.StringVar(&password, "password", "", "password")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(os.Stdout, helpText())
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	// Flags win over the environment, the environment wins over .env
	godotenv.Load()

	cfg := saleorauth.Config{
		Endpoint: firstOf(endpoint, os.Getenv(EnvEndpoint)),
		Email:    firstOf(email, os.Getenv(EnvEmail)),
		Password: firstOf(password, os.Getenv(EnvPassword)),
	}

	session, err := saleorauth.Login(context.Background(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if outputJSON {
		out := sessionOutput{
			Token:        session.Token,
			RefreshToken: session.RefreshToken,
			CSRFToken:    session.CSRFToken,
		}
		out.User.ID = session.User.ID
		out.User.Email = session.User.Email

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintln(os.Stdout, session.Token)
}

type sessionOutput struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	CSRFToken    string `json:"csrfToken"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func helpText() string {
	help := `
Usage: saleorauth [options]

  Log in to a Saleor GraphQL API and print the session token

  The command sends a single tokenCreate mutation and exits. On success it
  prints the session token to standard output; with -json it prints the full
  session, including the refresh token, the CSRF token, and the user identity.
  If the API rejects the credentials, the field-level errors are printed to
  standard error and the command exits non-zero.

  Options fall back to the environment variables below, which in turn fall
  back to a .env file in the working directory:

    SALEOR_API_URL
    SALEOR_USER_EMAIL
    SALEOR_USER_PASSWORD

  With nothing set, the command targets the staging endpoint with the shared
  dashboard test account.

Options:

  -email=email         Email of the account to authenticate.

  -endpoint=url        GraphQL API URL.

  -json                Output the full session in JSON format.

  -password=password   Password of the account to authenticate.

`
	return strings.TrimSpace(help)
}
