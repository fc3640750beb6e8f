package internal

import "net/http"

type tokenRoundTripper struct {
	base  http.RoundTripper
	token string
}

func (trt *tokenRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	rCopy := r.Clone(r.Context())
	// The API checks for the lowercase scheme.
	rCopy.Header.Set("Authorization", "bearer "+trt.token)
	return trt.base.RoundTrip(rCopy)
}

// NewTokenClient returns a copy of base that sends an
// "Authorization: bearer <token>" header with every request. A nil base means
// http.DefaultClient.
func NewTokenClient(base *http.Client, token string) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	rt := base.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	c := *base
	c.Transport = &tokenRoundTripper{
		base:  rt,
		token: token,
	}
	return &c
}
