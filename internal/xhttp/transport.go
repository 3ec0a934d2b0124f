package xhttp

import (
	"fmt"
	"net/http"

	"github.com/tecpap/lineview/internal/version"
)

type lineviewTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*lineviewTransport)(nil)

func (t *lineviewTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "lineview/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard lineview headers.
func NewTransport() http.RoundTripper {
	return &lineviewTransport{base: http.DefaultTransport}
}
