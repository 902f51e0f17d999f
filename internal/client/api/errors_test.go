package api

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want resource.Kind
	}{
		{name: "nil", err: nil, want: resource.KindUnknown},
		{name: "401", err: &HTTPError{StatusCode: 401, Status: "Unauthorized"}, want: resource.KindUnauthorized},
		{name: "403", err: &HTTPError{StatusCode: 403}, want: resource.KindForbidden},
		{name: "404 wrapped", err: fmt.Errorf("get: %w", &HTTPError{StatusCode: 404}), want: resource.KindNotFound},
		{name: "409", err: &HTTPError{StatusCode: 409}, want: resource.KindConflict},
		{name: "422", err: &HTTPError{StatusCode: 422}, want: resource.KindClient},
		{name: "504", err: &HTTPError{StatusCode: 504}, want: resource.KindTimeout},
		{name: "503", err: &HTTPError{StatusCode: 503}, want: resource.KindServer},
		{name: "empty body", err: fmt.Errorf("x: %w", ErrEmptyBody), want: resource.KindEmptyBody},
		{name: "canceled", err: &url.Error{Op: "Get", URL: "http://x", Err: context.Canceled}, want: resource.KindCanceled},
		{name: "deadline", err: context.DeadlineExceeded, want: resource.KindTimeout},
		{name: "dns", err: &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Err: "no such host", Name: "x"}}, want: resource.KindNetwork},
		{name: "tls", err: &url.Error{Op: "Get", URL: "https://x", Err: x509.UnknownAuthorityError{}}, want: resource.KindTLS},
		{name: "plain", err: errors.New("Unauthorized"), want: resource.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	herr := &HTTPError{StatusCode: 401, Status: "Unauthorized", Message: "bad token"}
	assert.Equal(t, "Unauthorized (401)", Message(fmt.Errorf("login request failed: %w", herr)))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/api/products/7", sanitizePath("/api/products/7"))
	assert.Equal(t, "/api/reset/***", sanitizePath("/api/reset/abc"))
	assert.Equal(t, "/api/token/***/info", sanitizePath("/api/token/xyz/info"))
}
