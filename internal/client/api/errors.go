package api

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/pkg/api"
)

var (
	// ErrEmptyBody - успешный ответ без тела
	ErrEmptyBody = errors.New("empty response body")

	// ErrMalformedBody - успешный ответ с телом, которое не удалось разобрать
	ErrMalformedBody = errors.New("malformed response body")

	// ErrTokenUnavailable - не удалось прочитать access token из сессии
	ErrTokenUnavailable = errors.New("access token unavailable")
)

// HTTPError is returned for every non-2xx response.
type HTTPError struct {
	Status     string // текст статуса, например "Unauthorized"
	Message    string // сообщение сервера из ErrorResponse, если есть
	StatusCode int
}

func newHTTPError(resp *http.Response, body []byte) *HTTPError {
	status := http.StatusText(resp.StatusCode)
	if status == "" {
		// "599 Custom" -> "Custom"
		status = strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode)))
	}

	herr := &HTTPError{StatusCode: resp.StatusCode, Status: status}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		herr.Message = errResp.Message
		if herr.Message == "" {
			herr.Message = errResp.Error
		}
	}

	return herr
}

// Error returns "<status text> (<code>)"
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Status, e.StatusCode)
}

// KindOf classifies an error returned by Client by its structure,
// not by its message text.
func KindOf(err error) resource.Kind {
	if err == nil {
		return resource.KindUnknown
	}

	var herr *HTTPError
	if errors.As(err, &herr) {
		return kindOfStatus(herr.StatusCode)
	}

	switch {
	case errors.Is(err, ErrEmptyBody), errors.Is(err, ErrMalformedBody):
		return resource.KindEmptyBody
	case errors.Is(err, ErrTokenUnavailable):
		return resource.KindStorage
	case errors.Is(err, context.Canceled):
		return resource.KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return resource.KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return resource.KindTimeout
	}

	if isTLSError(err) {
		return resource.KindTLS
	}

	var (
		dnsErr *net.DNSError
		opErr  *net.OpError
		urlErr *url.Error
	)
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) || errors.As(err, &urlErr) {
		return resource.KindNetwork
	}

	return resource.KindUnknown
}

func kindOfStatus(code int) resource.Kind {
	switch {
	case code == http.StatusUnauthorized:
		return resource.KindUnauthorized
	case code == http.StatusForbidden:
		return resource.KindForbidden
	case code == http.StatusNotFound:
		return resource.KindNotFound
	case code == http.StatusConflict:
		return resource.KindConflict
	case code == http.StatusRequestTimeout, code == http.StatusGatewayTimeout:
		return resource.KindTimeout
	case code >= 500:
		return resource.KindServer
	case code >= 400:
		return resource.KindClient
	default:
		return resource.KindUnknown
	}
}

func isTLSError(err error) bool {
	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		invalid          x509.CertificateInvalidError
		verification     *tls.CertificateVerificationError
		recordHeader     tls.RecordHeaderError
	)
	return errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostname) ||
		errors.As(err, &invalid) ||
		errors.As(err, &verification) ||
		errors.As(err, &recordHeader)
}

// Message returns the text shown for a failed call: the bare
// "<status text> (<code>)" for HTTP errors, the full error otherwise.
func Message(err error) string {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Error()
	}
	return err.Error()
}

// ToResource converts a client error into an Error resource
func ToResource[T any](err error) resource.Resource[T] {
	return resource.Fail[T](KindOf(err), Message(err))
}
