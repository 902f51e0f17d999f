package api

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

//go:generate moq -out tokensource_mock.go . TokenSource

// TokenSource выдает текущий токен сессии. Пустой AccessToken - токена нет.
type TokenSource interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// BearerHeader produces the authorization headers for a token.
// A nil token or an empty access token produces no headers.
func BearerHeader(tok *oauth2.Token) http.Header {
	h := make(http.Header)
	if tok == nil || tok.AccessToken == "" {
		return h
	}
	tok.SetAuthHeader(&http.Request{Header: h})
	return h
}

type publicKey struct{}

// withoutAuth помечает запрос как публичный: заголовок Authorization не добавляется
func withoutAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, publicKey{}, true)
}

func isPublic(ctx context.Context) bool {
	public, _ := ctx.Value(publicKey{}).(bool)
	return public
}

// bearerTransport attaches the current access token to every non-public request.
// Responses pass through untouched: a 401 is not retried here.
type bearerTransport struct {
	next   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens == nil || isPublic(req.Context()) {
		return t.next.RoundTrip(req)
	}

	// Токен читается на каждом запросе, без кэширования в памяти
	tok, err := t.tokens.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
	}

	headers := BearerHeader(tok)
	if len(headers) == 0 {
		return t.next.RoundTrip(req)
	}

	authed := req.Clone(req.Context())
	for key, values := range headers {
		authed.Header[key] = values
	}

	return t.next.RoundTrip(authed)
}
