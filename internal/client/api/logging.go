package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// loggingTransport логирует исходящие запросы: метод, путь, статус, длительность.
// НЕ логирует sensitive данные (токены, пароли, тела запросов).
type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error().
			Err(err).
			Str("method", req.Method).
			Str("path", sanitizePath(req.URL.Path)).
			Str("request_id", req.Header.Get(headerRequestID)).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("HTTP request failed")
		return nil, err
	}

	// Уровень логирования по статусу
	event := t.logger.Debug()
	if resp.StatusCode >= 500 {
		event = t.logger.Error()
	} else if resp.StatusCode >= 400 {
		event = t.logger.Warn()
	}

	event.
		Str("method", req.Method).
		Str("path", sanitizePath(req.URL.Path)).
		Str("request_id", req.Header.Get(headerRequestID)).
		Int("status", resp.StatusCode).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("HTTP request")

	return resp, nil
}

// sanitizePath маскирует сегмент после /token/, /reset/ и /code/
func sanitizePath(path string) string {
	if !strings.Contains(path, "/token/") && !strings.Contains(path, "/reset/") && !strings.Contains(path, "/code/") {
		return path
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		if (part == "token" || part == "reset" || part == "code") && i+1 < len(parts) && parts[i+1] != "" {
			parts[i+1] = "***"
		}
	}
	return strings.Join(parts, "/")
}
