package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTimeout - таймаут HTTP клиента по умолчанию
	DefaultTimeout = 30 * time.Second

	maxRedirects    = 10
	headerRequestID = "X-Request-ID"
	tracerName      = "github.com/iudanet/gophershop/internal/client/api"
)

// Client представляет HTTP клиент для взаимодействия с REST backend
type Client struct {
	httpClient *http.Client
	tracer     trace.Tracer
	logger     zerolog.Logger
	baseURL    string
}

type options struct {
	tokens    TokenSource
	transport http.RoundTripper
	tracing   trace.TracerProvider
	wrappers  []func(http.RoundTripper) http.RoundTripper
	logger    zerolog.Logger
	timeout   time.Duration
}

// Option настраивает Client
type Option func(*options)

// WithTokenSource задает источник access token для Authorization заголовка
func WithTokenSource(tokens TokenSource) Option {
	return func(o *options) {
		o.tokens = tokens
	}
}

// WithTimeout задает таймаут на весь запрос
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithLogger задает логгер исходящих запросов
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTransport подменяет базовый транспорт (по умолчанию http.DefaultTransport)
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

// WithTracerProvider задает провайдер спанов (по умолчанию глобальный otel)
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracing = tp
	}
}

// WithRoundTripper добавляет обертку над транспортом (метрики и т.п.).
// Обертки применяются поверх bearer транспорта.
func WithRoundTripper(wrap func(http.RoundTripper) http.RoundTripper) Option {
	return func(o *options) {
		o.wrappers = append(o.wrappers, wrap)
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	o := options{
		transport: http.DefaultTransport,
		logger:    zerolog.Nop(),
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracing == nil {
		o.tracing = otel.GetTracerProvider()
	}

	// logging -> wrappers -> bearer -> base
	var rt http.RoundTripper = &bearerTransport{next: o.transport, tokens: o.tokens}
	for _, wrap := range o.wrappers {
		rt = wrap(rt)
	}
	rt = &loggingTransport{next: rt, logger: o.logger}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  o.logger,
		tracer:  o.tracing.Tracer(tracerName),
		httpClient: &http.Client{
			Timeout:       o.timeout,
			Transport:     rt,
			CheckRedirect: sameHostRedirects,
		},
	}
}

// sameHostRedirects следует не более чем за maxRedirects редиректами и только
// в пределах исходного хоста: bearer transport подставит токен на каждом шаге
func sameHostRedirects(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if req.URL.Host != via[0].URL.Host {
		return fmt.Errorf("redirect to another host %q refused", req.URL.Host)
	}
	return nil
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest выполняет HTTP запрос.
// 2xx без тела -> ErrEmptyBody, 2xx с неразбираемым телом -> ErrMalformedBody,
// не 2xx -> *HTTPError.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) (err error) {
	ctx, span := c.tracer.Start(ctx, "shop.api "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", sanitizePath(path)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, Message(err))
		}
		span.End()
	}()

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.New().String())
	// traceparent связывает спан клиента со спанами backend
	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newHTTPError(resp, respBody)
	}

	if result == nil {
		return nil
	}

	return decodeBody(respBody, result)
}

// decodeBody декодирует успешный ответ.
// Строковый результат допускает text/plain тело.
func decodeBody(data []byte, result any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyBody
	}

	if err := json.Unmarshal(trimmed, result); err != nil {
		if s, ok := result.(*string); ok {
			*s = string(trimmed)
			return nil
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return nil
}
