// Package httpmw provides net/http middleware that tags requests with identifiers and
// logs the outcome of each request through a writelog.Logger.
package httpmw

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hyp3rd/writelog"
	"github.com/hyp3rd/writelog/internal/constants"
)

// Option configures the behaviour of the middleware.
type Option func(*options)

type options struct {
	traceHeader    string
	requestHeader  string
	idGenerator    func() string
	generateIfMiss bool
	now            func() time.Time
}

// WithTraceHeader configures the header used to populate the trace id.
func WithTraceHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.traceHeader = name
		}
	}
}

// WithRequestHeader configures the header used to populate the request id.
func WithRequestHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.requestHeader = name
		}
	}
}

// WithIDGenerator provides a custom generator used when headers are missing.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.idGenerator = fn
		}
	}
}

// WithGenerateMissingIDs instructs the middleware to create ids when headers are absent.
func WithGenerateMissingIDs(enable bool) Option {
	return func(o *options) {
		o.generateIfMiss = enable
	}
}

// WithClock replaces the time source used to measure request durations.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func actualOptions(opts ...Option) options {
	cfg := options{
		traceHeader:    constants.TraceHeader,
		requestHeader:  constants.RequestHeader,
		idGenerator:    randomID,
		generateIfMiss: true,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ContextMiddleware enriches the request context with the trace and request identifiers.
func ContextMiddleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := actualOptions(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(enrich(r, cfg)))
		})
	}
}

// LoggingMiddleware logs one line per request once the handler returns:
// "<METHOD> <path> <status> in <duration>". Status codes below 400 are logged as
// SUCCESS, 4xx as FAILURE and 5xx as ERROR. The request id is used as caller name
// and echoed in the response header.
func LoggingMiddleware(logger writelog.Logger, opts ...Option) func(http.Handler) http.Handler {
	cfg := actualOptions(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := enrich(r, cfg)

			requestID := RequestID(ctx)
			if requestID != "" {
				w.Header().Set(cfg.requestHeader, requestID)
			}

			recorder := &statusRecorder{ResponseWriter: w}
			start := cfg.now()

			next.ServeHTTP(recorder, r.WithContext(ctx))

			if logger == nil {
				return
			}

			logRequest(logger, r, recorder.Status(), cfg.now().Sub(start), requestID)
		})
	}
}

// RequestID returns the request identifier stored by the middleware, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(constants.RequestKey{}).(string)

	return id
}

// TraceID returns the trace identifier stored by the middleware, if any.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(constants.TraceKey{}).(string)

	return id
}

// OutcomeType maps an HTTP status code onto the result type logged for the request.
func OutcomeType(code int) writelog.MessageType {
	switch {
	case code >= http.StatusInternalServerError:
		return writelog.MessageTypeError
	case code >= http.StatusBadRequest:
		return writelog.MessageTypeFailure
	default:
		return writelog.MessageTypeSuccess
	}
}

func logRequest(logger writelog.Logger, r *http.Request, code int, elapsed time.Duration, requestID string) {
	record := writelog.Record{
		Message:    fmt.Sprintf("%s %s %d in %s", r.Method, r.URL.Path, code, elapsed),
		Type:       OutcomeType(code),
		CallerName: requestID,
	}

	err := logger.Log(record)
	if err != nil {
		logger.GetConfig().ReportError(err)
	}
}

func enrich(r *http.Request, cfg options) context.Context {
	ctx := r.Context()

	if traceID := r.Header.Get(cfg.traceHeader); traceID != "" {
		ctx = contextWithValue(ctx, constants.TraceKey{}, traceID)
	} else if cfg.generateIfMiss {
		ctx = contextWithValue(ctx, constants.TraceKey{}, cfg.idGenerator())
	}

	if reqID := r.Header.Get(cfg.requestHeader); reqID != "" {
		ctx = contextWithValue(ctx, constants.RequestKey{}, reqID)
	} else if cfg.generateIfMiss {
		ctx = contextWithValue(ctx, constants.RequestKey{}, cfg.idGenerator())
	}

	return ctx
}

func contextWithValue(ctx context.Context, key any, value string) context.Context {
	if value == "" {
		return ctx
	}

	return context.WithValue(ctx, key, value)
}

func randomID() string {
	return uuid.NewString()
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}

	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}

	return s.ResponseWriter.Write(p)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Status returns the recorded status code, 200 when the handler wrote nothing.
func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}

	return s.status
}
