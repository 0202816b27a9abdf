// Package grpcmw logs the outcome of gRPC calls through a writelog.Logger.
//
// Every completed unary call is logged once with the full method name as caller:
// OK as SUCCESS, caller-side status codes as FAILURE and server-side codes as ERROR.
package grpcmw

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyp3rd/writelog"
	"github.com/hyp3rd/writelog/internal/constants"
)

func actualOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.traceKey == "" {
		cfg.traceKey = strings.ToLower(constants.TraceHeader)
	}

	if cfg.requestKey == "" {
		cfg.requestKey = strings.ToLower(constants.RequestHeader)
	}

	if cfg.now == nil {
		cfg.now = time.Now
	}

	return cfg
}

// UnaryServerInterceptor enriches the gRPC context with metadata values and logs the
// outcome of each call. A nil logger only enriches the context.
func UnaryServerInterceptor(logger writelog.Logger, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := actualOptions(opts...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(cfg.traceKey); len(values) > 0 {
				ctx = context.WithValue(ctx, constants.TraceKey{}, values[0])
			}

			if values := md.Get(cfg.requestKey); len(values) > 0 {
				ctx = context.WithValue(ctx, constants.RequestKey{}, values[0])
			}
		}

		start := cfg.now()
		resp, err := handler(ctx, req)

		if logger != nil {
			logOutcome(logger, fullMethod(info), cfg.now().Sub(start), err)
		}

		return resp, err
	}
}

// RequestID returns the request identifier stored by the interceptor, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(constants.RequestKey{}).(string)

	return id
}

func fullMethod(info *grpc.UnaryServerInfo) string {
	if info == nil || info.FullMethod == "" {
		return "unknown"
	}

	return info.FullMethod
}

func logOutcome(logger writelog.Logger, method string, elapsed time.Duration, callErr error) {
	record := writelog.Record{
		Type:       OutcomeType(status.Code(callErr)),
		CallerName: method,
	}

	if callErr == nil {
		record.Message = fmt.Sprintf("%s completed in %s", method, elapsed)
	} else {
		record.Message = fmt.Sprintf("%s failed: %v", method, callErr)
	}

	err := logger.Log(record)
	if err != nil {
		logger.GetConfig().ReportError(err)
	}
}

// OutcomeType maps a status code onto the result type logged for the call.
//
//nolint:exhaustive // server-side codes are handled by default.
func OutcomeType(code codes.Code) writelog.MessageType {
	switch code {
	case codes.OK:
		return writelog.MessageTypeSuccess
	case codes.Canceled,
		codes.InvalidArgument,
		codes.NotFound,
		codes.AlreadyExists,
		codes.PermissionDenied,
		codes.Unauthenticated,
		codes.FailedPrecondition,
		codes.OutOfRange,
		codes.ResourceExhausted:
		return writelog.MessageTypeFailure
	default:
		return writelog.MessageTypeError
	}
}
