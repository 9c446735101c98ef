package middleware

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate-server/internal/logger"
)

// Logging is a unary interceptor that logs one record per call.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs the method, peer, duration and resulting code. Server
// faults are logged at error level, refused credentials at warn level.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := codeOf(err)
	args := []any{
		"method", info.FullMethod,
		"peer", DeviceFromContext(ctx).IP,
		"duration_ms", time.Since(start).Milliseconds(),
		"code", code.String(),
	}
	if err != nil {
		args = append(args, "error", status.Convert(err).Message())
	}

	l.logger.Log(ctx, levelFor(code), "gRPC request completed", args...)
	return resp, err
}

// codeOf reports Internal for errors that carry no status.
func codeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if st, ok := status.FromError(err); ok {
		return st.Code()
	}
	return codes.Internal
}

func levelFor(code codes.Code) slog.Level {
	switch code {
	case codes.OK:
		return slog.LevelInfo
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		return slog.LevelError
	case codes.Unauthenticated, codes.PermissionDenied:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
