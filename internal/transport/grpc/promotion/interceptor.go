package promotion

import (
	"context"
	"path"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/promotion-catalog-service/internal/pkg/metrics"
)

// LoggingInterceptor logs every unary call and counts it by method and code.
func LoggingInterceptor(logger *zap.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		method := path.Base(info.FullMethod)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		m.ObserveRPC(method, code.String())

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err == nil:
			logger.Info("rpc completed", fields...)
		case code == codes.Internal || code == codes.Unknown:
			logger.Error("rpc failed", append(fields, zap.Error(err))...)
		default:
			logger.Warn("rpc rejected", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}
