package httpapi

import (
	"context"

	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
)

func withRequestID(ctx context.Context, id string) context.Context {
	return logging.WithRequestID(ctx, id)
}

func requestIDFromContext(ctx context.Context) (string, bool) {
	return logging.RequestIDFromContext(ctx)
}
