package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled      bool
	CORSAllowedOrigins  []string
	PlayerWritesEnabled bool
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerPlayerRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	if opts.PlayerWritesEnabled {
		registerPlayerWriteRoutes(mux, handler)
	}

	return RequestTracing(RequestID(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}
