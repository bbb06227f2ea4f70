package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxLoggedPayload caps logged request and result bodies. Tool results
// here can carry entire image data URIs, which would bury the log.
const maxLoggedPayload = 2048

// debugTraffic logs each request/response pair crossing the server at
// debug level. Notification responses are skipped; there is nothing in
// them.
func debugTraffic(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			base := []any{"direction", direction, "method", method, "session_id", sessionID(req)}
			logger.Debug("mcp request", append(base, "params", payloadString(requestParams(req)))...)

			result, err := next(ctx, method, req)
			if strings.HasPrefix(method, "notifications/") {
				return result, err
			}

			attrs := append(base, "result", payloadString(result))
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			logger.Debug("mcp response", attrs...)
			return result, err
		}
	}
}

// sessionID extracts the session id defensively; SDK accessors can
// panic on partially initialized requests.
func sessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	if session := req.GetSession(); session != nil {
		return session.ID()
	}
	return ""
}

func requestParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

// payloadString renders a payload as truncated JSON for the log.
func payloadString(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	s := string(data)
	if len(s) > maxLoggedPayload {
		return s[:maxLoggedPayload] + fmt.Sprintf("...(%d bytes)", len(s))
	}
	return s
}
