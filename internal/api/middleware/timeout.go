package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SelectiveTimeoutConfig applies a longer timeout to AI-backed endpoints and
// the default timeout everywhere else. Fallback chains can legitimately take
// several provider attempts before responding.
func SelectiveTimeoutConfig(defaultTimeout, aiTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			if isAIEndpoint(c.Path()) {
				timeout = aiTimeout
			}
			return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
				Timeout: timeout,
			})(next)(c)
		}
	}
}

func isAIEndpoint(path string) bool {
	for _, prefix := range []string{"/api/v1/resume/analyze", "/api/v1/cover-letter/generate", "/api/v1/practice"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
