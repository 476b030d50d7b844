package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

const principalKey = "principal"

func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"remote_ip":  c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
		})

		if last := c.Errors.Last(); last != nil {
			entry = entry.WithField("error", last.Err.Error())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request completed with server error")
		case status >= http.StatusBadRequest:
			entry.Warn("request completed with client error")
		default:
			entry.Info("request completed")
		}
	}
}

// Authenticate requires a valid bearer token and stores the caller in the context.
func Authenticate(auth AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, log, fmt.Errorf("%w: authorization header required", domain.ErrUnauthorized))
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			respondError(c, log, fmt.Errorf("%w: invalid authorization header format", domain.ErrUnauthorized))
			return
		}

		principal, err := auth.Authenticate(strings.TrimSpace(token))
		if err != nil {
			respondError(c, log, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func RequireAdmin(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !principalFrom(c).IsAdmin() {
			respondError(c, log, fmt.Errorf("%w: admin role required", domain.ErrForbidden))
			return
		}

		c.Next()
	}
}

func principalFrom(c *gin.Context) domain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}
	}

	p, _ := v.(domain.Principal)
	return p
}
