package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrEmptyCart, http.StatusBadRequest},
	{domain.ErrInsufficientStock, http.StatusBadRequest},
	{domain.ErrInvalidState, http.StatusBadRequest},
	{domain.ErrConflict, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
}

// classify returns the status for err and the part of its message that is safe to show.
func classify(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, publicMessage(err, es.err)
		}
	}

	return http.StatusInternalServerError, "internal server error"
}

// publicMessage drops the call-site prefixes in front of the sentinel.
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

func respondError(c *gin.Context, log *logrus.Logger, err error) {
	status, msg := classify(err)

	entry := log.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
		"status": status,
	})

	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithError(err).Debug("request rejected")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
