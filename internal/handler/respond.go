package handler

import (
	"errors"
	"net/http"

	"tamapet/internal/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// statusFor maps the error taxonomy to HTTP status codes. The mapping lives
// at the boundary; services only classify.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindInvalidState, domain.KindInsufficientFunds:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a classified business error, or a generic 500 for
// anything unclassified.
func respondError(c *gin.Context, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		c.JSON(statusFor(de.Kind), gin.H{"error": de.Message})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	log.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
