package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
)

const dateLayout = "2006-01-02"

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

func formatDate(value time.Time) *string {
	if value.IsZero() {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

// respondError translates a registry error kind onto its status code.
// Internal causes are logged and never leaked.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch service.KindOf(err) {
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case service.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case service.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
