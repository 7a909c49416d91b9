package middleware

import (
	"errors"
	"net/http"

	"itemshare/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerUserIDHeader carries the caller's identity. The gateway in front of
// this service authenticates users and injects the header.
const SharerUserIDHeader = "X-Sharer-User-Id"

const userIDContextKey = "sharer_user_id"

var (
	errMissingUserHeader = errors.New("missing " + SharerUserIDHeader + " header")
	errInvalidUserHeader = errors.New("invalid " + SharerUserIDHeader + " header")
)

// RequireUserID rejects requests without a well-formed identity header.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerUserIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingUserHeader, "Missing "+SharerUserIDHeader+" header", nil)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidUserHeader, "Invalid "+SharerUserIDHeader+" header", nil)
			return
		}

		c.Set(userIDContextKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
