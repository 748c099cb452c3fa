package handlers

import (
	"strings"

	"repair_desk/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Identity is established upstream; these headers carry the result.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"
	HeaderUserName  = "X-User-Name"
	HeaderSessionID = "X-Session-ID"

	actorContextKey = "actor"
)

// ActorMiddleware stores the calling user on the gin context.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorContextKey, actorFromHeaders(c))
		c.Next()
	}
}

// ActorFrom returns the user set by ActorMiddleware, reading the headers
// directly when the middleware did not run.
func ActorFrom(c *gin.Context) entities.User {
	if v, ok := c.Get(actorContextKey); ok {
		if u, ok := v.(entities.User); ok {
			return u
		}
	}
	return actorFromHeaders(c)
}

func actorFromHeaders(c *gin.Context) entities.User {
	return entities.User{
		ID:       strings.TrimSpace(c.GetHeader(HeaderUserID)),
		Username: strings.TrimSpace(c.GetHeader(HeaderUserName)),
		Role:     entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole)))),
	}
}
