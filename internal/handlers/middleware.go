package handlers

import (
	"net/http"
	"strings"

	"shop_api/internal/models"

	"github.com/gin-gonic/gin"
)

const userCtxKey = "authUser"

// authMiddleware resolves the bearer token to a user and stores the identity
// in the request context. Missing, malformed and revoked tokens all get the
// same response.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		abortUnauthenticated(c)
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		abortUnauthenticated(c)
		return
	}

	user, err := h.services.Authorization.Validate(c.Request.Context(), parts[1])
	if err != nil {
		abortUnauthenticated(c)
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
}

// userFromContext returns the identity placed there by authMiddleware.
func userFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
