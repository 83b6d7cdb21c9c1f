package middleware

import (
	"net/http"
	"strings"

	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/utils"

	"github.com/gin-gonic/gin"
)

// CtxViewer is the context key under which AuthMiddleware stores the caller.
const CtxViewer = "viewer"

// AuthMiddleware verifies the Firebase ID token in the Authorization header
// and stores the caller as a Viewer on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		viewer := models.Viewer{ID: token.UID}
		if email, ok := token.Claims["email"].(string); ok {
			viewer.Email = email
		}
		c.Set(CtxViewer, viewer)
		c.Next()
	}
}

// ViewerFrom returns the authenticated caller stored by AuthMiddleware. It
// is the zero Viewer on unauthenticated routes.
func ViewerFrom(c *gin.Context) models.Viewer {
	if v, exists := c.Get(CtxViewer); exists {
		if viewer, ok := v.(models.Viewer); ok {
			return viewer
		}
	}
	return models.Viewer{}
}

// AccountID returns the authenticated caller's id from the context.
func AccountID(c *gin.Context) string {
	return ViewerFrom(c).ID
}
