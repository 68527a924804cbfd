package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"agathiya-store/internal/domain"
	accountsvc "agathiya-store/internal/service/account"
	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// authRequired resolves the bearer token to a Session and stores it in
// the request context. Every handler behind it gets an explicit actor
// identity instead of ambient state.
func authRequired(accounts accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		session, err := accounts.LookupByToken(c.Request.Context(), tok)
		if err != nil {
			if errors.Is(err, accountsvc.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// adminRequired gates the administrative surface.
func adminRequired(c *gin.Context) {
	if !sessionFrom(c).Admin() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}
	c.Next()
}

func sessionFrom(c *gin.Context) domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(domain.Session); ok {
			return s
		}
	}
	return domain.Session{}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// respondError maps the error taxonomy onto HTTP statuses. Validation
// problems carry their message to the actor; everything else is generic.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrStatusFinal):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, accountsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, accountsvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
