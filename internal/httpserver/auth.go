package httpserver

import (
	"net/http"

	"agathiya-store/internal/domain"
	accountsvc "agathiya-store/internal/service/account"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string         `json:"token"`
	ExpiresIn int            `json:"expiresIn"`
	Session   domain.Session `json:"session"`
}

func registerHandler(accounts accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in accountsvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		user, err := accounts.Register(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		})
	}
}

func loginHandler(accounts accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		session, tok, err := accounts.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, loginResponse{
			Token:     tok,
			ExpiresIn: accounts.SessionTTLSeconds(),
			Session:   session,
		})
	}
}

func logoutHandler(accounts accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := accounts.Logout(c.Request.Context(), bearerToken(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, sessionFrom(c))
}
