package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docchat/service"
)

// AuthController ...
type AuthController struct{}

var tokenService = new(service.TokenService)

// TokenValid ...
func (a AuthController) TokenValid(c *gin.Context) {
	tokenAuth, err := tokenService.ExtractTokenMetadata(c.Request)
	if err != nil {
		//Token either expired or not valid
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Please login first"})
		return
	}

	c.Set("UserId", tokenAuth.UserID)
}

var auth = new(AuthController)

// TokenAuthMiddleware ...
// JWT Authentication middleware attached to each request that needs to be
// authenticated to validate the access_token in the header
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.TokenValid(c)
		c.Next()
	}
}
