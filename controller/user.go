package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docchat/platform"
	"docchat/service"
)

// UserController ...
type UserController struct{}

var userService = service.UserService{}

var logger = platform.Logger

func (ctrl UserController) Register(c *gin.Context) {
	logger.Infof("[%s] Handling user registration request", c.GetString("requestId"))

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid input"})
		return
	}

	token, err := userService.Register(&service.User{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			logger.Warnf("[%s] User %s already exists", c.GetString("requestId"), input.Email)
			c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
			return
		}
		logger.Warnf("[%s] Failed to register user %s: %s", c.GetString("requestId"), input.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to register user"})
		return
	}

	logger.Infof("[%s] User %s registered successfully", c.GetString("requestId"), input.Email)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ctrl UserController) Login(c *gin.Context) {
	logger.Infof("[%s] Handling user login request", c.GetString("requestId"))

	var loginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request data"})
		return
	}

	token, err := userService.Login(&service.User{
		Email:    loginRequest.Email,
		Password: loginRequest.Password,
	})
	if err != nil {
		logger.Warnf("[%s] User %s failed to login: %s", c.GetString("requestId"), loginRequest.Email, err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
		return
	}

	logger.Infof("[%s] User %s login successfully", c.GetString("requestId"), loginRequest.Email)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
