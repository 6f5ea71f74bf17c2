package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"meetapp/internal/helpers"
	"meetapp/internal/models"
	"meetapp/internal/services"
)

func RegisterUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=6"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			return
		}

		user, err := u.Register(c.Request.Context(), &services.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmailTaken):
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrEmailTaken.Error()})
			case errors.Is(err, models.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			default:
				c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			}
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func UpdateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.RequesterID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			Name        string `json:"name"`
			Email       string `json:"email"`
			OldPassword string `json:"old_password"`
			Password    string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			return
		}

		user, err := u.UpdateProfile(c.Request.Context(), userID, &services.UpdateProfileInput{
			Name:        req.Name,
			Email:       req.Email,
			OldPassword: req.OldPassword,
			Password:    req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "password does not match"})
			case errors.Is(err, models.ErrEmailTaken):
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrEmailTaken.Error()})
			case errors.Is(err, models.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			case errors.Is(err, models.ErrUserNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrUserNotFound.Error()})
			default:
				c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			}
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// AuthenticateUser handles session creation: credentials in, profile
// plus bearer token out.
func AuthenticateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			return
		}

		user, token, err := u.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrInvalidCredentials.Error()})
			case errors.Is(err, models.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			default:
				c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user,
			"token": token,
		})
	}
}
