package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/auth"
	"github.com/Hasini-Stu/tasknew/cmd/api/dto"
	"github.com/Hasini-Stu/tasknew/cmd/api/middleware"
	"github.com/Hasini-Stu/tasknew/repositories"
)

// GetUserProfileHandler returns the profile of the authenticated caller.
func GetUserProfileHandler(adapter *auth.Adapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(middleware.ContextUID)

		profile, err := adapter.GetProfile(c.Request.Context(), uid)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "User profile not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Failed to fetch user profile"})
			return
		}

		var lastLogin *string
		if profile.LastLoginAt != nil {
			s := profile.LastLoginAt.Format(time.RFC3339)
			lastLogin = &s
		}

		c.JSON(http.StatusOK, dto.UserProfileDTO{
			UID:         profile.UID,
			FirstName:   profile.FirstName,
			LastName:    profile.LastName,
			Email:       profile.Email,
			CreatedAt:   profile.CreatedAt.Format(time.RFC3339),
			LastLoginAt: lastLogin,
			IsActive:    profile.IsActive,
		})
	}
}
