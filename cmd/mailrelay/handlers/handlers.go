package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/mailer"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SubscribeHandler forwards a subscription request to the mail provider.
// With no provider configured (m == nil) the subscription is accepted and
// only logged, so local development works without a key.
func SubscribeHandler(m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
			return
		}

		if m == nil {
			logger.InfoWithFields("email subscription received (SendGrid not configured)", logger.Fields{
				"email": req.Email,
			})
			c.JSON(http.StatusOK, gin.H{"message": "Subscription successful! Welcome to Dev@Deakin!"})
			return
		}

		if err := m.SendWelcome(c.Request.Context(), req.Email); err != nil {
			logger.ErrorWithFields("failed to send welcome email", logger.Fields{
				"email": req.Email,
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email. Please check SendGrid configuration."})
			return
		}

		logger.InfoWithFields("welcome email sent", logger.Fields{"email": req.Email})
		c.JSON(http.StatusOK, gin.H{"message": "Welcome email sent successfully."})
	}
}

// HealthHandler reports liveness.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	}
}
