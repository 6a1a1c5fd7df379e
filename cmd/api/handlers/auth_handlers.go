package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/auth"
	apiauth "github.com/Hasini-Stu/tasknew/cmd/api/auth"
	"github.com/Hasini-Stu/tasknew/cmd/api/dto"
	"github.com/Hasini-Stu/tasknew/internal/logger"
)

// RegisterHandler creates an identity account plus the application profile
// and returns a bearer token for the new session.
func RegisterHandler(adapter *auth.Adapter, jwtManager *apiauth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "firstName, lastName, email and password are required"})
			return
		}

		id, err := adapter.Register(c.Request.Context(), auth.RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			writeAuthError(c, err)
			return
		}

		token, err := jwtManager.Sign(id.UID, id.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to issue token"})
			return
		}

		c.JSON(http.StatusCreated, dto.AuthResponseDTO{Token: token, UID: id.UID, Email: id.Email})
	}
}

// LoginHandler authenticates and returns a bearer token.
func LoginHandler(adapter *auth.Adapter, jwtManager *apiauth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "email and password are required"})
			return
		}

		id, err := adapter.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(c, err)
			return
		}

		token, err := jwtManager.Sign(id.UID, id.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, dto.AuthResponseDTO{Token: token, UID: id.UID, Email: id.Email})
	}
}

// LogoutHandler ends the session. Bearer tokens are not revocable; the
// adapter still clears its session state so observers see the transition.
func LogoutHandler(adapter *auth.Adapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := adapter.Logout(); err != nil {
			logger.WarnWithFields("logout reported an error", logger.Fields{"error": err.Error()})
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Logged out successfully."})
	}
}

// writeAuthError maps the taxonomy to HTTP statuses. Raw provider detail
// never reaches the response body; it lives in the logs only.
func writeAuthError(c *gin.Context, err error) {
	kind := auth.KindOf(err)

	message := "Something went wrong. Please try again."
	var ae *auth.Error
	if errors.As(err, &ae) {
		message = ae.Message
	}

	status := http.StatusInternalServerError
	switch kind {
	case auth.KindDuplicateAccount:
		status = http.StatusConflict
	case auth.KindInvalidCredentials:
		status = http.StatusUnauthorized
	case auth.KindInvalidEmailFormat, auth.KindWeakPassword:
		status = http.StatusBadRequest
	case auth.KindAuthDisabled, auth.KindAccountDisabled:
		status = http.StatusForbidden
	case auth.KindRateLimited:
		status = http.StatusTooManyRequests
	case auth.KindNetworkError:
		status = http.StatusServiceUnavailable
	}

	if kind == auth.KindUnknown {
		logger.ErrorWithFields("unmapped auth failure", logger.Fields{"error": err.Error()})
	}
	c.JSON(status, dto.ErrorResponseDTO{Error: message, Kind: string(kind)})
}
