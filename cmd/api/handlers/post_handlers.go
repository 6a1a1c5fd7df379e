package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/cmd/api/dto"
	"github.com/Hasini-Stu/tasknew/cmd/api/middleware"
	"github.com/Hasini-Stu/tasknew/cmd/api/services"
)

// CreatePostHandler runs the post submission flow for the authenticated
// caller.
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}

		author := &services.Author{
			UID:   c.GetString(middleware.ContextUID),
			Email: c.GetString(middleware.ContextEmail),
		}

		post, err := svc.Submit(c.Request.Context(), services.SubmitPostInput{
			PostType:    req.PostType,
			Title:       req.Title,
			Abstract:    req.Abstract,
			ArticleText: req.ArticleText,
			Image:       req.Image,
			Tags:        req.Tags,
		}, author)
		if err != nil {
			var ve *services.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: ve.Message, Field: ve.Field})
				return
			}
			if errors.Is(err, services.ErrNotAuthenticated) {
				c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to create post"})
			return
		}

		c.JSON(http.StatusCreated, toPostDTO(*post))
	}
}
