package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/cmd/api/dto"
	"github.com/Hasini-Stu/tasknew/cmd/api/services"
	"github.com/Hasini-Stu/tasknew/feed"
	"github.com/Hasini-Stu/tasknew/models"
	"github.com/Hasini-Stu/tasknew/repositories"
)

// ListQuestionsHandler serves the question listing with optional search, tag
// and date filters, plus the tag vocabulary for the filter dropdown.
func ListQuestionsHandler(svc *services.QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		tag := c.Query("tag")
		date := feed.DateFilter(c.Query("date"))

		switch date {
		case feed.DateFilterNone, feed.DateFilterToday, feed.DateFilterWeek, feed.DateFilterMonth:
		default:
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "date must be one of today, week, month"})
			return
		}

		visible, tags := svc.List(c.Request.Context(), search, tag, date)

		items := make([]dto.PostDTO, 0, len(visible))
		for _, p := range visible {
			items = append(items, toPostDTO(p))
		}
		c.JSON(http.StatusOK, dto.QuestionListDTO{Items: items, Tags: tags})
	}
}

// DeleteQuestionHandler removes a question. The delete is atomic from the
// caller's point of view: success or no change.
func DeleteQuestionHandler(svc *services.QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "question not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to delete question"})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "question deleted"})
	}
}

func toPostDTO(p models.Post) dto.PostDTO {
	return dto.PostDTO{
		ID:          p.ID.Hex(),
		PostType:    p.PostType,
		Title:       p.Title,
		Image:       p.Image,
		Abstract:    p.Abstract,
		ArticleText: p.ArticleText,
		Tags:        p.Tags,
		AuthorEmail: p.AuthorEmail,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
