package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/auth"
	apiauth "github.com/Hasini-Stu/tasknew/cmd/api/auth"
	"github.com/Hasini-Stu/tasknew/cmd/api/handlers"
	"github.com/Hasini-Stu/tasknew/cmd/api/middleware"
	"github.com/Hasini-Stu/tasknew/cmd/api/services"
	"github.com/Hasini-Stu/tasknew/storage"
)

// Deps carries everything the route table needs.
type Deps struct {
	Adapter     *auth.Adapter
	JWTManager  *apiauth.JWTManager
	Posts       *services.PostService
	Questions   *services.QuestionService
	Uploader    storage.Uploader
	AllowOrigin string
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(d.JWTManager)
	authLimiter := middleware.NewIPRateLimiter(10, time.Minute)

	// v1 routes
	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.RateLimit(authLimiter))
		authGroup.POST("/register", handlers.RegisterHandler(d.Adapter, d.JWTManager))
		authGroup.POST("/login", handlers.LoginHandler(d.Adapter, d.JWTManager))
		authGroup.POST("/logout", handlers.LogoutHandler(d.Adapter))

		api.GET("/users/profile", requireAuth, handlers.GetUserProfileHandler(d.Adapter))

		api.GET("/questions", handlers.ListQuestionsHandler(d.Questions))
		api.DELETE("/questions/:id", requireAuth, handlers.DeleteQuestionHandler(d.Questions))

		api.POST("/posts", requireAuth, handlers.CreatePostHandler(d.Posts))
		api.POST("/uploads", requireAuth, handlers.UploadImageHandler(d.Uploader))
	}

	return r
}
