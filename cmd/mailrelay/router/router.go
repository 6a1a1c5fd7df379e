package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/cmd/mailrelay/handlers"
	"github.com/Hasini-Stu/tasknew/mailer"
)

// New builds the relay engine. CORS is restricted to the one configured
// browser origin; there is no authentication.
func New(m mailer.Mailer, allowedOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{allowedOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.POST("/subscribe", handlers.SubscribeHandler(m))
	r.GET("/health", handlers.HealthHandler())

	return r
}
