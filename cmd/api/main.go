package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hasini-Stu/tasknew/auth"
	apiauth "github.com/Hasini-Stu/tasknew/cmd/api/auth"
	"github.com/Hasini-Stu/tasknew/cmd/api/router"
	"github.com/Hasini-Stu/tasknew/cmd/api/services"
	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/config"
	"github.com/Hasini-Stu/tasknew/db"
	"github.com/Hasini-Stu/tasknew/identity"
	"github.com/Hasini-Stu/tasknew/repositories"
	"github.com/Hasini-Stu/tasknew/session"
	"github.com/Hasini-Stu/tasknew/storage"
)

func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")
	cfg := config.GetConfig()

	// Fail loudly on missing configuration instead of on first use.
	if err := config.RequireEnv("JWT_SECRET", "CLOUDINARY_URL"); err != nil {
		log.Fatal(err)
	}

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	postRepo := repositories.NewPostRepository(db.Database())
	userRepo := repositories.NewUserRepository(db.Database())

	identitySvc := identity.NewMongoService(db.Database())
	identitySession := identity.NewSession(identitySvc)
	adapter := auth.NewAdapter(identitySvc, identitySession, userRepo)

	// Session context: the one standing subscription. It keeps the derived
	// profile current and is torn down at shutdown with the session itself.
	sessionCtx := session.New(adapter)

	jwtManager, err := apiauth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	uploader, err := storage.NewCloudinaryFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(router.Deps{
		Adapter:     adapter,
		JWTManager:  jwtManager,
		Posts:       services.NewPostService(postRepo),
		Questions:   services.NewQuestionService(postRepo),
		Uploader:    uploader,
		AllowOrigin: cfg.Frontend.Origin,
	})

	server := &http.Server{
		Addr:         cfg.API.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Infof("api listening on %s", cfg.API.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("forced shutdown: %v", err)
	}

	sessionCtx.Close()
	identitySession.Close()
}
