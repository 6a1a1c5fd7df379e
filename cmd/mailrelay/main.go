package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/cmd/mailrelay/router"
	"github.com/Hasini-Stu/tasknew/config"
	"github.com/Hasini-Stu/tasknew/mailer"
)

func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")
	cfg := config.GetConfig()

	var m mailer.Mailer
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if apiKey == "" {
		logger.Log.Warn("SENDGRID_API_KEY is not set; subscriptions will be accepted and logged only")
	} else if fromEmail == "" {
		log.Fatal("SENDGRID_FROM_EMAIL is required when SENDGRID_API_KEY is set")
	} else {
		m = mailer.NewSendGridMailer(apiKey, fromEmail)
	}

	r := router.New(m, cfg.Frontend.Origin)

	logger.Log.Infof("mail relay listening on %s", cfg.Relay.Addr)
	if err := r.Run(cfg.Relay.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
