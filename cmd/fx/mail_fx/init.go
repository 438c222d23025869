package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"retreatly/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	cfg := services.NewSMTPConfigFromEnv()

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
