package booking_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"retreatly/internal/api/controllers"
	"retreatly/internal/repositories"
	"retreatly/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	retreatRepo repositories.RetreatRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
) services.BookingServiceInterface {
	cfg, err := services.NewPayOSConfigFromEnv()
	if err != nil {
		log.Printf("payOS config incomplete, checkout will fail: %v", err)
	}
	return services.NewBookingService(bookingRepo, retreatRepo, accountRepo, mailService, cfg)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
