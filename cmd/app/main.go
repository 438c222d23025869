package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"retreatly/cmd/fx/account_fx"
	"retreatly/cmd/fx/ai_fx"
	"retreatly/cmd/fx/booking_fx"
	"retreatly/cmd/fx/conversation_fx"
	"retreatly/cmd/fx/dashboard_fx"
	"retreatly/cmd/fx/db_fx"
	"retreatly/cmd/fx/forum_fx"
	"retreatly/cmd/fx/journal_fx"
	"retreatly/cmd/fx/location_fx"
	"retreatly/cmd/fx/mail_fx"
	"retreatly/cmd/fx/memcache_fx"
	"retreatly/cmd/fx/preference_fx"
	"retreatly/cmd/fx/recommend_fx"
	"retreatly/cmd/fx/retreat_fx"
	"retreatly/internal/api/controllers"
	"retreatly/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,

		account_fx.Module,
		retreat_fx.Module,
		booking_fx.Module,
		journal_fx.Module,
		recommend_fx.Module,
		preference_fx.Module,
		conversation_fx.Module,
		forum_fx.Module,
		dashboard_fx.Module,
		location_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	retreatController *controllers.RetreatController,
	bookingController *controllers.BookingController,
	journalController *controllers.JournalController,
	chatController *controllers.ChatController,
	preferenceController *controllers.PreferenceController,
	forumController *controllers.ForumController,
	dashboardController *controllers.DashboardController,
	locationController *controllers.LocationController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		retreatController,
		bookingController,
		journalController,
		chatController,
		preferenceController,
		forumController,
		dashboardController,
		locationController,
	)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	retreatController *controllers.RetreatController,
	bookingController *controllers.BookingController,
	journalController *controllers.JournalController,
	chatController *controllers.ChatController,
	preferenceController *controllers.PreferenceController,
	forumController *controllers.ForumController,
	dashboardController *controllers.DashboardController,
	locationController *controllers.LocationController,
) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	retreats := r.Group("/retreats")
	retreats.GET("", retreatController.ListRetreats)
	retreats.GET("/:id", retreatController.GetRetreatById)
	retreats.POST("/search", retreatController.SearchRetreats)
	retreats.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("host"), retreatController.CreateRetreat)

	bookings := r.Group("/bookings", middleware.JWTAuthMiddleware())
	bookings.POST("", bookingController.CreateBooking)
	bookings.GET("", bookingController.ListBookings)
	bookings.DELETE("/:id", bookingController.CancelBooking)
	bookings.POST("/checkout", bookingController.CreateCheckout)

	// Webhook is signature-verified, not token-authenticated.
	r.POST("/payments/webhook", bookingController.HandleWebhook)

	journal := r.Group("/journal", middleware.JWTAuthMiddleware())
	journal.POST("/entries", journalController.SaveEntry)
	journal.GET("/entries", journalController.ListEntries)
	journal.POST("/analyze", journalController.Analyze)

	chat := r.Group("/chat", middleware.JWTAuthMiddleware())
	chat.POST("/sessions", chatController.StartSession)
	chat.POST("/messages", chatController.SendMessage)
	chat.GET("/sessions/:id", chatController.GetSession)
	chat.POST("/sessions/:id/reset", chatController.ResetSession)

	preferences := r.Group("/preferences", middleware.JWTAuthMiddleware())
	preferences.GET("", preferenceController.GetPreferences)
	preferences.PATCH("", preferenceController.UpdatePreferences)

	forum := r.Group("/forum")
	forum.GET("/spaces", forumController.ListSpaces)
	forum.GET("/spaces/:spaceId/posts", forumController.ListPosts)
	forum.POST("/spaces", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), forumController.CreateSpace)
	forum.POST("/posts", middleware.JWTAuthMiddleware(), forumController.CreatePost)
	forum.DELETE("/posts/:id", middleware.JWTAuthMiddleware(), forumController.DeletePost)

	r.GET("/dashboard", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), dashboardController.GetOverview)

	r.GET("/location/resolve", locationController.ResolveCity)
}
