package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/clock"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/rooms"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	txRunner := repository.NewTxRunner(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	roomsService := rooms.NewService(roomRepo, bookingRepo)
	roomsHandler := rooms.NewHandler(roomsService)

	bookingService := booking.NewService(txRunner, bookingRepo, roomRepo, clock.NewSystem())
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			roomsHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
